package utils_test

import (
	"time"

	"HomoCure/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("SessionTokens", func() {
	var key []byte

	BeforeEach(func() {
		var err error
		key, _, err = utils.SymmetricKey("")
		Expect(err).ToNot(HaveOccurred())
	})

	It("requires a 32 byte key", func() {
		_, err := utils.NewSessionTokens([]byte("short"), time.Hour)
		Expect(err).To(HaveOccurred())

		_, _, err = utils.SymmetricKey("not-thirty-two-bytes")
		Expect(err).To(HaveOccurred())
	})

	It("uses a configured key verbatim", func() {
		configured := "0123456789abcdef0123456789abcdef"
		k, generated, err := utils.SymmetricKey(configured)
		Expect(err).ToNot(HaveOccurred())
		Expect(generated).To(BeFalse())
		Expect(string(k)).To(Equal(configured))
	})

	It("validates the tokens it generates", func() {
		tokens, err := utils.NewSessionTokens(key, time.Hour)
		Expect(err).ToNot(HaveOccurred())

		token, err := tokens.Generate("session-1")
		Expect(err).ToNot(HaveOccurred())

		claims, err := tokens.Validate(token)
		Expect(err).ToNot(HaveOccurred())
		Expect(claims.SessionID).To(Equal("session-1"))
		Expect(claims.Expiry).To(BeTemporally("~", time.Now().Add(time.Hour), time.Minute))
	})

	It("rejects tokens encrypted with another key", func() {
		other, _, err := utils.SymmetricKey("")
		Expect(err).ToNot(HaveOccurred())

		issuer, err := utils.NewSessionTokens(other, time.Hour)
		Expect(err).ToNot(HaveOccurred())
		token, err := issuer.Generate("session-1")
		Expect(err).ToNot(HaveOccurred())

		tokens, err := utils.NewSessionTokens(key, time.Hour)
		Expect(err).ToNot(HaveOccurred())
		_, err = tokens.Validate(token)
		Expect(errors.Is(err, utils.ErrInvalidSessionToken)).To(BeTrue())
	})

	It("rejects expired tokens", func() {
		tokens, err := utils.NewSessionTokens(key, -time.Minute)
		Expect(err).ToNot(HaveOccurred())

		token, err := tokens.Generate("session-1")
		Expect(err).ToNot(HaveOccurred())

		_, err = tokens.Validate(token)
		Expect(err).To(MatchError(utils.ErrSessionTokenExpired))
	})
})
