package utils_test

import (
	"HomoCure/test"
	"HomoCure/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Password", func() {
	It("hashes passwords with bcrypt", func() {
		password := test.RandomPassword()
		hash, err := utils.HashPassword(password, bcrypt.MinCost)
		Expect(err).ToNot(HaveOccurred())
		Expect(hash).ToNot(Equal(password))

		Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))).To(Succeed())
		Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+"x"))).ToNot(Succeed())
	})
})
