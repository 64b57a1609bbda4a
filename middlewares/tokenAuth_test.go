package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"HomoCure/middlewares"
	"HomoCure/utils"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SessionAuthMiddleware", func() {
	var (
		tokens *utils.SessionTokens
		router *gin.Engine
	)

	BeforeEach(func() {
		key, _, err := utils.SymmetricKey("")
		Expect(err).ToNot(HaveOccurred())
		tokens, err = utils.NewSessionTokens(key, time.Hour)
		Expect(err).ToNot(HaveOccurred())

		router = gin.New()
		router.GET("/whoami", middlewares.SessionAuthMiddleware(tokens), func(c *gin.Context) {
			sessionID, err := middlewares.ExtractSessionIDFromContext(c.Request.Context())
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.String(http.StatusOK, sessionID)
		})
	})

	serve := func(decorate func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		decorate(req)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	It("reads the bearer token", func() {
		token, err := tokens.Generate("session-1")
		Expect(err).ToNot(HaveOccurred())

		rec := serve(func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("session-1"))
	})

	It("falls back to the session cookie", func() {
		token, err := tokens.Generate("session-2")
		Expect(err).ToNot(HaveOccurred())

		rec := serve(func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
		})
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("session-2"))
	})

	DescribeTable("rejects requests without a valid token",
		func(decorate func(*http.Request)) {
			Expect(serve(decorate).Code).To(Equal(http.StatusUnauthorized))
		},
		Entry("missing", func(*http.Request) {}),
		Entry("wrong scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }),
		Entry("empty bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer ") }),
		Entry("forged", func(r *http.Request) { r.Header.Set("Authorization", "Bearer v2.local.AAAA") }),
	)
})
