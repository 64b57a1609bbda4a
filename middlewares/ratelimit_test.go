package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"HomoCure/middlewares"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewRateLimiterMiddleware", func() {
	var router *gin.Engine

	BeforeEach(func() {
		limiter, err := middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
			RequestsPerSecond: 0.001,
			Burst:             2,
		})
		Expect(err).ToNot(HaveOccurred())

		router = gin.New()
		router.Use(limiter)
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	})

	request := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	It("limits each client separately", func() {
		Expect(request("192.0.2.1:1234")).To(Equal(http.StatusOK))
		Expect(request("192.0.2.1:1234")).To(Equal(http.StatusOK))
		Expect(request("192.0.2.1:1234")).To(Equal(http.StatusTooManyRequests))

		Expect(request("192.0.2.2:1234")).To(Equal(http.StatusOK))
	})
})
