package config_test

import (
	"os"
	"time"

	"HomoCure/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Load", func() {
	BeforeEach(func() {
		t := GinkgoT()
		for _, name := range []string{"HTTP_ADDR", "ENV", "LOOKUP_DELAY", "NOTIFICATION_TTL", "REDIS_URL", "SMTP_HOST", "ALLOWED_ORIGINS", "MAIL_TOPICS"} {
			// Setenv restores the previous value after the test.
			t.Setenv(name, "")
			Expect(os.Unsetenv(name)).To(Succeed())
		}
	})

	It("applies defaults", func() {
		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())

		Expect(cfg.HTTPAddr).To(Equal(":8930"))
		Expect(cfg.LookupDelay).To(Equal(time.Second))
		Expect(cfg.NotificationTTL).To(Equal(5 * time.Second))
		Expect(cfg.AllowedOrigins).To(Equal([]string{"http://localhost:3000", "http://localhost:5173"}))
		Expect(cfg.MailTopics).To(Equal([]string{"patient.added"}))
		Expect(cfg.RedisEnabled()).To(BeFalse())
		Expect(cfg.MailEnabled()).To(BeFalse())
		Expect(cfg.IsDevelopment()).To(BeFalse())
	})

	It("reads overrides from the environment", func() {
		t := GinkgoT()
		t.Setenv("ENV", "development")
		t.Setenv("LOOKUP_DELAY", "250ms")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("SMTP_HOST", "smtp.homocure.test")
		t.Setenv("MAIL_TOPICS", "patient.added,patient.registered")

		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())

		Expect(cfg.IsDevelopment()).To(BeTrue())
		Expect(cfg.LookupDelay).To(Equal(250 * time.Millisecond))
		Expect(cfg.RedisEnabled()).To(BeTrue())
		Expect(cfg.MailEnabled()).To(BeTrue())
		Expect(cfg.MailTopics).To(ConsistOf("patient.added", "patient.registered"))
	})

	It("fails on malformed values", func() {
		GinkgoT().Setenv("LOOKUP_DELAY", "soon")
		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})
})
