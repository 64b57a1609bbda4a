package utils_test

import (
	"bytes"

	"HomoCure/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mailer", func() {
	It("renders a notification into a mail message", func() {
		mailer := utils.NewMailer(utils.MailConfig{Host: "localhost", Port: 2525, User: "noreply@homocure.test"})

		msg, err := mailer.BuildNotificationMessage("jane@x.com", "Patient Added Successfully", "Token: PAT1A2B3C")
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.GetHeader("To")).To(ConsistOf("jane@x.com"))
		Expect(msg.GetHeader("Subject")).To(ConsistOf("HomoCure: Patient Added Successfully"))

		var out bytes.Buffer
		_, err = msg.WriteTo(&out)
		Expect(err).ToNot(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("Token: PAT1A2B3C"))
	})
})
