package models_test

import (
	"time"

	"HomoCure/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("State", func() {
	It("starts on the home view with an empty record store", func() {
		now := time.Now()
		st := models.NewState("session-1", now)
		Expect(st.View).To(Equal(models.ViewHome))
		Expect(st.Doctor).To(BeNil())
		Expect(st.Patients).To(BeEmpty())
		Expect(st.Drafts.DoctorAuth.Mode).To(Equal(models.AuthModeRegister))
	})

	It("prunes notifications older than their time to live", func() {
		now := time.Now()
		st := models.NewState("session-1", now)
		st.Notifications = []models.Notification{
			{Title: "old", CreatedAt: now.Add(-10 * time.Second)},
			{Title: "fresh", CreatedAt: now.Add(-time.Second)},
		}

		st.PruneNotifications(now, 5*time.Second)
		Expect(st.Notifications).To(HaveLen(1))
		Expect(st.Notifications[0].Title).To(Equal("fresh"))
	})

	It("collects issued tokens", func() {
		tokens := models.Tokens(models.SeedPatients(time.Now()))
		Expect(tokens).To(HaveKey("PAT001"))
		Expect(tokens).To(HaveKey("PAT002"))
		Expect(tokens).To(HaveLen(2))
	})
})
