package services_test

import (
	"context"

	"HomoCure/models"
	"HomoCure/services"
	"HomoCure/test"
	"HomoCure/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("RegistrationService", func() {
	var (
		ctx          context.Context
		sink         *recordingNotifier
		registration *services.RegistrationService
		st           *models.State
		core         map[string]string
	)

	BeforeEach(func() {
		ctx = context.Background()
		sink = &recordingNotifier{}
		registration = services.NewRegistrationService(services.NewDispatcher(test.Logger(), sink), test.Logger())
		st = newState(models.ViewPatientRegister)
		core = map[string]string{
			"fullName": test.Faker.Person().Name(),
			"age":      "29",
			"symptoms": test.Faker.Lorem().Sentence(5),
		}
	})

	It("keeps hidden branch answers in the draft when the gender changes", func() {
		Expect(registration.UpdateForm(ctx, st, map[string]string{
			"gender":         models.GenderFemale,
			"menstrualCycle": "Regular",
			"pregnancy":      "No",
		})).To(Succeed())
		Expect(registration.UpdateForm(ctx, st, map[string]string{"gender": models.GenderMale, "fatigue": "Evenings"})).To(Succeed())
		Expect(registration.UpdateForm(ctx, st, map[string]string{"gender": models.GenderFemale})).To(Succeed())

		Expect(st.Drafts.Registration.MenstrualCycle).To(Equal("Regular"))
		Expect(st.Drafts.Registration.Pregnancy).To(Equal("No"))
		Expect(st.Drafts.Registration.Fatigue).To(Equal("Evenings"))
	})

	It("submits only the answers of the selected gender", func() {
		Expect(registration.UpdateForm(ctx, st, map[string]string{
			"gender":                 models.GenderFemale,
			"menstrualCycle":         "Regular",
			"foodWeatherPreferences": "Craves salt, dislikes heat",
		})).To(Succeed())

		core["gender"] = models.GenderMale
		core["fatigue"] = "Evenings"
		submission, err := registration.Submit(ctx, st, core)
		Expect(err).ToNot(HaveOccurred())

		Expect(submission.Gender).To(Equal(models.GenderMale))
		Expect(submission.Fatigue).To(Equal("Evenings"))
		Expect(submission.FoodWeatherPreferences).To(Equal("Craves salt, dislikes heat"))
		Expect(submission.MenstrualCycle).To(BeEmpty())

		Expect(st.Notifications).To(HaveLen(1))
		n := st.Notifications[0]
		Expect(n.Title).To(Equal("Registration Successful"))
		Expect(n.Description).To(Equal("Patient registration has been submitted successfully."))
		Expect(n.Topic).To(Equal(services.TopicPatientRegistered))
		Expect(n.Payload).To(HaveKeyWithValue("fatigue", "Evenings"))
		Expect(n.Payload).ToNot(HaveKey("menstrualCycle"))
		Expect(sink.Received()).To(HaveLen(1))

		Expect(st.Drafts.Registration).To(Equal(models.PatientData{}))
	})

	DescribeTable("requires the core fields",
		func(missing string) {
			core["gender"] = models.GenderOther
			delete(core, missing)

			_, err := registration.Submit(ctx, st, core)

			var validationErr *utils.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Fields).To(Equal([]string{missing}))
			Expect(destructive(st.Notifications)).To(HaveLen(1))
			Expect(st.Drafts.Registration.Gender).To(Equal(core["gender"]))
		},
		Entry("full name", "fullName"),
		Entry("age", "age"),
		Entry("gender", "gender"),
		Entry("symptoms", "symptoms"),
	)

	It("rejects unknown genders without applying the patch", func() {
		err := registration.UpdateForm(ctx, st, map[string]string{"fullName": "Ada", "gender": "robot"})

		var validationErr *utils.ValidationError
		Expect(errors.As(err, &validationErr)).To(BeTrue())
		Expect(st.Drafts.Registration.FullName).To(BeEmpty())
		Expect(destructive(st.Notifications)).To(HaveLen(1))
	})

	It("rejects unknown fields", func() {
		err := registration.UpdateForm(ctx, st, map[string]string{"bloodType": "O+"})
		var validationErr *utils.ValidationError
		Expect(errors.As(err, &validationErr)).To(BeTrue())
		Expect(validationErr.Fields).To(Equal([]string{"bloodType"}))
	})

	It("is only available on the registration view", func() {
		st.View = models.ViewHome
		Expect(registration.UpdateForm(ctx, st, core)).To(MatchError(services.ErrWrongView))
	})
})
