package services_test

import (
	"context"
	"strconv"

	"HomoCure/models"
	"HomoCure/services"
	"HomoCure/test"
	"HomoCure/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("PatientService", func() {
	var (
		ctx      context.Context
		patients *services.PatientService
		st       *models.State
	)

	BeforeEach(func() {
		ctx = context.Background()
		dispatcher := services.NewDispatcher(test.Logger())
		patients = services.NewPatientService(dispatcher, utils.NewRandomSource(GinkgoRandomSeed()))
		st = dashboardState()
	})

	Describe("AddPatient", func() {
		It("appends a record with a fresh token", func() {
			form := test.RandomPatientForm()
			before := len(st.Patients)

			patient, err := patients.AddPatient(ctx, st, form)
			Expect(err).ToNot(HaveOccurred())

			Expect(st.Patients).To(HaveLen(before + 1))
			Expect(st.Patients[before]).To(Equal(*patient))
			Expect(patient.Name).To(Equal(*form.Name))
			Expect(strconv.Itoa(patient.Age)).To(Equal(*form.Age))
			Expect(patient.DaysLeft).To(Equal(patient.Duration))
			Expect(patient.Token).To(MatchRegexp(`^PAT[0-9A-Z]{6}$`))
			Expect(patient.Token).ToNot(BeElementOf("PAT001", "PAT002"))

			Expect(st.Drafts.AddPatient).To(Equal(models.PatientForm{}))
			Expect(st.Notifications).To(HaveLen(1))
			Expect(st.Notifications[0].Title).To(Equal("Patient Added Successfully"))
			Expect(st.Notifications[0].Description).To(Equal("Token: " + patient.Token))
			Expect(st.Notifications[0].Topic).To(Equal(services.TopicPatientAdded))
			Expect(st.Notifications[0].Recipient).To(Equal("jane@x.com"))
		})

		It("issues distinct tokens", func() {
			for i := 0; i < 50; i++ {
				_, err := patients.AddPatient(ctx, st, test.RandomPatientForm())
				Expect(err).ToNot(HaveOccurred())
			}
			Expect(models.Tokens(st.Patients)).To(HaveLen(len(st.Patients)))
		})

		It("merges the request into the draft", func() {
			form := test.RandomPatientForm()
			Expect(patients.UpdateDraft(ctx, st, models.PatientFormPatch{Name: form.Name, Age: form.Age})).To(Succeed())
			Expect(st.Drafts.AddPatient.Name).To(Equal(*form.Name))

			form.Name, form.Age = nil, nil
			patient, err := patients.AddPatient(ctx, st, form)
			Expect(err).ToNot(HaveOccurred())
			Expect(patient.Name).ToNot(BeEmpty())
		})

		DescribeTable("leaves the records untouched when a field is empty",
			func(clear func(*models.PatientFormPatch)) {
				form := test.RandomPatientForm()
				clear(&form)
				before := append([]models.Patient(nil), st.Patients...)

				_, err := patients.AddPatient(ctx, st, form)

				var validationErr *utils.ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue())
				Expect(st.Patients).To(Equal(before))
				Expect(st.Notifications).To(HaveLen(1))
				Expect(destructive(st.Notifications)).To(HaveLen(1))
				Expect(st.Notifications[0].Title).To(Equal("Error"))
				Expect(st.Notifications[0].Description).To(Equal("Please fill in all fields."))
			},
			Entry("name", func(f *models.PatientFormPatch) { f.Name = strPtr("") }),
			Entry("age", func(f *models.PatientFormPatch) { f.Age = strPtr("") }),
			Entry("symptoms", func(f *models.PatientFormPatch) { f.Symptoms = strPtr("") }),
			Entry("prescription", func(f *models.PatientFormPatch) { f.Prescription = strPtr("") }),
			Entry("duration", func(f *models.PatientFormPatch) { f.Duration = strPtr("") }),
		)

		It("rejects a non-numeric duration", func() {
			form := test.RandomPatientForm()
			form.Duration = strPtr("two weeks")
			before := len(st.Patients)

			_, err := patients.AddPatient(ctx, st, form)
			var validationErr *utils.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Fields).To(Equal([]string{"duration"}))
			Expect(st.Patients).To(HaveLen(before))
			Expect(destructive(st.Notifications)).To(HaveLen(1))
		})

		It("reads zero-padded and space-padded numbers", func() {
			form := test.RandomPatientForm()
			form.Age = strPtr("07")
			form.Duration = strPtr(" 14 ")

			patient, err := patients.AddPatient(ctx, st, form)
			Expect(err).ToNot(HaveOccurred())
			Expect(patient.Age).To(Equal(7))
			Expect(patient.Duration).To(Equal(14))
			Expect(patient.DaysLeft).To(Equal(14))
		})

		It("requires a signed-in doctor", func() {
			st = newState(models.ViewDoctorDashboard)
			_, err := patients.AddPatient(ctx, st, test.RandomPatientForm())
			Expect(err).To(MatchError(services.ErrNoDoctor))
			Expect(st.Patients).To(BeEmpty())
		})
	})

	Describe("Search", func() {
		It("returns every record in storage order for an empty query", func() {
			matched := services.Search(st.Patients, "")
			Expect(matched).To(Equal(st.Patients))
		})

		DescribeTable("matches names and tokens ignoring case",
			func(query string, names ...string) {
				matched := []string{}
				for _, p := range services.Search(st.Patients, query) {
					matched = append(matched, p.Name)
				}
				Expect(matched).To(Equal(names))
			},
			Entry("lower case token", "pat001", "Alice Johnson"),
			Entry("partial name", "SMI", "Bob Smith"),
			Entry("shared prefix", "PAT", "Alice Johnson", "Bob Smith"),
			Entry("no match", "zzz"),
		)

		It("keeps the query in the search draft", func() {
			matched, err := patients.SetSearch(ctx, st, "bob")
			Expect(err).ToNot(HaveOccurred())
			Expect(matched).To(HaveLen(1))
			Expect(st.Drafts.Search).To(Equal("bob"))
		})

		It("filters without changing the search draft", func() {
			st.Drafts.Search = "bob"

			matched, err := patients.Filter(st, strPtr("alice"))
			Expect(err).ToNot(HaveOccurred())
			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Name).To(Equal("Alice Johnson"))
			Expect(st.Drafts.Search).To(Equal("bob"))

			matched, err = patients.Filter(st, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Name).To(Equal("Bob Smith"))
		})

		It("filters only for a signed-in doctor", func() {
			_, err := patients.Filter(newState(models.ViewDoctorDashboard), nil)
			Expect(err).To(MatchError(services.ErrNoDoctor))
		})
	})
})
