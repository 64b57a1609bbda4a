package test

import (
	"math/rand"
	"strconv"

	"HomoCure/models"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

func ptr(s string) *string {
	return &s
}

// RandomPatientForm returns a complete "Add Patient" submission.
func RandomPatientForm() models.PatientFormPatch {
	return models.PatientFormPatch{
		Name:         ptr(Faker.Person().Name()),
		Age:          ptr(strconv.Itoa(Faker.IntBetween(1, 99))),
		Symptoms:     ptr(Faker.Lorem().Sentence(6)),
		Prescription: ptr(Faker.Lorem().Sentence(4)),
		Duration:     ptr(strconv.Itoa(Faker.IntBetween(1, 60))),
	}
}

// RandomDoctorForm returns a complete doctor registration form.
func RandomDoctorForm() models.DoctorFormPatch {
	specialization := models.Specializations[Rand.Intn(len(models.Specializations))].Value
	return models.DoctorFormPatch{
		Name:           ptr("Dr. " + Faker.Person().LastName()),
		Email:          ptr(Faker.Internet().Email()),
		Specialization: ptr(specialization),
	}
}

// RandomPassword returns a non-empty password.
func RandomPassword() string {
	return Faker.Internet().Password()
}
