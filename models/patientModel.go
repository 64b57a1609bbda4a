package models

import (
	"time"
)

// Patient is a doctor-facing patient record.
type Patient struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Symptoms     string    `json:"symptoms"`
	Prescription string    `json:"prescription"`
	Duration     int       `json:"duration"`
	Token        string    `json:"token"`
	CreatedAt    time.Time `json:"createdAt"`
	DaysLeft     int       `json:"daysLeft"`
}

// PatientForm holds the raw values of the "Add Patient" form.
type PatientForm struct {
	Name         string `json:"name"`
	Age          string `json:"age"`
	Symptoms     string `json:"symptoms"`
	Prescription string `json:"prescription"`
	Duration     string `json:"duration"`
}

// PatientFormPatch carries a partial update of PatientForm; nil fields are left untouched.
type PatientFormPatch struct {
	Name         *string `json:"name"`
	Age          *string `json:"age"`
	Symptoms     *string `json:"symptoms"`
	Prescription *string `json:"prescription"`
	Duration     *string `json:"duration"`
}

// Apply merges the non-nil fields of p into form.
func (p PatientFormPatch) Apply(form *PatientForm) {
	if p.Name != nil {
		form.Name = *p.Name
	}
	if p.Age != nil {
		form.Age = *p.Age
	}
	if p.Symptoms != nil {
		form.Symptoms = *p.Symptoms
	}
	if p.Prescription != nil {
		form.Prescription = *p.Prescription
	}
	if p.Duration != nil {
		form.Duration = *p.Duration
	}
}

// Tokens returns the set of tokens issued to the given patients.
func Tokens(patients []Patient) map[string]struct{} {
	tokens := make(map[string]struct{}, len(patients))
	for _, p := range patients {
		tokens[p.Token] = struct{}{}
	}
	return tokens
}
