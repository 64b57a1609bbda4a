package models

import (
	"fmt"
)

// Gender values accepted by the self-registration form. An empty gender means unset.
const (
	GenderFemale = "female"
	GenderMale   = "male"
	GenderOther  = "other"
)

// PatientData is a self-service registration. Branch-specific answers are optional.
type PatientData struct {
	FullName string `json:"fullName"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Symptoms string `json:"symptoms"`

	MenstrualCycle         string `json:"menstrualCycle,omitempty"`
	MenstrualPain          string `json:"menstrualPain,omitempty"`
	Pregnancy              string `json:"pregnancy,omitempty"`
	EmotionalSymptoms      string `json:"emotionalSymptoms,omitempty"`
	FoodWeatherPreferences string `json:"foodWeatherPreferences,omitempty"`
	Fatigue                string `json:"fatigue,omitempty"`
	ProstateSymptoms       string `json:"prostateSymptoms,omitempty"`
	StressFactors          string `json:"stressFactors,omitempty"`
	GeneralHealth          string `json:"generalHealth,omitempty"`
	SleepPatterns          string `json:"sleepPatterns,omitempty"`
	EmotionalHealth        string `json:"emotionalHealth,omitempty"`
}

// branchFields lists the optional questions revealed by each gender.
var branchFields = map[string][]string{
	GenderFemale: {"menstrualCycle", "menstrualPain", "pregnancy", "emotionalSymptoms", "foodWeatherPreferences"},
	GenderMale:   {"fatigue", "prostateSymptoms", "stressFactors", "foodWeatherPreferences"},
	GenderOther:  {"emotionalHealth", "sleepPatterns", "generalHealth"},
}

// BranchFields returns the optional fields shown for gender, or nil when none are.
func BranchFields(gender string) []string {
	return branchFields[gender]
}

// ValidGender reports whether gender is a selectable value or unset.
func ValidGender(gender string) bool {
	if gender == "" {
		return true
	}
	_, ok := branchFields[gender]
	return ok
}

func (p *PatientData) field(name string) (*string, error) {
	switch name {
	case "fullName":
		return &p.FullName, nil
	case "age":
		return &p.Age, nil
	case "gender":
		return &p.Gender, nil
	case "symptoms":
		return &p.Symptoms, nil
	case "menstrualCycle":
		return &p.MenstrualCycle, nil
	case "menstrualPain":
		return &p.MenstrualPain, nil
	case "pregnancy":
		return &p.Pregnancy, nil
	case "emotionalSymptoms":
		return &p.EmotionalSymptoms, nil
	case "foodWeatherPreferences":
		return &p.FoodWeatherPreferences, nil
	case "fatigue":
		return &p.Fatigue, nil
	case "prostateSymptoms":
		return &p.ProstateSymptoms, nil
	case "stressFactors":
		return &p.StressFactors, nil
	case "generalHealth":
		return &p.GeneralHealth, nil
	case "sleepPatterns":
		return &p.SleepPatterns, nil
	case "emotionalHealth":
		return &p.EmotionalHealth, nil
	}
	return nil, fmt.Errorf("unknown registration field %q", name)
}

// Set assigns value to the field with the given JSON name.
func (p *PatientData) Set(name, value string) error {
	f, err := p.field(name)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// Get returns the value of the field with the given JSON name.
func (p *PatientData) Get(name string) (string, error) {
	f, err := p.field(name)
	if err != nil {
		return "", err
	}
	return *f, nil
}

// Submission returns a copy holding the core fields and only the answers
// belonging to the currently selected gender.
func (p PatientData) Submission() PatientData {
	out := PatientData{
		FullName: p.FullName,
		Age:      p.Age,
		Gender:   p.Gender,
		Symptoms: p.Symptoms,
	}
	for _, name := range BranchFields(p.Gender) {
		value, _ := p.Get(name)
		_ = out.Set(name, value)
	}
	return out
}

// Answers flattens the non-empty fields into a map keyed by JSON name.
func (p PatientData) Answers() map[string]string {
	answers := map[string]string{
		"fullName": p.FullName,
		"age":      p.Age,
		"gender":   p.Gender,
		"symptoms": p.Symptoms,
	}
	for _, fields := range branchFields {
		for _, name := range fields {
			if value, _ := p.Get(name); value != "" {
				answers[name] = value
			}
		}
	}
	return answers
}
