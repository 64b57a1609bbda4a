package models

import "time"

// Consultation is a single historical prescribing event shown in the patient portal.
type Consultation struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Symptoms     string    `json:"symptoms"`
	Prescription string    `json:"prescription"`
	Duration     int       `json:"duration"`
	DaysLeft     int       `json:"daysLeft"`
}

// PortalPatient is the read-only record a patient unlocks with a token.
type PortalPatient struct {
	Name          string         `json:"name"`
	Age           int            `json:"age"`
	Token         string         `json:"token"`
	Consultations []Consultation `json:"consultations"`
}

// CourseStatus describes how far along a prescribed daily course is.
type CourseStatus struct {
	Text     string `json:"text"`
	Variant  string `json:"variant"`
	Reminder string `json:"reminder,omitempty"`
}
