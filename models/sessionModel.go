package models

import (
	"time"
)

// View identifies the active screen of a session.
type View string

const (
	ViewHome            View = "home"
	ViewDoctorRegister  View = "doctor-register"
	ViewDoctorDashboard View = "doctor-dashboard"
	ViewPatientPortal   View = "patient-portal"
	ViewPatientRegister View = "patient-register"
)

// Severity of a notification.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is a transient message shown to the user and dismissed automatically.
type Notification struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Severity    Severity          `json:"severity"`
	Topic       string            `json:"topic,omitempty"`
	Recipient   string            `json:"-"`
	Payload     map[string]string `json:"payload,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// AuthMode selects between the login and registration variants of the doctor form.
type AuthMode string

const (
	AuthModeRegister AuthMode = "register"
	AuthModeLogin    AuthMode = "login"
)

// DoctorAuthForm holds the doctor login/registration form. The password is never stored.
type DoctorAuthForm struct {
	Mode           AuthMode `json:"mode"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"-"`
	Specialization string   `json:"specialization"`
}

// RemedyForm holds the AI assistant input and the last generated suggestion.
type RemedyForm struct {
	Symptoms   string `json:"symptoms"`
	Suggestion string `json:"suggestion"`
}

// Drafts groups the partially entered values of every form.
type Drafts struct {
	DoctorAuth   DoctorAuthForm `json:"doctorAuth"`
	AddPatient   PatientForm    `json:"addPatient"`
	Search       string         `json:"search"`
	Remedy       RemedyForm     `json:"remedy"`
	Registration PatientData    `json:"registration"`
}

// PortalState is the patient portal's token-entry and authenticated view state.
type PortalState struct {
	Verifying bool           `json:"verifying"`
	Pending   int            `json:"pending"`
	Patient   *PortalPatient `json:"patient,omitempty"`
}

// State is the complete application state of one session.
type State struct {
	ID            string         `json:"id"`
	View          View           `json:"view"`
	Doctor        *Doctor        `json:"doctor,omitempty"`
	Patients      []Patient      `json:"patients"`
	Drafts        Drafts         `json:"drafts"`
	Portal        PortalState    `json:"portal"`
	Notifications []Notification `json:"notifications"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// NewState returns a session state on the home view.
func NewState(id string, now time.Time) *State {
	return &State{
		ID:        id,
		View:      ViewHome,
		Patients:  []Patient{},
		Drafts:    Drafts{DoctorAuth: DoctorAuthForm{Mode: AuthModeRegister}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PruneNotifications drops notifications older than ttl.
func (s *State) PruneNotifications(now time.Time, ttl time.Duration) {
	kept := s.Notifications[:0]
	for _, n := range s.Notifications {
		if now.Sub(n.CreatedAt) < ttl {
			kept = append(kept, n)
		}
	}
	s.Notifications = kept
}

// DoctorView is the public projection of a Doctor.
type DoctorView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
}

// ConsultationView is a consultation together with its course status.
type ConsultationView struct {
	Consultation
	Status CourseStatus `json:"status"`
}

// PortalView is what the patient portal renders.
type PortalView struct {
	Verifying     bool               `json:"verifying"`
	Authenticated bool               `json:"authenticated"`
	Name          string             `json:"name,omitempty"`
	Age           int                `json:"age,omitempty"`
	Token         string             `json:"token,omitempty"`
	Consultations []ConsultationView `json:"consultations,omitempty"`
	DemoTokens    []string           `json:"demoTokens,omitempty"`
}

// Screen is the rendered projection of a session's active view.
type Screen struct {
	View           View              `json:"view"`
	Doctor         *DoctorView       `json:"doctor,omitempty"`
	Patients       []Patient         `json:"patients,omitempty"`
	Search         string            `json:"search,omitempty"`
	AddPatient     *PatientForm      `json:"addPatient,omitempty"`
	Remedy         *RemedyForm       `json:"remedy,omitempty"`
	DoctorAuth     *DoctorAuthForm   `json:"doctorAuth,omitempty"`
	Specialization []Specialization  `json:"specializations,omitempty"`
	Portal         *PortalView       `json:"portal,omitempty"`
	Registration   *RegistrationView `json:"registration,omitempty"`
}

// RegistrationView is the self-registration form with its visible branch.
type RegistrationView struct {
	Form          PatientData `json:"form"`
	VisibleFields []string    `json:"visibleFields"`
}

// Snapshot is the body returned for every session request.
type Snapshot struct {
	Screen        *Screen        `json:"screen"`
	Notifications []Notification `json:"notifications"`
}
