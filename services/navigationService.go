package services

import (
	"HomoCure/models"

	"github.com/pkg/errors"
)

// NavEvent is a user-triggered edge of the view router.
type NavEvent string

const (
	EventDoctorRegister  NavEvent = "doctor-register"
	EventPatientPortal   NavEvent = "patient-portal"
	EventPatientRegister NavEvent = "patient-register"
	EventBack            NavEvent = "back"
	EventLogout          NavEvent = "logout"
)

var (
	ErrInvalidTransition = errors.New("transition not allowed from the current view")
	ErrWrongView         = errors.New("operation not available on the current view")
	ErrNoDoctor          = errors.New("no doctor is signed in")
)

type transition struct {
	to     models.View
	effect func(*models.State)
}

var transitions = map[models.View]map[NavEvent]transition{
	models.ViewHome: {
		EventDoctorRegister:  {to: models.ViewDoctorRegister},
		EventPatientPortal:   {to: models.ViewPatientPortal},
		EventPatientRegister: {to: models.ViewPatientRegister},
	},
	models.ViewDoctorRegister: {
		EventBack: {to: models.ViewHome, effect: resetDoctorAuth},
	},
	models.ViewDoctorDashboard: {
		EventLogout: {to: models.ViewHome, effect: clearDoctor},
	},
	models.ViewPatientPortal: {
		EventBack: {to: models.ViewHome, effect: resetPortal},
	},
	models.ViewPatientRegister: {
		EventBack: {to: models.ViewHome, effect: resetRegistration},
	},
}

// Navigate applies event to the state. Unknown edges leave the state untouched.
func Navigate(st *models.State, event NavEvent) error {
	edge, ok := transitions[st.View][event]
	if !ok {
		return errors.Wrapf(ErrInvalidTransition, "%s on %s", event, st.View)
	}
	if edge.effect != nil {
		edge.effect(st)
	}
	st.View = edge.to
	return nil
}

// EnterDashboard signs doctor in and opens a freshly seeded dashboard.
func EnterDashboard(st *models.State, doctor models.Doctor, patients []models.Patient) {
	resetDoctorAuth(st)
	resetDashboard(st)
	st.Doctor = &doctor
	st.Patients = patients
	st.View = models.ViewDoctorDashboard
}

// RequireView fails unless the session is on view.
func RequireView(st *models.State, view models.View) error {
	if st.View != view {
		return errors.Wrapf(ErrWrongView, "expected %s, on %s", view, st.View)
	}
	return nil
}

// RequireDoctor fails unless the dashboard is active with a signed-in doctor.
func RequireDoctor(st *models.State) error {
	if st.Doctor == nil {
		return ErrNoDoctor
	}
	return RequireView(st, models.ViewDoctorDashboard)
}

func clearDoctor(st *models.State) {
	st.Doctor = nil
	st.Patients = []models.Patient{}
	resetDashboard(st)
}

func resetDashboard(st *models.State) {
	st.Drafts.AddPatient = models.PatientForm{}
	st.Drafts.Search = ""
	st.Drafts.Remedy = models.RemedyForm{}
}

func resetDoctorAuth(st *models.State) {
	st.Drafts.DoctorAuth = models.DoctorAuthForm{Mode: models.AuthModeRegister}
}

func resetPortal(st *models.State) {
	st.Portal = models.PortalState{}
}

func resetRegistration(st *models.State) {
	st.Drafts.Registration = models.PatientData{}
}
