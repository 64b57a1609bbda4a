package services

import (
	"HomoCure/models"
	"HomoCure/repositories"
)

// RenderService projects a session state onto the screen of its active view.
type RenderService struct {
	portal *repositories.PortalRepository
}

func NewRenderService(portal *repositories.PortalRepository) *RenderService {
	return &RenderService{portal: portal}
}

// Render returns nil for a dashboard without a signed-in doctor.
func (r *RenderService) Render(st *models.State) *models.Screen {
	screen := &models.Screen{View: st.View}

	switch st.View {
	case models.ViewDoctorRegister:
		form := st.Drafts.DoctorAuth
		screen.DoctorAuth = &form
		screen.Specialization = models.Specializations

	case models.ViewDoctorDashboard:
		if st.Doctor == nil {
			return nil
		}
		screen.Doctor = &models.DoctorView{
			ID:             st.Doctor.ID,
			Name:           st.Doctor.Name,
			Email:          st.Doctor.Email,
			Specialization: st.Doctor.Specialization,
		}
		screen.Search = st.Drafts.Search
		screen.Patients = Search(st.Patients, st.Drafts.Search)
		draft := st.Drafts.AddPatient
		screen.AddPatient = &draft
		remedy := st.Drafts.Remedy
		screen.Remedy = &remedy

	case models.ViewPatientPortal:
		screen.Portal = r.portalView(st.Portal)

	case models.ViewPatientRegister:
		fields := models.BranchFields(st.Drafts.Registration.Gender)
		if fields == nil {
			fields = []string{}
		}
		screen.Registration = &models.RegistrationView{
			Form:          st.Drafts.Registration,
			VisibleFields: fields,
		}
	}
	return screen
}

func (r *RenderService) portalView(portal models.PortalState) *models.PortalView {
	view := &models.PortalView{Verifying: portal.Verifying}
	if portal.Patient == nil {
		view.DemoTokens = r.portal.Tokens()
		return view
	}

	view.Authenticated = true
	view.Name = portal.Patient.Name
	view.Age = portal.Patient.Age
	view.Token = portal.Patient.Token
	for _, c := range portal.Patient.Consultations {
		view.Consultations = append(view.Consultations, models.ConsultationView{
			Consultation: c,
			Status:       CourseStatusFor(c.DaysLeft),
		})
	}
	return view
}

// Snapshot renders st together with its pending notifications.
func (r *RenderService) Snapshot(st *models.State) models.Snapshot {
	notifications := st.Notifications
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return models.Snapshot{Screen: r.Render(st), Notifications: notifications}
}
