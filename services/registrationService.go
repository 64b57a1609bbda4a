package services

import (
	"context"
	"sort"

	"HomoCure/models"
	"HomoCure/utils"

	"go.uber.org/zap"
)

// RegistrationService runs the patient self-registration form.
type RegistrationService struct {
	dispatcher *Dispatcher
	logger     *zap.SugaredLogger
}

func NewRegistrationService(dispatcher *Dispatcher, logger *zap.SugaredLogger) *RegistrationService {
	return &RegistrationService{dispatcher: dispatcher, logger: logger}
}

// UpdateForm sets draft fields by JSON name. The patch is checked as a whole
// before anything is applied. Answers of a previously selected gender stay in
// the draft when the gender changes.
func (s *RegistrationService) UpdateForm(ctx context.Context, st *models.State, fields map[string]string) error {
	if err := RequireView(st, models.ViewPatientRegister); err != nil {
		return err
	}

	draft := st.Drafts.Registration
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := fields[name]
		if name == "gender" && !models.ValidGender(value) {
			return s.dispatcher.Reject(ctx, st, &utils.ValidationError{Title: "Error", Description: "Please select a valid gender.", Fields: []string{name}})
		}
		if err := draft.Set(name, value); err != nil {
			return s.dispatcher.Reject(ctx, st, &utils.ValidationError{Title: "Error", Description: "Unknown form field.", Fields: []string{name}})
		}
	}
	st.Drafts.Registration = draft
	return nil
}

// Submit validates the draft, hands the submission to the notification
// service and clears the form.
func (s *RegistrationService) Submit(ctx context.Context, st *models.State, fields map[string]string) (*models.PatientData, error) {
	if err := s.UpdateForm(ctx, st, fields); err != nil {
		return nil, err
	}
	form := st.Drafts.Registration

	err := utils.RequirePresent("Registration Failed", "Please fill in all required fields.", map[string]string{
		"fullName": form.FullName,
		"age":      form.Age,
		"gender":   form.Gender,
		"symptoms": form.Symptoms,
	})
	if err != nil {
		return nil, s.dispatcher.Reject(ctx, st, err)
	}

	submission := form.Submission()
	s.logger.Infow("patient registration submitted", "session", st.ID, "gender", submission.Gender, "answers", len(submission.Answers()))

	n := Success("Registration Successful", "Patient registration has been submitted successfully.", TopicPatientRegistered)
	n.Payload = submission.Answers()
	s.dispatcher.Emit(ctx, st, n)

	st.Drafts.Registration = models.PatientData{}
	return &submission, nil
}
