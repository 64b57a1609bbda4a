package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"HomoCure/models"
	"HomoCure/utils"

	"github.com/pkg/errors"
)

// PatientService manages the dashboard's patient records.
type PatientService struct {
	dispatcher *Dispatcher
	rnd        *utils.RandomSource
	now        func() time.Time
}

func NewPatientService(dispatcher *Dispatcher, rnd *utils.RandomSource) *PatientService {
	return &PatientService{dispatcher: dispatcher, rnd: rnd, now: time.Now}
}

// UpdateDraft stores partially entered "Add Patient" values.
func (s *PatientService) UpdateDraft(_ context.Context, st *models.State, patch models.PatientFormPatch) error {
	if err := RequireDoctor(st); err != nil {
		return err
	}
	patch.Apply(&st.Drafts.AddPatient)
	return nil
}

// AddPatient creates a record from the draft merged with patch. Any missing
// field rejects the whole submission without touching the records.
func (s *PatientService) AddPatient(ctx context.Context, st *models.State, patch models.PatientFormPatch) (*models.Patient, error) {
	if err := RequireDoctor(st); err != nil {
		return nil, err
	}
	form := &st.Drafts.AddPatient
	patch.Apply(form)

	err := utils.RequirePresent("Error", "Please fill in all fields.", map[string]string{
		"name":         form.Name,
		"age":          form.Age,
		"symptoms":     form.Symptoms,
		"prescription": form.Prescription,
		"duration":     form.Duration,
	})
	if err != nil {
		return nil, s.dispatcher.Reject(ctx, st, err)
	}
	age, err := utils.ParseCount("Error", "age", form.Age)
	if err != nil {
		return nil, s.dispatcher.Reject(ctx, st, err)
	}
	duration, err := utils.ParseCount("Error", "duration", form.Duration)
	if err != nil {
		return nil, s.dispatcher.Reject(ctx, st, err)
	}

	token, err := utils.GenerateToken(s.rnd, models.Tokens(st.Patients))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue patient token")
	}

	now := s.now()
	patient := models.Patient{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		Name:         form.Name,
		Age:          age,
		Symptoms:     form.Symptoms,
		Prescription: form.Prescription,
		Duration:     duration,
		Token:        token,
		CreatedAt:    now,
		DaysLeft:     duration,
	}
	st.Patients = append(st.Patients, patient)
	st.Drafts.AddPatient = models.PatientForm{}

	s.dispatcher.Emit(ctx, st, Success("Patient Added Successfully", "Token: "+patient.Token, TopicPatientAdded))
	return &patient, nil
}

// SetSearch stores the dashboard search query and returns the matching records.
func (s *PatientService) SetSearch(_ context.Context, st *models.State, query string) ([]models.Patient, error) {
	if err := RequireDoctor(st); err != nil {
		return nil, err
	}
	st.Drafts.Search = query
	return Search(st.Patients, query), nil
}

// Filter returns the records matching query without touching the session.
// A nil query falls back to the stored search draft.
func (s *PatientService) Filter(st *models.State, query *string) ([]models.Patient, error) {
	if err := RequireDoctor(st); err != nil {
		return nil, err
	}
	q := st.Drafts.Search
	if query != nil {
		q = *query
	}
	return Search(st.Patients, q), nil
}

// Search returns the patients whose name or token contains query, ignoring
// case, in storage order. An empty query matches everything.
func Search(patients []models.Patient, query string) []models.Patient {
	q := strings.ToLower(query)
	matched := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Token), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
