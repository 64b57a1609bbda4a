package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"HomoCure/models"
	"HomoCure/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Authenticator turns submitted credentials into a Doctor. It is the seam
// where a credential store would plug in.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.Doctor, error)
	Register(ctx context.Context, name, email, password, specialization string) (*models.Doctor, error)
}

// MockAuthenticator accepts any credentials. Only a bcrypt digest of the
// password is kept on the fabricated doctor.
type MockAuthenticator struct {
	bcryptCost int
	now        func() time.Time
}

func NewMockAuthenticator(bcryptCost int) *MockAuthenticator {
	return &MockAuthenticator{bcryptCost: bcryptCost, now: time.Now}
}

func (a *MockAuthenticator) Login(_ context.Context, email, password string) (*models.Doctor, error) {
	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		return nil, err
	}
	return &models.Doctor{
		ID:             a.doctorID(),
		Name:           "Dr. " + localPart(email),
		Email:          email,
		Specialization: models.DefaultSpecialization,
		PasswordHash:   hash,
	}, nil
}

func (a *MockAuthenticator) Register(_ context.Context, name, email, password, specialization string) (*models.Doctor, error) {
	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		return nil, err
	}
	return &models.Doctor{
		ID:             a.doctorID(),
		Name:           name,
		Email:          email,
		Specialization: specialization,
		PasswordHash:   hash,
	}, nil
}

func (a *MockAuthenticator) doctorID() string {
	return "doc_" + strconv.FormatInt(a.now().UnixMilli(), 10)
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// AuthService runs the doctor login and registration screen.
type AuthService struct {
	auth       Authenticator
	dispatcher *Dispatcher
	now        func() time.Time
	logger     *zap.SugaredLogger
}

func NewAuthService(auth Authenticator, dispatcher *Dispatcher, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{auth: auth, dispatcher: dispatcher, now: time.Now, logger: logger}
}

// SetMode switches the doctor form between login and registration.
func (s *AuthService) SetMode(ctx context.Context, st *models.State, mode models.AuthMode) error {
	if err := RequireView(st, models.ViewDoctorRegister); err != nil {
		return err
	}
	if mode != models.AuthModeLogin && mode != models.AuthModeRegister {
		return s.dispatcher.Reject(ctx, st, utils.NewValidationError("Error", "Unknown form mode."))
	}
	st.Drafts.DoctorAuth.Mode = mode
	return nil
}

// UpdateForm stores partially entered doctor form values.
func (s *AuthService) UpdateForm(_ context.Context, st *models.State, patch models.DoctorFormPatch) error {
	if err := RequireView(st, models.ViewDoctorRegister); err != nil {
		return err
	}
	patch.Apply(&st.Drafts.DoctorAuth)
	return nil
}

// Login signs in with any non-empty email and password.
func (s *AuthService) Login(ctx context.Context, st *models.State, patch models.DoctorFormPatch, password string) error {
	if err := RequireView(st, models.ViewDoctorRegister); err != nil {
		return err
	}
	form := &st.Drafts.DoctorAuth
	form.Mode = models.AuthModeLogin
	patch.Apply(form)

	err := utils.RequirePresent("Login Failed", "Please enter valid credentials.", map[string]string{
		"email":    form.Email,
		"password": password,
	})
	if err != nil {
		return s.dispatcher.Reject(ctx, st, err)
	}

	doctor, err := s.auth.Login(ctx, form.Email, password)
	if err != nil {
		return errors.Wrap(err, "login failed")
	}
	s.enter(ctx, st, *doctor, Success("Login Successful", "Welcome back, Doctor!", TopicAuth))
	return nil
}

// Register signs in a doctor built from the submitted fields.
func (s *AuthService) Register(ctx context.Context, st *models.State, patch models.DoctorFormPatch, password string) error {
	if err := RequireView(st, models.ViewDoctorRegister); err != nil {
		return err
	}
	form := &st.Drafts.DoctorAuth
	form.Mode = models.AuthModeRegister
	patch.Apply(form)

	err := utils.RequirePresent("Registration Failed", "Please fill in all fields.", map[string]string{
		"name":           form.Name,
		"email":          form.Email,
		"password":       password,
		"specialization": form.Specialization,
	})
	if err != nil {
		return s.dispatcher.Reject(ctx, st, err)
	}

	doctor, err := s.auth.Register(ctx, form.Name, form.Email, password, form.Specialization)
	if err != nil {
		return errors.Wrap(err, "registration failed")
	}
	s.enter(ctx, st, *doctor, Success("Registration Successful", "Welcome to HomoCure!", TopicAuth))
	return nil
}

// Logout signs the doctor out and returns to the home view.
func (s *AuthService) Logout(_ context.Context, st *models.State) error {
	return Navigate(st, EventLogout)
}

func (s *AuthService) enter(ctx context.Context, st *models.State, doctor models.Doctor, n models.Notification) {
	EnterDashboard(st, doctor, models.SeedPatients(s.now()))
	s.dispatcher.Emit(ctx, st, n)
	s.logger.Infow("doctor signed in", "session", st.ID, "doctor", doctor.ID, "specialization", doctor.Specialization)
}
