package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"HomoCure/models"
	"HomoCure/repositories"
	"HomoCure/utils"

	"go.uber.org/zap"
)

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// SessionUpdater is the part of the session store a delayed lookup writes back through.
type SessionUpdater interface {
	Update(ctx context.Context, id string, fn func(*models.State) error) (*models.State, error)
}

// PortalService resolves patient tokens after a simulated network delay.
type PortalService struct {
	sessions   SessionUpdater
	portal     *repositories.PortalRepository
	dispatcher *Dispatcher
	delay      time.Duration
	scheduler  Scheduler
	logger     *zap.SugaredLogger
}

func NewPortalService(sessions SessionUpdater, portal *repositories.PortalRepository, dispatcher *Dispatcher, delay time.Duration, logger *zap.SugaredLogger) *PortalService {
	return &PortalService{
		sessions:   sessions,
		portal:     portal,
		dispatcher: dispatcher,
		delay:      delay,
		scheduler:  timerScheduler{},
		logger:     logger,
	}
}

// Lookup puts the portal into the verifying state and schedules the
// resolution. Repeated calls are not de-duplicated; each one resolves on its own.
func (s *PortalService) Lookup(ctx context.Context, st *models.State, token string) error {
	if err := RequireView(st, models.ViewPatientPortal); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return s.dispatcher.Reject(ctx, st, utils.NewValidationError("Invalid Token", "Please check your token and try again."))
	}

	st.Portal.Verifying = true
	st.Portal.Pending++

	sessionID := st.ID
	s.scheduler.AfterFunc(s.delay, func() {
		s.resolve(sessionID, token)
	})
	return nil
}

func (s *PortalService) resolve(sessionID, token string) {
	ctx := context.Background()
	_, err := s.sessions.Update(ctx, sessionID, func(st *models.State) error {
		st.Portal.Verifying = false
		if st.Portal.Pending > 0 {
			st.Portal.Pending--
		}

		patient, ok := s.portal.FindByToken(ctx, token)
		if !ok {
			s.dispatcher.Emit(ctx, st, Failure("Invalid Token", "Please check your token and try again.", TopicPortal))
			return nil
		}
		if st.View == models.ViewPatientPortal {
			st.Portal.Patient = patient
		}
		s.dispatcher.Emit(ctx, st, Success("Access Granted", fmt.Sprintf("Welcome, %s!", patient.Name), TopicPortal))
		return nil
	})
	if err != nil {
		s.logger.Warnw("failed to resolve token lookup", "session", sessionID, "error", err)
	}
}

// Logout leaves the authenticated patient view and returns to token entry.
func (s *PortalService) Logout(_ context.Context, st *models.State) error {
	if err := RequireView(st, models.ViewPatientPortal); err != nil {
		return err
	}
	st.Portal.Patient = nil
	return nil
}

// DemoTokens lists the tokens the portal accepts.
func (s *PortalService) DemoTokens() []string {
	return s.portal.Tokens()
}

// CourseStatusFor describes a daily course with daysLeft remaining.
func CourseStatusFor(daysLeft int) models.CourseStatus {
	var status models.CourseStatus
	switch {
	case daysLeft <= 0:
		return models.CourseStatus{Text: "Course Completed", Variant: "secondary"}
	case daysLeft == 1:
		status.Text = "1 day left"
	default:
		status.Text = fmt.Sprintf("%d days left", daysLeft)
	}

	status.Variant = "default"
	status.Reminder = "Continue taking your prescribed medicines as directed."
	if daysLeft <= 3 {
		status.Variant = "destructive"
		status.Reminder += " Your course is almost complete!"
	}
	return status
}
