package services

import (
	"context"
	"time"

	"HomoCure/models"
	"HomoCure/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	TopicAuth              = "doctor.auth"
	TopicPatientAdded      = "patient.added"
	TopicRemedy            = "remedy.suggested"
	TopicPortal            = "portal.lookup"
	TopicPatientRegistered = "patient.registered"
	TopicValidation        = "validation"
)

// Notifier delivers a notification to an external sink.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// Dispatcher records notifications in the session outbox and fans them out to sinks.
type Dispatcher struct {
	sinks  []Notifier
	now    func() time.Time
	logger *zap.SugaredLogger
}

func NewDispatcher(logger *zap.SugaredLogger, sinks ...Notifier) *Dispatcher {
	return &Dispatcher{sinks: sinks, now: time.Now, logger: logger}
}

// Emit appends n to the state's outbox and forwards it to every sink.
// Sink failures are logged and never affect the session.
func (d *Dispatcher) Emit(ctx context.Context, st *models.State, n models.Notification) models.Notification {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Severity == "" {
		n.Severity = models.SeverityDefault
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = d.now()
	}
	if n.Recipient == "" && st.Doctor != nil {
		n.Recipient = st.Doctor.Email
	}
	st.Notifications = append(st.Notifications, n)

	for _, sink := range d.sinks {
		if err := sink.Notify(ctx, n); err != nil {
			d.logger.Warnw("notification sink failed", "title", n.Title, "error", err)
		}
	}
	return n
}

// Reject emits the destructive notification describing err and returns err.
func (d *Dispatcher) Reject(ctx context.Context, st *models.State, err error) error {
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		d.Emit(ctx, st, Failure(validationErr.Title, validationErr.Description, TopicValidation))
	}
	return err
}

// Success builds a default-severity notification.
func Success(title, description, topic string) models.Notification {
	return models.Notification{Title: title, Description: description, Severity: models.SeverityDefault, Topic: topic}
}

// Failure builds a destructive notification.
func Failure(title, description, topic string) models.Notification {
	return models.Notification{Title: title, Description: description, Severity: models.SeverityDestructive, Topic: topic}
}

// LogNotifier writes every notification to the structured log.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(_ context.Context, n models.Notification) error {
	l.logger.Infow("notification",
		"id", n.ID,
		"title", n.Title,
		"description", n.Description,
		"severity", n.Severity,
		"topic", n.Topic,
	)
	return nil
}

// NotificationMailer sends a notification as mail.
type NotificationMailer interface {
	SendNotification(to, title, description string) error
}

// MailNotifier mails notifications of selected topics to the signed-in doctor.
// Delivery happens in the background so a slow SMTP server never holds a session lock.
type MailNotifier struct {
	mailer NotificationMailer
	topics map[string]struct{}
	logger *zap.SugaredLogger
	send   func(func())
}

func NewMailNotifier(mailer NotificationMailer, topics []string, logger *zap.SugaredLogger) *MailNotifier {
	set := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		set[t] = struct{}{}
	}
	return &MailNotifier{
		mailer: mailer,
		topics: set,
		logger: logger,
		send:   func(f func()) { go f() },
	}
}

func (m *MailNotifier) Notify(_ context.Context, n models.Notification) error {
	if _, ok := m.topics[n.Topic]; !ok || n.Recipient == "" {
		return nil
	}
	m.send(func() {
		if err := m.mailer.SendNotification(n.Recipient, n.Title, n.Description); err != nil {
			m.logger.Errorw("failed to mail notification", "recipient", n.Recipient, "title", n.Title, "error", err)
		}
	})
	return nil
}
