package repositories

import (
	"context"
	"encoding/json"
	"time"

	"HomoCure/cache"
	"HomoCure/models"
	"HomoCure/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionKeyPrefix = "session:"

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores session state as JSON in a Cache. Updates run
// under a per-session lock.
type SessionRepository struct {
	cache           cache.Cache
	locker          cache.Locker
	ttl             time.Duration
	notificationTTL time.Duration
	now             func() time.Time
}

func NewSessionRepository(c cache.Cache, locker cache.Locker, ttl, notificationTTL time.Duration) *SessionRepository {
	return &SessionRepository{
		cache:           c,
		locker:          locker,
		ttl:             ttl,
		notificationTTL: notificationTTL,
		now:             time.Now,
	}
}

// Create starts a new session on the home view.
func (r *SessionRepository) Create(ctx context.Context) (*models.State, error) {
	state := models.NewState(uuid.New().String(), r.now())
	if err := r.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Get loads a session. Expired notifications are dropped from the returned state.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.State, error) {
	state, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	state.PruneNotifications(r.now(), r.notificationTTL)
	return state, nil
}

// Update applies fn to the session and saves the result. When fn fails with
// anything other than a ValidationError the state is discarded; a
// ValidationError still saves so the notification it emitted is kept.
func (r *SessionRepository) Update(ctx context.Context, id string, fn func(*models.State) error) (*models.State, error) {
	unlock, err := r.locker.Lock(ctx, r.key(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock session")
	}
	defer unlock()

	state, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	state.PruneNotifications(r.now(), r.notificationTTL)

	fnErr := fn(state)
	var validationErr *utils.ValidationError
	if fnErr != nil && !errors.As(fnErr, &validationErr) {
		return state, fnErr
	}

	state.UpdatedAt = r.now()
	if err := r.save(ctx, state); err != nil {
		return nil, err
	}
	return state, fnErr
}

// Delete removes a session.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.key(id)); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}
	return nil
}

func (r *SessionRepository) load(ctx context.Context, id string) (*models.State, error) {
	raw, err := r.cache.Get(ctx, r.key(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session from cache")
	}
	if raw == "" {
		return nil, ErrSessionNotFound
	}
	var state models.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	return &state, nil
}

func (r *SessionRepository) save(ctx context.Context, state *models.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}
	if err := r.cache.Set(ctx, r.key(state.ID), raw, r.ttl); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return nil
}

func (r *SessionRepository) key(id string) string {
	return sessionKeyPrefix + id
}
