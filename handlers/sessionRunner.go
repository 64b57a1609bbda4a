package handlers

import (
	"context"
	"io"
	"net/http"

	"HomoCure/middlewares"
	"HomoCure/models"
	"HomoCure/repositories"
	"HomoCure/services"
	"HomoCure/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// sessionRunner applies a single state transition to the caller's session
// and renders the outcome.
type sessionRunner struct {
	sessions *repositories.SessionRepository
	render   *services.RenderService
	logger   *zap.SugaredLogger
}

func newSessionRunner(sessions *repositories.SessionRepository, render *services.RenderService, logger *zap.SugaredLogger) sessionRunner {
	return sessionRunner{sessions: sessions, render: render, logger: logger}
}

// update runs fn under the session lock. On failure the error response has
// already been written and ok is false.
func (r sessionRunner) update(c *gin.Context, fn func(ctx context.Context, st *models.State) error) (*models.State, bool) {
	ctx := c.Request.Context()
	sessionID, err := middlewares.ExtractSessionIDFromContext(ctx)
	if err != nil {
		middlewares.HttpError(c, r.logger, "Session not found in context", http.StatusUnauthorized, err)
		return nil, false
	}

	st, err := r.sessions.Update(ctx, sessionID, func(st *models.State) error {
		return fn(ctx, st)
	})
	if err != nil {
		r.fail(c, st, err)
		return nil, false
	}
	return st, true
}

// load reads the caller's session without saving it. On failure the error
// response has already been written and ok is false.
func (r sessionRunner) load(c *gin.Context) (*models.State, bool) {
	ctx := c.Request.Context()
	sessionID, err := middlewares.ExtractSessionIDFromContext(ctx)
	if err != nil {
		middlewares.HttpError(c, r.logger, "Session not found in context", http.StatusUnauthorized, err)
		return nil, false
	}
	st, err := r.sessions.Get(ctx, sessionID)
	if err != nil {
		r.fail(c, nil, err)
		return nil, false
	}
	return st, true
}

// respond writes the rendered snapshot of st, merged with extra.
func (r sessionRunner) respond(c *gin.Context, st *models.State, status int, extra gin.H) {
	body := r.body(st)
	for k, v := range extra {
		body[k] = v
	}
	middlewares.RespondJSON(c, body, status)
}

func (r sessionRunner) body(st *models.State) gin.H {
	snapshot := r.render.Snapshot(st)
	return gin.H{"screen": snapshot.Screen, "notifications": snapshot.Notifications}
}

func (r sessionRunner) fail(c *gin.Context, st *models.State, err error) {
	var validationErr *utils.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body := gin.H{}
		if st != nil {
			body = r.body(st)
		}
		body["error"] = validationErr.Title
		body["description"] = validationErr.Description
		body["fields"] = validationErr.Fields
		c.JSON(http.StatusUnprocessableEntity, body)
	case errors.Is(err, repositories.ErrSessionNotFound):
		middlewares.HttpError(c, r.logger, "Session not found", http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrNoDoctor):
		middlewares.HttpError(c, r.logger, "No doctor is signed in", http.StatusForbidden, err)
	case errors.Is(err, services.ErrWrongView), errors.Is(err, services.ErrInvalidTransition):
		middlewares.HttpError(c, r.logger, err.Error(), http.StatusConflict, err)
	default:
		middlewares.HttpError(c, r.logger, "Internal server error", http.StatusInternalServerError, err)
	}
}

// bindOptionalJSON decodes the request body into v. An empty body leaves v untouched.
func bindOptionalJSON(c *gin.Context, v interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
