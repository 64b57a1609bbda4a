package handlers

import (
	"context"
	"net/http"
	"time"

	"HomoCure/middlewares"
	"HomoCure/models"
	"HomoCure/repositories"
	"HomoCure/services"
	"HomoCure/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessionRunner
	tokens *utils.SessionTokens
}

func NewSessionHandler(sessions *repositories.SessionRepository, render *services.RenderService, tokens *utils.SessionTokens, logger *zap.SugaredLogger) *SessionHandler {
	return &SessionHandler{
		sessionRunner: newSessionRunner(sessions, render, logger),
		tokens:        tokens,
	}
}

// CreateSession starts a session on the home view and issues its token.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	st, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.logger, "Failed to create session", http.StatusInternalServerError, err)
		return
	}

	token, err := h.tokens.Generate(st.ID)
	if err != nil {
		middlewares.HttpError(c, h.logger, "Failed to generate session token", http.StatusInternalServerError, err)
		return
	}

	utils.SetSessionCookie(c, token, h.tokens.TTL())
	h.respond(c, st, http.StatusCreated, gin.H{
		"token":     token,
		"expiresAt": time.Now().Add(h.tokens.TTL()),
	})
}

// GetSession renders the current screen.
func (h *SessionHandler) GetSession(c *gin.Context) {
	st, ok := h.load(c)
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

// Navigate follows a view router edge.
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req struct {
		Event string `json:"event" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	st, ok := h.update(c, func(_ context.Context, st *models.State) error {
		return services.Navigate(st, services.NavEvent(req.Event))
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

// EndSession discards the session and its cookie.
func (h *SessionHandler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID, err := middlewares.ExtractSessionIDFromContext(ctx)
	if err != nil {
		middlewares.HttpError(c, h.logger, "Session not found in context", http.StatusUnauthorized, err)
		return
	}
	if err := h.sessions.Delete(ctx, sessionID); err != nil {
		middlewares.HttpError(c, h.logger, "Failed to end session", http.StatusInternalServerError, err)
		return
	}
	utils.ClearSessionCookie(c)
	c.Status(http.StatusNoContent)
}
