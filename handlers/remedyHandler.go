package handlers

import (
	"context"
	"net/http"

	"HomoCure/models"
	"HomoCure/repositories"
	"HomoCure/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RemedyHandler struct {
	sessionRunner
	remedies *services.RemedyService
}

func NewRemedyHandler(sessions *repositories.SessionRepository, render *services.RenderService, remedies *services.RemedyService, logger *zap.SugaredLogger) *RemedyHandler {
	return &RemedyHandler{
		sessionRunner: newSessionRunner(sessions, render, logger),
		remedies:      remedies,
	}
}

func (h *RemedyHandler) SuggestRemedy(c *gin.Context) {
	var req struct {
		Symptoms *string `json:"symptoms"`
	}
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var suggestion string
	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		var err error
		suggestion, err = h.remedies.Suggest(ctx, st, req.Symptoms)
		return err
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, gin.H{"suggestion": suggestion})
}
