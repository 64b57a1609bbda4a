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

type RegistrationHandler struct {
	sessionRunner
	registration *services.RegistrationService
}

func NewRegistrationHandler(sessions *repositories.SessionRepository, render *services.RenderService, registration *services.RegistrationService, logger *zap.SugaredLogger) *RegistrationHandler {
	return &RegistrationHandler{
		sessionRunner: newSessionRunner(sessions, render, logger),
		registration:  registration,
	}
}

func (h *RegistrationHandler) UpdateForm(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		return h.registration.UpdateForm(ctx, st, fields)
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

func (h *RegistrationHandler) Submit(c *gin.Context) {
	var fields map[string]string
	if err := bindOptionalJSON(c, &fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var submission *models.PatientData
	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		var err error
		submission, err = h.registration.Submit(ctx, st, fields)
		return err
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, gin.H{"submission": submission})
}
