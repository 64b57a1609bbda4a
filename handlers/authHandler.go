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

type AuthHandler struct {
	sessionRunner
	auth *services.AuthService
}

func NewAuthHandler(sessions *repositories.SessionRepository, render *services.RenderService, auth *services.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		sessionRunner: newSessionRunner(sessions, render, logger),
		auth:          auth,
	}
}

type credentialsRequest struct {
	models.DoctorFormPatch
	Password string `json:"password"`
}

// Specializations lists the selectable doctor specializations.
func (h *AuthHandler) Specializations(c *gin.Context) {
	c.JSON(http.StatusOK, models.Specializations)
}

// SetMode switches between the login and registration forms.
func (h *AuthHandler) SetMode(c *gin.Context) {
	var req struct {
		Mode models.AuthMode `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		return h.auth.SetMode(ctx, st, req.Mode)
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

// UpdateForm stores partially entered form values.
func (h *AuthHandler) UpdateForm(c *gin.Context) {
	var patch models.DoctorFormPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		return h.auth.UpdateForm(ctx, st, patch)
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

// Login signs a doctor in with any non-empty credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		return h.auth.Login(ctx, st, req.DoctorFormPatch, req.Password)
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

// Register signs in a newly registered doctor.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		return h.auth.Register(ctx, st, req.DoctorFormPatch, req.Password)
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

// Logout signs the doctor out and returns to the home view.
func (h *AuthHandler) Logout(c *gin.Context) {
	st, ok := h.update(c, h.auth.Logout)
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}
