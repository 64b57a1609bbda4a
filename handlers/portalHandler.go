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

type PortalHandler struct {
	sessionRunner
	portal *services.PortalService
}

func NewPortalHandler(sessions *repositories.SessionRepository, render *services.RenderService, portal *services.PortalService, logger *zap.SugaredLogger) *PortalHandler {
	return &PortalHandler{
		sessionRunner: newSessionRunner(sessions, render, logger),
		portal:        portal,
	}
}

// Lookup accepts a token for verification. The result shows up on the
// session once the lookup delay has passed.
func (h *PortalHandler) Lookup(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		return h.portal.Lookup(ctx, st, req.Token)
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusAccepted, nil)
}

// Logout returns the portal to token entry.
func (h *PortalHandler) Logout(c *gin.Context) {
	st, ok := h.update(c, h.portal.Logout)
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

// DemoTokens lists the tokens accepted by the portal.
func (h *PortalHandler) DemoTokens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tokens": h.portal.DemoTokens()})
}
