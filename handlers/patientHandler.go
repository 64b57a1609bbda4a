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

type PatientHandler struct {
	sessionRunner
	patients *services.PatientService
}

func NewPatientHandler(sessions *repositories.SessionRepository, render *services.RenderService, patients *services.PatientService, logger *zap.SugaredLogger) *PatientHandler {
	return &PatientHandler{
		sessionRunner: newSessionRunner(sessions, render, logger),
		patients:      patients,
	}
}

// patientDraftRequest carries "Add Patient" values and the search box.
type patientDraftRequest struct {
	models.PatientFormPatch
	Search *string `json:"search"`
}

// SearchPatients filters the dashboard records by name or token. Without
// ?q= the saved search is used. Nothing is saved.
func (h *PatientHandler) SearchPatients(c *gin.Context) {
	var query *string
	if q, present := c.GetQuery("q"); present {
		query = &q
	}

	st, ok := h.load(c)
	if !ok {
		return
	}
	matched, err := h.patients.Filter(st, query)
	if err != nil {
		h.fail(c, nil, err)
		return
	}
	h.respond(c, st, http.StatusOK, gin.H{"patients": matched})
}

// UpdateDraft stores partially entered "Add Patient" values and the search query.
func (h *PatientHandler) UpdateDraft(c *gin.Context) {
	var req patientDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		if err := h.patients.UpdateDraft(ctx, st, req.PatientFormPatch); err != nil {
			return err
		}
		if req.Search != nil {
			_, err := h.patients.SetSearch(ctx, st, *req.Search)
			return err
		}
		return nil
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusOK, nil)
}

// CreatePatient adds a record and issues its token.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patch models.PatientFormPatch
	if err := bindOptionalJSON(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var patient *models.Patient
	st, ok := h.update(c, func(ctx context.Context, st *models.State) error {
		var err error
		patient, err = h.patients.AddPatient(ctx, st, patch)
		return err
	})
	if !ok {
		return
	}
	h.respond(c, st, http.StatusCreated, gin.H{"patient": patient})
}
