package repositories

import (
	"context"
	"sort"
	"strings"
	"time"

	"HomoCure/models"
)

// PortalRepository is the read-only token lookup table behind the patient portal.
type PortalRepository struct {
	now func() time.Time
}

func NewPortalRepository() *PortalRepository {
	return &PortalRepository{now: time.Now}
}

// FindByToken matches token case-insensitively. Consultation dates are relative to the lookup time.
func (r *PortalRepository) FindByToken(_ context.Context, token string) (*models.PortalPatient, bool) {
	patient, ok := models.SeedPortalPatients(r.now())[strings.ToUpper(token)]
	if !ok {
		return nil, false
	}
	return &patient, true
}

// Tokens lists the demo tokens in sorted order.
func (r *PortalRepository) Tokens() []string {
	table := models.SeedPortalPatients(r.now())
	tokens := make([]string, 0, len(table))
	for token := range table {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
