package models

import (
	"time"
)

const day = 24 * time.Hour

// SeedPatients returns the records every doctor dashboard starts with.
func SeedPatients(now time.Time) []Patient {
	return []Patient{
		{
			ID:           "1",
			Name:         "Alice Johnson",
			Age:          35,
			Symptoms:     "Headache, fatigue, stress",
			Prescription: "Belladonna 30C, Arnica Montana 200C",
			Duration:     14,
			Token:        "PAT001",
			CreatedAt:    now.Add(-5 * day),
			DaysLeft:     9,
		},
		{
			ID:           "2",
			Name:         "Bob Smith",
			Age:          42,
			Symptoms:     "Digestive issues, bloating",
			Prescription: "Nux Vomica 30C, Carbo Vegetabilis 200C",
			Duration:     21,
			Token:        "PAT002",
			CreatedAt:    now.Add(-3 * day),
			DaysLeft:     18,
		},
	}
}

// SeedPortalPatients returns the patient portal lookup table keyed by token.
func SeedPortalPatients(now time.Time) map[string]PortalPatient {
	return map[string]PortalPatient{
		"PAT001": {
			Name:  "Alice Johnson",
			Age:   35,
			Token: "PAT001",
			Consultations: []Consultation{
				{
					ID:           "1",
					Date:         now.Add(-5 * day),
					Symptoms:     "Headache, fatigue, stress",
					Prescription: "Belladonna 30C (3 times daily), Arnica Montana 200C (twice daily)",
					Duration:     14,
					DaysLeft:     9,
				},
				{
					ID:           "2",
					Date:         now.Add(-30 * day),
					Symptoms:     "Anxiety, insomnia",
					Prescription: "Ignatia 30C (twice daily), Coffea Cruda 200C (before bed)",
					Duration:     21,
					DaysLeft:     0,
				},
			},
		},
		"PAT002": {
			Name:  "Bob Smith",
			Age:   42,
			Token: "PAT002",
			Consultations: []Consultation{
				{
					ID:           "1",
					Date:         now.Add(-3 * day),
					Symptoms:     "Digestive issues, bloating",
					Prescription: "Nux Vomica 30C (before meals), Carbo Vegetabilis 200C (after meals)",
					Duration:     21,
					DaysLeft:     18,
				},
			},
		},
	}
}
