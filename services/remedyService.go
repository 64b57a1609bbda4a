package services

import (
	"context"
	"fmt"
	"strings"

	"HomoCure/models"
	"HomoCure/utils"
)

// Remedies is the fixed list suggestions are drawn from.
var Remedies = []string{
	"Arnica Montana 30C - for trauma and bruising",
	"Belladonna 30C - for sudden onset fever and inflammation",
	"Nux Vomica 30C - for digestive issues and stress",
	"Pulsatilla 30C - for emotional sensitivity and changeable symptoms",
	"Rhus Toxicodendron 30C - for joint stiffness and restlessness",
}

// RemedyService produces mock remedy suggestions. No inference takes place.
type RemedyService struct {
	dispatcher *Dispatcher
	rnd        *utils.RandomSource
}

func NewRemedyService(dispatcher *Dispatcher, rnd *utils.RandomSource) *RemedyService {
	return &RemedyService{dispatcher: dispatcher, rnd: rnd}
}

// Suggest picks a remedy uniformly at random for the given symptoms. A nil
// symptoms argument reuses the stored draft.
func (s *RemedyService) Suggest(ctx context.Context, st *models.State, symptoms *string) (string, error) {
	if err := RequireDoctor(st); err != nil {
		return "", err
	}
	form := &st.Drafts.Remedy
	if symptoms != nil {
		form.Symptoms = *symptoms
	}

	err := utils.RequirePresent("Error", "Please enter symptoms first.", map[string]string{
		"symptoms": strings.TrimSpace(form.Symptoms),
	})
	if err != nil {
		return "", s.dispatcher.Reject(ctx, st, err)
	}

	remedy := Remedies[s.rnd.Intn(len(Remedies))]
	form.Suggestion = fmt.Sprintf("Based on symptoms \"%s\", I suggest: %s. Please consult your clinical experience and patient history before prescribing.", form.Symptoms, remedy)

	s.dispatcher.Emit(ctx, st, Success("AI Suggestion Generated", "Review the suggestion below.", TopicRemedy))
	return form.Suggestion, nil
}
