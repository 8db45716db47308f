package services

import (
	"strconv"
	"strings"

	"hopa/internal/models/response_models"
	"hopa/pkg/utils"
)

// maxQuestions caps the conflict-question set regardless of how many the
// model emits.
const maxQuestions = 5

// filterQuestions keeps only well-formed questions and caps the result.
// A question needs text; a choice question additionally needs at least two
// options. Type defaults to "choice" when the model leaves it blank.
func filterQuestions(questions []response_models.GeneratedQuestion) []response_models.GeneratedQuestion {
	filtered := make([]response_models.GeneratedQuestion, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if q.Type == "" {
			q.Type = response_models.QuestionTypeChoice
		}
		if q.Type == response_models.QuestionTypeChoice && len(q.Options) < 2 {
			continue
		}
		filtered = append(filtered, q)
		if len(filtered) == maxQuestions {
			break
		}
	}
	return filtered
}

func validateEquipmentOptions(o response_models.EquipmentOptions) error {
	if o.Budget.Max <= 0 || o.Budget.Max < o.Budget.Min {
		return &utils.ShapeValidationError{Entity: "EquipmentOptions", Reason: "budget range is empty or inverted"}
	}
	switch o.TimePreference {
	case response_models.TimePreferenceHalfDay, response_models.TimePreferenceFullDay, response_models.TimePreferenceOvernight:
	default:
		return &utils.ShapeValidationError{Entity: "EquipmentOptions", Reason: "unknown time_preference: " + o.TimePreference}
	}
	if len(o.Attractions) == 0 {
		return &utils.ShapeValidationError{Entity: "EquipmentOptions", Reason: "attractions is empty"}
	}
	if len(o.Cuisines) == 0 {
		return &utils.ShapeValidationError{Entity: "EquipmentOptions", Reason: "cuisines is empty"}
	}
	return nil
}

func validateConsensusResult(r response_models.ConsensusResult) error {
	required := map[string]string{
		"title":               r.Title,
		"time_schedule":       r.TimeSchedule,
		"transportation":      r.Transportation,
		"accommodation":       r.Accommodation,
		"core_objective":      r.CoreObjective,
		"rhythm_consensus":    r.RhythmConsensus,
		"weather_contingency": r.WeatherContingency,
		"remarks":             r.Remarks,
		"reasoning":           r.Reasoning,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return &utils.ShapeValidationError{Entity: "ConsensusResult", Reason: "missing field " + field}
		}
	}
	if len(r.Activities) == 0 {
		return &utils.ShapeValidationError{Entity: "ConsensusResult", Reason: "activities is empty"}
	}
	for i, a := range r.Activities {
		if strings.TrimSpace(a.Time) == "" || strings.TrimSpace(a.Activity) == "" || strings.TrimSpace(a.Description) == "" {
			return &utils.ShapeValidationError{Entity: "ConsensusResult", Reason: "activity " + strconv.Itoa(i) + " is missing a subfield"}
		}
	}
	return nil
}
