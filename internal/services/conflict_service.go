package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hopa/internal/models/request_models"
	"hopa/internal/models/response_models"
	"hopa/pkg/llm"
	"hopa/pkg/utils"
)

type ConflictQuestionServiceInterface interface {
	GenerateQuestions(ctx context.Context, scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) response_models.QuestionSetResponse
}

// ConflictQuestionService generates conflict-resolution quiz questions for
// one scenario. Any failure along the AI path (completion, extraction,
// validation) is logged and converted into the canned default set; callers
// never see an error from this service.
type ConflictQuestionService struct {
	completer llm.ChatCompleter
}

func NewConflictQuestionService(completer llm.ChatCompleter) ConflictQuestionServiceInterface {
	return &ConflictQuestionService{completer: completer}
}

func (s *ConflictQuestionService) GenerateQuestions(ctx context.Context, scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) response_models.QuestionSetResponse {
	start := time.Now()

	questions, err := s.generateFromAI(ctx, scenario, equipments)
	source := response_models.SourceAI
	if err != nil {
		log.Printf("conflict questions: AI path failed for %q: %v", scenario.Title, err)
		questions = DefaultConflictQuestions()
		source = response_models.SourceFallback
	}

	elapsed := time.Since(start)
	log.Printf("conflict questions: %d question(s) from %s in %s", len(questions), source, elapsed)

	return response_models.QuestionSetResponse{
		Questions: questions,
		Source:    source,
		ElapsedMs: elapsed.Milliseconds(),
	}
}

func (s *ConflictQuestionService) generateFromAI(ctx context.Context, scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) ([]response_models.GeneratedQuestion, error) {
	prompt := BuildConflictQuestionPrompt(scenario, equipments)
	log.Printf("conflict questions: sending prompt (%d bytes) for %q", len(prompt), scenario.Title)

	temperature := float32(0.7)
	raw, err := s.completer.Complete(ctx, []request_models.ChatMessage{
		{Role: request_models.RoleSystem, Content: conflictQuestionSystemPrompt},
		{Role: request_models.RoleUser, Content: prompt},
	}, &llm.CompletionOptions{Temperature: &temperature})
	if err != nil {
		return nil, err
	}

	slice, err := utils.ExtractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var parsed []response_models.GeneratedQuestion
	if err := json.Unmarshal([]byte(slice), &parsed); err != nil {
		return nil, &utils.JSONParseError{Preview: utils.Preview(slice), Err: err}
	}

	questions := filterQuestions(parsed)
	if len(questions) == 0 {
		return nil, &utils.ShapeValidationError{Entity: "GeneratedQuestion", Reason: "no well-formed questions in response"}
	}
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
	}

	return questions, nil
}
