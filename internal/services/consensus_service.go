package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hopa/internal/models/request_models"
	"hopa/internal/models/response_models"
	"hopa/pkg/llm"
	"hopa/pkg/utils"
)

type ConsensusServiceInterface interface {
	GenerateResult(ctx context.Context, scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) response_models.ConsensusResponse
}

// ConsensusService produces the final shared-plan summary. Like the other
// pipelines it is one-shot: a single completion attempt, then the template
// fallback. There is no retry before falling back; failing fast keeps the
// quiz's closing screen responsive, and the canned plan is good enough to
// carry the flow.
type ConsensusService struct {
	completer llm.ChatCompleter
}

func NewConsensusService(completer llm.ChatCompleter) ConsensusServiceInterface {
	return &ConsensusService{completer: completer}
}

func (s *ConsensusService) GenerateResult(ctx context.Context, scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) response_models.ConsensusResponse {
	start := time.Now()

	result, err := s.generateFromAI(ctx, scenario, equipments)
	source := response_models.SourceAI
	if err != nil {
		log.Printf("consensus result: AI path failed for %q: %v", scenario.Title, err)
		result = DefaultConsensusResult(scenario, equipments)
		source = response_models.SourceFallback
	}

	elapsed := time.Since(start)
	log.Printf("consensus result: %d activities from %s in %s", len(result.Activities), source, elapsed)

	return response_models.ConsensusResponse{
		Result:    result,
		Source:    source,
		ElapsedMs: elapsed.Milliseconds(),
	}
}

func (s *ConsensusService) generateFromAI(ctx context.Context, scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) (response_models.ConsensusResult, error) {
	var result response_models.ConsensusResult

	prompt := BuildConsensusPrompt(scenario, equipments)
	log.Printf("consensus result: sending prompt (%d bytes) for %q", len(prompt), scenario.Title)

	temperature := float32(0.6)
	raw, err := s.completer.Complete(ctx, []request_models.ChatMessage{
		{Role: request_models.RoleSystem, Content: consensusSystemPrompt},
		{Role: request_models.RoleUser, Content: prompt},
	}, &llm.CompletionOptions{Temperature: &temperature})
	if err != nil {
		return result, err
	}

	slice, err := utils.ExtractJSONObject(raw)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal([]byte(slice), &result); err != nil {
		return result, &utils.JSONParseError{Preview: utils.Preview(slice), Err: err}
	}
	if err := validateConsensusResult(result); err != nil {
		return result, err
	}

	return result, nil
}
