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

type EquipmentOptionServiceInterface interface {
	GenerateOptions(ctx context.Context, scenario request_models.ScenarioInput) response_models.EquipmentOptionsResponse
}

// EquipmentOptionService suggests a preference bundle (budget band, time
// preference, concrete attractions and cuisines) for one scenario, falling
// back to the keyword-matched canned bundles when the AI path fails.
type EquipmentOptionService struct {
	completer llm.ChatCompleter
}

func NewEquipmentOptionService(completer llm.ChatCompleter) EquipmentOptionServiceInterface {
	return &EquipmentOptionService{completer: completer}
}

func (s *EquipmentOptionService) GenerateOptions(ctx context.Context, scenario request_models.ScenarioInput) response_models.EquipmentOptionsResponse {
	start := time.Now()

	options, err := s.generateFromAI(ctx, scenario)
	source := response_models.SourceAI
	if err != nil {
		log.Printf("equipment options: AI path failed for %q: %v", scenario.Title, err)
		options = DefaultEquipmentOptions(scenario)
		source = response_models.SourceFallback
	}

	elapsed := time.Since(start)
	log.Printf("equipment options: generated from %s in %s", source, elapsed)

	return response_models.EquipmentOptionsResponse{
		Options:   options,
		Source:    source,
		ElapsedMs: elapsed.Milliseconds(),
	}
}

func (s *EquipmentOptionService) generateFromAI(ctx context.Context, scenario request_models.ScenarioInput) (response_models.EquipmentOptions, error) {
	var options response_models.EquipmentOptions

	prompt := BuildEquipmentOptionsPrompt(scenario)
	log.Printf("equipment options: sending prompt (%d bytes) for %q", len(prompt), scenario.Title)

	temperature := float32(0.5)
	raw, err := s.completer.Complete(ctx, []request_models.ChatMessage{
		{Role: request_models.RoleSystem, Content: equipmentOptionsSystemPrompt},
		{Role: request_models.RoleUser, Content: prompt},
	}, &llm.CompletionOptions{Temperature: &temperature})
	if err != nil {
		return options, err
	}

	slice, err := utils.ExtractJSONObject(raw)
	if err != nil {
		return options, err
	}

	if err := json.Unmarshal([]byte(slice), &options); err != nil {
		return options, &utils.JSONParseError{Preview: utils.Preview(slice), Err: err}
	}
	if err := validateEquipmentOptions(options); err != nil {
		return options, err
	}

	return options, nil
}
