package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hopa/internal/models/request_models"
)

func sampleScenario() request_models.ScenarioInput {
	return request_models.ScenarioInput{
		Title:        "杭州西湖两日游",
		Description:  "两个朋友,三天时间",
		ScenarioType: "friends",
		BudgetRange:  &request_models.BudgetRange{Min: 300, Max: 800},
		Duration:     "两天一夜",
		Preferences:  []string{"自然风光", "本地美食"},
	}
}

func sampleEquipments() []request_models.PlayerEquipment {
	return []request_models.PlayerEquipment{
		{
			PlayerID: "小王",
			Budget:   request_models.BudgetEquipment{Enabled: true, Min: 200, Max: 500},
			Time:     request_models.TimeEquipment{Enabled: true, Duration: "full-day"},
		},
		{
			PlayerID:    "小李",
			Budget:      request_models.BudgetEquipment{Enabled: true, Min: 800, Max: 1500},
			Attractions: request_models.AttractionsEquipment{Enabled: true, Preferences: []string{"西湖", "灵隐寺"}},
		},
	}
}

func TestBuildConflictQuestionPromptIsDeterministic(t *testing.T) {
	scenario := sampleScenario()
	equipments := sampleEquipments()

	first := BuildConflictQuestionPrompt(scenario, equipments)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildConflictQuestionPrompt(scenario, equipments))
	}
}

func TestBuildConflictQuestionPromptSelectsEquipmentVariant(t *testing.T) {
	scenario := sampleScenario()

	personalized := BuildConflictQuestionPrompt(scenario, sampleEquipments())
	assert.Contains(t, personalized, "小王")
	assert.Contains(t, personalized, "预算200-500元")
	assert.Contains(t, personalized, "预算800-1500元")
	assert.Contains(t, personalized, "西湖、灵隐寺")

	generic := BuildConflictQuestionPrompt(scenario, nil)
	assert.NotContains(t, generic, "小王")
	assert.Contains(t, generic, "5道")
}

func TestBuildConflictQuestionPromptIgnoresEmptyEquipment(t *testing.T) {
	// Two placeholder records with nothing enabled must not trigger the
	// personalized variant.
	empty := []request_models.PlayerEquipment{{PlayerID: "a"}, {PlayerID: "b"}}
	prompt := BuildConflictQuestionPrompt(sampleScenario(), empty)
	assert.NotContains(t, prompt, "偏好装备")
}

func TestBuildPromptsConditionalClauses(t *testing.T) {
	bare := request_models.ScenarioInput{Title: "随便逛逛"}

	prompt := BuildConflictQuestionPrompt(bare, nil)
	assert.NotContains(t, prompt, "预算范围")
	assert.NotContains(t, prompt, "时长:")
	assert.NotContains(t, prompt, "已知偏好")

	full := BuildConflictQuestionPrompt(sampleScenario(), nil)
	assert.Contains(t, full, "预算范围:300-800元/人")
	assert.Contains(t, full, "时长:两天一夜")
	assert.Contains(t, full, "自然风光、本地美食")
	assert.Contains(t, full, "成员关系:朋友")
}

func TestBuildPromptsEmbedJSONExamples(t *testing.T) {
	scenario := sampleScenario()

	questions := BuildConflictQuestionPrompt(scenario, nil)
	assert.Contains(t, questions, `"correct_answer"`)
	assert.Contains(t, questions, "不要markdown代码块")

	equipment := BuildEquipmentOptionsPrompt(scenario)
	assert.Contains(t, equipment, `"time_preference"`)
	assert.Contains(t, equipment, `"attractions"`)

	consensus := BuildConsensusPrompt(scenario, sampleEquipments())
	assert.Contains(t, consensus, `"weather_contingency"`)
	assert.Contains(t, consensus, `"rhythm_consensus"`)
	assert.Contains(t, consensus, "小李")
}

func TestBuildPromptDegenerateInputStillRenders(t *testing.T) {
	prompt := BuildConflictQuestionPrompt(request_models.ScenarioInput{}, nil)
	assert.True(t, strings.Contains(prompt, "「」"))
	assert.NotEmpty(t, prompt)
}
