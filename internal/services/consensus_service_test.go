package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopa/internal/models/request_models"
	"hopa/internal/models/response_models"
)

func validConsensusJSON(activities string) string {
	return `{
		"title": "西湖共识方案",
		"time_schedule": "周六全天",
		"transportation": "地铁加步行",
		"accommodation": "无需住宿",
		"core_objective": "一起看日落",
		"activities": ` + activities + `,
		"rhythm_consensus": "宽松",
		"weather_contingency": "雨天改博物馆",
		"remarks": "带伞",
		"reasoning": "综合了两人的预算"
	}`
}

func TestGenerateResultFromAI(t *testing.T) {
	stub := &stubCompleter{
		response: "方案如下:\n```json\n" + validConsensusJSON(`[{"time":"09:00-11:00","activity":"环湖骑行","description":"沿白堤骑行"}]`) + "\n```",
	}
	svc := NewConsensusService(stub)

	resp := svc.GenerateResult(context.Background(), tripScenario(), nil)

	assert.Equal(t, response_models.SourceAI, resp.Source)
	assert.Equal(t, "西湖共识方案", resp.Result.Title)
	require.Len(t, resp.Result.Activities, 1)
	assert.Equal(t, "环湖骑行", resp.Result.Activities[0].Activity)
}

func TestGenerateResultRejectsEmptyActivities(t *testing.T) {
	stub := &stubCompleter{response: validConsensusJSON(`[]`)}
	svc := NewConsensusService(stub)

	resp := svc.GenerateResult(context.Background(), tripScenario(), nil)

	// Valid JSON with zero activities is a shape failure, not a result.
	assert.Equal(t, response_models.SourceFallback, resp.Source)
	assert.NotEmpty(t, resp.Result.Activities)
}

func TestGenerateResultRejectsIncompleteActivity(t *testing.T) {
	stub := &stubCompleter{
		response: validConsensusJSON(`[{"time":"09:00","activity":"","description":"missing name"}]`),
	}
	svc := NewConsensusService(stub)

	resp := svc.GenerateResult(context.Background(), tripScenario(), nil)
	assert.Equal(t, response_models.SourceFallback, resp.Source)
}

func TestGenerateResultRejectsMissingField(t *testing.T) {
	body := strings.Replace(
		validConsensusJSON(`[{"time":"09:00","activity":"走走","description":"随便"}]`),
		`"weather_contingency": "雨天改博物馆",`, `"weather_contingency": "",`, 1)
	svc := NewConsensusService(&stubCompleter{response: body})

	resp := svc.GenerateResult(context.Background(), tripScenario(), nil)
	assert.Equal(t, response_models.SourceFallback, resp.Source)
}

func TestGenerateResultFallbackOvernight(t *testing.T) {
	svc := NewConsensusService(&stubCompleter{err: errors.New("down")})

	resp := svc.GenerateResult(context.Background(), request_models.ScenarioInput{
		Title:    "莫干山两天一夜",
		Duration: "两天",
	}, nil)

	assert.Equal(t, response_models.SourceFallback, resp.Source)
	assert.Contains(t, resp.Result.TimeSchedule, "两天一夜")
	assert.NotEqual(t, "当天往返,无需住宿", resp.Result.Accommodation)
	assert.GreaterOrEqual(t, len(resp.Result.Activities), 4)
}

func TestGenerateResultFallbackMoods(t *testing.T) {
	svc := NewConsensusService(&stubCompleter{err: errors.New("down")})

	adventure := svc.GenerateResult(context.Background(), request_models.ScenarioInput{
		Title: "一起去徒步冒险",
	}, nil)
	relaxed := svc.GenerateResult(context.Background(), request_models.ScenarioInput{
		Title: "找个地方放松一下",
	}, nil)

	assert.NotEqual(t, adventure.Result.CoreObjective, relaxed.Result.CoreObjective)
	assert.NoError(t, validateConsensusResult(adventure.Result))
	assert.NoError(t, validateConsensusResult(relaxed.Result))
}

func TestGenerateResultFallbackUsesEquipmentOvernight(t *testing.T) {
	svc := NewConsensusService(&stubCompleter{err: errors.New("down")})

	equipments := []request_models.PlayerEquipment{
		{PlayerID: "p1", Time: request_models.TimeEquipment{Enabled: true, Duration: response_models.TimePreferenceOvernight}},
	}
	resp := svc.GenerateResult(context.Background(), request_models.ScenarioInput{Title: "郊区走走"}, equipments)

	assert.Contains(t, resp.Result.TimeSchedule, "两天一夜")
}
