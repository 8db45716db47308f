package request_models

// ScenarioInput describes the shared activity a group wants to agree on.
// It is built fresh per request and never persisted.
type ScenarioInput struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	ScenarioType string       `json:"scenario_type,omitempty"` // "friends", "family", "couples", "team"
	BudgetRange  *BudgetRange `json:"budget_range,omitempty"`
	Duration     string       `json:"duration,omitempty"`
	Preferences  []string     `json:"preferences,omitempty"`
}

type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (s ScenarioInput) HasBudget() bool {
	return s.BudgetRange != nil && s.BudgetRange.Max > 0
}

type GenerateQuestionsRequest struct {
	Scenario   ScenarioInput     `json:"scenario"`
	Equipments []PlayerEquipment `json:"equipments,omitempty"`
}

type GenerateEquipmentRequest struct {
	Scenario ScenarioInput `json:"scenario"`
}

type GenerateConsensusRequest struct {
	Scenario   ScenarioInput     `json:"scenario"`
	Equipments []PlayerEquipment `json:"equipments,omitempty"`
}
