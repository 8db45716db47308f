package request_models

// PlayerEquipment is one participant's configured preference bundle.
// "Equipment" is a product term: the budget/time/attraction/cuisine
// knobs a player brings into the consensus quiz, not hardware.
type PlayerEquipment struct {
	PlayerID    string               `json:"player_id"`
	Budget      BudgetEquipment      `json:"budget"`
	Time        TimeEquipment        `json:"time"`
	Attractions AttractionsEquipment `json:"attractions"`
	Cuisine     CuisineEquipment     `json:"cuisine"`
}

type BudgetEquipment struct {
	Enabled bool `json:"enabled"`
	Min     int  `json:"min"`
	Max     int  `json:"max"`
}

type TimeEquipment struct {
	Enabled  bool   `json:"enabled"`
	Duration string `json:"duration"` // "half-day", "full-day", "overnight"
}

type AttractionsEquipment struct {
	Enabled     bool     `json:"enabled"`
	Preferences []string `json:"preferences"`
}

type CuisineEquipment struct {
	Enabled bool     `json:"enabled"`
	Types   []string `json:"types"`
}

// HasAnyPreference reports whether at least one knob is switched on,
// so degenerate equipment records do not force the personalized prompt path.
func (e PlayerEquipment) HasAnyPreference() bool {
	return e.Budget.Enabled || e.Time.Enabled || e.Attractions.Enabled || e.Cuisine.Enabled
}
