package response_models

const (
	TimePreferenceHalfDay   = "half-day"
	TimePreferenceFullDay   = "full-day"
	TimePreferenceOvernight = "overnight"
)

type BudgetOption struct {
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Description string `json:"description"`
}

// EquipmentOptions is a suggested preference bundle for one scenario:
// concrete attraction and cuisine names a participant can pick from when
// configuring their equipment.
type EquipmentOptions struct {
	Budget         BudgetOption `json:"budget"`
	TimePreference string       `json:"time_preference"`
	Attractions    []string     `json:"attractions"`
	Cuisines       []string     `json:"cuisines"`
	Reasoning      string       `json:"reasoning"`
}
