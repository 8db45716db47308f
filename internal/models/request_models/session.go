package request_models

type CreateSessionRequest struct {
	HostID     string            `json:"host_id"`
	Scenario   ScenarioInput     `json:"scenario"`
	Equipments []PlayerEquipment `json:"equipments,omitempty"`
}

type JoinSessionRequest struct {
	PlayerID string `json:"player_id"`
}
