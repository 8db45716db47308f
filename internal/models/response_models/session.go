package response_models

import (
	"time"

	"hopa/internal/models/request_models"
)

// QuizSession is one in-memory consensus round: a scenario, the players who
// joined, and the question set generated for it. Sessions live only in the
// TTL store; there is no durable record.
type QuizSession struct {
	ID        string                       `json:"id"`
	Code      string                       `json:"code"`
	HostID    string                       `json:"host_id"`
	Scenario  request_models.ScenarioInput `json:"scenario"`
	Members   []string                     `json:"members"`
	Questions []GeneratedQuestion          `json:"questions"`
	Source    GenerationSource             `json:"source"`
	CreatedAt time.Time                    `json:"created_at"`
}
