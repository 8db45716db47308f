package response_models

const (
	QuestionTypeChoice = "choice"
	QuestionTypeFill   = "fill"
	QuestionTypeSort   = "sort"
)

// GeneratedQuestion is one conflict-resolution quiz question, either
// AI-generated or taken from the canned default set. CorrectAnswer keeps
// whatever shape the model emitted: an option index for "choice", a string
// for "fill", an ordered string slice for "sort".
type GeneratedQuestion struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	Question      string      `json:"question"`
	Options       []string    `json:"options,omitempty"`
	CorrectAnswer interface{} `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
	Category      string      `json:"category"` // "budget", "time", "preference", "principle", "communication", "decision"
}
