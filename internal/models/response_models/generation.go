package response_models

// GenerationSource tags whether a pipeline result came from the model or
// from the canned defaults, so callers can offer "regenerate with AI"
// without guessing from the payload shape.
type GenerationSource string

const (
	SourceAI       GenerationSource = "ai"
	SourceFallback GenerationSource = "fallback"
)

type QuestionSetResponse struct {
	Questions []GeneratedQuestion `json:"questions"`
	Source    GenerationSource    `json:"source"`
	ElapsedMs int64               `json:"elapsed_ms"`
}

type EquipmentOptionsResponse struct {
	Options   EquipmentOptions `json:"options"`
	Source    GenerationSource `json:"source"`
	ElapsedMs int64            `json:"elapsed_ms"`
}

type ConsensusResponse struct {
	Result    ConsensusResult  `json:"result"`
	Source    GenerationSource `json:"source"`
	ElapsedMs int64            `json:"elapsed_ms"`
}
