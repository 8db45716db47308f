package response_models

// ChatEnvelope is the wire format of POST /ai/kimi/chat. The proxy-backed
// completion client on the other side of this envelope expects Success and
// Response to be present on every 2xx reply.
type ChatEnvelope struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ImageEnvelope is the wire format of POST /ai/doubao/generate-image.
type ImageEnvelope struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl,omitempty"`
	Message  string `json:"message,omitempty"`
}
