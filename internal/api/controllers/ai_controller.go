package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hopa/internal/models/request_models"
	"hopa/internal/models/response_models"
	"hopa/pkg/llm"
)

// AIController exposes the raw proxy endpoints. Unlike the consensus
// endpoints these reply with the bare success/response envelope, because
// the proxy-backed completion client on the other end parses exactly that
// shape.
type AIController struct {
	completer llm.ChatCompleter
	imager    llm.ImageGenerator
}

func NewAIController(completer llm.ChatCompleter, imager llm.ImageGenerator) *AIController {
	return &AIController{
		completer: completer,
		imager:    imager,
	}
}

// ChatHandler handles POST /ai/kimi/chat.
func (a *AIController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, response_models.ChatEnvelope{
			Success: false,
			Message: "messages is required",
		})
		return
	}

	var opts *llm.CompletionOptions
	if req.Temperature != nil || req.MaxTokens != nil {
		opts = &llm.CompletionOptions{
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		}
	}

	raw, err := a.completer.Complete(c.Request.Context(), req.Messages, opts)
	if err != nil {
		log.Printf("chat proxy: completion failed: %v", err)
		c.JSON(http.StatusBadGateway, response_models.ChatEnvelope{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response_models.ChatEnvelope{
		Success:  true,
		Response: raw,
	})
}

// GenerateImageHandler handles POST /ai/doubao/generate-image.
func (a *AIController) GenerateImageHandler(c *gin.Context) {
	var req request_models.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, response_models.ImageEnvelope{
			Success: false,
			Message: "prompt is required",
		})
		return
	}

	imageURL, err := a.imager.GenerateImage(c.Request.Context(), req)
	if err != nil {
		log.Printf("image proxy: generation failed: %v", err)
		c.JSON(http.StatusBadGateway, response_models.ImageEnvelope{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response_models.ImageEnvelope{
		Success:  true,
		ImageURL: imageURL,
	})
}
