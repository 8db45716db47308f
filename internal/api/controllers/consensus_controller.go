package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hopa/internal/models/request_models"
	"hopa/internal/services"
	"hopa/pkg/utils"
)

// ConsensusController fronts the three generation pipelines. The services
// never return errors (a failed AI path degrades to the canned fallback),
// so handlers only reject malformed requests.
type ConsensusController struct {
	questions services.ConflictQuestionServiceInterface
	equipment services.EquipmentOptionServiceInterface
	consensus services.ConsensusServiceInterface
}

func NewConsensusController(
	questions services.ConflictQuestionServiceInterface,
	equipment services.EquipmentOptionServiceInterface,
	consensus services.ConsensusServiceInterface,
) *ConsensusController {
	return &ConsensusController{
		questions: questions,
		equipment: equipment,
		consensus: consensus,
	}
}

// GenerateQuestionsHandler handles POST /consensus/questions.
func (cc *ConsensusController) GenerateQuestionsHandler(c *gin.Context) {
	var req request_models.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if strings.TrimSpace(req.Scenario.Title) == "" {
		utils.RespondError(c, http.StatusBadRequest, "scenario.title is required")
		return
	}

	resp := cc.questions.GenerateQuestions(c.Request.Context(), req.Scenario, req.Equipments)
	utils.RespondSuccess(c, resp, "Questions generated")
}

// GenerateEquipmentHandler handles POST /consensus/equipment-options.
func (cc *ConsensusController) GenerateEquipmentHandler(c *gin.Context) {
	var req request_models.GenerateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if strings.TrimSpace(req.Scenario.Title) == "" {
		utils.RespondError(c, http.StatusBadRequest, "scenario.title is required")
		return
	}

	resp := cc.equipment.GenerateOptions(c.Request.Context(), req.Scenario)
	utils.RespondSuccess(c, resp, "Equipment options generated")
}

// GenerateConsensusHandler handles POST /consensus/result.
func (cc *ConsensusController) GenerateConsensusHandler(c *gin.Context) {
	var req request_models.GenerateConsensusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if strings.TrimSpace(req.Scenario.Title) == "" {
		utils.RespondError(c, http.StatusBadRequest, "scenario.title is required")
		return
	}

	resp := cc.consensus.GenerateResult(c.Request.Context(), req.Scenario, req.Equipments)
	utils.RespondSuccess(c, resp, "Consensus result generated")
}
