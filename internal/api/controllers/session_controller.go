package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hopa/internal/models/request_models"
	"hopa/internal/services"
	"hopa/pkg/utils"
)

type SessionController struct {
	sessions services.SessionServiceInterface
}

func NewSessionController(sessions services.SessionServiceInterface) *SessionController {
	return &SessionController{sessions: sessions}
}

// CreateSessionHandler handles POST /sessions.
func (sc *SessionController) CreateSessionHandler(c *gin.Context) {
	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := sc.sessions.CreateSession(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session created")
}

// GetSessionHandler handles GET /sessions/:id. The id may be either the
// session UUID or the short join code.
func (sc *SessionController) GetSessionHandler(c *gin.Context) {
	session, err := sc.sessions.GetSession(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session found")
}

// JoinSessionHandler handles POST /sessions/:id/join.
func (sc *SessionController) JoinSessionHandler(c *gin.Context) {
	var req request_models.JoinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlayerID == "" {
		utils.RespondError(c, http.StatusBadRequest, "player_id is required")
		return
	}

	session, err := sc.sessions.JoinSession(c.Param("id"), req.PlayerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Joined session")
}
