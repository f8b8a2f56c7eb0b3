package handler

import (
	"net/http"
	"strconv"

	"github.com/codeAntu/battle-zone-sub000/internal/middleware"
	"github.com/codeAntu/battle-zone-sub000/internal/service"
	"github.com/codeAntu/battle-zone-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournamentSvc *service.TournamentService
	enrollmentSvc *service.EnrollmentService
}

func NewTournamentHandler(
	tournamentSvc *service.TournamentService,
	enrollmentSvc *service.EnrollmentService,
) *TournamentHandler {
	return &TournamentHandler{tournamentSvc: tournamentSvc, enrollmentSvc: enrollmentSvc}
}

// List handles GET /tournaments?game=BGMI&history=true.
func (h *TournamentHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	history, _ := strconv.ParseBool(c.DefaultQuery("history", "false"))
	list, total, err := h.tournamentSvc.List(c.Query("game"), history, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "tournaments", gin.H{
		"tournaments": list,
		"total":       total,
		"page":        page,
		"limit":       limit,
	})
}

// Get handles GET /tournaments/:id.
func (h *TournamentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	t, err := h.tournamentSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "tournament", t)
}

// Join handles POST /tournaments/:id/join.
func (h *TournamentHandler) Join(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		PlayerUsername string `json:"player_username" binding:"required"`
		PlayerID       string `json:"player_id" binding:"required"`
		PlayerLevel    int    `json:"player_level" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.enrollmentSvc.Join(id, middleware.GetUserID(c), service.PlayerProfile{
		Username: req.PlayerUsername,
		PlayerID: req.PlayerID,
		Level:    req.PlayerLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "joined tournament", p)
}

// Participation handles GET /tournaments/:id/participation — whether the
// caller has joined.
func (h *TournamentHandler) Participation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	joined, err := h.enrollmentSvc.IsParticipated(id, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "participation status", gin.H{"participated": joined})
}
