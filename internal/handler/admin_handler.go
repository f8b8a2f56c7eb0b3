package handler

import (
	"net/http"
	"time"

	"github.com/codeAntu/battle-zone-sub000/internal/middleware"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"
	"github.com/codeAntu/battle-zone-sub000/internal/service"
	"github.com/codeAntu/battle-zone-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the admin surface: tournament lifecycle, kill
// adjudication, settlement, wallet request decisions and user management.
type AdminHandler struct {
	userRepo      *repository.UserRepository
	tournamentSvc *service.TournamentService
	enrollmentSvc *service.EnrollmentService
	settlementSvc *service.SettlementService
	walletSvc     *service.WalletService
}

func NewAdminHandler(
	userRepo *repository.UserRepository,
	tournamentSvc *service.TournamentService,
	enrollmentSvc *service.EnrollmentService,
	settlementSvc *service.SettlementService,
	walletSvc *service.WalletService,
) *AdminHandler {
	return &AdminHandler{
		userRepo:      userRepo,
		tournamentSvc: tournamentSvc,
		enrollmentSvc: enrollmentSvc,
		settlementSvc: settlementSvc,
		walletSvc:     walletSvc,
	}
}

type tournamentRequest struct {
	Game            string    `json:"game" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	EntryFee        int64     `json:"entry_fee" binding:"min=0"`
	Prize           int64     `json:"prize" binding:"min=0"`
	PerKillPrize    int64     `json:"per_kill_prize" binding:"min=0"`
	MaxParticipants int       `json:"max_participants" binding:"required,min=1"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
}

func (r *tournamentRequest) toInput() service.TournamentInput {
	return service.TournamentInput{
		Game:            r.Game,
		Name:            r.Name,
		Description:     r.Description,
		EntryFee:        r.EntryFee,
		Prize:           r.Prize,
		PerKillPrize:    r.PerKillPrize,
		MaxParticipants: r.MaxParticipants,
		ScheduledAt:     r.ScheduledAt,
	}
}

// CreateTournament handles POST /admin/tournaments.
func (h *AdminHandler) CreateTournament(c *gin.Context) {
	var req tournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := h.tournamentSvc.Create(middleware.GetUserID(c), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "tournament created", t)
}

// UpdateTournament handles PUT /admin/tournaments/:id.
func (h *AdminHandler) UpdateTournament(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req tournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := h.tournamentSvc.Update(id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "tournament updated", t)
}

// SetRoom handles PATCH /admin/tournaments/:id/room.
func (h *AdminHandler) SetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		RoomID       string `json:"room_id" binding:"required"`
		RoomPassword string `json:"room_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := h.tournamentSvc.SetRoom(id, req.RoomID, req.RoomPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "room assigned", t)
}

// ListParticipants handles GET /admin/tournaments/:id/participants.
func (h *AdminHandler) ListParticipants(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	list, err := h.enrollmentSvc.ListParticipants(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "participants", list)
}

// RecordKills handles PUT /admin/tournaments/:id/participants/:userId/kills.
// Overwrites the stored count; rejected once the tournament has ended.
func (h *AdminHandler) RecordKills(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	var req struct {
		Kills *int `json:"kills" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.enrollmentSvc.RecordKills(id, userID, *req.Kills); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "kills recorded", gin.H{"kills": *req.Kills})
}

// EndTournament handles POST /admin/tournaments/:id/end — settlement.
func (h *AdminHandler) EndTournament(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		WinnerUserID uint `json:"winner_user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.settlementSvc.EndTournament(id, req.WinnerUserID); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "tournament settled", nil)
}

// ListWalletRequests handles GET /admin/wallet/requests?type=DEPOSIT&status=PENDING.
func (h *AdminHandler) ListWalletRequests(c *gin.Context) {
	page, limit := parsePagination(c)
	list, total, err := h.walletSvc.ListRequests(c.Query("type"), c.Query("status"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "wallet requests", gin.H{
		"requests": list,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// ApproveDeposit handles POST /admin/wallet/deposits/:id/approve.
func (h *AdminHandler) ApproveDeposit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	wr, err := h.walletSvc.ApproveDeposit(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "deposit approved", wr)
}

// ApproveWithdrawal handles POST /admin/wallet/withdrawals/:id/approve.
func (h *AdminHandler) ApproveWithdrawal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	wr, err := h.walletSvc.ApproveWithdrawal(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "withdrawal approved", wr)
}

// RejectRequest handles POST /admin/wallet/requests/:id/reject. A reason is
// required.
func (h *AdminHandler) RejectRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "rejection reason is required")
		return
	}
	wr, err := h.walletSvc.Reject(id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "request rejected", wr)
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)
	users, total, err := h.userRepo.List(c.Query("search"), c.Query("role"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "users", gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// DeactivateUser handles PATCH /admin/users/:id/deactivate. Users are never
// deleted.
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.userRepo.Deactivate(id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "user deactivated", nil)
}
