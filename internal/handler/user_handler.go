package handler

import (
	"net/http"

	"github.com/codeAntu/battle-zone-sub000/internal/middleware"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"
	"github.com/codeAntu/battle-zone-sub000/internal/service"
	"github.com/codeAntu/battle-zone-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the authenticated user's own views: profile, ledger
// history, winnings and participated tournaments.
type UserHandler struct {
	userRepo      *repository.UserRepository
	walletSvc     *service.WalletService
	enrollmentSvc *service.EnrollmentService
	settlementSvc *service.SettlementService
}

func NewUserHandler(
	userRepo *repository.UserRepository,
	walletSvc *service.WalletService,
	enrollmentSvc *service.EnrollmentService,
	settlementSvc *service.SettlementService,
) *UserHandler {
	return &UserHandler{
		userRepo:      userRepo,
		walletSvc:     walletSvc,
		enrollmentSvc: enrollmentSvc,
		settlementSvc: settlementSvc,
	}
}

// Profile handles GET /me/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.userRepo.GetByID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "profile", gin.H{
		"name":        u.Name,
		"email":       u.Email,
		"balance":     u.Balance,
		"is_verified": u.IsVerified,
	})
}

// Transactions handles GET /me/transactions — reverse-chronological ledger
// history.
func (h *UserHandler) Transactions(c *gin.Context) {
	page, limit := parsePagination(c)
	entries, total, err := h.walletSvc.History(middleware.GetUserID(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "transactions", gin.H{
		"transactions": entries,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

// Winnings handles GET /me/winnings.
func (h *UserHandler) Winnings(c *gin.Context) {
	winnings, err := h.settlementSvc.ListUserWinnings(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "winnings", winnings)
}

// Tournaments handles GET /me/tournaments — tournaments the user joined.
func (h *UserHandler) Tournaments(c *gin.Context) {
	list, err := h.enrollmentSvc.ListUserTournaments(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "participated tournaments", list)
}

// WalletRequests handles GET /me/wallet/requests.
func (h *UserHandler) WalletRequests(c *gin.Context) {
	page, limit := parsePagination(c)
	list, total, err := h.walletSvc.ListUserRequests(middleware.GetUserID(c), page, limit)
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
