package handler

import (
	"net/http"

	"github.com/codeAntu/battle-zone-sub000/internal/middleware"
	"github.com/codeAntu/battle-zone-sub000/internal/service"
	"github.com/codeAntu/battle-zone-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler accepts user-side deposit and withdrawal requests. Money only
// moves when an admin decides the request.
type WalletHandler struct {
	walletSvc *service.WalletService
}

func NewWalletHandler(walletSvc *service.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// RequestDeposit handles POST /wallet/deposit.
func (h *WalletHandler) RequestDeposit(c *gin.Context) {
	var req struct {
		Amount        int64  `json:"amount" binding:"required,min=1"`
		UpiID         string `json:"upi_id" binding:"required"`
		ExternalTxnID string `json:"external_txn_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	wr, err := h.walletSvc.RequestDeposit(middleware.GetUserID(c), req.Amount, req.UpiID, req.ExternalTxnID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "deposit request submitted", wr)
}

// RequestWithdrawal handles POST /wallet/withdraw.
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	var req struct {
		Amount int64  `json:"amount" binding:"required,min=1"`
		UpiID  string `json:"upi_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	wr, err := h.walletSvc.RequestWithdrawal(middleware.GetUserID(c), req.Amount, req.UpiID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "withdrawal request submitted", wr)
}
