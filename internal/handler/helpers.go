package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Err(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors onto the envelope. State conflicts and
// validation failures surface verbatim; anything unexpected becomes a generic
// 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidKillCount),
		errors.Is(err, domain.ErrInvalidProfile),
		errors.Is(err, domain.ErrUnknownGame),
		errors.Is(err, domain.ErrPastSchedule),
		errors.Is(err, domain.ErrInvalidCapacity),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrReasonRequired):
		response.Err(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrTournamentEnded),
		errors.Is(err, domain.ErrTournamentFull),
		errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrNotEnrolled),
		errors.Is(err, domain.ErrWinnerNotEnrolled),
		errors.Is(err, domain.ErrAlreadyDecided):
		response.Err(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTournamentNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		response.Err(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("[handler] internal error: %v", err)
		response.Err(c, http.StatusInternalServerError, "something went wrong")
	}
}
