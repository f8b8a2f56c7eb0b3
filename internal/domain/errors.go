package domain

import "errors"

// Business-rule errors surfaced verbatim to the caller. Handlers map these to
// HTTP statuses; services never swallow them.
var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrInvalidKillCount   = errors.New("kill count cannot be negative")
	ErrInvalidProfile     = errors.New("invalid player profile")
	ErrUnknownGame        = errors.New("unrecognized game code")
	ErrPastSchedule       = errors.New("scheduled time must be in the future")
	ErrInvalidCapacity    = errors.New("max participants must be greater than zero")
	ErrNameRequired       = errors.New("tournament name is required")
	ErrTournamentEnded    = errors.New("tournament has already ended")
	ErrTournamentFull     = errors.New("tournament is full")
	ErrAlreadyJoined      = errors.New("already joined this tournament")
	ErrNotEnrolled        = errors.New("user is not enrolled in this tournament")
	ErrWinnerNotEnrolled  = errors.New("winner is not enrolled in this tournament")
	ErrAlreadyDecided     = errors.New("request has already been decided")
	ErrReasonRequired     = errors.New("rejection reason is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrRequestNotFound    = errors.New("wallet request not found")
)
