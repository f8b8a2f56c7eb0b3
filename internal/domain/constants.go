package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	GameBGMI     = "BGMI"
	GameFreeFire = "FREEFIRE"
	GamePUBG     = "PUBG"
	GameCOD      = "COD"
)

// KnownGames lists the recognized game codes for tournament creation.
var KnownGames = []string{GameBGMI, GameFreeFire, GamePUBG, GameCOD}

func IsKnownGame(code string) bool {
	for _, g := range KnownGames {
		if g == code {
			return true
		}
	}
	return false
}

// Ledger transaction types.
const (
	TxTypeDeposit    = "DEPOSIT"
	TxTypeWithdrawal = "WITHDRAWAL"
	TxTypeEntryFee   = "ENTRY_FEE"
	TxTypeWinnings   = "WINNINGS"
	TxTypeKillBonus  = "KILL_BONUS"
	TxTypeAdjustment = "ADJUSTMENT"
)

// Balance effect of a ledger entry.
const (
	EffectIncrease = "INCREASE"
	EffectDecrease = "DECREASE"
)

// Statuses shared by wallet requests and their ledger entries.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	RequestTypeDeposit    = "DEPOSIT"
	RequestTypeWithdrawal = "WITHDRAWAL"
)
