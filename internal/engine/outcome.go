package engine

// SkipReason explains why an operation left no trace on any account.
type SkipReason string

const (
	SkipMalformed         SkipReason = "malformed"
	SkipUnknownAccount    SkipReason = "unknown_account"
	SkipAccountLocked     SkipReason = "account_locked"
	SkipInsufficientFunds SkipReason = "insufficient_funds"
	SkipUnknownDeposit    SkipReason = "unknown_deposit"
	SkipAlreadyDisputed   SkipReason = "already_disputed"
	SkipNotDisputed       SkipReason = "not_disputed"
)

// Outcome reports what the ledger did with one operation. It feeds the
// optional audit trail; replay results never depend on it.
type Outcome struct {
	Applied bool
	Reason  SkipReason
}

func applied() Outcome {
	return Outcome{Applied: true}
}

func skipped(reason SkipReason) Outcome {
	return Outcome{Reason: reason}
}
