package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client account. Ids are stable for the run and are
// not required to be contiguous.
type ClientID uint16

// TxID identifies a single deposit or withdrawal. Uniqueness across the
// whole input stream is the producer's responsibility.
type TxID uint32

// OpKind is one of the five operation tokens accepted on input. Tokens are
// case-sensitive lowercase.
type OpKind string

const (
	OpDeposit    OpKind = "deposit"
	OpWithdrawal OpKind = "withdrawal"
	OpDispute    OpKind = "dispute"
	OpResolve    OpKind = "resolve"
	OpChargeback OpKind = "chargeback"
)

func ParseOpKind(s string) (OpKind, error) {
	switch kind := OpKind(s); kind {
	case OpDeposit, OpWithdrawal, OpDispute, OpResolve, OpChargeback:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown operation type '%s'", s)
	}
}

// Operation is one fully parsed input record. Amount is nil for the
// dispute lifecycle kinds, which reference a prior deposit by Tx instead
// of carrying money of their own.
type Operation struct {
	Kind   OpKind
	Client ClientID
	Tx     TxID
	Amount *decimal.Decimal
}
