package store

import (
	"github.com/itsmealinn/transaction-simulator/internal/engine"
	"github.com/itsmealinn/transaction-simulator/internal/model"
)

const (
	OutcomeApplied = "applied"
	OutcomeSkipped = "skipped"
)

// AuditEvent is one recorded operation outcome. Seq is the 1-based
// position of the operation within the input stream.
type AuditEvent struct {
	Seq     int64
	Kind    string
	Client  model.ClientID
	Tx      model.TxID
	Amount  *string
	Outcome string
	Reason  string
}

// NewAuditEvent maps an operation and its ledger outcome to the persisted
// form.
func NewAuditEvent(seq int64, op model.Operation, outcome engine.Outcome) AuditEvent {
	ev := AuditEvent{
		Seq:    seq,
		Kind:   string(op.Kind),
		Client: op.Client,
		Tx:     op.Tx,
	}

	if op.Amount != nil {
		amount := op.Amount.String()
		ev.Amount = &amount
	}

	if outcome.Applied {
		ev.Outcome = OutcomeApplied
	} else {
		ev.Outcome = OutcomeSkipped
		ev.Reason = string(outcome.Reason)
	}

	return ev
}
