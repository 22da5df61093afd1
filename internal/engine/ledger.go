package engine

import (
	"sort"

	"github.com/itsmealinn/transaction-simulator/internal/model"
	"github.com/itsmealinn/transaction-simulator/internal/validation"
)

// Ledger owns every account for a run and routes operations to them in
// input order. Processing one operation never touches more than the one
// account it names.
type Ledger struct {
	accounts map[model.ClientID]*Account
}

func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[model.ClientID]*Account)}
}

// Process routes a single operation. Records with an invalid shape, or
// addressed to a client that never had an accepted deposit, are dropped
// without touching any state. Accounts are created lazily and only by a
// deposit.
func (l *Ledger) Process(op model.Operation) Outcome {
	if err := validation.CheckOperation(op); err != nil {
		return skipped(SkipMalformed)
	}

	account, ok := l.accounts[op.Client]
	if !ok {
		if op.Kind != model.OpDeposit {
			return skipped(SkipUnknownAccount)
		}
		account = newAccount()
		l.accounts[op.Client] = account
	}

	return account.apply(op)
}

// Snapshot returns the status of every tracked account. Rows are sorted by
// client id so runs are diffable; consumers must not attach meaning to the
// order.
func (l *Ledger) Snapshot() []model.AccountStatus {
	statuses := make([]model.AccountStatus, 0, len(l.accounts))
	for client, account := range l.accounts {
		statuses = append(statuses, account.Status(client))
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Client < statuses[j].Client
	})

	return statuses
}
