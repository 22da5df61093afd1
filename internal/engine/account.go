package engine

import (
	"github.com/shopspring/decimal"

	"github.com/itsmealinn/transaction-simulator/internal/model"
)

// storedDeposit is one accepted deposit retained for the dispute
// lifecycle. Entries are never removed, even after a resolve or
// chargeback, so stale references stay rejectable by id.
type storedDeposit struct {
	amount   decimal.Decimal
	disputed bool
}

// Account holds one client's balances and disputable deposit history. The
// total balance is always derived as available+held and never stored.
type Account struct {
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool

	// Disputes only apply to deposits, so withdrawals are never kept here.
	deposits map[model.TxID]*storedDeposit
}

func newAccount() *Account {
	return &Account{deposits: make(map[model.TxID]*storedDeposit)}
}

// apply mutates the account for a single operation. The caller guarantees
// the record shape is valid and addressed to this account. A locked
// account ignores everything, silently and permanently.
func (a *Account) apply(op model.Operation) Outcome {
	if a.locked {
		return skipped(SkipAccountLocked)
	}

	switch op.Kind {
	case model.OpDeposit:
		return a.deposit(op)
	case model.OpWithdrawal:
		return a.withdraw(op)
	case model.OpDispute:
		return a.dispute(op)
	case model.OpResolve:
		return a.resolve(op)
	case model.OpChargeback:
		return a.chargeback(op)
	default:
		return skipped(SkipMalformed)
	}
}

func (a *Account) deposit(op model.Operation) Outcome {
	amount := *op.Amount

	a.available = a.available.Add(amount)
	a.deposits[op.Tx] = &storedDeposit{amount: amount}

	return applied()
}

func (a *Account) withdraw(op model.Operation) Outcome {
	amount := *op.Amount

	if a.available.Cmp(amount) < 0 {
		return skipped(SkipInsufficientFunds)
	}
	a.available = a.available.Sub(amount)

	return applied()
}

func (a *Account) dispute(op model.Operation) Outcome {
	dep, ok := a.deposits[op.Tx]
	if !ok {
		return skipped(SkipUnknownDeposit)
	}
	if dep.disputed {
		return skipped(SkipAlreadyDisputed)
	}

	dep.disputed = true
	// Available may go negative if the deposited funds were already
	// withdrawn. That is how funds are recovered.
	a.available = a.available.Sub(dep.amount)
	a.held = a.held.Add(dep.amount)

	return applied()
}

func (a *Account) resolve(op model.Operation) Outcome {
	dep, ok := a.deposits[op.Tx]
	if !ok {
		return skipped(SkipUnknownDeposit)
	}
	if !dep.disputed {
		return skipped(SkipNotDisputed)
	}

	dep.disputed = false
	a.available = a.available.Add(dep.amount)
	a.held = a.held.Sub(dep.amount)

	return applied()
}

func (a *Account) chargeback(op model.Operation) Outcome {
	dep, ok := a.deposits[op.Tx]
	if !ok {
		return skipped(SkipUnknownDeposit)
	}
	if !dep.disputed {
		return skipped(SkipNotDisputed)
	}

	dep.disputed = false
	a.held = a.held.Sub(dep.amount)
	a.locked = true

	return applied()
}

// Status snapshots the account for output.
func (a *Account) Status(client model.ClientID) model.AccountStatus {
	return model.AccountStatus{
		Client:    client,
		Available: a.available,
		Held:      a.held,
		Total:     a.available.Add(a.held),
		Locked:    a.locked,
	}
}
