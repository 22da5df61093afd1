package validation

import (
	"fmt"

	"github.com/itsmealinn/transaction-simulator/internal/model"
)

// CheckOperation enforces the record shape rules: deposits and withdrawals
// must carry a non-negative amount, the dispute lifecycle kinds must not
// carry one. Records failing the check never reach an account.
func CheckOperation(op model.Operation) error {
	switch op.Kind {
	case model.OpDeposit, model.OpWithdrawal:
		if op.Amount == nil {
			return fmt.Errorf("%s requires an amount", op.Kind)
		}
		if op.Amount.IsNegative() {
			return fmt.Errorf("%s amount can't be negative", op.Kind)
		}
	case model.OpDispute, model.OpResolve, model.OpChargeback:
		if op.Amount != nil {
			return fmt.Errorf("%s must not carry an amount", op.Kind)
		}
	default:
		return fmt.Errorf("unknown operation type '%s'", op.Kind)
	}

	return nil
}
