package model

import "github.com/shopspring/decimal"

// AccountStatus is the end-of-run snapshot for one client. Total is always
// Available+Held at snapshot time, never tracked separately.
type AccountStatus struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}
