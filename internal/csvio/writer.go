package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/itsmealinn/transaction-simulator/internal/model"
)

var outputHeader = []string{"client", "available", "held", "total", "locked"}

// WriteStatuses serializes account statuses in the tabular output format.
// Amounts are rendered exactly, with no rounding; trailing zero digits are
// trimmed but every significant fractional digit survives the round trip.
func WriteStatuses(w io.Writer, statuses []model.AccountStatus) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(outputHeader); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, status := range statuses {
		record := []string{
			strconv.FormatUint(uint64(status.Client), 10),
			status.Available.String(),
			status.Held.String(),
			status.Total.String(),
			strconv.FormatBool(status.Locked),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write status row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
