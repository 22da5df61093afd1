package views

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/itsmealinn/transaction-simulator/internal/model"
)

type StatusTableView struct{}

func NewStatusTableView() *StatusTableView {
	return &StatusTableView{}
}

func (v *StatusTableView) Render(statuses []model.AccountStatus) error {
	headers := []string{"Client", "Available", "Held", "Total", "Locked"}
	tableData := pterm.TableData{headers}

	for _, status := range statuses {
		client := strconv.FormatUint(uint64(status.Client), 10)
		available := status.Available.String()
		held := status.Held.String()
		total := status.Total.String()

		locked := "no"
		if status.Locked {
			locked = "yes"
			client = pterm.Red(client)
			available = pterm.Red(available)
			held = pterm.Red(held)
			total = pterm.Red(total)
			locked = pterm.Red(locked)
		} else if status.Available.IsNegative() {
			available = pterm.Yellow(available)
		}

		tableData = append(tableData, []string{client, available, held, total, locked})
	}

	pterm.DefaultSection.Printf("Account Status")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(statuses))

	return nil
}
