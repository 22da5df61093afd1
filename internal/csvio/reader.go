package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/itsmealinn/transaction-simulator/internal/constants"
	"github.com/itsmealinn/transaction-simulator/internal/model"
)

// Reader streams operations out of the tabular input format. Rows that
// fail to parse are skipped in place; only a failure of the source itself
// ends the stream with an error.
type Reader struct {
	csv     *csv.Reader
	columns map[string]int
	started bool
	skipped int
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr}
}

// Next returns the next well-formed operation, or io.EOF once the input is
// exhausted. An empty input (not even a header row) is a valid empty
// stream.
func (r *Reader) Next() (model.Operation, error) {
	if !r.started {
		r.started = true
		if err := r.readHeader(); err != nil {
			return model.Operation{}, err
		}
	}
	if r.columns == nil {
		return model.Operation{}, io.EOF
	}

	for {
		record, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return model.Operation{}, io.EOF
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.skipped++
				continue
			}
			return model.Operation{}, fmt.Errorf("failed to read input row: %w", err)
		}

		op, ok := r.parseRecord(record)
		if !ok {
			r.skipped++
			continue
		}

		return op, nil
	}
}

// Skipped reports how many rows were dropped at the parsing boundary.
func (r *Reader) Skipped() int {
	return r.skipped
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to read input header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{constants.FieldType, constants.FieldClient, constants.FieldTx} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("input is missing required column '%s'", required)
		}
	}

	r.columns = columns
	return nil
}

func (r *Reader) parseRecord(fields []string) (model.Operation, bool) {
	get := func(name string) string {
		idx, ok := r.columns[name]
		if !ok || idx >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[idx])
	}

	kind, err := model.ParseOpKind(get(constants.FieldType))
	if err != nil {
		return model.Operation{}, false
	}

	client, err := strconv.ParseUint(get(constants.FieldClient), 10, 16)
	if err != nil {
		return model.Operation{}, false
	}

	tx, err := strconv.ParseUint(get(constants.FieldTx), 10, 32)
	if err != nil {
		return model.Operation{}, false
	}

	var amount *decimal.Decimal
	if raw := get(constants.FieldAmount); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return model.Operation{}, false
		}
		amount = &d
	}

	return model.Operation{
		Kind:   kind,
		Client: model.ClientID(client),
		Tx:     model.TxID(tx),
		Amount: amount,
	}, true
}
