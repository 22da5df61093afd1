package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/itsmealinn/transaction-simulator/internal/csvio"
	"github.com/itsmealinn/transaction-simulator/internal/engine"
	"github.com/itsmealinn/transaction-simulator/internal/model"
	"github.com/itsmealinn/transaction-simulator/internal/store"
)

// AuditRecorder receives one event for every operation consumed from the
// input, applied or not.
type AuditRecorder interface {
	RecordOutcome(ev store.AuditEvent) error
}

// ReplayService drives a single run of the engine over one input stream.
type ReplayService struct {
	ledger   *engine.Ledger
	recorder AuditRecorder
}

func NewReplayService(recorder AuditRecorder) *ReplayService {
	return &ReplayService{
		ledger:   engine.NewLedger(),
		recorder: recorder,
	}
}

// Replay consumes the whole input in order and returns the final account
// snapshot. The snapshot is produced only after the last record, so a
// source failure mid-stream yields an error and no partial result.
func (s *ReplayService) Replay(input io.Reader) ([]model.AccountStatus, error) {
	reader := csvio.NewReader(input)

	var seq int64
	for {
		op, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		outcome := s.ledger.Process(op)

		seq++
		if s.recorder != nil {
			if err := s.recorder.RecordOutcome(store.NewAuditEvent(seq, op, outcome)); err != nil {
				return nil, fmt.Errorf("failed to record audit event: %w", err)
			}
		}
	}

	return s.ledger.Snapshot(), nil
}
