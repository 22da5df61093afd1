package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmealinn/transaction-simulator/internal/model"
	"github.com/itsmealinn/transaction-simulator/internal/store"
)

type capturingRecorder struct {
	events []store.AuditEvent
}

func (r *capturingRecorder) RecordOutcome(ev store.AuditEvent) error {
	r.events = append(r.events, ev)
	return nil
}

type expectedStatus struct {
	client    model.ClientID
	available string
	held      string
	locked    bool
}

func runReplay(t *testing.T, input string, expected []expectedStatus) {
	t.Helper()

	svc := NewReplayService(nil)
	statuses, err := svc.Replay(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, statuses, len(expected))
	for i, want := range expected {
		got := statuses[i]
		assert.Equal(t, want.client, got.Client)
		assert.True(t, got.Available.Equal(decimal.RequireFromString(want.available)),
			"client %d available: expected %s, got %s", want.client, want.available, got.Available)
		assert.True(t, got.Held.Equal(decimal.RequireFromString(want.held)),
			"client %d held: expected %s, got %s", want.client, want.held, got.Held)
		assert.True(t, got.Total.Equal(got.Available.Add(got.Held)))
		assert.Equal(t, want.locked, got.Locked)
	}
}

func TestReplay_DepositsAndWithdrawals(t *testing.T) {
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 1.0\n"+
		"deposit, 2, 2, 2.0\n"+
		"deposit, 1, 3, 2.0\n"+
		"withdrawal, 1, 4, 1.5\n"+
		"withdrawal, 2, 5, 3.0\n",
		[]expectedStatus{
			{1, "1.5", "0", false},
			{2, "2.0", "0", false},
		})
}

func TestReplay_EmptyAndHeaderOnlyInputs(t *testing.T) {
	runReplay(t, "", nil)
	runReplay(t, "type, client, tx, amount\n", nil)
}

func TestReplay_RowsWithoutAmountsProduceNoAccounts(t *testing.T) {
	runReplay(t, "type, client, tx, amount\n"+
		"withdrawal, 2, 4,\n"+
		"deposit, 1, 1,\n"+
		"withdrawal, 1, 5,\n",
		nil)
}

func TestReplay_NonContiguousIdsAndRejectedWithdrawals(t *testing.T) {
	runReplay(t, "type, client, tx, amount\n"+
		"withdrawal, 2, 4, 1.5\n"+
		"deposit, 1, 1, 3.5\n"+
		"withdrawal, 1, 5, 2.0\n"+
		"withdrawal, 1, 6, 2.0\n",
		[]expectedStatus{
			{1, "1.5", "0", false},
		})
}

func TestReplay_DisputeScenarios(t *testing.T) {
	// Dispute of an unknown transaction is ignored.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3.5\n"+
		"dispute, 1, 3,\n"+
		"withdrawal, 1, 2, 2.0\n",
		[]expectedStatus{{1, "1.5", "0", false}})

	// Dispute naming another client's transaction is ignored.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3.5\n"+
		"deposit, 2, 2, 4\n"+
		"dispute, 1, 2,\n"+
		"withdrawal, 1, 2, 2.0\n",
		[]expectedStatus{
			{1, "1.5", "0", false},
			{2, "4.0", "0", false},
		})

	// Withdrawals can't be disputed.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3.5\n"+
		"withdrawal, 1, 2, 2.0\n"+
		"dispute, 1, 2,\n",
		[]expectedStatus{{1, "1.5", "0", false}})

	// Disputing the same transaction twice holds the funds once.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3.5\n"+
		"dispute, 1, 1,\n"+
		"dispute, 1, 1,\n",
		[]expectedStatus{{1, "0", "3.5", false}})

	// A dispute carrying an amount never reaches the account.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3.5\n"+
		"dispute, 1, 1, 4\n",
		[]expectedStatus{{1, "3.5", "0", false}})

	// A dispute may legitimately drive available negative.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3\n"+
		"withdrawal, 1, 2, 2\n"+
		"dispute, 1, 1,\n",
		[]expectedStatus{{1, "-2.0", "3.0", false}})
}

func TestReplay_ResolveScenarios(t *testing.T) {
	// A resolve carrying an amount is dropped at the boundary.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3\n"+
		"withdrawal, 1, 2, 2\n"+
		"dispute, 1, 1,\n"+
		"resolve, 1, 1, 3\n",
		[]expectedStatus{{1, "-2.0", "3.0", false}})

	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3\n"+
		"withdrawal, 1, 2, 2\n"+
		"dispute, 1, 1,\n"+
		"resolve, 1, 1,\n",
		[]expectedStatus{{1, "1.0", "0", false}})
}

func TestReplay_ChargebackScenarios(t *testing.T) {
	// A chargeback carrying an amount is dropped at the boundary.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3\n"+
		"withdrawal, 1, 2, 2\n"+
		"dispute, 1, 1,\n"+
		"chargeback, 1, 1, 3\n",
		[]expectedStatus{{1, "-2.0", "3.0", false}})

	// A valid chargeback locks the account for the rest of the run.
	runReplay(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 3\n"+
		"withdrawal, 1, 2, 2\n"+
		"dispute, 1, 1,\n"+
		"chargeback, 1, 1,\n"+
		"deposit, 2, 3, 100\n"+
		"deposit, 1, 4, 100\n",
		[]expectedStatus{
			{1, "-2.0", "0", true},
			{2, "100.0", "0", false},
		})
}

func TestReplay_RecordsEveryOperationOutcome(t *testing.T) {
	recorder := &capturingRecorder{}
	svc := NewReplayService(recorder)

	_, err := svc.Replay(strings.NewReader("type, client, tx, amount\n" +
		"deposit, 1, 1, 3\n" +
		"withdrawal, 1, 2, 5\n" +
		"dispute, 1, 1, 4\n" +
		"dispute, 1, 1,\n" +
		"chargeback, 1, 1,\n"))
	require.NoError(t, err)

	require.Len(t, recorder.events, 5)

	assert.Equal(t, int64(1), recorder.events[0].Seq)
	assert.Equal(t, store.OutcomeApplied, recorder.events[0].Outcome)
	require.NotNil(t, recorder.events[0].Amount)
	assert.Equal(t, "3", *recorder.events[0].Amount)

	assert.Equal(t, store.OutcomeSkipped, recorder.events[1].Outcome)
	assert.Equal(t, "insufficient_funds", recorder.events[1].Reason)

	assert.Equal(t, store.OutcomeSkipped, recorder.events[2].Outcome)
	assert.Equal(t, "malformed", recorder.events[2].Reason)

	assert.Equal(t, store.OutcomeApplied, recorder.events[3].Outcome)
	assert.Nil(t, recorder.events[3].Amount)

	assert.Equal(t, store.OutcomeApplied, recorder.events[4].Outcome)
	assert.Equal(t, "chargeback", recorder.events[4].Kind)
}
