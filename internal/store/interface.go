package store

// AuditRepository records per-operation outcomes for a run.
type AuditRepository interface {
	RecordOutcome(ev AuditEvent) error
	CountByOutcome() (map[string]int64, error)

	Close() error
}
