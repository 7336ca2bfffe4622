package roster

import (
	"context"

	"nomina/internal/domain/payroll"
)

// MemoryStore keeps records for the lifetime of one session, in insertion
// order. It is not safe for concurrent use.
type MemoryStore struct {
	records []payroll.WorkerRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(ctx context.Context, record payroll.WorkerRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.records = append(s.records, record)
	return nil
}

// List returns a copy so callers cannot reorder or edit stored records.
func (s *MemoryStore) List(ctx context.Context) ([]payroll.WorkerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]payroll.WorkerRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Clear(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	removed := len(s.records)
	s.records = nil
	return removed, nil
}
