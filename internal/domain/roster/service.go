package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nomina/internal/domain/payroll"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
	newID func() uuid.UUID
}

type Option func(*Service)

// WithClock overrides the timestamp source for CalculatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how record IDs are minted.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(store StoreAPI, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now, newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register computes deductions for a worker and appends the record. The store
// is untouched when validation fails.
func (s *Service) Register(ctx context.Context, name string, grossSalary float64) (payroll.WorkerRecord, error) {
	record, err := payroll.NewWorkerRecord(name, grossSalary)
	if err != nil {
		return payroll.WorkerRecord{}, err
	}
	record.ID = s.newID()
	record.CalculatedAt = s.now().UTC()

	if err := s.store.Append(ctx, record); err != nil {
		return payroll.WorkerRecord{}, fmt.Errorf("append worker record: %w", err)
	}
	return record, nil
}

func (s *Service) List(ctx context.Context) ([]payroll.WorkerRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list worker records: %w", err)
	}
	return records, nil
}

// Clear removes every record and reports how many were dropped.
func (s *Service) Clear(ctx context.Context) (int, error) {
	removed, err := s.store.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear roster: %w", err)
	}
	return removed, nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	records, err := s.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records), nil
}

func Summarize(records []payroll.WorkerRecord) Summary {
	summary := Summary{Workers: len(records)}
	for _, r := range records {
		summary.TotalGross += r.GrossSalary
		summary.TotalINSS += r.SocialSecurity
		summary.TotalIncomeTax += r.MonthlyIncomeTax
		summary.TotalDeductions += r.TotalDeduction
		summary.TotalNet += r.NetSalary
	}
	return summary
}
