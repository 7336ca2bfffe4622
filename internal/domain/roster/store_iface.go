package roster

import (
	"context"

	"nomina/internal/domain/payroll"
)

type StoreAPI interface {
	Append(ctx context.Context, record payroll.WorkerRecord) error
	List(ctx context.Context) ([]payroll.WorkerRecord, error)
	Clear(ctx context.Context) (int, error)
}
