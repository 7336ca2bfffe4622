package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nomina/internal/domain/payroll"
)

func newTestService() *Service {
	fixed := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	return NewService(NewMemoryStore(), WithClock(func() time.Time { return fixed }))
}

func TestRegisterAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.Register(ctx, "Ana", 10000)
	require.NoError(t, err)
	second, err := svc.Register(ctx, "Luis", 5000)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC), first.CalculatedAt)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ana", records[0].Name)
	assert.Equal(t, "Luis", records[1].Name)
	assert.InDelta(t, 9155, records[0].NetSalary, 1e-9)
	assert.InDelta(t, 4650, records[1].NetSalary, 1e-9)
}

func TestRegisterInvalidDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, "", 10000)
	assert.ErrorIs(t, err, payroll.ErrNameRequired)
	_, err = svc.Register(ctx, "Ana", -5)
	assert.ErrorIs(t, err, payroll.ErrInvalidInput)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClearThenListIsEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	removed, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	for _, gross := range []float64{5000, 10000, 50000} {
		_, err := svc.Register(ctx, "Trabajador", gross)
		require.NoError(t, err)
	}
	removed, err = svc.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, err := svc.Register(ctx, "Ana", 10000)
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	records[0].Name = "changed"

	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again[0].Name)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	for _, gross := range []float64{5000, 10000, 50000} {
		_, err := svc.Register(ctx, "Trabajador", gross)
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Workers)
	assert.InDelta(t, 65000, summary.TotalGross, 1e-9)
	assert.InDelta(t, 4550, summary.TotalINSS, 1e-9)
	assert.InDelta(t, 8470, summary.TotalIncomeTax, 1e-9)
	assert.InDelta(t, 13020, summary.TotalDeductions, 1e-9)
	assert.InDelta(t, 51980, summary.TotalNet, 1e-9)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := newTestService()

	_, err := svc.Register(ctx, "Ana", 10000)
	assert.True(t, errors.Is(err, context.Canceled))

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
