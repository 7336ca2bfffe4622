package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts what happened during one console session.
type Collector struct {
	computed       uint64
	rejected       uint64
	clears         uint64
	totalComputeNs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordComputed(duration time.Duration) {
	atomic.AddUint64(&c.computed, 1)
	atomic.AddUint64(&c.totalComputeNs, uint64(duration.Nanoseconds()))
}

func (c *Collector) RecordRejected() {
	atomic.AddUint64(&c.rejected, 1)
}

func (c *Collector) RecordClear() {
	atomic.AddUint64(&c.clears, 1)
}

func (c *Collector) Snapshot() map[string]any {
	computed := atomic.LoadUint64(&c.computed)
	rejected := atomic.LoadUint64(&c.rejected)
	clears := atomic.LoadUint64(&c.clears)
	totalNs := atomic.LoadUint64(&c.totalComputeNs)
	avg := float64(0)
	if computed > 0 {
		avg = float64(totalNs) / float64(computed)
	}
	return map[string]any{
		"workersComputed": computed,
		"inputsRejected":  rejected,
		"rosterClears":    clears,
		"avgComputeNs":    avg,
	}
}
