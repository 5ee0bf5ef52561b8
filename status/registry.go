package status

import "sync/atomic"

// Metric keys published by the simulation engine
const (
	KeyStep       = "sim.step"
	KeyMovements  = "sim.movements"
	KeyCollided   = "sim.collided"
	KeyActive     = "sim.active"
	KeyFaultMoves = "sim.fault_moves"
	KeyRunning    = "sim.running"
	KeyFaultRate  = "sim.fault_rate"
	KeyClients    = "feed.clients"
)

// Registry is the central metrics facade
// The engine writes after each step; the feed and the binary read concurrently
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Export copies every metric into a flat map suitable for JSON encoding
func (r *Registry) Export() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out[key] = ptr.Load()
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		out[key] = ptr.Get()
	})
	return out
}
