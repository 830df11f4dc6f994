package metrics

import "sync/atomic"

type Metrics struct {
	activeConnections   atomic.Int32
	totalConnections    atomic.Int64
	rejectedConnections atomic.Int64
	failedRequests      atomic.Int64
	searches            atomic.Int64
	candidates          atomic.Int64
	improvements        atomic.Int64
	verifications       atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) IncActiveConnections()   { m.activeConnections.Add(1) }
func (m *Metrics) DecActiveConnections()   { m.activeConnections.Add(-1) }
func (m *Metrics) IncTotalConnections()    { m.totalConnections.Add(1) }
func (m *Metrics) IncRejectedConnections() { m.rejectedConnections.Add(1) }
func (m *Metrics) IncFailedRequests()      { m.failedRequests.Add(1) }
func (m *Metrics) IncVerifications()       { m.verifications.Add(1) }

// AddSearch records one finished search.
func (m *Metrics) AddSearch(candidates, improvements int64) {
	m.searches.Add(1)
	m.candidates.Add(candidates)
	m.improvements.Add(improvements)
}

func (m *Metrics) GetStats() map[string]int64 {
	return map[string]int64{
		"active_connections":   int64(m.activeConnections.Load()),
		"total_connections":    m.totalConnections.Load(),
		"rejected_connections": m.rejectedConnections.Load(),
		"failed_requests":      m.failedRequests.Load(),
		"searches":             m.searches.Load(),
		"candidates":           m.candidates.Load(),
		"improvements":         m.improvements.Load(),
		"verifications":        m.verifications.Load(),
	}
}
