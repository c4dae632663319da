package infrastructure

import (
	"sync"
	"time"

	"forecastapi.app/internal/ports"
)

// CacheMetricsAdapter implements the CacheMetrics port. It keeps in-process counters for
// the JSON metrics endpoint and mirrors them to prometheus when created from a registry.
type CacheMetricsAdapter struct {
	cacheType  string
	collectors *cacheCollectors

	mu          sync.RWMutex
	hits        int64
	misses      int64
	lastUpdated time.Time
}

// NewCacheMetricsAdapter creates standalone cache metrics without prometheus export
func NewCacheMetricsAdapter(cacheType string) *CacheMetricsAdapter {
	return &CacheMetricsAdapter{cacheType: cacheType}
}

// RecordHit records a cache hit
func (m *CacheMetricsAdapter) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.lastUpdated = time.Now()
	if m.collectors != nil {
		m.collectors.hits.WithLabelValues(m.cacheType).Inc()
		m.collectors.requests.WithLabelValues(m.cacheType).Inc()
		m.updateHitRatio()
	}
}

// RecordMiss records a cache miss
func (m *CacheMetricsAdapter) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.lastUpdated = time.Now()
	if m.collectors != nil {
		m.collectors.misses.WithLabelValues(m.cacheType).Inc()
		m.collectors.requests.WithLabelValues(m.cacheType).Inc()
		m.updateHitRatio()
	}
}

// RecordOperation records the latency of a cache operation
func (m *CacheMetricsAdapter) RecordOperation(operation string, duration time.Duration) {
	if m.collectors == nil {
		return
	}
	m.collectors.latency.WithLabelValues(m.cacheType, operation).Observe(duration.Seconds())
}

// GetStats returns a snapshot of the counters
func (m *CacheMetricsAdapter) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.hits + m.misses
	var hitRatio float64
	if total > 0 {
		hitRatio = float64(m.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: m.lastUpdated,
	}
}

// must be called while holding the mutex
func (m *CacheMetricsAdapter) updateHitRatio() {
	total := m.hits + m.misses
	if total > 0 {
		m.collectors.hitRatio.WithLabelValues(m.cacheType).Set(float64(m.hits) / float64(total))
	}
}
