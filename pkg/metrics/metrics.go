package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the flash sale core.
// All record methods are safe to call on a nil receiver so that
// components can run without metrics wired in.
type Metrics struct {
	TickTotal    prometheus.Counter
	TickErrors   prometheus.Counter
	TickSkipped  prometheus.Counter
	TickDuration prometheus.Histogram

	Transitions        *prometheus.CounterVec
	TransitionFailures *prometheus.CounterVec
	LostStatusWrites   prometheus.Counter

	PendingBehindActive prometheus.Gauge

	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CacheRefreshErrors prometheus.Counter

	ConsistencyAlarms prometheus.Counter
	OverlayFailOpen   prometheus.Counter
	PercentClamped    prometheus.Counter
}

// New creates and registers all metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TickTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "controller_ticks_total",
			Help:      "Total number of lifecycle controller ticks",
		}),
		TickErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "controller_tick_errors_total",
			Help:      "Total number of ticks that ended with an error",
		}),
		TickSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "controller_ticks_skipped_total",
			Help:      "Total number of ticks abandoned on timeout",
		}),
		TickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flashsale",
			Name:      "controller_tick_duration_seconds",
			Help:      "Duration of lifecycle controller ticks",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "campaign_transitions_total",
			Help:      "Total number of persisted campaign status transitions",
		}, []string{"phase"}),
		TransitionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "campaign_transition_failures_total",
			Help:      "Total number of campaign status transitions that failed to persist",
		}, []string{"phase"}),
		LostStatusWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "campaign_lost_status_writes_total",
			Help:      "Total number of conditional status writes lost to a concurrent writer",
		}),
		PendingBehindActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "flashsale",
			Name:      "campaigns_pending_behind_active",
			Help:      "Number of eligible scheduled campaigns waiting for the active slot",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "active_campaign_cache_hits_total",
			Help:      "Total number of active campaign cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "active_campaign_cache_misses_total",
			Help:      "Total number of active campaign cache misses",
		}),
		CacheRefreshErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "active_campaign_cache_refresh_errors_total",
			Help:      "Total number of failed active campaign cache refreshes",
		}),
		ConsistencyAlarms: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "consistency_alarms_total",
			Help:      "Total number of detected single-active invariant violations",
		}),
		OverlayFailOpen: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "overlay_fail_open_total",
			Help:      "Total number of overlay calls served unmodified due to a degraded cache",
		}),
		PercentClamped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flashsale",
			Name:      "overlay_percent_clamped_total",
			Help:      "Total number of discount percents clamped into [0, 100]",
		}),
	}
}

// RecordTick ...
func (m *Metrics) RecordTick(d time.Duration) {
	if m == nil {
		return
	}
	m.TickTotal.Inc()
	m.TickDuration.Observe(d.Seconds())
}

// RecordTickError ...
func (m *Metrics) RecordTickError() {
	if m == nil {
		return
	}
	m.TickErrors.Inc()
}

// RecordTickSkipped ...
func (m *Metrics) RecordTickSkipped() {
	if m == nil {
		return
	}
	m.TickSkipped.Inc()
}

// RecordTransition ...
func (m *Metrics) RecordTransition(phase string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(phase).Inc()
}

// RecordTransitionFailure ...
func (m *Metrics) RecordTransitionFailure(phase string) {
	if m == nil {
		return
	}
	m.TransitionFailures.WithLabelValues(phase).Inc()
}

// RecordLostStatusWrite ...
func (m *Metrics) RecordLostStatusWrite() {
	if m == nil {
		return
	}
	m.LostStatusWrites.Inc()
}

// SetPendingBehindActive ...
func (m *Metrics) SetPendingBehindActive(n int) {
	if m == nil {
		return
	}
	m.PendingBehindActive.Set(float64(n))
}

// RecordCacheHit ...
func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// RecordCacheMiss ...
func (m *Metrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}

// RecordCacheRefreshError ...
func (m *Metrics) RecordCacheRefreshError() {
	if m == nil {
		return
	}
	m.CacheRefreshErrors.Inc()
}

// RecordConsistencyAlarm ...
func (m *Metrics) RecordConsistencyAlarm() {
	if m == nil {
		return
	}
	m.ConsistencyAlarms.Inc()
}

// RecordOverlayFailOpen ...
func (m *Metrics) RecordOverlayFailOpen() {
	if m == nil {
		return
	}
	m.OverlayFailOpen.Inc()
}

// RecordPercentClamped ...
func (m *Metrics) RecordPercentClamped() {
	if m == nil {
		return
	}
	m.PercentClamped.Inc()
}
