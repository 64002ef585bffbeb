package metrics

import (
	"esveikata-finder/internal/pkg/constvars"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FinderMetrics exposes counters for slot lookups and remote requests.
// All methods are safe on a nil receiver.
type FinderMetrics struct {
	lookupsTotal       *prometheus.CounterVec
	lookupLatency      prometheus.Histogram
	remoteRequests     *prometheus.CounterVec
	activeSessions     prometheus.Gauge
	activeTimedSearch  prometheus.Gauge
	notificationsTotal *prometheus.CounterVec
}

func NewFinderMetrics(reg prometheus.Registerer) *FinderMetrics {
	m := &FinderMetrics{
		lookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "search",
			Name:      "lookups_total",
			Help:      "Appointment slot lookups by outcome",
		}, []string{"outcome", "timed"}),
		lookupLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "search",
			Name:      "lookup_duration_seconds",
			Help:      "Duration of appointment slot lookups",
			Buckets:   prometheus.DefBuckets,
		}),
		remoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "esveikata",
			Name:      "requests_total",
			Help:      "Requests sent to the booking portal",
		}, []string{"resource", "status"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Open finder sessions",
		}),
		activeTimedSearch: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "sessions",
			Name:      "timed_search_active",
			Help:      "Sessions with timed search switched on",
		}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "notifications",
			Name:      "published_total",
			Help:      "Slot availability notifications by status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.lookupsTotal, m.lookupLatency, m.remoteRequests, m.activeSessions, m.activeTimedSearch, m.notificationsTotal)
	return m
}

func (m *FinderMetrics) ObserveLookup(outcome string, timed bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.lookupsTotal.WithLabelValues(outcome, strconv.FormatBool(timed)).Inc()
	m.lookupLatency.Observe(elapsed.Seconds())
}

// ObserveRemoteRequest matches the esveikata.Requester Observe hook.
func (m *FinderMetrics) ObserveRemoteRequest(resource string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.remoteRequests.WithLabelValues(resource, status).Inc()
}

func (m *FinderMetrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *FinderMetrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *FinderMetrics) TimedSearchToggled(active bool) {
	if m == nil {
		return
	}
	if active {
		m.activeTimedSearch.Inc()
		return
	}
	m.activeTimedSearch.Dec()
}

func (m *FinderMetrics) ObserveNotification(err error) {
	if m == nil {
		return
	}
	status := constvars.OutcomeSuccess
	if err != nil {
		status = constvars.OutcomeFailure
	}
	m.notificationsTotal.WithLabelValues(status).Inc()
}
