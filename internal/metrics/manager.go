package metrics

import (
	"fitnesshub/fitness-app/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterSessionsCompleted   *prometheus.CounterVec
	CounterCompletionRejected  *prometheus.CounterVec
	CounterExercisesLogged     *prometheus.CounterVec
	CounterFeedEvents          *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests      prometheus.Gauge
	GaugeStreamClients prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitnesshub", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitnesshub", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterSessionsCompleted := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_completed",
		Help:      "The total number of completed workout sessions",
	}, []string{"workout_type"})
	counterCompletionRejected := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "completion_rejected",
		Help:      "The total number of rejected session completions",
	}, []string{"reason"})
	counterExercisesLogged := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exercises_logged",
		Help:      "The total number of logged exercises",
	}, []string{"workout_type"})
	counterFeedEvents := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "feed_events",
		Help:      "The total number of published feed events",
	}, []string{"type"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimited := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of requests rejected by the rate limiter",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeStreamClients := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "feed_stream_clients",
		Help:      "Current number of connected feed stream clients",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0001, 0.0005, 0.001, 0.005, 0.01,
				0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 60,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
	)

	return &Manager{
		CounterRequests:            counterRequests,
		CounterSessionsCompleted:   counterSessionsCompleted,
		CounterCompletionRejected:  counterCompletionRejected,
		CounterExercisesLogged:     counterExercisesLogged,
		CounterFeedEvents:          counterFeedEvents,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimited,
		GaugeRequests:              gaugeRequests,
		GaugeStreamClients:         gaugeStreamClients,
		HistRequestDuration:        histReqDuration,
	}
}

func (m *Manager) SessionCompleted(workoutType domain.WorkoutType) {
	m.CounterSessionsCompleted.WithLabelValues(string(workoutType)).Inc()
}

func (m *Manager) CompletionRejected(reason string) {
	m.CounterCompletionRejected.WithLabelValues(reason).Inc()
}

func (m *Manager) ExerciseLogged(workoutType domain.WorkoutType) {
	m.CounterExercisesLogged.WithLabelValues(string(workoutType)).Inc()
}

func (m *Manager) FeedEvent(eventType domain.FeedEventType) {
	m.CounterFeedEvents.WithLabelValues(string(eventType)).Inc()
}
