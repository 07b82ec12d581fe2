package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stage names used as label values.
const (
	StageConvert    = "convert"
	StageTranscribe = "transcribe"
	StageSummarize  = "summarize"
	StageExtract    = "extract"
	StageExport     = "export"
)

// Metrics holds the Prometheus collectors for minutes runs. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	RunsTotal      *prometheus.CounterVec
	StageSeconds   *prometheus.HistogramVec
	FallbacksTotal *prometheus.CounterVec
	AudioSeconds   prometheus.Histogram
	ActionItems    prometheus.Histogram

	registry *prometheus.Registry
}

// New creates the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minutes_runs_total",
				Help: "Total pipeline runs by outcome",
			},
			[]string{"status"},
		),
		StageSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "minutes_stage_seconds",
				Help:    "Latency per pipeline stage",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"stage"},
		),
		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minutes_fallbacks_total",
				Help: "Degraded results by component and reason",
			},
			[]string{"component", "reason"},
		),
		AudioSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "minutes_audio_seconds",
				Help:    "Duration of transcribed audio",
				Buckets: []float64{30, 60, 300, 600, 1200, 1800, 3600, 7200},
			},
		),
		ActionItems: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "minutes_action_items",
				Help:    "Action items extracted per run",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			},
		),
		registry: reg,
	}
}

func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageSeconds.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Metrics) RunFinished(status string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) Fallback(component, reason string) {
	if m == nil {
		return
	}
	m.FallbacksTotal.WithLabelValues(component, reason).Inc()
}

func (m *Metrics) ObserveRun(audioSeconds float64, actionItems int) {
	if m == nil {
		return
	}
	m.AudioSeconds.Observe(audioSeconds)
	m.ActionItems.Observe(float64(actionItems))
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
