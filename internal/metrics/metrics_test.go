package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	m := New()

	m.RunFinished("ok")
	m.RunFinished("ok")
	m.Fallback("extractor", "backend_error")
	m.ObserveStage(StageTranscribe, 2*time.Second)
	m.ObserveRun(42, 3)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	byName := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				byName[mf.GetName()] += metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				byName[mf.GetName()] += float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	assert.Equal(t, 2.0, byName["minutes_runs_total"])
	assert.Equal(t, 1.0, byName["minutes_fallbacks_total"])
	assert.Equal(t, 1.0, byName["minutes_stage_seconds"])
	assert.Equal(t, 1.0, byName["minutes_audio_seconds"])
	assert.Equal(t, 1.0, byName["minutes_action_items"])
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RunFinished("ok")
		m.Fallback("summarizer", "final")
		m.ObserveStage(StageExport, time.Millisecond)
		m.ObserveRun(1, 1)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.RunFinished("failed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `minutes_runs_total{status="failed"} 1`)
}
