package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/lgbarn/chess-rules-go/internal/stats"
)

func gather(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric %s not found in registry", name)
	return nil
}

func TestNew_DefaultRegistry(t *testing.T) {
	c := New(nil)
	if c.registry != prometheus.DefaultRegisterer {
		t.Error("New(nil) did not fall back to the default registerer")
	}
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter(stats.MetricMovesApplied, 5)
	c.IncCounter(stats.MetricMovesApplied, 3)

	f := gather(t, reg, stats.MetricMovesApplied)
	if got := f.GetMetric()[0].GetCounter().GetValue(); got != 8 {
		t.Errorf("counter value = %v; want 8", got)
	}
	if f.GetHelp() != stats.Help[stats.MetricMovesApplied] {
		t.Errorf("help = %q; want %q", f.GetHelp(), stats.Help[stats.MetricMovesApplied])
	}
}

func TestCollector_SetGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge(stats.MetricPiecesOnBoard, 32)
	c.SetGauge(stats.MetricPiecesOnBoard, 30)

	f := gather(t, reg, stats.MetricPiecesOnBoard)
	if got := f.GetMetric()[0].GetGauge().GetValue(); got != 30 {
		t.Errorf("gauge value = %v; want 30", got)
	}
}

func TestCollector_ObserveHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveHistogram(stats.MetricResolveTime, 0.001)
	c.ObserveHistogram(stats.MetricResolveTime, 0.002)

	f := gather(t, reg, stats.MetricResolveTime)
	if got := f.GetMetric()[0].GetHistogram().GetSampleCount(); got != 2 {
		t.Errorf("sample count = %d; want 2", got)
	}
}

func TestCollector_UnknownMetricUsesNameAsHelp(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	c.IncCounter("custom_total", 1)

	f := gather(t, reg, "custom_total")
	if f.GetHelp() != "custom_total" {
		t.Errorf("help = %q; want custom_total", f.GetHelp())
	}
}

func TestCollector_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, second := New(reg), New(reg)

	first.IncCounter(stats.MetricChecks, 1)
	second.IncCounter(stats.MetricChecks, 2)

	f := gather(t, reg, stats.MetricChecks)
	if got := f.GetMetric()[0].GetCounter().GetValue(); got != 3 {
		t.Errorf("counter value = %v; want 3", got)
	}
}
