package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPrometheusMiddleware_RecordsStatusAndDuration(t *testing.T) {
	t.Run("success increments 200 counter and duration", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		mw := Prometheus(WithRegistry(reg))
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

		c := GetMetrics()
		if c == nil {
			t.Fatal("expected GetMetrics to return collector after initialization")
		}
		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/test", "200")); got != 1 {
			t.Fatalf("requests_total(/test,200)=%v, want 1", got)
		}
		if got := metricHistogramCount(t, c.requestDuration.WithLabelValues("/test")); got == 0 {
			t.Fatal("expected request_duration_seconds histogram to have sample count > 0")
		}
		if got := metricGaugeValue(t, c.requestsInflight); got != 0 {
			t.Fatalf("requests_inflight=%v, want 0 after request completes", got)
		}
	})

	t.Run("error status is labeled", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		mw := Prometheus(WithRegistry(reg))
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

		c := GetMetrics()
		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/test", "500")); got != 1 {
			t.Fatalf("requests_total(/test,500)=%v, want 1", got)
		}
	})
}

func TestPrometheusMiddleware_InflightDuringRequest(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	mw := Prometheus(WithRegistry(reg))
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := metricGaugeValue(t, GetMetrics().requestsInflight); got != 1 {
			t.Fatalf("requests_inflight=%v during request, want 1", got)
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
}

func TestMetricsRecordFunctions_WithInitializedMetrics(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	_ = Prometheus(WithRegistry(reg)) // initialize global metrics
	c := GetMetrics()
	if c == nil {
		t.Fatal("expected GetMetrics to return collector after initialization")
	}

	RecordRender(5*time.Millisecond, nil)
	RecordRender(time.Millisecond, errors.New("boom"))
	RecordReloadClientConnect()
	RecordReloadClientConnect()
	RecordReloadClientDisconnect()
	RecordReload()
	RecordBuild(100*time.Millisecond, nil)
	RecordWebSocketError("close")
	RecordFilesPublished(7)

	if got := metricCounterValue(t, c.rendersTotal.WithLabelValues("success")); got != 1 {
		t.Fatalf("renders_total(success)=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.rendersTotal.WithLabelValues("error")); got != 1 {
		t.Fatalf("renders_total(error)=%v, want 1", got)
	}
	if got := metricGaugeValue(t, c.reloadClients); got != 1 {
		t.Fatalf("reload_clients=%v, want 1 (connect x2, disconnect x1)", got)
	}
	if got := metricCounterValue(t, c.reloadsTotal); got != 1 {
		t.Fatalf("reloads_total=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.buildsTotal.WithLabelValues("success")); got != 1 {
		t.Fatalf("builds_total(success)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, c.buildDuration); got != 1 {
		t.Fatalf("build_duration_seconds count=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.wsErrors.WithLabelValues("close")); got != 1 {
		t.Fatalf("websocket_errors_total(close)=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.filesPublished); got != 7 {
		t.Fatalf("files_published_total=%v, want 7", got)
	}
}

func TestMetricsRecordFunctions_NoopWithoutInit(t *testing.T) {
	resetGlobalMetricsForTest()

	// None of these should panic before Prometheus() has run.
	RecordRender(time.Millisecond, nil)
	RecordReload()
	RecordReloadClientConnect()
	RecordReloadClientDisconnect()
	RecordBuild(time.Millisecond, nil)
	RecordWebSocketError("close")
	RecordFilesPublished(1)

	if GetMetrics() != nil {
		t.Fatal("expected GetMetrics to return nil before initialization")
	}
}
