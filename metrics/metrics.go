// Package metrics exposes Prometheus-format counters for the protocol
// service on a dedicated listener.
package metrics

import (
	"context"
	"net/http"

	vmetrics "github.com/VictoriaMetrics/metrics"
)

// Counters tracked by the protocol service.
var (
	SendsTotal         = vmetrics.NewCounter("otpnet_sends_total")
	SendErrorsTotal    = vmetrics.NewCounter("otpnet_send_errors_total")
	ViolationsTotal    = vmetrics.NewCounter("otpnet_secrecy_violations_total")
	ExhaustionsTotal   = vmetrics.NewCounter("otpnet_exhausted_allocations_total")
	ReceivesTotal      = vmetrics.NewCounter("otpnet_receives_total")
	ReceiveErrorsTotal = vmetrics.NewCounter("otpnet_receive_errors_total")
)

// MetricsServer serves the /metrics endpoint on its own address so the
// scrape surface stays off the public API listener.
type MetricsServer struct {
	srv *http.Server
}

// New creates a metrics server listening on addr. If addr is empty the
// server is created but never started by callers.
func New(addr string) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		vmetrics.WritePrometheus(w, true)
	})

	return &MetricsServer{
		srv: &http.Server{Addr: addr, Handler: mux},
	}, nil
}

// ListenAndServe starts serving metrics. It blocks until shutdown.
func (m *MetricsServer) ListenAndServe() error {
	return m.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
