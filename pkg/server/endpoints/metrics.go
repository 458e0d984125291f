package endpoints

import (
	"github.com/doodlesbykumbi/accrisk/pkg/metrics"
	"github.com/doodlesbykumbi/accrisk/pkg/server"
)

// RegisterMetricsEndpoint exposes Prometheus metrics at /metrics (no auth required)
func RegisterMetricsEndpoint(s *server.Server) {
	metrics.Init()
	s.Router.Handle("/metrics", metrics.Handler()).Methods("GET")
}
