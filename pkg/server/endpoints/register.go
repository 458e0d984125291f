package endpoints

import (
	"github.com/doodlesbykumbi/accrisk/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterMetricsEndpoint(srv)
	RegisterRisksEndpoints(srv)
	RegisterAutomationsEndpoints(srv)
}
