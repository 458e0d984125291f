package endpoints

import (
	"net/http"
	"os"

	"github.com/doodlesbykumbi/accrisk/pkg/server"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// StatusResponse is the body of GET /
type StatusResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the unauthenticated status endpoint
func RegisterStatusEndpoints(s *server.Server) {
	// GET / - Status (no auth required)
	s.Router.HandleFunc("/", handleStatus(s.HealthStore)).Methods("GET")
}

func handleStatus(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("ACCRISK_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, StatusResponse{
				Status:   "error",
				Version:  version,
				Database: "unreachable",
				Error:    "database connectivity check failed",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:   "ok",
			Version:  version,
			Database: "ok",
		})
	}
}
