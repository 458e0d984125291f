package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/accrisk/pkg/automation"
	"github.com/doodlesbykumbi/accrisk/pkg/server"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// RegisterAutomationsEndpoints registers the check automation endpoints
func RegisterAutomationsEndpoints(s *server.Server) {
	automationsRouter := s.Router.PathPrefix("/automations").Subrouter()
	automationsRouter.Use(s.JWTMiddleware.Middleware)

	// GET /automations/check/{id}/task - periodic job registration tuple
	automationsRouter.HandleFunc(
		"/check/{id}/task",
		handleCheckAutomationTask(s.AutomationsStore, s.Scheduler),
	).Methods("GET")
}

func handleCheckAutomationTask(automationsStore store.AutomationsStore, scheduler *automation.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		a, err := automationsStore.GetCheckAutomation(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		task, err := scheduler.RegisterTask(a)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, task)
	}
}
