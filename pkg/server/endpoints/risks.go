package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
	"github.com/doodlesbykumbi/accrisk/pkg/identity"
	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/risk"
	"github.com/doodlesbykumbi/accrisk/pkg/server"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// RiskResponse is the API form of an account risk. RiskDisplay is the label
// of Risk, or Risk itself for values no longer in the registry.
type RiskResponse struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	AssetID     string    `json:"asset_id"`
	Username    string    `json:"username"`
	Risk        string    `json:"risk"`
	RiskDisplay string    `json:"risk_display"`
	Confirmed   bool      `json:"confirmed"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RiskListResponse is a page of risks
type RiskListResponse struct {
	Count   int64          `json:"count"`
	Results []RiskResponse `json:"results"`
}

func toRiskResponse(r *model.AccountRisk) RiskResponse {
	return RiskResponse{
		ID:          r.ID,
		OrgID:       r.OrgID,
		AssetID:     r.AssetID,
		Username:    r.Username,
		Risk:        string(r.Risk),
		RiskDisplay: risk.DisplayLabel(string(r.Risk)),
		Confirmed:   r.Confirmed,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// RegisterRisksEndpoints registers the account risk review endpoints
func RegisterRisksEndpoints(s *server.Server) {
	risksStore := s.RisksStore
	listLimitMax := func() int { return s.Config().ListLimitMax }

	risksRouter := s.Router.PathPrefix("/risks").Subrouter()
	risksRouter.Use(s.JWTMiddleware.Middleware)

	// GET /risks/choices - registry (value, label) pairs
	risksRouter.HandleFunc("/choices", handleRiskChoices()).Methods("GET")

	// GET /risks?asset_id=&username=&risk=&confirmed=&limit=&offset=
	risksRouter.HandleFunc("", handleListRisks(risksStore, listLimitMax)).Methods("GET")

	// GET /risks/{id}
	risksRouter.HandleFunc("/{id}", handleGetRisk(risksStore)).Methods("GET")

	// POST /risks/{id}/confirm
	risksRouter.HandleFunc("/{id}/confirm", handleConfirmRisk(risksStore)).Methods("POST")

	// DELETE /risks/{id}
	risksRouter.HandleFunc("/{id}", handleDeleteRisk(risksStore)).Methods("DELETE")
}

func handleRiskChoices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, risk.Choices())
	}
}

func parseRiskFilter(r *http.Request, listLimitMax int) (store.RiskFilter, error) {
	q := r.URL.Query()
	filter := store.RiskFilter{
		AssetID:  q.Get("asset_id"),
		Username: q.Get("username"),
		Risk:     q.Get("risk"),
	}

	if v := q.Get("confirmed"); v != "" {
		confirmed, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("confirmed must be true or false")
		}
		filter.Confirmed = &confirmed
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, errors.New("limit must be a non-negative integer")
		}
		filter.Limit = limit
	}
	if filter.Limit == 0 || filter.Limit > listLimitMax {
		filter.Limit = listLimitMax
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filter, errors.New("offset must be a non-negative integer")
		}
		filter.Offset = offset
	}
	return filter, nil
}

func handleListRisks(risksStore store.RisksStore, listLimitMax func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseRiskFilter(r, listLimitMax())
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		risks, err := risksStore.List(filter)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		count, err := risksStore.Count(filter)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		results := make([]RiskResponse, 0, len(risks))
		for i := range risks {
			results = append(results, toRiskResponse(&risks[i]))
		}
		respondWithJSON(w, http.StatusOK, RiskListResponse{Count: count, Results: results})
	}
}

func handleGetRisk(risksStore store.RisksStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		row, err := risksStore.Get(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toRiskResponse(row))
	}
}

func handleConfirmRisk(risksStore store.RisksStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		caller, _ := identity.Get(r.Context())

		row, err := risksStore.Confirm(id)
		event := audit.RiskConfirmEvent{
			UserID:   identity.Subject(r.Context()),
			ClientIP: caller.ClientIP(),
			RiskID:   id,
			Success:  err == nil,
		}
		if err != nil {
			event.ErrorMessage = err.Error()
		}
		audit.Log(event)

		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, toRiskResponse(row))
	}
}

func handleDeleteRisk(risksStore store.RisksStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		caller, _ := identity.Get(r.Context())

		err := risksStore.Delete(id)
		event := audit.RiskDeleteEvent{
			UserID:   identity.Subject(r.Context()),
			ClientIP: caller.ClientIP(),
			RiskID:   id,
			Success:  err == nil,
		}
		if err != nil {
			event.ErrorMessage = err.Error()
		} else {
			event.Deleted = 1
		}
		audit.Log(event)

		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
