package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/doodlesbykumbi/accrisk/pkg/automation"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithStoreError maps store sentinels to status codes
func respondWithStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrRiskNotFound), errors.Is(err, store.ErrAutomationNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidRiskKind),
		errors.Is(err, store.ErrInvalidUsername),
		errors.Is(err, automation.ErrMalformedID):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, store.ErrForeignKeyViolation):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
