package response

import (
	"encoding/json"
	"net/http"

	"formvalidator/internal/core/domain/validation"
)

// ValidationResponse always carries every known field, with an empty list
// for fields that passed.
type ValidationResponse struct {
	Valid  bool                `json:"valid"`
	Errors validation.ErrorMap `json:"errors"`
}

type ErrorMapResponse struct {
	Errors validation.ErrorMap `json:"errors"`
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

func RespondErrorMap(w http.ResponseWriter, status int, errs validation.ErrorMap) {
	RespondJSON(w, status, ErrorMapResponse{Errors: errs})
}

func RespondValidation(w http.ResponseWriter, result validation.Result) {
	RespondJSON(w, http.StatusOK, ValidationResponse{
		Valid:  result.Valid(),
		Errors: result.Errors(),
	})
}
