package rest

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/bambora-gateway/internal/api"
	"github.com/DanielPopoola/bambora-gateway/internal/application"
)

const CodeValidation = "VALIDATION_ERROR"

// BuildErrorResponse maps an application error to its status and body.
func BuildErrorResponse(err error) (int, api.ErrorEnvelope) {
	return application.ToHTTPStatus(err), api.ErrorEnvelope{
		Success: false,
		Error: api.ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: err.Error(),
		},
	}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error) {
	status, body := BuildErrorResponse(err)
	writeJSON(w, status, body)
}

func ValidationErrorResponse(message string) api.ErrorEnvelope {
	return api.ErrorEnvelope{
		Success: false,
		Error: api.ErrorDetail{
			Code:    CodeValidation,
			Message: message,
		},
	}
}

func WriteValidationError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse(message))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
