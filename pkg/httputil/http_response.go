package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// StatusFor maps a service error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch errorvalues.KindOf(err) {
	case errorvalues.KindNotAuthenticated:
		return http.StatusUnauthorized
	case errorvalues.KindNotFound:
		return http.StatusNotFound
	case errorvalues.KindInvalidState:
		return http.StatusConflict
	case errorvalues.KindValidation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// WriteServiceError answers with the status StatusFor picks. Client errors
// carry err as details, internal ones hide it behind message.
func WriteServiceError(w http.ResponseWriter, err error, message string) int {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		WriteErrorResponse(w, code, message, nil)
		return code
	}
	WriteErrorResponse(w, code, message, err)
	return code
}
