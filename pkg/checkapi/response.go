package checkapi

import (
	"encoding/json"
	"net/http"
)

// Error codes used in ErrorDetail.Code.
const (
	CodeBadRequest       = "bad_request"
	CodeInvalidArgument  = "invalid_argument"
	CodeUnknownValidator = "unknown_validator"
	CodeValidationError  = "validation_error"
	CodePayloadTooLarge  = "payload_too_large"
	CodeRateLimited      = "rate_limited"
	CodeInternalError    = "internal_error"
)

// JSONResponse is the envelope for every JSON body the API writes.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, JSONResponse{Data: data, Meta: meta})
}

func writeError(w http.ResponseWriter, status int, detail *ErrorDetail) {
	writeJSON(w, status, JSONResponse{Error: detail})
}
