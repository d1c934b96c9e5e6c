package helpers

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the uniform envelope for all API responses.
// swagger:model APIResponse
type APIResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// WriteSuccess writes a success envelope with the given status, message,
// and data.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, APIResponse{Success: true, Message: message, Data: data})
}

// WriteList writes a success envelope for list responses; count is the
// number of returned items.
func WriteList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data, Count: &count})
}

// WriteError writes a failure envelope with the given status and message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: false, Message: message})
}

// WriteValidationErrors writes a 400 failure envelope listing every
// violation found in the request payload.
func WriteValidationErrors(w http.ResponseWriter, errs []string) {
	writeJSON(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Message: "validation failed",
		Errors:  errs,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
