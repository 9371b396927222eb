package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	utils.WriteJSON(w, models.SyncAck{Accepted: 3}, http.StatusOK)
//	utils.WriteJSON(w, models.ErrorResponse{ErrorMessage: "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the errorMessage body every 4xx/5xx response of the
// sync API carries.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, struct {
		ErrorMessage string `json:"errorMessage"`
	}{ErrorMessage: message}, statusCode)
}
