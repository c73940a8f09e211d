package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bookmarks/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// HTML characters are written as-is: outbound bookmarks are already
// entity-escaped and must not be escaped a second time by the encoder.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(bytes.TrimRight(buf.Bytes(), "\n"))
}

// WriteError writes the standard error body {"error":{"message":...}}.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: models.ErrorMessage{Message: message}}, statusCode)
}
