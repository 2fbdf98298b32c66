package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// writeJSON serializes v and writes it with the given HTTP status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeFailure reports a payload-level failure. Processing errors travel in
// the body, not in the HTTP status, so clients always get 200 with ok=false.
func writeFailure(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    false,
		"error": msg,
	})
}

// readBody reads a size-capped request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return io.ReadAll(r.Body)
}
