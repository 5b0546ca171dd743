package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// WriteJSON encodes v and writes it with the given status. Encoding happens
// into a buffer first so an encode failure can still become a clean 500
// instead of a half-written body.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// a short write here means the client went away; nothing left to do
	_, _ = buf.WriteTo(w)
}

// ErrorParams describes one JSON error response: the HTTP status, a stable
// machine-readable code, and the error whose message becomes the human text.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError emits the error envelope {"error": <code>, "message": <text>}
// used by the guard middleware and the auth endpoints for API callers.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{
		"error":   p.ErrCode,
		"message": p.Err.Error(),
	})
}
