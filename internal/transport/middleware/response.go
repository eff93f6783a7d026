package middleware

import (
	"encoding/json"
	"net/http"
)

// writeStatus writes the bare {"status":code} envelope.
func writeStatus(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(struct {
		Status int `json:"status"`
	}{Status: code})
}
