package respond

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// HTML writes an already rendered page or fragment.
func HTML(w http.ResponseWriter, r *http.Request, code int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(body)
}

// Status writes a bare status code with no body, as htmx expects for rejected swaps.
func Status(w http.ResponseWriter, r *http.Request, code int) {
	w.WriteHeader(code)
}
