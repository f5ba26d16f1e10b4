package vb6server

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorResponse is the JSON body returned for any non-2xx response.
type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("vb6server: could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, req *http.Request, status int, userMsg string) {
	log.Printf("vb6server: HTTP-%d %s %s: %s", status, req.Method, req.URL.Path, userMsg)
	writeJSON(w, status, errorResponse{Error: userMsg, Status: status})
}

// decodeJSON reads and unmarshals a request body into v, which must be a
// pointer.
func decodeJSON(req *http.Request, v interface{}) error {
	defer req.Body.Close()
	return json.NewDecoder(req.Body).Decode(v)
}
