package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-oauth-compliance/oauth2"
)

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, code oauth2.ErrorCode, description string, statusCode int) {
	writeErrorResponse(w, oauth2.NewErrorResponse(code, description, ""), statusCode)
}

func writeErrorResponse(w http.ResponseWriter, resp *oauth2.ErrorResponse, statusCode int) {
	writeJSON(w, resp, statusCode)
}
