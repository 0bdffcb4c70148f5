package server

import (
	"net/http"

	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/rs/zerolog/log"
)

func (s *Server) GenerateStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"state": compliance.GenerateSecureState()}, http.StatusOK)
	}
}

func (s *Server) GeneratePKCEHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pair, err := compliance.GeneratePKCECodes()
		if err != nil {
			log.Err(err).Str("request_id", requestID(r)).Msg("PKCE generation failed")
			writeJSONError(w, oauth2.ErrorServerError, "could not generate PKCE pair", http.StatusInternalServerError)
			return
		}
		writeJSON(w, pair, http.StatusOK)
	}
}
