package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/pkg/errors"
)

// flowRequest is the JSON body of the flow validation and token proxy endpoints.
type flowRequest struct {
	Authorization *oauth2.AuthorizationRequest `json:"authorization"`
	Token         *oauth2.TokenRequest         `json:"token"`
	ExpectedState *string                      `json:"expected_state,omitempty"`
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}

// ValidateAuthorizeHandler validates authorization request parameters sent as a form body
// or query string.
func (s *Server) ValidateAuthorizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSONError(w, oauth2.ErrorInvalidRequest, "malformed form body", http.StatusBadRequest)
			return
		}
		writeJSON(w, s.validator.ValidateAuthorizationRequest(oauth2.AuthorizationRequestFromValues(r.Form)), http.StatusOK)
	}
}

func (s *Server) ValidateTokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSONError(w, oauth2.ErrorInvalidRequest, "malformed form body", http.StatusBadRequest)
			return
		}
		writeJSON(w, s.validator.ValidateTokenRequest(oauth2.TokenRequestFromValues(r.PostForm)), http.StatusOK)
	}
}

func (s *Server) ValidateFlowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeFlowRequest(r)
		if err != nil {
			writeJSONError(w, oauth2.ErrorInvalidRequest, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, s.validator.ValidateAuthorizationFlow(req.Authorization, req.Token, req.ExpectedState), http.StatusOK)
	}
}

func (s *Server) ValidateRedirectURIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.validator.ValidateRedirectURI(r.FormValue(oauth2.ParamRedirectURI)), http.StatusOK)
	}
}

func (s *Server) ValidateScopeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.validator.ValidateScope(r.FormValue(oauth2.ParamScope)), http.StatusOK)
	}
}

func (s *Server) ValidateAccessTokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.validator.ValidateAccessToken(r.FormValue("token")), http.StatusOK)
	}
}

func decodeFlowRequest(r *http.Request) (*flowRequest, error) {
	var req flowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(err, "malformed JSON body")
	}
	return &req, nil
}
