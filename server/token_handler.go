package server

import (
	"net/http"

	apperrors "github.com/jrsteele09/go-oauth-compliance/internal/errors"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/rs/zerolog/log"
)

// errorResponder is implemented by errors that already know their OAuth2 error response.
type errorResponder interface {
	ErrorResponse() *oauth2.ErrorResponse
}

// TokenHandler proxies a token request to the configured identity provider once both legs
// of the flow pass validation. A refresh_token grant needs no authorization leg.
func (s *Server) TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.exchanger == nil {
			writeJSONError(w, oauth2.ErrorServerError, apperrors.ErrNotConfigured.Error(), http.StatusServiceUnavailable)
			return
		}

		req, err := decodeFlowRequest(r)
		if err != nil {
			writeJSONError(w, oauth2.ErrorInvalidRequest, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Token == nil {
			writeJSONError(w, oauth2.ErrorInvalidRequest, "token request is required", http.StatusBadRequest)
			return
		}

		var resp *oauth2.TokenResponse
		if req.Token.GrantType == oauth2.RefreshTokenGrant {
			resp, err = s.exchanger.Refresh(r.Context(), req.Token)
		} else {
			resp, err = s.exchanger.Exchange(r.Context(), req.Authorization, req.Token, req.ExpectedState)
		}
		if err != nil {
			writeExchangeError(w, r, err)
			return
		}
		writeJSON(w, resp, http.StatusOK)
	}
}

func writeExchangeError(w http.ResponseWriter, r *http.Request, err error) {
	var responder errorResponder
	switch {
	case apperrors.As(err, &responder):
		writeErrorResponse(w, responder.ErrorResponse(), http.StatusBadRequest)
	case apperrors.Is(err, apperrors.ErrInvalidRequest):
		writeJSONError(w, oauth2.ErrorInvalidRequest, err.Error(), http.StatusBadRequest)
	default:
		log.Err(err).Str("request_id", requestID(r)).Msg("Token proxy failed")
		writeJSONError(w, oauth2.ErrorServerError, "identity provider request failed", http.StatusBadGateway)
	}
}
