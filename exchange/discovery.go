package exchange

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	apperrors "github.com/jrsteele09/go-oauth-compliance/internal/errors"
	"github.com/rs/zerolog/log"
)

// Discover reads the provider's OpenID configuration from issuer and returns a Client for
// its authorization and token endpoints. Endpoints already set in cfg win.
func Discover(ctx context.Context, issuer string, cfg Config, options ...Option) (*Client, error) {
	hc := http.DefaultClient
	probe := &Client{}
	for _, opt := range options {
		opt(probe)
	}
	if probe.httpClient != nil {
		hc = probe.httpClient
	}

	provider, err := oidc.NewProvider(oidc.ClientContext(ctx, hc), issuer)
	if err != nil {
		return nil, fmt.Errorf("[Discover] %w: %w", apperrors.ErrProviderDiscovery, err)
	}

	endpoint := provider.Endpoint()
	if cfg.AuthURL == "" {
		cfg.AuthURL = endpoint.AuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = endpoint.TokenURL
	}
	log.Info().Str("issuer", issuer).Str("token_endpoint", cfg.TokenURL).Msg("Discovered identity provider")

	return New(cfg, options...)
}
