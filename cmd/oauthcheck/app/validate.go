package app

import (
	"net/url"

	"github.com/jrsteele09/go-oauth-compliance/internal/utils"
	"github.com/jrsteele09/go-oauth-compliance/oauth2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAuthorizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "authorize <authorization-url>",
		Short: "Validate the parameters of an authorization request URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authReq, err := authorizationRequestFromURL(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts.validator().ValidateAuthorizationRequest(authReq), opts.asJSON)
		},
	}
}

type tokenFlags struct {
	grantType    string
	code         string
	refreshToken string
	redirectURI  string
	clientID     string
	codeVerifier string
}

func (f *tokenFlags) register(cmd *cobra.Command, defaultGrant string) {
	cmd.Flags().StringVar(&f.grantType, "grant-type", defaultGrant, "grant_type parameter")
	cmd.Flags().StringVar(&f.code, "code", "", "authorization code")
	cmd.Flags().StringVar(&f.refreshToken, "refresh-token", "", "refresh token")
	cmd.Flags().StringVar(&f.redirectURI, "redirect-uri", "", "redirect_uri parameter")
	cmd.Flags().StringVar(&f.clientID, "client-id", "", "client_id parameter")
	cmd.Flags().StringVar(&f.codeVerifier, "code-verifier", "", "PKCE code_verifier")
}

func (f *tokenFlags) request() *oauth2.TokenRequest {
	return &oauth2.TokenRequest{
		GrantType:    oauth2.GrantType(f.grantType),
		Code:         f.code,
		RefreshToken: f.refreshToken,
		RedirectURI:  f.redirectURI,
		ClientID:     f.clientID,
		CodeVerifier: f.codeVerifier,
	}
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	flags := &tokenFlags{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Validate a token request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), opts.validator().ValidateTokenRequest(flags.request()), opts.asJSON)
		},
	}
	flags.register(cmd, "")
	return cmd
}

func newFlowCmd(opts *rootOptions) *cobra.Command {
	flags := &tokenFlags{}
	var expectedState string
	cmd := &cobra.Command{
		Use:   "flow <authorization-url>",
		Short: "Validate an authorization request and the token request that follows it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authReq, err := authorizationRequestFromURL(args[0])
			if err != nil {
				return err
			}
			// Without --expected-state the state comparison is skipped.
			expected := utils.PtrIf(cmd.Flags().Changed("expected-state"), expectedState)
			if !opts.asJSON {
				printStateCheck(cmd.OutOrStdout(), expected)
			}
			result := opts.validator().ValidateAuthorizationFlow(authReq, flags.request(), expected)
			return printResult(cmd.OutOrStdout(), result, opts.asJSON)
		},
	}
	flags.register(cmd, string(oauth2.AuthorizationCodeGrant))
	cmd.Flags().StringVar(&expectedState, "expected-state", "", "state value stored before the redirect")
	return cmd
}

func newRedirectURICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "redirect-uri <uri>",
		Short: "Validate a redirect URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), opts.validator().ValidateRedirectURI(args[0]), opts.asJSON)
		},
	}
}

func newScopeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scope <scope>",
		Short: "Validate a space separated scope string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), opts.validator().ValidateScope(args[0]), opts.asJSON)
		},
	}
}

func newAccessTokenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "access-token <token>",
		Short: "Check the format of an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), opts.validator().ValidateAccessToken(args[0]), opts.asJSON)
		},
	}
}

// authorizationRequestFromURL accepts a full authorization URL or a bare query string.
func authorizationRequestFromURL(raw string) (*oauth2.AuthorizationRequest, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid authorization URL")
	}
	query := u.RawQuery
	if query == "" && u.Scheme == "" {
		query = u.Path
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, errors.Wrap(err, "invalid authorization URL query")
	}
	return oauth2.AuthorizationRequestFromValues(values), nil
}
