// Package app holds the oauthcheck command tree.
package app

import (
	"errors"

	"github.com/fatih/color"
	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/spf13/cobra"
)

// ErrResultInvalid is returned by a command whose validation result carries errors. The
// result itself has already been printed.
var ErrResultInvalid = errors.New("validation failed")

type rootOptions struct {
	maxScopeLength int
	allowHTTP      bool
	schemes        []string
	asJSON         bool
	noColor        bool
}

func (o *rootOptions) validator() *compliance.Validator {
	return compliance.NewValidator(
		compliance.WithRequireHTTPSRedirectURI(!o.allowHTTP),
		compliance.WithAllowedRedirectURISchemes(o.schemes...),
		compliance.WithMaxScopeLength(o.maxScopeLength),
	)
}

// NewRootCmd builds the oauthcheck command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "oauthcheck",
		Short: "Check OAuth 2.0 requests for RFC 6749 / RFC 7636 compliance",
		Long: `oauthcheck validates OAuth 2.0 authorization and token requests against
RFC 6749 and the PKCE extension (RFC 7636).

Every check runs and all errors and warnings are reported together. The exit
status is 1 when any error is found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.maxScopeLength, "max-scope-length", 0, "maximum scope length in bytes (0 = unbounded)")
	flags.BoolVar(&opts.allowHTTP, "allow-http", false, "accept http redirect URIs for hosts other than localhost")
	flags.StringSliceVar(&opts.schemes, "schemes", []string{"https", "http"}, "allowed redirect URI schemes")
	flags.BoolVar(&opts.asJSON, "json", false, "print results as JSON")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(
		newAuthorizeCmd(opts),
		newTokenCmd(opts),
		newFlowCmd(opts),
		newRedirectURICmd(opts),
		newScopeCmd(opts),
		newAccessTokenCmd(opts),
		newStateCmd(opts),
		newPKCECmd(opts),
	)
	return rootCmd
}
