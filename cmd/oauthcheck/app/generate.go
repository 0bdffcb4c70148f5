package app

import (
	"fmt"

	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/spf13/cobra"
)

func newStateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Generate a random state value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := compliance.GenerateSecureState()
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), map[string]string{"state": state})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), state)
			return err
		},
	}
}

func newPKCECmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pkce",
		Short: "Generate an S256 code_verifier / code_challenge pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := compliance.GeneratePKCECodes()
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), pair)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", label("code_verifier:        "), pair.CodeVerifier)
			fmt.Fprintf(w, "%s %s\n", label("code_challenge:       "), pair.CodeChallenge)
			fmt.Fprintf(w, "%s %s\n", label("code_challenge_method:"), pair.CodeChallengeMethod)
			return nil
		},
	}
}
