package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jrsteele09/go-oauth-compliance/cmd/oauthcheck/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, app.ErrResultInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
