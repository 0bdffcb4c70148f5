package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/jrsteele09/go-oauth-compliance/internal/utils"
)

var (
	pass  = color.New(color.FgGreen, color.Bold).SprintFunc()
	fail  = color.New(color.FgRed, color.Bold).SprintFunc()
	warn  = color.New(color.FgYellow).SprintFunc()
	label = color.New(color.FgCyan).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
)

// printResult writes result as text or JSON and returns ErrResultInvalid when it has errors.
func printResult(w io.Writer, result *compliance.Result, asJSON bool) error {
	if asJSON {
		if err := printJSON(w, result); err != nil {
			return err
		}
	} else {
		printText(w, result)
	}
	if !result.Valid {
		return ErrResultInvalid
	}
	return nil
}

func printText(w io.Writer, result *compliance.Result) {
	if result.Valid {
		fmt.Fprintln(w, pass("PASS"))
	} else {
		fmt.Fprintln(w, fail("FAIL"))
	}
	codes := result.Codes()
	for i, msg := range result.Errors {
		fmt.Fprintf(w, "  %s %s %s\n", fail("error"), msg, gray("("+string(codes[i])+")"))
	}
	for _, msg := range result.Warnings {
		fmt.Fprintf(w, "  %s %s\n", warn("warning"), msg)
	}
}

func printStateCheck(w io.Writer, expected *string) {
	if expected == nil {
		fmt.Fprintln(w, gray("state check skipped (no --expected-state)"))
		return
	}
	fmt.Fprintf(w, "%s %q\n", label("expected state:"), utils.Value(expected))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
