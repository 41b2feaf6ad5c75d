package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/coap-security/coap-ace-poc-configs/pkg/credential"
)

// RunValidate runs the validate command: every credential file is
// checked against the interchange contract and reported as OK or FAIL.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	dir, err := parseDirArgs("validate", args, printValidateUsage)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	files, err := credential.LoadDir(dir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if len(files) == 0 {
		fmt.Fprintf(stderr, "Error: no credential files in %s\n", dir)
		return exitCommandError
	}

	failed := 0
	for _, f := range files {
		if err := checkFile(f); err != nil {
			fmt.Fprintf(stdout, "FAIL %s: %v\n", f.Path, err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "OK %s\n", f.Path)
	}

	if failed > 0 {
		fmt.Fprintf(stdout, "\n%d of %d files failed\n", failed, len(files))
		return exitValidation
	}
	return exitSuccess
}

// checkFile validates the record and the filename/audience agreement.
func checkFile(f credential.File) error {
	if err := f.Record.Validate(); err != nil {
		return err
	}
	want := f.Record.Audience + ".yaml"
	if got := filepath.Base(f.Path); got != want {
		return fmt.Errorf("filename %s does not match audience %s", got, f.Record.Audience)
	}
	if !strings.HasPrefix(f.Record.Audience, "d") {
		return fmt.Errorf("audience %s does not use the d<NN> form", f.Record.Audience)
	}
	return nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: ace-cred validate [options]

Checks every credential file in the directory: required fields, hex
lengths, point pairing and curve membership, as_uri shape, and
filename/audience agreement.

Options:
  -dir  Directory containing credential files [default: .]`)
}
