package commands

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"

	"github.com/coap-security/coap-ace-poc-configs/pkg/credential"
)

// RunAdminValue runs the admin-value command. For every credential file
// it prints "<audience>: <base64 of the SEC1 compressed public key>" to
// stdout; devices without an EDHOC key are reported to stderr and
// skipped. The value is what the Keycloak extension expects in the
// "ec2-p256-public-key" resource attribute of the ace-oauth-key-value-store
// resource, a format internal to that extension.
func RunAdminValue(args []string, stdout, stderr io.Writer) int {
	dir, err := parseDirArgs("admin-value", args, printAdminValueUsage)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	files, err := credential.LoadDir(dir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	for _, f := range files {
		if !f.Record.HasEdhocKey() {
			fmt.Fprintf(stderr, "%s has no public key configured.\n", f.Record.Audience)
			continue
		}
		pk, err := f.Record.EdhocPublicKey()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", f.Path, err)
			return exitCommandError
		}
		if !pk.OnCurve() {
			fmt.Fprintf(stderr, "Error: %s: public key is not a point on the P-256 curve\n", f.Path)
			return exitCommandError
		}
		encoded := base64.StdEncoding.EncodeToString(pk.Compress())
		fmt.Fprintf(stdout, "%s: %s\n", f.Record.Audience, encoded)
	}

	return exitSuccess
}

// parseDirArgs parses the single -dir option shared by the file-scanning
// subcommands.
func parseDirArgs(name string, args []string, usage func(io.Writer)) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	dir := fs.String("dir", ".", "Directory containing credential files")
	fs.Usage = func() { usage(fs.Output()) }
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *dir, nil
}

func printAdminValueUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: ace-cred admin-value [options]

Encodes each device's EDHOC public key as the base64 compressed-point
value expected by the Keycloak admin GUI. Devices without a public key
are skipped with a warning on stderr.

Options:
  -dir  Directory containing credential files [default: .]`)
}
