package commands

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/coap-security/coap-ace-poc-configs/pkg/credential"
	"github.com/coap-security/coap-ace-poc-configs/pkg/edhoc"
)

// RunPlayground runs the playground command: one provisioning call per
// credential file, printed to stdout for shell execution. A malformed
// as_uri aborts the whole run.
func RunPlayground(args []string, stdout, stderr io.Writer) int {
	dir, err := parseDirArgs("playground", args, printPlaygroundUsage)
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
		baseURL, realm, err := credential.ParseASURI(f.Record.ASURI)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", f.Path, err)
			return exitCommandError
		}

		keyArg := ""
		if f.Record.HasEdhocKey() {
			pk, err := f.Record.EdhocPublicKey()
			if err != nil {
				fmt.Fprintf(stderr, "Error: %s: %v\n", f.Path, err)
				return exitCommandError
			}
			ccs, err := edhoc.CredentialCCS(pk.X, pk.Y)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %s: %v\n", f.Path, err)
				return exitCommandError
			}
			keyArg = "--p256-public-key " + base64.StdEncoding.EncodeToString(ccs)
		}

		// Line format is fixed by the downstream provisioning script.
		fmt.Fprintf(stdout, "create-resource-server-in-realm.py --identifier %s --realm %s %s %s --admin-base-url %s:8443\n",
			f.Record.Audience, realm, keyArg, baseURL, baseURL)
	}

	return exitSuccess
}

func printPlaygroundUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: ace-cred playground [options]

Prints one create-resource-server-in-realm.py invocation per credential
file. The emitted commands expect admin credentials for the devices' AS
in the KEYCLOAK_ADMINUSER and KEYCLOAK_ADMINPASSWORD environment
variables; this command does not read them itself.

Options:
  -dir  Directory containing credential files [default: .]

Examples:
  ace-cred playground -dir configs/ | sh
  ace-cred playground -dir configs/ > provision.sh`)
}
