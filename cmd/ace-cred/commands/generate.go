package commands

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"

	"github.com/coap-security/coap-ace-poc-configs/pkg/credential"
	"github.com/coap-security/coap-ace-poc-configs/pkg/edhoc"
)

// Defaults for a demo batch.
const (
	defaultCount  = 10
	defaultIssuer = "AS"
	defaultASURI  = "https://as.coap.amsuess.com/realms/ace/ace-oauth/token"
)

// GenerateOptions configures the generate command.
type GenerateOptions struct {
	Count      int
	OutDir     string
	Issuer     string
	ASURI      string
	EDHOC      bool
	StaticKeys int
	ASPubX     string
	ASPubY     string
}

// RunGenerate runs the generate command.
func RunGenerate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseGenerateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Count < 1 {
		fmt.Fprintln(stderr, "Error: device count must be at least 1")
		return exitCommandError
	}
	if _, _, err := credential.ParseASURI(opts.ASURI); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if err := checkASPub(opts.ASPubX, opts.ASPubY); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	for i := 0; i < opts.Count; i++ {
		rec := &credential.Record{
			Issuer:   opts.Issuer,
			ASURI:    opts.ASURI,
			Audience: credential.Audience(i),
			ASPubX:   opts.ASPubX,
			ASPubY:   opts.ASPubY,
		}

		// Devices below the static-keys cutoff keep a symmetric
		// proof-of-possession key; the rest are EDHOC-only. Without
		// -edhoc the whole batch gets symmetric keys.
		if !opts.EDHOC || i < opts.StaticKeys {
			key, err := edhoc.RandomKey()
			if err != nil {
				fmt.Fprintf(stderr, "Error: %s: %v\n", rec.Audience, err)
				return exitCommandError
			}
			rec.Key = hex.EncodeToString(key)
		}
		if opts.EDHOC && i >= opts.StaticKeys {
			kp, err := edhoc.GenerateKeyPair()
			if err != nil {
				fmt.Fprintf(stderr, "Error: %s: %v\n", rec.Audience, err)
				return exitCommandError
			}
			rec.EdhocQ = hex.EncodeToString(kp.Private)
			rec.EdhocX = hex.EncodeToString(kp.X)
			rec.EdhocY = hex.EncodeToString(kp.Y)
		}

		path, err := rec.Save(opts.OutDir)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
	}

	return exitSuccess
}

// checkASPub validates the optional AS public key flags: both or
// neither, and the pair must name a point on P-256.
func checkASPub(xHex, yHex string) error {
	if xHex == "" && yHex == "" {
		return nil
	}
	if (xHex == "") != (yHex == "") {
		return fmt.Errorf("-as-pub-x and -as-pub-y must be given together")
	}
	x, err := hex.DecodeString(xHex)
	if err != nil {
		return fmt.Errorf("-as-pub-x is not valid hex: %w", err)
	}
	y, err := hex.DecodeString(yHex)
	if err != nil {
		return fmt.Errorf("-as-pub-y is not valid hex: %w", err)
	}
	pk, err := edhoc.NewPublicKey(x, y)
	if err != nil {
		return err
	}
	if !pk.OnCurve() {
		return fmt.Errorf("-as-pub-x/-as-pub-y is not a point on the P-256 curve")
	}
	return nil
}

func parseGenerateArgs(args []string) (GenerateOptions, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	opts := GenerateOptions{}

	fs.IntVar(&opts.Count, "n", defaultCount, "Number of devices to generate")
	fs.StringVar(&opts.OutDir, "out", ".", "Output directory")
	fs.StringVar(&opts.Issuer, "issuer", defaultIssuer, "Authorization server identifier")
	fs.StringVar(&opts.ASURI, "as-uri", defaultASURI, "Token endpoint URI")
	fs.BoolVar(&opts.EDHOC, "edhoc", false, "Generate EDHOC key pairs")
	fs.IntVar(&opts.StaticKeys, "static-keys", 0, "With -edhoc, number of leading devices that keep a symmetric key instead")
	fs.StringVar(&opts.ASPubX, "as-pub-x", "", "AS public key x coordinate (hex), embedded verbatim")
	fs.StringVar(&opts.ASPubY, "as-pub-y", "", "AS public key y coordinate (hex), embedded verbatim")

	fs.Usage = func() { printGenerateUsage(fs.Output()) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: ace-cred generate [options]

Writes one <audience>.yaml credential file per device, overwriting any
existing file of the same name. Audiences are d00, d01, ... zero-padded
to two digits. Regenerated keys must be copied to the AS afterwards.

Options:
  -n            Number of devices [default: 10]
  -out          Output directory [default: .]
  -issuer       Authorization server identifier [default: AS]
  -as-uri       Token endpoint URI (must be <BASE>/realms/<REALM>/ace-oauth/token)
  -edhoc        Generate a P-256 EDHOC key pair per device
  -static-keys  With -edhoc, the first N devices keep a symmetric key instead
  -as-pub-x     AS public key x coordinate (hex), copied into every record
  -as-pub-y     AS public key y coordinate (hex), copied into every record

Examples:
  ace-cred generate -n 10 -out configs/
  ace-cred generate -n 10 -edhoc -static-keys 4 -out configs/`)
}
