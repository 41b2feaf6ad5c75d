package credential

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/coap-security/coap-ace-poc-configs/pkg/edhoc"
)

// Record is a single device credential record.
//
// The optional EDHOC fields come in groups: edhoc_x and edhoc_y must be
// present together (the device's public point), as must as_pub_x and
// as_pub_y (the authorization server's public point, copied verbatim
// into every record for reference).
type Record struct {
	Issuer   string `yaml:"issuer"`
	ASURI    string `yaml:"as_uri"`
	Audience string `yaml:"audience"`
	Key      string `yaml:"key,omitempty"`
	EdhocQ   string `yaml:"edhoc_q,omitempty"`
	EdhocX   string `yaml:"edhoc_x,omitempty"`
	EdhocY   string `yaml:"edhoc_y,omitempty"`
	ASPubX   string `yaml:"as_pub_x,omitempty"`
	ASPubY   string `yaml:"as_pub_y,omitempty"`
}

// Audience returns the audience identifier for the i-th device of a
// batch: "d" followed by the index zero-padded to two digits.
func Audience(i int) string {
	return fmt.Sprintf("d%02d", i)
}

// HasEdhocKey reports whether the record carries an EDHOC public key.
func (r *Record) HasEdhocKey() bool {
	return r.EdhocX != ""
}

// EdhocPublicKey decodes the record's EDHOC public point. The caller is
// expected to have checked HasEdhocKey first.
func (r *Record) EdhocPublicKey() (*edhoc.PublicKey, error) {
	x, err := decodeField("edhoc_x", r.EdhocX)
	if err != nil {
		return nil, err
	}
	y, err := decodeField("edhoc_y", r.EdhocY)
	if err != nil {
		return nil, err
	}
	return edhoc.NewPublicKey(x, y)
}

// Validate checks the record against the interchange contract: required
// fields present, hex fields well-formed 32-byte values, point
// coordinates paired and on the P-256 curve, and a well-formed as_uri.
func (r *Record) Validate() error {
	if r.Audience == "" {
		return errors.New("missing audience")
	}
	if r.Issuer == "" {
		return errors.New("missing issuer")
	}
	if _, _, err := ParseASURI(r.ASURI); err != nil {
		return err
	}

	for _, f := range []struct{ name, value string }{
		{"key", r.Key},
		{"edhoc_q", r.EdhocQ},
		{"edhoc_x", r.EdhocX},
		{"edhoc_y", r.EdhocY},
		{"as_pub_x", r.ASPubX},
		{"as_pub_y", r.ASPubY},
	} {
		if f.value == "" {
			continue
		}
		if _, err := decodeField(f.name, f.value); err != nil {
			return err
		}
	}

	if err := validatePoint("edhoc", r.EdhocX, r.EdhocY); err != nil {
		return err
	}
	if err := validatePoint("as_pub", r.ASPubX, r.ASPubY); err != nil {
		return err
	}
	return nil
}

// validatePoint enforces the both-or-neither pairing of hex-encoded
// point coordinates and, when present, curve membership.
func validatePoint(name, xHex, yHex string) error {
	if (xHex == "") != (yHex == "") {
		return fmt.Errorf("%s_x and %s_y must be present together", name, name)
	}
	if xHex == "" {
		return nil
	}
	x, err := decodeField(name+"_x", xHex)
	if err != nil {
		return err
	}
	y, err := decodeField(name+"_y", yHex)
	if err != nil {
		return err
	}
	pk, err := edhoc.NewPublicKey(x, y)
	if err != nil {
		return err
	}
	if !pk.OnCurve() {
		return fmt.Errorf("%s_x/%s_y is not a point on the P-256 curve", name, name)
	}
	return nil
}

// decodeField decodes a hex field and enforces the 32-byte length.
func decodeField(name, value string) ([]byte, error) {
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid hex: %w", name, err)
	}
	if len(b) != edhoc.CoordinateSize {
		return nil, fmt.Errorf("%s is %d bytes, want %d", name, len(b), edhoc.CoordinateSize)
	}
	return b, nil
}
