package edhoc

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// COSE key parameter values for an EC2 key on P-256.
const (
	coseKeyTypeEC2 = 2
	coseCurveP256  = 1
)

// encMode is the CBOR encoder mode for credential structures.
// The authorization server expects canonical (deterministic) encoding.
var encMode cbor.EncMode

func init() {
	opts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	var err error
	encMode, err = opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}
}

// coseKey is the COSE_Key map for an EC2 public key.
type coseKey struct {
	Kty int    `cbor:"1,keyasint"`
	Crv int    `cbor:"-1,keyasint"`
	X   []byte `cbor:"-2,keyasint"`
	Y   []byte `cbor:"-3,keyasint"`
}

// confirmation is the cnf claim wrapping a COSE_Key.
type confirmation struct {
	COSEKey coseKey `cbor:"1,keyasint"`
}

// credentialCCS is the CWT claims set carrying the device public key
// under the cnf (8) claim.
type credentialCCS struct {
	Cnf confirmation `cbor:"8,keyasint"`
}

// CredentialCCS canonically CBOR-encodes the device public key as the
// claims set {8: {1: {1: 2, -1: 1, -2: x, -3: y}}} understood by the
// authorization server's provisioning tooling.
func CredentialCCS(x, y []byte) ([]byte, error) {
	pk, err := NewPublicKey(x, y)
	if err != nil {
		return nil, err
	}
	ccs := credentialCCS{
		Cnf: confirmation{
			COSEKey: coseKey{
				Kty: coseKeyTypeEC2,
				Crv: coseCurveP256,
				X:   pk.X,
				Y:   pk.Y,
			},
		},
	}
	return encMode.Marshal(ccs)
}
