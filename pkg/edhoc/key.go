package edhoc

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"
)

// CoordinateSize is the byte length of a P-256 scalar or coordinate.
const CoordinateSize = 32

// CompressedPointSize is the byte length of a SEC1 compressed point
// (one parity byte plus the x coordinate).
const CompressedPointSize = 1 + CoordinateSize

// KeyPair holds a P-256 key pair as raw big-endian byte strings.
type KeyPair struct {
	// Private is the 32-byte private scalar.
	Private []byte

	// X and Y are the 32-byte public point coordinates.
	X []byte
	Y []byte
}

// GenerateKeyPair generates a fresh P-256 key pair using the system
// cryptographic random source.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	kp := &KeyPair{
		Private: make([]byte, CoordinateSize),
		X:       make([]byte, CoordinateSize),
		Y:       make([]byte, CoordinateSize),
	}
	priv.D.FillBytes(kp.Private)
	priv.PublicKey.X.FillBytes(kp.X)
	priv.PublicKey.Y.FillBytes(kp.Y)
	return kp, nil
}

// PublicKey returns the public half of the key pair.
func (kp *KeyPair) PublicKey() *PublicKey {
	return &PublicKey{X: kp.X, Y: kp.Y}
}

// RandomKey returns 32 cryptographically secure random bytes, suitable
// as a symmetric proof-of-possession key.
func RandomKey() ([]byte, error) {
	key := make([]byte, CoordinateSize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	return key, nil
}

// PublicKey is a P-256 public point held as raw coordinate bytes.
type PublicKey struct {
	X []byte
	Y []byte
}

// NewPublicKey builds a PublicKey from raw 32-byte big-endian
// coordinates. It checks lengths only; use OnCurve to verify the point.
func NewPublicKey(x, y []byte) (*PublicKey, error) {
	if len(x) != CoordinateSize {
		return nil, fmt.Errorf("x coordinate is %d bytes, want %d", len(x), CoordinateSize)
	}
	if len(y) != CoordinateSize {
		return nil, fmt.Errorf("y coordinate is %d bytes, want %d", len(y), CoordinateSize)
	}
	return &PublicKey{X: x, Y: y}, nil
}

// OnCurve reports whether the point satisfies the P-256 curve equation.
func (pk *PublicKey) OnCurve() bool {
	x := new(big.Int).SetBytes(pk.X)
	y := new(big.Int).SetBytes(pk.Y)
	return elliptic.P256().IsOnCurve(x, y)
}

// Compress returns the 33-byte SEC1 compressed encoding of the point
// (0x02 or 0x03 parity prefix followed by the x coordinate).
func (pk *PublicKey) Compress() []byte {
	x := new(big.Int).SetBytes(pk.X)
	y := new(big.Int).SetBytes(pk.Y)
	return elliptic.MarshalCompressed(elliptic.P256(), x, y)
}
