// Package edhoc provides the P-256 key material used for EDHOC-based
// device authorization: key pair and symmetric key generation, point
// validation and SEC1 compression, and the CBOR credential structure
// (CCS) consumed by the authorization server.
//
// All scalars and coordinates are raw 32-byte big-endian values; callers
// hex-encode them for storage in credential files.
package edhoc
