// Package credential defines the device credential record written at
// commissioning time and shared between the generator and the converter
// commands.
//
// Each record is one YAML document in a file named <audience>.yaml,
// preceded by a license comment block. The field names and encodings are
// an interchange contract with the authorization server deployment and
// must not change: 32-byte scalars and coordinates are stored as
// lowercase hex strings.
package credential
