package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseASURI(t *testing.T) {
	base, realm, err := ParseASURI("https://host/realms/myrealm/ace-oauth/token")
	require.NoError(t, err)
	assert.Equal(t, "https://host", base)
	assert.Equal(t, "myrealm", realm)
}

func TestParseASURI_PortAndPath(t *testing.T) {
	base, realm, err := ParseASURI("https://as.example.com:8443/auth/realms/ace/ace-oauth/token")
	require.NoError(t, err)
	assert.Equal(t, "https://as.example.com:8443/auth", base)
	assert.Equal(t, "ace", realm)
}

func TestParseASURI_MissingSuffix(t *testing.T) {
	_, _, err := ParseASURI("https://host/realms/myrealm/token")
	assert.ErrorIs(t, err, ErrNoTokenSuffix)
}

func TestParseASURI_MissingRealmSeparator(t *testing.T) {
	_, _, err := ParseASURI("https://host/ace-oauth/token")
	assert.ErrorIs(t, err, ErrNoRealmSplit)
}

func TestParseASURI_EmptyRealm(t *testing.T) {
	_, _, err := ParseASURI("https://host/realms//ace-oauth/token")
	assert.ErrorIs(t, err, ErrNoRealmSplit)
}
