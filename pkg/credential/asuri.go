package credential

import (
	"errors"
	"fmt"
	"strings"
)

// Required shape of as_uri: <base>/realms/<realm>/ace-oauth/token.
const (
	tokenSuffix    = "/ace-oauth/token"
	realmSeparator = "/realms/"
)

// AS URI validation errors.
var (
	ErrNoTokenSuffix = errors.New("as_uri does not end with the expected " + tokenSuffix + " suffix")
	ErrNoRealmSplit  = errors.New("as_uri does not use the expected base-realm split <BASE" + realmSeparator + "REALM" + tokenSuffix + ">")
)

// ParseASURI splits a token endpoint URI into the server base URL and
// the realm name. The URI must end with the token suffix and contain a
// /realms/ separator with a non-empty realm.
func ParseASURI(uri string) (baseURL, realm string, err error) {
	realmBase, ok := strings.CutSuffix(uri, tokenSuffix)
	if !ok {
		return "", "", fmt.Errorf("%q: %w", uri, ErrNoTokenSuffix)
	}
	baseURL, realm, ok = strings.Cut(realmBase, realmSeparator)
	if !ok || realm == "" {
		return "", "", fmt.Errorf("%q: %w", uri, ErrNoRealmSplit)
	}
	return baseURL, realm, nil
}
