package domain

import (
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeDomainName returns the form under which claims on a name are
// compared: lower-cased, without surrounding space or a trailing dot, and in
// punycode for internationalized names. Names IDNA rejects, such as
// "Test Domain", keep their case-folded text.
func NormalizeDomainName(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return strings.ToLower(name)
	}

	return strings.ToLower(ascii)
}
