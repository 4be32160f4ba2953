// Package dnsresolver defines how the service checks that a domain publishes
// its verification token in DNS.
package dnsresolver

import "context"

// Resolver looks up TXT records.
//
//go:generate mockgen -package mockdnsresolver -source=interface.go -destination=mock/mockdnsresolver.go *
type Resolver interface {
	// Resolve reports whether domainName publishes a TXT record equal to txt.
	// A missing name, an empty answer or non-matching records all yield
	// false with a nil error. A non-nil error means the answer could not be
	// obtained (timeout, SERVFAIL, network failure) and wraps
	// serrors.ErrUnavailable.
	Resolve(ctx context.Context, domainName, txt string) (bool, error)
}
