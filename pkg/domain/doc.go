// Package domain contains the core entities of the organization domain
// verification service: claimed domains, the audit events emitted for them and
// the actors those events are attributed to. The types carry no infrastructure
// concerns so they can be shared by storage, workers and the API.
package domain
