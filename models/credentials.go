package models

// Identity is resolved by the external identity provider; the governance core
// only ever consumes it, it never mints or refreshes identities.
type Identity struct {
	UserId string
	Email  string
}

type Credentials struct {
	ActorIdentity Identity
	Role          Role
	// Superuser bypasses role permission checks. It does not bypass the
	// maker-checker rule.
	Superuser bool
}
