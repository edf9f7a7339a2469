package config

import "context"

// SecretProvider resolves secret references to their plaintext values. The
// loader uses it for variables like DATABASE_URL_FILE, whose value names a
// mounted secret file rather than holding the secret itself.
type SecretProvider interface {
	// Resolve returns a map of reference -> plaintext for every reference it
	// could resolve. Unresolvable references are omitted, not errors.
	Resolve(ctx context.Context, refs []string) (map[string]string, error)
}
