// Package secrets resolves the opaque secret references stored on
// asp_credentials rows. The storage mechanism is an external collaborator;
// the pipeline only needs key -> value lookup.
package secrets

import (
	"os"
	"strings"
)

// Store resolves a secret reference to its value.
type Store interface {
	Get(key string) (string, bool)
}

// EnvStore reads secrets from environment variables. Secret keys are stored
// lowercase in the database ("a8_media1_password"); the env var is the
// uppercased form.
type EnvStore struct {
	prefix string
}

// NewEnvStore creates an EnvStore. An optional prefix namespaces the
// variables ("ASP_SECRET_" + key).
func NewEnvStore(prefix string) *EnvStore {
	return &EnvStore{prefix: prefix}
}

func (s *EnvStore) Get(key string) (string, bool) {
	name := strings.ToUpper(s.prefix + key)
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// StaticStore holds secrets in memory. Used by tests and one-off tooling.
type StaticStore map[string]string

func (s StaticStore) Get(key string) (string, bool) {
	value, ok := s[key]
	return value, ok && value != ""
}
