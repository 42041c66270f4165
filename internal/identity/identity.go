package identity

import (
	"errors"
	"fmt"
)

// Missing-value errors, one per required key.
var (
	ErrMissingUserName     = errors.New("no git user.name configured")
	ErrMissingUserEmail    = errors.New("no git user.email configured")
	ErrMissingHostingUser  = errors.New("no hosting user configured")
	ErrMissingHostingToken = errors.New("no hosting token configured")
)

// DefaultHostingSection is the git config section holding the hosting credentials.
const DefaultHostingSection = "github"

// Identity holds the resolved author and hosting credentials for one run.
type Identity struct {
	UserName     string
	UserEmail    string
	HostingUser  string
	HostingToken string
}

// ConfigError reports which configuration key is missing.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (set it with: git config --global %s <value>)", e.Err, e.Key)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Source looks up a git-config style value. A missing key yields "".
type Source interface {
	Lookup(section, key string) string
}

// Resolver reads an Identity from a Source.
type Resolver struct {
	source  Source
	section string
}

// NewResolver creates a Resolver reading hosting credentials from the given
// git config section. An empty section means DefaultHostingSection.
func NewResolver(source Source, section string) *Resolver {
	if section == "" {
		section = DefaultHostingSection
	}
	return &Resolver{source: source, section: section}
}

// Resolve returns the Identity, or a *ConfigError for the first missing key.
func (r *Resolver) Resolve() (Identity, error) {
	var id Identity
	fields := []struct {
		section, key string
		missing      error
		dst          *string
	}{
		{"user", "name", ErrMissingUserName, &id.UserName},
		{"user", "email", ErrMissingUserEmail, &id.UserEmail},
		{r.section, "user", ErrMissingHostingUser, &id.HostingUser},
		{r.section, "token", ErrMissingHostingToken, &id.HostingToken},
	}

	for _, f := range fields {
		v := r.source.Lookup(f.section, f.key)
		if v == "" {
			return Identity{}, &ConfigError{Key: f.section + "." + f.key, Err: f.missing}
		}
		*f.dst = v
	}
	return id, nil
}
