package identity

import (
	"fmt"
	"os"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/config"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// GitConfig is a Source backed by parsed git configuration.
type GitConfig struct {
	raw *format.Config
}

// Global loads the invoking user's global git configuration
// (~/.gitconfig and $XDG_CONFIG_HOME/git/config).
func Global() (*GitConfig, error) {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("loading global git config: %w", err)
	}
	return &GitConfig{raw: cfg.Raw}, nil
}

// LoadFile parses a single gitconfig file.
func LoadFile(path string) (*GitConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening git config %s: %w", path, err)
	}
	defer f.Close()

	raw := format.New()
	if err := format.NewDecoder(f).Decode(raw); err != nil {
		return nil, fmt.Errorf("parsing git config %s: %w", path, err)
	}
	return &GitConfig{raw: raw}, nil
}

// Lookup implements Source.
func (c *GitConfig) Lookup(section, key string) string {
	if c.raw == nil || !c.raw.HasSection(section) {
		return ""
	}
	return strings.TrimSpace(c.raw.Section(section).Option(key))
}

// MapSource is a Source keyed by "section.key", handy for overrides and tests.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(section, key string) string {
	return m[section+"."+key]
}
