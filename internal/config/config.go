package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeweler-labs/jeweler/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyHostingHost    = "hosting.host"
	KeyHostingAPIURL  = "hosting.api_url"
	KeyHostingSection = "hosting.section"
	KeySettleDelay    = "hosting.settle_delay"
	KeyDefaultStyle   = "defaults.test_style"
	KeyDefaultSummary = "defaults.summary"
	KeyGitConfig      = "identity.gitconfig"
)

const defaultSettleDelay = 2 * time.Second

// Dir returns the path to the Jeweler config directory (~/.jeweler/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.jeweler/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyHostingHost, branding.HostingHost())
	viper.SetDefault(KeyHostingAPIURL, "https://"+branding.HostingHost())
	viper.SetDefault(KeyHostingSection, "github")
	viper.SetDefault(KeySettleDelay, defaultSettleDelay)
	viper.SetDefault(KeyDefaultStyle, "shoulda")
	viper.SetDefault(KeyDefaultSummary, "TODO")
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// HostingHost returns the host used for remote URLs (e.g., "github.com").
func HostingHost() string { return viper.GetString(KeyHostingHost) }

// HostingAPIURL returns the base URL of the hosting service's HTTP API.
func HostingAPIURL() string { return strings.TrimRight(viper.GetString(KeyHostingAPIURL), "/") }

// HostingSection returns the git config section holding the hosting user and token.
func HostingSection() string { return viper.GetString(KeyHostingSection) }

// SettleDelay returns how long to wait between creating the remote repository
// and pushing to it. Non-positive or unparsable values fall back to the default.
func SettleDelay() time.Duration {
	d := viper.GetDuration(KeySettleDelay)
	if d <= 0 {
		return defaultSettleDelay
	}
	return d
}

// DefaultTestStyle returns the test style used when --test-style is omitted.
func DefaultTestStyle() string { return viper.GetString(KeyDefaultStyle) }

// GitConfigPath returns an explicit gitconfig file to read the identity
// from. Empty means the user's global git configuration.
func GitConfigPath() string { return viper.GetString(KeyGitConfig) }

// DefaultSummary returns the summary used when --summary is omitted.
func DefaultSummary() string { return viper.GetString(KeyDefaultSummary) }
