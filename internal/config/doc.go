// Package config manages user-level settings stored at ~/.jeweler/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the hosting service host, its API base URL, and the default test style used
// for new projects. Every key can be overridden with a JEWELER_* environment
// variable (dots become underscores).
package config
