package versionfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// FileName is the conventional name of the version file.
const FileName = "VERSION.yml"

// ErrInvalid matches every *InvalidError.
var ErrInvalid = errors.New("invalid " + FileName)

// InvalidError carries the problems that made a document unusable.
type InvalidError struct {
	Issues []Issue
}

func (e *InvalidError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(parts, "; "))
}

func (e *InvalidError) Is(target error) bool { return target == ErrInvalid }

type document struct {
	Major uint64 `yaml:"major"`
	Minor uint64 `yaml:"minor"`
	Patch uint64 `yaml:"patch"`
}

// Render returns the VERSION.yml content for v. Pre-release and build
// metadata are not representable and are dropped.
func Render(v *semver.Version) ([]byte, error) {
	out, err := yaml.Marshal(document{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()})
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	return out, nil
}

// Parse checks data and decodes it into a version. A document that fails
// the check yields an *InvalidError.
func Parse(data []byte) (*semver.Version, error) {
	issues, err := Check(data)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, &InvalidError{Issues: issues}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FileName, err)
	}
	return semver.New(doc.Major, doc.Minor, doc.Patch, "", ""), nil
}

// Locate resolves path to a version file: a directory means the
// VERSION.yml inside it.
func Locate(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("locating %s: %w", FileName, err)
	}
	if info.IsDir() {
		return filepath.Join(path, FileName), nil
	}
	return path, nil
}

// ReadFile reads and parses the version file at path.
func ReadFile(path string) (*semver.Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}
