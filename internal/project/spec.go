package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrNoName is returned when no project identifier is given.
	ErrNoName = errors.New("no project name given")

	// ErrInvalidVersion is returned when the initial version is not semver.
	ErrInvalidVersion = errors.New("invalid initial version")
)

// DefaultVersion is the initial version written to VERSION.yml.
const DefaultVersion = "0.0.0"

// Spec is everything needed to generate one project. Build it with NewSpec
// and pass it by value; nothing mutates it afterwards.
type Spec struct {
	Name         string
	Dir          string
	TestStyle    TestStyle
	Summary      string
	CreateRemote bool
	Version      *semver.Version
}

// Options are the user-provided knobs for NewSpec. Empty fields fall back to
// defaults: Dir to Name, TestStyle to "shoulda", Summary to "TODO",
// Version to DefaultVersion.
type Options struct {
	Directory    string
	TestStyle    string
	Summary      string
	CreateRemote bool
	Version      string
}

// NewSpec validates the options and returns an immutable Spec.
func NewSpec(name string, opts Options) (Spec, error) {
	if name == "" {
		return Spec{}, ErrNoName
	}

	styleName := opts.TestStyle
	if styleName == "" {
		styleName = Shoulda.String()
	}
	style, err := ParseTestStyle(styleName)
	if err != nil {
		return Spec{}, err
	}

	versionStr := opts.Version
	if versionStr == "" {
		versionStr = DefaultVersion
	}
	version, err := semver.NewVersion(versionStr)
	if err != nil {
		return Spec{}, fmt.Errorf("%w %q: %v", ErrInvalidVersion, versionStr, err)
	}

	s := Spec{
		Name:         name,
		Dir:          opts.Directory,
		TestStyle:    style,
		Summary:      opts.Summary,
		CreateRemote: opts.CreateRemote,
		Version:      version,
	}
	if s.Dir == "" {
		s.Dir = name
	}
	if s.Summary == "" {
		s.Summary = "TODO"
	}
	return s, nil
}

// ConstantName returns the Ruby constant derived from the project name.
func (s Spec) ConstantName() string { return ConstantName(s.Name) }

// FilePrefix returns the file-name prefix derived from the project name.
func (s Spec) FilePrefix() string { return FilePrefix(s.Name) }

// LibDir returns <dir>/lib.
func (s Spec) LibDir() string { return filepath.Join(s.Dir, "lib") }

// TestDir returns <dir>/test or <dir>/spec depending on the test style.
func (s Spec) TestDir() string { return filepath.Join(s.Dir, s.TestStyle.TestOrSpec()) }

// FeaturesDir returns <dir>/features.
func (s Spec) FeaturesDir() string { return filepath.Join(s.Dir, "features") }

// FeaturesSupportDir returns <dir>/features/support.
func (s Spec) FeaturesSupportDir() string { return filepath.Join(s.FeaturesDir(), "support") }

// FeaturesStepsDir returns <dir>/features/steps.
func (s Spec) FeaturesStepsDir() string { return filepath.Join(s.FeaturesDir(), "steps") }

// CommitMessage is the message of the initial commit.
func (s Spec) CommitMessage() string {
	return fmt.Sprintf("Initial commit to %s.", s.Name)
}
