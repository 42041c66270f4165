package project

import (
	"errors"
	"fmt"
)

// ErrUnknownTestStyle is returned for a test style outside the supported set.
var ErrUnknownTestStyle = errors.New("unknown test style")

// TestStyle selects the test framework the generated project is wired for.
// The zero value is not a valid style.
type TestStyle int

const (
	Shoulda TestStyle = iota + 1
	TestUnit
	Minitest
	Bacon
)

// TestStyles lists every supported style in display order.
var TestStyles = []TestStyle{Shoulda, TestUnit, Minitest, Bacon}

// ParseTestStyle maps a style name (as typed on the command line) to a TestStyle.
func ParseTestStyle(s string) (TestStyle, error) {
	switch s {
	case "shoulda":
		return Shoulda, nil
	case "testunit":
		return TestUnit, nil
	case "minitest":
		return Minitest, nil
	case "bacon":
		return Bacon, nil
	}
	return 0, fmt.Errorf("%w: %q (want one of shoulda, testunit, minitest, bacon)", ErrUnknownTestStyle, s)
}

// Valid reports whether s is one of the supported styles.
func (s TestStyle) Valid() bool {
	switch s {
	case Shoulda, TestUnit, Minitest, Bacon:
		return true
	}
	return false
}

// String returns the style name, which is also its template directory.
func (s TestStyle) String() string {
	switch s {
	case Shoulda:
		return "shoulda"
	case TestUnit:
		return "testunit"
	case Minitest:
		return "minitest"
	case Bacon:
		return "bacon"
	}
	return fmt.Sprintf("TestStyle(%d)", int(s))
}

// TestOrSpec returns the name of the test root directory: "spec" for bacon,
// "test" for the rest.
func (s TestStyle) TestOrSpec() string {
	switch s {
	case Bacon:
		return "spec"
	case Shoulda, TestUnit, Minitest:
		return "test"
	}
	return ""
}

// FeatureSupportRequire returns what features/support/env.rb requires to get
// assertions inside cucumber steps. Bacon has no cucumber integration, so it
// borrows test/unit's.
func (s TestStyle) FeatureSupportRequire() string {
	switch s {
	case Minitest:
		return "mini/test"
	case Shoulda, TestUnit, Bacon:
		return "test/unit/assertions"
	}
	return ""
}

// FeatureSupportExtend returns the assertions module mixed into cucumber's World.
func (s TestStyle) FeatureSupportExtend() string {
	switch s {
	case Minitest:
		return "Mini::Test::Assertions"
	case Shoulda, TestUnit, Bacon:
		return "Test::Unit::Assertions"
	}
	return ""
}
