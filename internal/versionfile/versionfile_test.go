package versionfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestRenderAndParse(t *testing.T) {
	v := semver.MustParse("1.4.2")
	data, err := Render(v)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	content := string(data)
	for _, want := range []string{"major: 1", "minor: 4", "patch: 2"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered VERSION.yml missing %q\n%s", want, content)
		}
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("Parse(Render(%s)) = %s", v, got)
	}
}

func TestRenderDropsPrerelease(t *testing.T) {
	data, err := Render(semver.MustParse("2.0.0-beta.1"))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(string(data), "beta") {
		t.Errorf("pre-release should be dropped:\n%s", data)
	}
}

func TestCheckRendered(t *testing.T) {
	data, err := Render(semver.MustParse("0.0.0"))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	issues, err := Check(data)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(issues) > 0 {
		t.Errorf("rendered file should be clean, issues: %v", issues)
	}
}

func TestCheckReportsHandEditedMistakes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
		keyword string
	}{
		{"missing patch", "major: 1\nminor: 0\n", "", "required"},
		{"negative", "major: -1\nminor: 0\npatch: 0\n", "/major", "minimum"},
		{"word", "major: one\nminor: 0\npatch: 0\n", "/major", "type"},
		{"fraction", "major: 1\nminor: 2.5\npatch: 0\n", "/minor", "type"},
		{"nan", "major: 1\nminor: 0\npatch: .nan\n", "/patch", "type"},
		{"date", "major: 2001-12-14\nminor: 0\npatch: 0\n", "/major", "type"},
		{"extra key", "major: 1\nminor: 0\npatch: 0\nbuild: 7\n", "", "additionalProperties"},
		{"numeric key", "major: 1\nminor: 0\npatch: 0\n1: 2\n", "", "additionalProperties"},
		{"list", "- 1\n- 0\n- 0\n", "", "type"},
		{"empty", "", "", "type"},
		{"broken yaml", "major: [1\nminor: 0\n", "", KeywordSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := Check([]byte(tt.content))
			if err != nil {
				t.Fatalf("Check() error: %v", err)
			}
			if len(issues) == 0 {
				t.Fatal("expected issues")
			}
			found := false
			for _, issue := range issues {
				if issue.Keyword == tt.keyword && issue.Path == tt.path {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue without message: %+v", issue)
				}
			}
			if !found {
				t.Errorf("no %q issue at %q in %v", tt.keyword, tt.path, issues)
			}
		})
	}
}

func TestCheckSortsIssuesByPath(t *testing.T) {
	issues, err := Check([]byte("major: x\nminor: -1\npatch: y\n"))
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	var paths []string
	for _, issue := range issues {
		paths = append(paths, issue.Path)
	}
	want := []string{"/major", "/minor", "/patch"}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("major: 1\nminor: 0\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse() error = %v, want ErrInvalid", err)
	}
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse() error = %T, want *InvalidError", err)
	}
	if len(invalid.Issues) != 1 || invalid.Issues[0].Keyword != "required" {
		t.Errorf("issues = %v, want a single required issue", invalid.Issues)
	}
	if !strings.Contains(err.Error(), FileName) {
		t.Errorf("error %q should name %s", err, FileName)
	}
}

func TestLocateAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("major: 0\nminor: 1\npatch: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, target := range []string{dir, path} {
		located, err := Locate(target)
		if err != nil {
			t.Fatalf("Locate(%q) error: %v", target, err)
		}
		if located != path {
			t.Errorf("Locate(%q) = %q, want %q", target, located, path)
		}
	}

	v, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if v.String() != "0.1.0" {
		t.Errorf("ReadFile() = %s, want 0.1.0", v)
	}

	if _, err := Locate(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Locate(missing) error = %v, want ErrNotExist", err)
	}
}
