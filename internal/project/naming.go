package project

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ConstantName turns a project identifier into a Ruby constant name:
// "my-gem_thing" becomes "MyGemThing".
func ConstantName(id string) string {
	var b strings.Builder
	for _, seg := range strings.FieldsFunc(id, isSeparator) {
		b.WriteString(capitalize(seg))
	}
	return b.String()
}

// FilePrefix turns a project identifier into a file-name-safe prefix by
// replacing every "-" with "_".
func FilePrefix(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

// RemoteURL returns the SSH form of the hosted repository, e.g.
// git@github.com:user/repo.git.
func RemoteURL(host, user, repo string) string {
	return fmt.Sprintf("git@%s:%s/%s.git", host, user, repo)
}

// ProjectURL returns the browsable URL of the hosted repository.
func ProjectURL(host, user, repo string) string {
	return fmt.Sprintf("https://%s/%s/%s", host, user, repo)
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_'
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
