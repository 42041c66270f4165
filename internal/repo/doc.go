// Package repo turns a freshly generated project directory into a git
// repository: init, stage everything, make the initial commit, and register
// the origin remote. Every operation is bound to the project's path, so the
// process working directory is never changed.
package repo
