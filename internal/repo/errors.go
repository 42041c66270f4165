package repo

import (
	"errors"
	"fmt"
)

var (
	// ErrInitFailed is returned when the repository cannot be initialized.
	ErrInitFailed = errors.New("git init failed; maybe the repo already exists, or has already been pushed to")

	// ErrNotBootstrapped is returned when pushing a Repo whose bootstrap stopped early.
	ErrNotBootstrapped = errors.New("repository has no origin remote yet")
)

// Op names a version-control step.
type Op string

const (
	OpInit      Op = "init"
	OpAdd       Op = "add"
	OpCommit    Op = "commit"
	OpAddRemote Op = "add-remote"
	OpPush      Op = "push"
)

// OpError reports which version-control step failed and why.
type OpError struct {
	Op  Op
	Dir string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("git %s in %s: %v", e.Op, e.Dir, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
