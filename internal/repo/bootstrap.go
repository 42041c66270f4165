package repo

import (
	"context"
	"fmt"
	"time"
)

// RemoteName is the remote registered for the hosted repository.
const RemoteName = "origin"

// State tracks how far bootstrapping got. It only moves forward.
type State int

const (
	Uninitialized State = iota
	Initialized
	Staged
	Committed
	RemoteAdded
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Staged:
		return "staged"
	case Committed:
		return "committed"
	case RemoteAdded:
		return "remote-added"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Warner receives human-readable warnings.
type Warner interface {
	Warn(format string, args ...interface{})
}

// Repo is the handle to a bootstrapped repository.
type Repo struct {
	dir   string
	state State
	repo  Repository
}

// Dir returns the repository's working tree.
func (r *Repo) Dir() string { return r.dir }

// State returns how far bootstrapping got.
func (r *Repo) State() State { return r.state }

// Push pushes the named remote.
func (r *Repo) Push(ctx context.Context, remote string) error {
	if r.state < RemoteAdded {
		return &OpError{Op: OpPush, Dir: r.dir, Err: fmt.Errorf("%w (state %s)", ErrNotBootstrapped, r.state)}
	}
	if err := r.repo.Push(ctx, remote); err != nil {
		return &OpError{Op: OpPush, Dir: r.dir, Err: err}
	}
	return nil
}

// Bootstrapper runs init, add, commit, and add-remote in order.
type Bootstrapper struct {
	vcs    VCS
	warner Warner
	now    func() time.Time
}

// NewBootstrapper creates a Bootstrapper. warner may be nil.
func NewBootstrapper(vcs VCS, warner Warner) *Bootstrapper {
	return &Bootstrapper{vcs: vcs, warner: warner, now: time.Now}
}

// Bootstrap initializes dir as a repository, commits everything in it with
// message, and points origin at remoteURL. The first failing step stops the
// sequence; nothing already done is undone. On failure the returned Repo is
// still non-nil and its State reports the last step that succeeded.
func (b *Bootstrapper) Bootstrap(dir, message, remoteURL string, author Signature) (*Repo, error) {
	r := &Repo{dir: dir, state: Uninitialized}

	handle, err := b.vcs.Init(dir)
	if err != nil {
		return r, &OpError{Op: OpInit, Dir: dir, Err: fmt.Errorf("%w: %v", ErrInitFailed, err)}
	}
	r.repo = handle
	r.state = Initialized

	if err := handle.AddAll(); err != nil {
		return r, &OpError{Op: OpAdd, Dir: dir, Err: err}
	}
	r.state = Staged

	if author.When.IsZero() {
		author.When = b.now()
	}
	if err := handle.Commit(message, author); err != nil {
		return r, &OpError{Op: OpCommit, Dir: dir, Err: err}
	}
	r.state = Committed

	if err := handle.CreateRemote(RemoteName, remoteURL); err != nil {
		if b.warner != nil {
			b.warner.Warn("Encountered an error while adding %s remote. Maybe you have some weird settings in ~/.gitconfig?", RemoteName)
		}
		return r, &OpError{Op: OpAddRemote, Dir: dir, Err: err}
	}
	r.state = RemoteAdded

	return r, nil
}
