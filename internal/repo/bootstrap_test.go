package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var author = Signature{Name: "Ada Lovelace", Email: "ada@example.com"}

type fakeVCS struct {
	failAt Op
	calls  []Op
	pushed []string
}

func (f *fakeVCS) step(op Op) error {
	f.calls = append(f.calls, op)
	if f.failAt == op {
		return fmt.Errorf("%s exploded", op)
	}
	return nil
}

func (f *fakeVCS) Init(string) (Repository, error) {
	if err := f.step(OpInit); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *fakeVCS) AddAll() error { return f.step(OpAdd) }

func (f *fakeVCS) Commit(string, Signature) error { return f.step(OpCommit) }

func (f *fakeVCS) CreateRemote(string, string) error { return f.step(OpAddRemote) }

func (f *fakeVCS) Push(_ context.Context, remote string) error {
	f.pushed = append(f.pushed, remote)
	return f.step(OpPush)
}

type warnings []string

func (w *warnings) Warn(format string, args ...interface{}) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

func writeProject(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "widget-maker")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("= widget-maker\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "widget_maker.rb"), nil, 0644))
	return dir
}

func TestBootstrapWithGoGit(t *testing.T) {
	dir := writeProject(t)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	r, err := NewBootstrapper(GoGit{}, nil).Bootstrap(dir, "Initial commit to widget-maker.", "git@github.com:ada/widget-maker.git", author)
	require.NoError(t, err)
	assert.Equal(t, RemoteAdded, r.State())
	assert.Equal(t, dir, r.Dir())

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, after, "working directory must be unchanged")

	opened, err := git.PlainOpen(dir)
	require.NoError(t, err)

	iter, err := opened.Log(&git.LogOptions{})
	require.NoError(t, err)
	var commits []*object.Commit
	require.NoError(t, iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, c)
		return nil
	}))
	require.Len(t, commits, 1)
	assert.Equal(t, "Initial commit to widget-maker.", commits[0].Message)
	assert.Equal(t, "ada@example.com", commits[0].Author.Email)

	files, err := commits[0].Files()
	require.NoError(t, err)
	var names []string
	require.NoError(t, files.ForEach(func(f *object.File) error {
		names = append(names, f.Name)
		return nil
	}))
	assert.ElementsMatch(t, []string{"README", "lib/widget_maker.rb"}, names)

	remote, err := opened.Remote(RemoteName)
	require.NoError(t, err)
	assert.Equal(t, []string{"git@github.com:ada/widget-maker.git"}, remote.Config().URLs)
}

func TestBootstrapExistingRepoFailsInit(t *testing.T) {
	dir := writeProject(t)
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = NewBootstrapper(GoGit{}, nil).Bootstrap(dir, "msg", "git@github.com:ada/x.git", author)
	require.ErrorIs(t, err, ErrInitFailed)

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, OpInit, opErr.Op)
}

func TestBootstrapStopsAtFirstFailure(t *testing.T) {
	tests := []struct {
		failAt Op
		calls  []Op
		state  State
	}{
		{OpInit, []Op{OpInit}, Uninitialized},
		{OpAdd, []Op{OpInit, OpAdd}, Initialized},
		{OpCommit, []Op{OpInit, OpAdd, OpCommit}, Staged},
		{OpAddRemote, []Op{OpInit, OpAdd, OpCommit, OpAddRemote}, Committed},
	}
	for _, tt := range tests {
		t.Run(string(tt.failAt), func(t *testing.T) {
			cwd, err := os.Getwd()
			require.NoError(t, err)

			vcs := &fakeVCS{failAt: tt.failAt}
			var warned warnings
			r, err := NewBootstrapper(vcs, &warned).Bootstrap(t.TempDir(), "msg", "url", author)
			require.Error(t, err)
			require.NotNil(t, r, "partial handle is returned with the error")
			assert.Equal(t, tt.state, r.State())
			assert.Equal(t, tt.calls, vcs.calls)

			var opErr *OpError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, tt.failAt, opErr.Op)

			if tt.failAt == OpAddRemote {
				require.Len(t, warned, 1)
				assert.Contains(t, warned[0], "~/.gitconfig")
			} else {
				assert.Empty(t, warned)
			}

			after, err := os.Getwd()
			require.NoError(t, err)
			assert.Equal(t, cwd, after, "working directory must be restored")
		})
	}
}

func TestBootstrapFillsCommitTime(t *testing.T) {
	when := time.Date(2009, 1, 2, 0, 0, 0, 0, time.UTC)
	var got Signature
	vcs := &commitCapture{fakeVCS: &fakeVCS{}, got: &got}

	b := NewBootstrapper(vcs, nil)
	b.now = func() time.Time { return when }
	_, err := b.Bootstrap(t.TempDir(), "msg", "url", author)
	require.NoError(t, err)
	assert.Equal(t, when, got.When)
}

type commitCapture struct {
	*fakeVCS
	got *Signature
}

func (c *commitCapture) Init(dir string) (Repository, error) {
	if _, err := c.fakeVCS.Init(dir); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *commitCapture) Commit(msg string, s Signature) error {
	*c.got = s
	return c.fakeVCS.Commit(msg, s)
}

func TestPushWrapsErrors(t *testing.T) {
	vcs := &fakeVCS{failAt: OpPush}
	r, err := NewBootstrapper(vcs, nil).Bootstrap(t.TempDir(), "msg", "url", author)
	require.NoError(t, err)

	err = r.Push(context.Background(), RemoteName)
	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, OpPush, opErr.Op)
	assert.Equal(t, []string{RemoteName}, vcs.pushed)
}

func TestPushRefusesPartialRepo(t *testing.T) {
	vcs := &fakeVCS{failAt: OpAddRemote}
	r, err := NewBootstrapper(vcs, nil).Bootstrap(t.TempDir(), "msg", "url", author)
	require.Error(t, err)

	err = r.Push(context.Background(), RemoteName)
	require.ErrorIs(t, err, ErrNotBootstrapped)
	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, OpPush, opErr.Op)
	assert.Empty(t, vcs.pushed, "nothing is pushed without a remote")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "remote-added", RemoteAdded.String())
	assert.Equal(t, "State(9)", State(9).String())
}
