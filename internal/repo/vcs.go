package repo

import (
	"context"
	"errors"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Signature identifies the author of a commit.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// VCS initializes repositories.
// This abstraction allows for easy testing with fake implementations.
type VCS interface {
	Init(dir string) (Repository, error)
}

// Repository is the set of operations the bootstrapper and publisher need.
type Repository interface {
	AddAll() error
	Commit(message string, author Signature) error
	CreateRemote(name, url string) error
	Push(ctx context.Context, remote string) error
}

// GoGit implements VCS with go-git; no git binary is required.
type GoGit struct{}

// Init creates a non-bare repository in dir.
func (GoGit) Init(dir string) (Repository, error) {
	r, err := git.PlainInit(dir, false)
	if err != nil {
		return nil, err
	}
	return &goGitRepo{repo: r}, nil
}

type goGitRepo struct {
	repo *git.Repository
}

func (g *goGitRepo) AddAll() error {
	wt, err := g.repo.Worktree()
	if err != nil {
		return err
	}
	return wt.AddWithOptions(&git.AddOptions{All: true})
}

func (g *goGitRepo) Commit(message string, author Signature) error {
	wt, err := g.repo.Worktree()
	if err != nil {
		return err
	}
	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: author.Name, Email: author.Email, When: author.When},
	})
	return err
}

func (g *goGitRepo) CreateRemote(name, url string) error {
	_, err := g.repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
	return err
}

func (g *goGitRepo) Push(ctx context.Context, remote string) error {
	err := g.repo.PushContext(ctx, &git.PushOptions{RemoteName: remote})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}
