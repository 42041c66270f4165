// Package generator sequences a project generation run: resolve the user's
// identity, scaffold the file tree, bootstrap the git repository, and, when
// asked, publish it to the hosting service.
package generator

import (
	"context"
	"errors"

	"github.com/jeweler-labs/jeweler/internal/branding"
	"github.com/jeweler-labs/jeweler/internal/identity"
	"github.com/jeweler-labs/jeweler/internal/project"
	"github.com/jeweler-labs/jeweler/internal/publish"
	"github.com/jeweler-labs/jeweler/internal/repo"
	"github.com/jeweler-labs/jeweler/internal/scaffold"
)

// ErrNoPublisher is returned when a remote is requested but no publisher is configured.
var ErrNoPublisher = errors.New("remote creation requested but no publisher configured")

// Resolver resolves the identity for the run.
type Resolver interface {
	Resolve() (identity.Identity, error)
}

// Scaffolder writes the project tree.
type Scaffolder interface {
	Scaffold(spec project.Spec, id identity.Identity) (*scaffold.Layout, error)
}

// Bootstrapper turns the project tree into a committed repository.
type Bootstrapper interface {
	Bootstrap(dir, message, remoteURL string, author repo.Signature) (*repo.Repo, error)
}

// Publisher creates and configures the hosted repository.
type Publisher interface {
	CreateAndPush(ctx context.Context, id identity.Identity, name, summary string, pusher publish.Pusher) error
	EnableGemBuilding(ctx context.Context, id identity.Identity, name string) error
}

// Reporter receives the coarse progress milestones.
type Reporter interface {
	Success(format string, args ...interface{})
}

// Deps wires a Generator. Publisher may be nil when no run asks for a remote.
type Deps struct {
	Resolver     Resolver
	Scaffolder   Scaffolder
	Bootstrapper Bootstrapper
	Publisher    Publisher
	Reporter     Reporter
	Host         string
}

// Generator runs the steps in a fixed order and stops at the first error.
type Generator struct {
	deps Deps
}

// New creates a Generator.
func New(deps Deps) *Generator {
	return &Generator{deps: deps}
}

// Run generates the project described by spec. Errors are returned as the
// failing step produced them.
func (g *Generator) Run(ctx context.Context, spec project.Spec) error {
	id, err := g.deps.Resolver.Resolve()
	if err != nil {
		return err
	}
	if spec.CreateRemote && g.deps.Publisher == nil {
		return ErrNoPublisher
	}

	if _, err := g.deps.Scaffolder.Scaffold(spec, id); err != nil {
		return err
	}

	author := repo.Signature{Name: id.UserName, Email: id.UserEmail}
	remoteURL := project.RemoteURL(g.deps.Host, id.HostingUser, spec.Name)
	r, err := g.deps.Bootstrapper.Bootstrap(spec.Dir, spec.CommitMessage(), remoteURL, author)
	if err != nil {
		return err
	}
	g.deps.Reporter.Success("%s has prepared your gem in %s", branding.DisplayName(), spec.Dir)

	if !spec.CreateRemote {
		return nil
	}

	if err := g.deps.Publisher.CreateAndPush(ctx, id, spec.Name, spec.Summary, r); err != nil {
		return err
	}
	g.deps.Reporter.Success("%s has pushed your repo to %s", branding.DisplayName(), project.ProjectURL(g.deps.Host, id.HostingUser, spec.Name))

	if err := g.deps.Publisher.EnableGemBuilding(ctx, id, spec.Name); err != nil {
		return err
	}
	g.deps.Reporter.Success("%s has enabled gem building for your repo", branding.DisplayName())
	return nil
}
