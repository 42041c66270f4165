package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/jeweler-labs/jeweler/internal/identity"
	"github.com/jeweler-labs/jeweler/internal/project"
	"github.com/jeweler-labs/jeweler/internal/versionfile"
)

// ErrTargetExists is returned when the target directory (or a file with its
// name) is already present.
var ErrTargetExists = errors.New("target already exists")

// Notifier is told about every directory and file the scaffolder creates.
type Notifier interface {
	Created(path string)
}

// Data holds all template variables available to scaffold templates.
type Data struct {
	Name                  string // e.g., "my-gem"
	ConstantName          string // e.g., "MyGem"
	FilePrefix            string // e.g., "my_gem"
	Summary               string
	UserName              string
	UserEmail             string
	HostingUser           string
	ProjectURL            string // e.g., "https://github.com/user/my-gem"
	TestStyle             string // "shoulda", "testunit", "minitest", or "bacon"
	TestOrSpec            string // "test" or "spec"
	FeatureSupportRequire string
	FeatureSupportExtend  string
	Version               string
	Year                  int
}

// Layout is the outcome of a successful scaffold.
type Layout struct {
	Root  string
	Dirs  []string
	Files []string
}

// Scaffolder writes a new project tree.
type Scaffolder struct {
	notifier  Notifier
	host      string
	templates TemplateSet
	now       func() time.Time
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithTemplates replaces the default template set.
func WithTemplates(ts TemplateSet) Option {
	return func(s *Scaffolder) {
		s.templates = ts
	}
}

// WithClock sets the time source used for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(s *Scaffolder) {
		s.now = now
	}
}

// New creates a Scaffolder that reports to notifier (which may be nil) and
// builds project URLs against host.
func New(notifier Notifier, host string, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		notifier:  notifier,
		host:      host,
		templates: DefaultTemplates,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewData builds the template variables for spec and id.
func NewData(spec project.Spec, id identity.Identity, host string, year int) *Data {
	d := &Data{
		Name:                  spec.Name,
		ConstantName:          spec.ConstantName(),
		FilePrefix:            spec.FilePrefix(),
		Summary:               spec.Summary,
		UserName:              id.UserName,
		UserEmail:             id.UserEmail,
		HostingUser:           id.HostingUser,
		ProjectURL:            project.ProjectURL(host, id.HostingUser, spec.Name),
		TestStyle:             spec.TestStyle.String(),
		TestOrSpec:            spec.TestStyle.TestOrSpec(),
		FeatureSupportRequire: spec.TestStyle.FeatureSupportRequire(),
		FeatureSupportExtend:  spec.TestStyle.FeatureSupportExtend(),
		Year:                  year,
	}
	if spec.Version != nil {
		d.Version = spec.Version.String()
	}
	return d
}

// Scaffold creates spec.Dir and everything under it. It refuses to touch an
// existing path. On an I/O failure midway the partial tree is left in place
// for inspection.
func (s *Scaffolder) Scaffold(spec project.Spec, id identity.Identity) (*Layout, error) {
	if !spec.TestStyle.Valid() {
		return nil, fmt.Errorf("%w: %v", project.ErrUnknownTestStyle, spec.TestStyle)
	}

	if _, err := os.Lstat(spec.Dir); err == nil {
		return nil, fmt.Errorf("%w: %s; move it out of the way before continuing", ErrTargetExists, spec.Dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking target %s: %w", spec.Dir, err)
	}

	layout := &Layout{Root: spec.Dir}

	if err := os.MkdirAll(spec.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating target directory: %w", err)
	}
	s.created(&layout.Dirs, spec.Dir)

	for _, dir := range []string{
		spec.LibDir(),
		spec.TestDir(),
		spec.FeaturesDir(),
		spec.FeaturesSupportDir(),
		spec.FeaturesStepsDir(),
	} {
		if err := os.Mkdir(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		s.created(&layout.Dirs, dir)
	}

	data := NewData(spec, id, s.host, s.now().Year())
	for _, t := range s.templates {
		dest := filepath.Join(spec.Dir, filepath.FromSlash(t.Dest(spec)))
		if err := renderTo(t.Source(spec), dest, data); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", t.Name, err)
		}
		s.created(&layout.Files, dest)
	}

	if err := s.writeVersionFile(spec, layout); err != nil {
		return nil, err
	}

	libFile := filepath.Join(spec.LibDir(), spec.FilePrefix()+".rb")
	if err := os.WriteFile(libFile, nil, 0644); err != nil {
		return nil, fmt.Errorf("creating %s: %w", libFile, err)
	}
	s.created(&layout.Files, libFile)

	return layout, nil
}

func (s *Scaffolder) writeVersionFile(spec project.Spec, layout *Layout) error {
	if spec.Version == nil {
		return nil
	}
	content, err := versionfile.Render(spec.Version)
	if err != nil {
		return err
	}
	dest := filepath.Join(spec.Dir, versionfile.FileName)
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	s.created(&layout.Files, dest)
	return nil
}

func (s *Scaffolder) created(list *[]string, p string) {
	*list = append(*list, p)
	if s.notifier != nil {
		s.notifier.Created(p)
	}
}

var funcs = template.FuncMap{
	"ruby": rubyString,
}

// rubyString renders s as a single-quoted Ruby literal, where only
// backslash and quote are special and #{} is not interpolated.
func rubyString(s string) string {
	return "'" + rubyEscaper.Replace(s) + "'"
}

var rubyEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func renderTo(source, dest string, data *Data) error {
	tmplPath := path.Join("templates", source+".tmpl")
	tmplBytes, err := fs.ReadFile(templateFS, tmplPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(source).Funcs(funcs).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", source, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", source, err)
	}

	if err := os.WriteFile(dest, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}
