package scaffold

import (
	"embed"
	"path"

	"github.com/jeweler-labs/jeweler/internal/project"
)

//go:embed templates
var templateFS embed.FS

// Template maps one embedded template to its place in the generated project.
// Both paths are slash-separated; Source is relative to the templates
// directory (without the .tmpl suffix) and Dest is relative to the project root.
type Template struct {
	Name   string
	Source func(project.Spec) string
	Dest   func(project.Spec) string
}

// TemplateSet is an ordered list of templates; files are written in order.
type TemplateSet []Template

func fixed(p string) func(project.Spec) string {
	return func(project.Spec) string { return p }
}

// DefaultTemplates is the template set used for every new gem.
var DefaultTemplates = TemplateSet{
	{Name: "gitignore", Source: fixed("gitignore"), Dest: fixed(".gitignore")},
	{Name: "rakefile", Source: fixed("Rakefile"), Dest: fixed("Rakefile")},
	{Name: "license", Source: fixed("LICENSE"), Dest: fixed("LICENSE")},
	{Name: "readme", Source: fixed("README"), Dest: fixed("README")},
	{
		Name: "helper",
		Source: func(s project.Spec) string {
			tos := s.TestStyle.TestOrSpec()
			return path.Join(s.TestStyle.String(), tos+"_helper.rb")
		},
		Dest: func(s project.Spec) string {
			tos := s.TestStyle.TestOrSpec()
			return path.Join(tos, tos+"_helper.rb")
		},
	},
	{
		Name: "flunking",
		Source: func(s project.Spec) string {
			return path.Join(s.TestStyle.String(), "flunking_"+s.TestStyle.TestOrSpec()+".rb")
		},
		Dest: func(s project.Spec) string {
			tos := s.TestStyle.TestOrSpec()
			return path.Join(tos, s.FilePrefix()+"_"+tos+".rb")
		},
	},
	{Name: "features-env", Source: fixed("features/support/env.rb"), Dest: fixed("features/support/env.rb")},
	{
		Name:   "feature",
		Source: fixed("features/default.feature"),
		Dest:   func(s project.Spec) string { return path.Join("features", s.FilePrefix()+".feature") },
	},
	{
		Name:   "steps",
		Source: fixed("features/steps/default_steps.rb"),
		Dest:   func(s project.Spec) string { return path.Join("features", "steps", s.FilePrefix()+"_steps.rb") },
	},
}
