// Package ui provides formatted terminal output for the generator.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Printer writes progress lines to Out.
type Printer struct {
	Out io.Writer
}

// New returns a Printer writing to w. A nil w means os.Stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{Out: w}
}

// Created reports a generated directory or file.
func (p *Printer) Created(path string) {
	fmt.Fprintf(p.Out, "\t%s\t%s\n", green("create"), path)
}

// Info prints an informational message with a cyan arrow.
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "%s %s\n", cyan("→"), fmt.Sprintf(format, args...))
}

// Success prints a milestone message with a green checkmark.
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "%s %s\n", green("✔"), bold(fmt.Sprintf(format, args...)))
}

// Warn prints a warning with a yellow marker.
func (p *Printer) Warn(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "%s %s\n", yellow("○"), fmt.Sprintf(format, args...))
}

// Fail prints an error message with a red X.
func (p *Printer) Fail(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "%s %s\n", red("✘"), fmt.Sprintf(format, args...))
}
