// Package cli defines the Cobra command tree for the jeweler CLI. The root
// command generates a new gem; the version and config subcommands report
// build info and manage ~/.jeweler/config.yaml. Commands only parse flags and
// wire dependencies; the work happens in the internal packages.
package cli
