// Package project describes the gem being generated: its name, where it goes,
// which test framework it uses, and the names derived from its identifier
// (Ruby constant, file prefix, directory layout, remote URLs).
//
// Everything here is a pure value or a pure function; nothing touches disk.
package project
