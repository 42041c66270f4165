// Package versionfile reads, writes, and checks VERSION.yml, the file a
// generated gem uses to track its major/minor/patch version. Reading always
// goes through the embedded JSON schema, so a hand-edited file that is
// malformed is reported issue by issue instead of decoding to a zero version.
package versionfile
