// Package scaffold generates the file tree of a new gem from embedded
// templates. It powers the root "jeweler <name>" command, producing the
// directory skeleton (lib, test or spec, features), the Rakefile, license,
// readme, test helper, placeholder test, cucumber support files, and
// VERSION.yml for the chosen test style.
package scaffold
