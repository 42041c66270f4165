// Package identity resolves who is generating the project: the git author
// (user.name, user.email) and the hosting account (<section>.user,
// <section>.token). Values come from the user's global git configuration, so
// no repository has to exist yet.
package identity
