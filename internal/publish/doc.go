// Package publish registers a generated project with the hosting service:
// it creates the hosted repository, waits for it to settle, pushes origin,
// and switches on gem building for the repository. Each call is made once;
// nothing is retried or rolled back.
package publish
