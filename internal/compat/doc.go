// Package compat compares CLI versions and checks the version constraints
// that topic documents declare in their front matter.
package compat
