// Package ident validates externally supplied identifiers before they reach
// the store.
//
// Numeric path parameters must parse as a base-10 integer with no residual
// characters; usernames are trimmed of surrounding whitespace and must be
// non-empty. Malformed input is an expected, frequent case, so both helpers
// report failure through a boolean rather than an error.
//
// Every path parameter consumed by a resource operation passes through this
// package; a failed validation yields a 400, distinct from a 404.
package ident
