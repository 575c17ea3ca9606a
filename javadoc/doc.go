// Package javadoc implements the tag model and ordering algorithm behind
// Javelin's "add missing Javadoc tags" fixes.
//
// A declaration (method, type, field, enum constant) may own a Doc: a leading
// description plus an ordered sequence of block tags. The package detects
// which parameters, type parameters, the return value, and thrown exceptions
// lack a corresponding tag, synthesizes placeholder tags for them, and
// computes the exact insertion index of each new tag so the resulting
// sequence follows the canonical Javadoc tag order (@author, @version,
// @param, @return, @throws, @see, @since, @serial, @deprecated) and, within
// a kind, the declaration order of the documented names.
//
// All operations are pure computations over in-memory values plus a single
// positional insertion into the owning Doc. A Doc must be exclusively owned
// by one call chain for the duration of an operation; re-running detection
// after insertion finds nothing new.
package javadoc
