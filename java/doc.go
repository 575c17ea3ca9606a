// Package java parses Java source into the declaration model consumed by
// the javadoc package.
//
// Parsing uses the tree-sitter Java grammar. Only declaration headers are
// extracted: parameter lists, type parameters, return types, throws clauses,
// and the Javadoc block comment preceding each declaration. Method bodies
// are never inspected.
//
// Exception-type resolution is best effort, against the compilation unit's
// import table, its own declared types, and the java.lang throwables. An
// exception that cannot be resolved is marked so and skipped by tag
// generation; it is never an error.
package java
