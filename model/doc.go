// Package model defines the plain data types shared across the CShM
// engine: atoms and structures supplied by an external loader, the
// derived coordination-sphere points consumed by the optimizer, and the
// result types returned to callers.
//
// Every type here is immutable once constructed (or documents the single
// mutation point it permits) and carries no cyclic references: identity is
// always an integer index into an owning slice, never a pointer back to a
// parent. This mirrors the core/Vertex and core/Edge plain-struct shape of
// the graph package this module grew out of, minus the mutex — a single
// analysis runs on one goroutine.
package model
