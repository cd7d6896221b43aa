// Package types defines the entity value objects, table and list model
// interfaces, and standard errors for the linkage design core.
//
// Points and links form a mutually referencing pair: every point lists the
// links it belongs to by name, and every link lists its points by row index.
// The command layer (internal/undo) keeps the two sides consistent; this
// package only defines the shapes and the helpers both sides share.
// See docs/ARCHITECTURE.md § Data Model.
package types
