// Package metadata models the build-metadata document consumed by libcheck.
//
// # Overview
//
// The document is the JSON emitted by a build-introspection tool such as
// `cargo metadata --format-version 1`: a workspace description containing an
// ordered list of packages, each with an ordered list of build targets. Only
// the fields libcheck consults are modeled; everything else in the document
// is ignored during decoding.
//
// # Lookup Semantics
//
// Lookups scan packages in document order and stop at the first package whose
// name matches exactly. Name matching is case-sensitive with no
// normalization. Duplicate package names can occur in multi-manifest
// workspaces; only the first occurrence is consulted.
//
//	doc, _ := metadata.Decode(r)
//	doc.HasLibTarget("serde") // true iff serde's first entry has a "lib" kind
package metadata
