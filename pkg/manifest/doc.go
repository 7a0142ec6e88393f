// Package manifest inspects Cargo.toml files directly.
//
// # Overview
//
// CI steps that run before build introspection is available can hand libcheck
// a Cargo.toml instead of a metadata document. This package answers the lib
// question the way cargo's own target discovery does:
//
//   - an explicit [lib] table always means a lib target exists;
//   - otherwise a lib target exists iff src/lib.rs sits next to the manifest.
//
// Only single-package manifests are supported; a workspace-only Cargo.toml
// (no [package] table) never matches a queried package name.
package manifest
