// Package holdall provides a small, stable facade over Holdall's internal
// packages for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without exposing
// internal implementation packages.
//
// Example:
//
//	root, err := holdall.Load("holdall.yml")
//	if err != nil { /* handle */ }
//	matches := holdall.Find(root, holdall.Filter{Tag: "firestarting"})
//	_ = holdall.MarshalManifest(os.Stdout, root)
package holdall
