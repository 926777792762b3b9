// Package genir resolves build dependency information for Xcode build
// graphs. It parses .xcodeproj and .xcworkspace bundles into an immutable
// model and answers four questions about them: which build products exist,
// which native targets exist, which external package dependencies are
// declared, and what a named target's direct dependencies resolve to.
//
// # Usage
//
// Open a bundle and query it:
//
//	g, err := genir.Open("App.xcworkspace", logger)
//	if err != nil { ... }
//
//	products := g.TargetsToProducts()    // target name -> product path
//	targets := g.Targets()               // all native targets
//	packages := g.Packages()             // all package dependencies
//	deps := g.Dependencies("App")        // resolved direct dependencies
//
// [Graph.Dependencies] resolves one level of direct dependencies per call.
// Native dependencies resolve to their build-product path when the owning
// project knows one; package dependencies (and unresolvable native ones)
// resolve to their declared name. For a workspace, the target is first
// routed to its owning project through a table built at construction.
//
// # Failure semantics
//
// Construction either yields a ready-to-query Graph or fails (unrecognized
// bundle extension, unreadable or malformed description). Queries never
// fail: an unknown target degrades to an empty result plus a diagnostic on
// the logger passed to [Open], and a name that is a package dependency
// rather than a target degrades to an empty result silently.
//
// All models are immutable after construction, so every query is safe for
// concurrent use.
//
// # Indexing
//
// The gen-ir CLI (cmd/gen-ir) can persist a resolved graph to a SQLite
// index via the internal/store package and serve the same queries from it.
package genir
