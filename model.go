package genir

import (
	"path"
	"strings"
)

// DependencyKind distinguishes the two ways a target can depend on
// something: another native target in the build graph, or a product of an
// externally declared package.
type DependencyKind string

const (
	// DependencyNative references another target built within the same
	// project ecosystem.
	DependencyNative DependencyKind = "native"
	// DependencyPackage references a product of an externally declared
	// package dependency.
	DependencyPackage DependencyKind = "package"
)

// Dependency is one direct dependency of a Target. Name is always set and
// serves as the fallback identifier when no product path can be resolved.
// TargetRef is the pbxproj object identifier of the referenced target and
// is only set for native dependencies.
type Dependency struct {
	Name      string
	Kind      DependencyKind
	TargetRef string
}

// Target is a named, buildable unit within a project. Dependencies keeps
// the declared order from the project description; resolution output order
// follows it exactly.
type Target struct {
	Name string
	// Ref is the target's pbxproj object identifier, unique within its
	// project.
	Ref string
	// ProductPath is the build product associated with the target, empty
	// when the description declares no product reference.
	ProductPath  string
	Dependencies []Dependency
}

// Package is an externally declared package dependency. Packages appear at
// the project level only; they are never buildable targets and never list
// dependencies of their own.
type Package struct {
	Name          string
	RepositoryURL string
}

// packageDisplayName derives a package's human-readable name from its
// declared name or, failing that, the repository URL's last component.
func packageDisplayName(name, repositoryURL string) string {
	if name != "" {
		return name
	}
	base := path.Base(strings.TrimSuffix(repositoryURL, "/"))
	return strings.TrimSuffix(base, ".git")
}
