package genir

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// ErrInvalidPath reports a description path whose extension matches neither
// recognized bundle kind. It is the only construction-time error callers
// are expected to branch on.
var ErrInvalidPath = errors.New("path is not an .xcodeproj or .xcworkspace bundle")

// Graph is the entry point for build-graph queries. It is a closed two-case
// variant: exactly one of project or workspace is set, chosen once at
// construction from the bundle extension. All query methods are pure reads
// over immutable state and safe for concurrent use once Open returns.
type Graph struct {
	project   *Project
	workspace *Workspace
	log       *slog.Logger
}

// Open parses the project or workspace bundle at path and returns a
// ready-to-query Graph. The logger is the diagnostics sink for query-time
// soft failures; nil falls back to slog.Default. Construction either fully
// succeeds or returns an error with no partial state.
func Open(path string, log *slog.Logger) (*Graph, error) {
	if log == nil {
		log = slog.Default()
	}
	switch filepath.Ext(path) {
	case ".xcodeproj":
		p, err := LoadProject(path, log)
		if err != nil {
			return nil, err
		}
		return &Graph{project: p, log: log}, nil
	case ".xcworkspace":
		ws, err := LoadWorkspace(path, log)
		if err != nil {
			return nil, err
		}
		return &Graph{workspace: ws, log: log}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, filepath.Base(path))
	}
}

// NewProjectGraph wraps an already-built single project.
func NewProjectGraph(p *Project, log *slog.Logger) *Graph {
	if log == nil {
		log = slog.Default()
	}
	return &Graph{project: p, log: log}
}

// NewWorkspaceGraph wraps an already-built workspace.
func NewWorkspaceGraph(ws *Workspace, log *slog.Logger) *Graph {
	if log == nil {
		log = slog.Default()
	}
	return &Graph{workspace: ws, log: log}
}

// Projects returns the underlying projects: one for the project case, the
// contained projects in order for the workspace case.
func (g *Graph) Projects() []*Project {
	if g.workspace != nil {
		return g.workspace.Projects()
	}
	return []*Project{g.project}
}

// TargetsToProducts returns the target name → product path mapping across
// the whole graph.
func (g *Graph) TargetsToProducts() map[string]string {
	if g.workspace != nil {
		return g.workspace.TargetsToProducts()
	}
	return g.project.TargetsToProducts()
}

// Targets returns all native targets in the graph.
func (g *Graph) Targets() []*Target {
	if g.workspace != nil {
		return g.workspace.Targets()
	}
	return g.project.Targets()
}

// Packages returns all declared package dependencies in the graph.
func (g *Graph) Packages() []*Package {
	if g.workspace != nil {
		return g.workspace.Packages()
	}
	return g.project.Packages()
}
