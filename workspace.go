package genir

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chaowyc/gen-ir/internal/xcworkspace"
)

// Workspace aggregates multiple independent projects under a unified target
// namespace. It holds the projects in workspace order plus a derived
// target → owning-project routing table, built once at construction.
// Immutable afterward.
type Workspace struct {
	// Path is the .xcworkspace bundle path, empty for workspaces assembled
	// directly from projects.
	Path string

	projects []*Project

	// targetsToProject routes a target name to the project that owns it.
	// First project seen wins; collisions are diagnosed at construction.
	targetsToProject map[string]*Project
}

// NewWorkspace assembles a Workspace from already-loaded projects, keeping
// their order. When two projects declare a target with the same name, the
// earlier project keeps the name and a warning is recorded.
func NewWorkspace(projects []*Project, log *slog.Logger) *Workspace {
	if log == nil {
		log = slog.Default()
	}
	ws := &Workspace{
		projects:         projects,
		targetsToProject: make(map[string]*Project),
	}
	for _, p := range projects {
		for _, t := range p.Targets() {
			if owner, ok := ws.targetsToProject[t.Name]; ok {
				log.Warn("duplicate target name across workspace projects",
					"target", t.Name,
					"kept", owner.Name,
					"ignored", p.Name)
				continue
			}
			ws.targetsToProject[t.Name] = p
		}
	}
	return ws
}

// LoadWorkspace parses the .xcworkspace bundle at path and loads every
// project it references.
func LoadWorkspace(path string, log *slog.Logger) (*Workspace, error) {
	if log == nil {
		log = slog.Default()
	}
	data, err := os.ReadFile(filepath.Join(path, "contents.xcworkspacedata"))
	if err != nil {
		return nil, fmt.Errorf("read workspace description: %w", err)
	}
	refs, err := xcworkspace.ProjectRefs(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	projects := make([]*Project, 0, len(refs))
	for _, ref := range refs {
		p, err := LoadProject(ref, log)
		if err != nil {
			return nil, fmt.Errorf("workspace project %s: %w", ref, err)
		}
		projects = append(projects, p)
	}

	ws := NewWorkspace(projects, log)
	ws.Path = path
	return ws, nil
}

// Projects returns the contained projects in workspace order.
func (w *Workspace) Projects() []*Project {
	return w.projects
}

// ProjectFor returns the project owning the named target, or nil.
func (w *Workspace) ProjectFor(target string) *Project {
	return w.targetsToProject[target]
}

// Targets returns every project's targets, concatenated in workspace order
// with per-project order preserved.
func (w *Workspace) Targets() []*Target {
	var out []*Target
	for _, p := range w.projects {
		out = append(out, p.Targets()...)
	}
	return out
}

// Packages returns every project's package dependencies, concatenated in
// workspace order with per-project order preserved.
func (w *Workspace) Packages() []*Package {
	var out []*Package
	for _, p := range w.projects {
		out = append(out, p.Packages()...)
	}
	return out
}

// TargetsToProducts returns the union of every project's target → product
// mapping. On a name collision the earlier project's entry is kept,
// consistent with target routing.
func (w *Workspace) TargetsToProducts() map[string]string {
	out := make(map[string]string)
	for _, p := range w.projects {
		for name, product := range p.TargetsToProducts() {
			if _, ok := out[name]; ok {
				continue
			}
			out[name] = product
		}
	}
	return out
}
