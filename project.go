package genir

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chaowyc/gen-ir/internal/pbx"
)

// Project is a single parsed .xcodeproj. It is immutable after
// construction: every accessor is a pure read, safe for concurrent use.
type Project struct {
	// Name is the bundle name without the .xcodeproj extension.
	Name string
	// Path is the .xcodeproj bundle path the project was loaded from.
	Path string

	targets  map[string]*Target
	packages map[string]*Package

	// Declared order, for stable iteration.
	targetOrder  []string
	packageOrder []string

	// byRef indexes targets by pbxproj object identifier for native
	// dependency resolution.
	byRef map[string]*Target
}

// NewProject assembles a Project from already-built model objects. Target
// and package order is preserved as given. Duplicate names keep the first
// entry.
func NewProject(name, path string, targets []*Target, packages []*Package) *Project {
	p := &Project{
		Name:     name,
		Path:     path,
		targets:  make(map[string]*Target, len(targets)),
		packages: make(map[string]*Package, len(packages)),
		byRef:    make(map[string]*Target, len(targets)),
	}
	for _, t := range targets {
		if _, ok := p.targets[t.Name]; ok {
			continue
		}
		p.targets[t.Name] = t
		p.targetOrder = append(p.targetOrder, t.Name)
		if t.Ref != "" {
			p.byRef[t.Ref] = t
		}
	}
	for _, pkg := range packages {
		if _, ok := p.packages[pkg.Name]; ok {
			continue
		}
		p.packages[pkg.Name] = pkg
		p.packageOrder = append(p.packageOrder, pkg.Name)
	}
	return p
}

// LoadProject parses the .xcodeproj bundle at path into a Project.
func LoadProject(path string, log *slog.Logger) (*Project, error) {
	if log == nil {
		log = slog.Default()
	}
	data, err := os.ReadFile(filepath.Join(path, "project.pbxproj"))
	if err != nil {
		return nil, fmt.Errorf("read project description: %w", err)
	}
	doc, err := pbx.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return projectFromDocument(path, doc, log), nil
}

// projectFromDocument builds the Project model from a parsed pbxproj
// object graph.
func projectFromDocument(path string, doc *pbx.Document, log *slog.Logger) *Project {
	root, _ := doc.Project() // Parse guarantees a valid root

	name := strings.TrimSuffix(filepath.Base(path), ".xcodeproj")

	var targets []*Target
	for _, ref := range root.Refs("targets") {
		obj := doc.Object(ref)
		if obj == nil {
			continue
		}
		if obj.ISA() != pbx.ISANativeTarget {
			log.Debug("skipping non-native target", "ref", ref, "isa", obj.ISA())
			continue
		}
		targets = append(targets, targetFromObject(ref, obj, doc))
	}

	var packages []*Package
	for _, ref := range root.Refs("packageReferences") {
		obj := doc.Object(ref)
		if obj == nil {
			continue
		}
		switch obj.ISA() {
		case pbx.ISARemotePackageReference:
			url := obj.Str("repositoryURL")
			packages = append(packages, &Package{
				Name:          packageDisplayName(obj.Str("name"), url),
				RepositoryURL: url,
			})
		case pbx.ISALocalPackageReference:
			rel := obj.Str("relativePath")
			packages = append(packages, &Package{
				Name: packageDisplayName(obj.Str("name"), rel),
			})
		}
	}

	return NewProject(name, path, targets, packages)
}

// targetFromObject builds a Target, classifying each declared dependency as
// native or package.
func targetFromObject(ref string, obj pbx.Object, doc *pbx.Document) *Target {
	t := &Target{
		Name: obj.Str("name"),
		Ref:  ref,
	}
	if prodRef := obj.Str("productReference"); prodRef != "" {
		if file := doc.Object(prodRef); file != nil {
			t.ProductPath = file.Str("path")
		}
	}
	for _, depRef := range obj.Refs("dependencies") {
		dep := doc.Object(depRef)
		if dep == nil || dep.ISA() != pbx.ISATargetDependency {
			continue
		}
		if productRef := dep.Str("productRef"); productRef != "" {
			name := dep.Str("name")
			if product := doc.Object(productRef); product != nil && product.Str("productName") != "" {
				name = product.Str("productName")
			}
			t.Dependencies = append(t.Dependencies, Dependency{
				Name: name,
				Kind: DependencyPackage,
			})
			continue
		}
		targetRef := dep.Str("target")
		name := dep.Str("name")
		if target := doc.Object(targetRef); target != nil && name == "" {
			name = target.Str("name")
		}
		t.Dependencies = append(t.Dependencies, Dependency{
			Name:      name,
			Kind:      DependencyNative,
			TargetRef: targetRef,
		})
	}
	return t
}

// Target returns the named target, if the project has one.
func (p *Project) Target(name string) (*Target, bool) {
	t, ok := p.targets[name]
	return t, ok
}

// HasPackage reports whether name is a declared package dependency.
func (p *Project) HasPackage(name string) bool {
	_, ok := p.packages[name]
	return ok
}

// Targets returns the project's native targets in declared order.
func (p *Project) Targets() []*Target {
	out := make([]*Target, 0, len(p.targetOrder))
	for _, name := range p.targetOrder {
		out = append(out, p.targets[name])
	}
	return out
}

// Packages returns the project's package dependencies in declared order.
func (p *Project) Packages() []*Package {
	out := make([]*Package, 0, len(p.packageOrder))
	for _, name := range p.packageOrder {
		out = append(out, p.packages[name])
	}
	return out
}

// ProductPath resolves a native target reference to its build product path.
// The second return is false when the reference is unknown or the target
// declares no product.
func (p *Project) ProductPath(targetRef string) (string, bool) {
	t, ok := p.byRef[targetRef]
	if !ok || t.ProductPath == "" {
		return "", false
	}
	return t.ProductPath, true
}

// Resolve maps one dependency to its output identifier: the product path
// for a native dependency the project can resolve, the declared name
// otherwise.
func (p *Project) Resolve(d Dependency) string {
	if d.Kind == DependencyNative {
		if path, ok := p.ProductPath(d.TargetRef); ok {
			return path
		}
	}
	return d.Name
}

// TargetsToProducts returns the target name → product path mapping for
// every target in the project, including targets with no product (empty
// path).
func (p *Project) TargetsToProducts() map[string]string {
	out := make(map[string]string, len(p.targets))
	for name, t := range p.targets {
		out[name] = t.ProductPath
	}
	return out
}
