package genir

// Dependencies resolves the direct dependencies of the named target to
// output identifiers: the build-product path for native dependencies the
// owning project can resolve, the declared name otherwise. Output order
// follows the target's declared dependency order; nothing is deduplicated
// or sorted.
//
// Every failure mode is soft. An unroutable or unknown target yields an
// empty result plus a diagnostic — workspaces routinely reference targets
// outside the caller's concern. A name that is a declared package
// dependency rather than a target yields an empty result silently: package
// dependencies never list their own dependencies in the description file.
func (g *Graph) Dependencies(target string) []string {
	p := g.project
	if g.workspace != nil {
		p = g.workspace.ProjectFor(target)
		if p == nil {
			g.log.Warn("no workspace project owns target", "target", target)
			return nil
		}
	}

	t, ok := p.Target(target)
	if !ok {
		if p.HasPackage(target) {
			return nil
		}
		g.log.Warn("target not found in project", "target", target, "project", p.Name)
		return nil
	}

	deps := make([]string, 0, len(t.Dependencies))
	for _, d := range t.Dependencies {
		deps = append(deps, p.Resolve(d))
	}
	return deps
}
