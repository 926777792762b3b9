package store

import "fmt"

// CommitGraph replaces the stored build graph with the given projects in a
// single transaction. Insertion order defines row order, which read queries
// rely on for stable output.
func (s *Store) CommitGraph(projects []ProjectRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("commit graph: begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"target_dependencies", "targets", "packages", "projects"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("commit graph: clear %s: %w", table, err)
		}
	}

	for _, p := range projects {
		res, err := tx.Exec("INSERT INTO projects (name, path) VALUES (?, ?)", p.Name, p.Path)
		if err != nil {
			return fmt.Errorf("commit graph: insert project %q: %w", p.Name, err)
		}
		projectID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("commit graph: project id: %w", err)
		}

		for _, t := range p.Targets {
			res, err := tx.Exec(
				"INSERT INTO targets (project_id, name, product_path) VALUES (?, ?, ?)",
				projectID, t.Name, t.ProductPath,
			)
			if err != nil {
				return fmt.Errorf("commit graph: insert target %q: %w", t.Name, err)
			}
			targetID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("commit graph: target id: %w", err)
			}
			for pos, d := range t.Dependencies {
				_, err := tx.Exec(
					"INSERT INTO target_dependencies (target_id, position, identifier, kind) VALUES (?, ?, ?, ?)",
					targetID, pos, d.Identifier, d.Kind,
				)
				if err != nil {
					return fmt.Errorf("commit graph: insert dependency %q of %q: %w", d.Identifier, t.Name, err)
				}
			}
		}

		for _, pkg := range p.Packages {
			_, err := tx.Exec(
				"INSERT INTO packages (project_id, name, repository_url) VALUES (?, ?, ?)",
				projectID, pkg.Name, pkg.RepositoryURL,
			)
			if err != nil {
				return fmt.Errorf("commit graph: insert package %q: %w", pkg.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit graph: commit: %w", err)
	}
	return nil
}

// Projects returns all indexed projects in insertion order.
func (s *Store) Projects() ([]*Project, error) {
	rows, err := s.db.Query("SELECT id, name, path FROM projects ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Path); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("project rows: %w", err)
	}
	return projects, nil
}

// Targets returns all indexed targets in insertion order with their owning
// project name.
func (s *Store) Targets() ([]*Target, error) {
	rows, err := s.db.Query(
		`SELECT t.id, t.project_id, p.name, t.name, t.product_path
		 FROM targets t JOIN projects p ON p.id = t.project_id
		 ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("query targets: %w", err)
	}
	defer rows.Close()

	var targets []*Target
	for rows.Next() {
		t := &Target{}
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Project, &t.Name, &t.ProductPath); err != nil {
			return nil, fmt.Errorf("scan target: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("target rows: %w", err)
	}
	return targets, nil
}

// Packages returns all indexed package dependencies in insertion order with
// their owning project name.
func (s *Store) Packages() ([]*Package, error) {
	rows, err := s.db.Query(
		`SELECT k.id, k.project_id, p.name, k.name, k.repository_url
		 FROM packages k JOIN projects p ON p.id = k.project_id
		 ORDER BY k.id`)
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	var packages []*Package
	for rows.Next() {
		k := &Package{}
		if err := rows.Scan(&k.ID, &k.ProjectID, &k.Project, &k.Name, &k.RepositoryURL); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		packages = append(packages, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("package rows: %w", err)
	}
	return packages, nil
}

// TargetsToProducts returns the indexed target name → product path mapping.
// For duplicate target names (workspace collisions) the earliest-indexed
// target wins, matching resolution-time routing.
func (s *Store) TargetsToProducts() (map[string]string, error) {
	rows, err := s.db.Query("SELECT name, product_path FROM targets ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var name, product string
		if err := rows.Scan(&name, &product); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if _, ok := out[name]; ok {
			continue
		}
		out[name] = product
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product rows: %w", err)
	}
	return out, nil
}

// DependenciesByTarget returns the resolved dependencies of the named
// target in declared order. An unknown target yields an empty result, not
// an error. For duplicate target names the earliest-indexed target is used.
func (s *Store) DependenciesByTarget(name string) ([]*Dependency, error) {
	rows, err := s.db.Query(
		`SELECT d.id, d.target_id, d.position, d.identifier, d.kind
		 FROM target_dependencies d
		 WHERE d.target_id = (SELECT id FROM targets WHERE name = ? ORDER BY id LIMIT 1)
		 ORDER BY d.position`,
		name)
	if err != nil {
		return nil, fmt.Errorf("query dependencies: %w", err)
	}
	defer rows.Close()

	var deps []*Dependency
	for rows.Next() {
		d := &Dependency{}
		if err := rows.Scan(&d.ID, &d.TargetID, &d.Position, &d.Identifier, &d.Kind); err != nil {
			return nil, fmt.Errorf("scan dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dependency rows: %w", err)
	}
	return deps, nil
}
