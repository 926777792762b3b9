package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	genir "github.com/chaowyc/gen-ir"
	"github.com/chaowyc/gen-ir/internal/store"
	"github.com/spf13/cobra"
)

var flagForce bool

var indexCmd = &cobra.Command{
	Use:   "index [bundle]",
	Short: "Parse a project or workspace and write the build-graph index",
	Long:  "Parses the given .xcodeproj or .xcworkspace bundle, resolves every target's\ndependencies, and writes the result to the SQLite index. Without an argument,\nlooks for exactly one bundle in the current directory (workspaces preferred).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&flagForce, "force", false, "delete the index database and rebuild from scratch")
}

func runIndex(cmd *cobra.Command, args []string) error {
	start := time.Now()

	bundle, err := resolveBundleArg(args)
	if err != nil {
		return outputError("index", err)
	}

	g, err := genir.Open(bundle, logger)
	if err != nil {
		return outputError("index", err)
	}

	dbPath := resolveDBPath()
	if flagForce {
		os.Remove(dbPath)
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return outputError("index", fmt.Errorf("creating index directory: %w", err))
		}
	}

	s, err := store.NewStore(dbPath)
	if err != nil {
		return outputError("index", err)
	}
	defer s.Close()
	if err := s.Migrate(); err != nil {
		return outputError("index", err)
	}

	records := graphRecords(g)
	if err := s.CommitGraph(records); err != nil {
		return outputError("index", err)
	}

	summary := CLIIndexSummary{
		Bundle:    bundle,
		DB:        dbPath,
		Projects:  len(records),
		ElapsedMS: time.Since(start).Milliseconds(),
	}
	for _, rec := range records {
		summary.Targets += len(rec.Targets)
		summary.Packages += len(rec.Packages)
	}
	return outputResult(CLIResult{Command: "index", Results: summary})
}

// graphRecords converts a resolved graph into store records. Dependencies
// are stored already resolved so query-time reads never touch the bundles.
func graphRecords(g *genir.Graph) []store.ProjectRecord {
	var records []store.ProjectRecord
	for _, p := range g.Projects() {
		rec := store.ProjectRecord{Name: p.Name, Path: p.Path}
		for _, t := range p.Targets() {
			tr := store.TargetRecord{Name: t.Name, ProductPath: t.ProductPath}
			for _, d := range t.Dependencies {
				tr.Dependencies = append(tr.Dependencies, store.DependencyRecord{
					Identifier: p.Resolve(d),
					Kind:       string(d.Kind),
				})
			}
			rec.Targets = append(rec.Targets, tr)
		}
		for _, pkg := range p.Packages() {
			rec.Packages = append(rec.Packages, store.PackageRecord{
				Name:          pkg.Name,
				RepositoryURL: pkg.RepositoryURL,
			})
		}
		records = append(records, rec)
	}
	return records
}

// resolveBundleArg returns the bundle path from args, or discovers one in
// the current directory. A workspace wins over project bundles when both
// are present; multiple candidates of the same kind are ambiguous.
func resolveBundleArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	entries, err := os.ReadDir(".")
	if err != nil {
		return "", fmt.Errorf("reading current directory: %w", err)
	}
	var workspaces, projects []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".xcworkspace":
			workspaces = append(workspaces, e.Name())
		case ".xcodeproj":
			projects = append(projects, e.Name())
		}
	}
	switch {
	case len(workspaces) == 1:
		return workspaces[0], nil
	case len(workspaces) > 1:
		return "", fmt.Errorf("multiple workspaces found, pass one explicitly: %v", workspaces)
	case len(projects) == 1:
		return projects[0], nil
	case len(projects) > 1:
		return "", fmt.Errorf("multiple projects found, pass one explicitly: %v", projects)
	default:
		return "", fmt.Errorf("no .xcodeproj or .xcworkspace bundle in the current directory")
	}
}
