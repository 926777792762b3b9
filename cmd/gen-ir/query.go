package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/chaowyc/gen-ir/internal/store"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the build-graph index",
	Long:  "Run queries against a previously built index (see 'gen-ir index').",
}

func init() {
	queryCmd.AddCommand(targetsCmd)
	queryCmd.AddCommand(productsCmd)
	queryCmd.AddCommand(packagesCmd)
	queryCmd.AddCommand(depsCmd)
}

// openStore opens the index from the --db flag path (or default).
func openStore() (*store.Store, error) {
	dbPath := resolveDBPath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("index not found: %s (run 'gen-ir index' first)", dbPath)
	}
	return store.NewStore(dbPath)
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List all native targets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return outputError("targets", err)
		}
		defer s.Close()

		targets, err := s.Targets()
		if err != nil {
			return outputError("targets", err)
		}
		results := make([]CLITarget, 0, len(targets))
		for _, t := range targets {
			results = append(results, CLITarget{Name: t.Name, Product: t.ProductPath, Project: t.Project})
		}
		return outputResult(CLIResult{Command: "targets", Results: results})
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the target → product mapping",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return outputError("products", err)
		}
		defer s.Close()

		products, err := s.TargetsToProducts()
		if err != nil {
			return outputError("products", err)
		}
		results := make([]CLIProduct, 0, len(products))
		for target, product := range products {
			results = append(results, CLIProduct{Target: target, Product: product})
		}
		sort.Slice(results, func(i, j int) bool { return results[i].Target < results[j].Target })
		return outputResult(CLIResult{Command: "products", Results: results})
	},
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List all declared package dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return outputError("packages", err)
		}
		defer s.Close()

		packages, err := s.Packages()
		if err != nil {
			return outputError("packages", err)
		}
		results := make([]CLIPackage, 0, len(packages))
		for _, p := range packages {
			results = append(results, CLIPackage{Name: p.Name, RepositoryURL: p.RepositoryURL, Project: p.Project})
		}
		return outputResult(CLIResult{Command: "packages", Results: results})
	},
}

var depsCmd = &cobra.Command{
	Use:   "deps <target>",
	Short: "List a target's resolved direct dependencies",
	Long:  "Returns the target's direct dependencies in declared order: the build-product\npath for resolvable native dependencies, the declared name otherwise. An\nunknown target yields an empty result.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return outputError("deps", err)
		}
		defer s.Close()

		deps, err := s.DependenciesByTarget(args[0])
		if err != nil {
			return outputError("deps", err)
		}
		results := make([]CLIDependency, 0, len(deps))
		for _, d := range deps {
			results = append(results, CLIDependency{Identifier: d.Identifier, Kind: d.Kind})
		}
		return outputResult(CLIResult{Command: "deps", Results: results})
	},
}
