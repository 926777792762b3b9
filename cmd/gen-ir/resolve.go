package main

import (
	genir "github.com/chaowyc/gen-ir"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <bundle> <target>",
	Short: "Resolve a target's direct dependencies without an index",
	Long:  "One-shot resolution: parses the bundle and resolves the named target's direct\ndependencies in a single run, without reading or writing the index.",
	Args:  cobra.ExactArgs(2),
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	g, err := genir.Open(args[0], logger)
	if err != nil {
		return outputError("resolve", err)
	}
	return outputResult(CLIResult{Command: "resolve", Results: g.Dependencies(args[1])})
}
