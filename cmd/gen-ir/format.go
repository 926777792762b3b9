package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as
// a CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// outputResultText dispatches to the appropriate text formatter based on
// the result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case []CLITarget:
		formatTargetsText(w, v)
	case []CLIProduct:
		formatProductsText(w, v)
	case []CLIPackage:
		formatPackagesText(w, v)
	case []CLIDependency:
		formatDependenciesText(w, v)
	case []string:
		for _, s := range v {
			fmt.Fprintln(w, s)
		}
	case CLIIndexSummary:
		formatIndexSummaryText(w, v)
	case nil:
		// No output for nil results.
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// formatTargetsText formats CLITarget results as aligned columns.
func formatTargetsText(w io.Writer, targets []CLITarget) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPRODUCT\tPROJECT")
	for _, t := range targets {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Product, t.Project)
	}
	tw.Flush()
}

// formatProductsText formats CLIProduct results as aligned columns.
func formatProductsText(w io.Writer, products []CLIProduct) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tPRODUCT")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\n", p.Target, p.Product)
	}
	tw.Flush()
}

// formatPackagesText formats CLIPackage results as aligned columns.
func formatPackagesText(w io.Writer, packages []CLIPackage) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tREPOSITORY\tPROJECT")
	for _, p := range packages {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.RepositoryURL, p.Project)
	}
	tw.Flush()
}

// formatDependenciesText formats CLIDependency results as aligned columns.
func formatDependenciesText(w io.Writer, deps []CLIDependency) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tKIND")
	for _, d := range deps {
		fmt.Fprintf(tw, "%s\t%s\n", d.Identifier, d.Kind)
	}
	tw.Flush()
}

// formatIndexSummaryText formats an index run summary as readable text.
func formatIndexSummaryText(w io.Writer, s CLIIndexSummary) {
	fmt.Fprintf(w, "Indexed %s\n", s.Bundle)
	fmt.Fprintf(w, "  projects: %d\n", s.Projects)
	fmt.Fprintf(w, "  targets:  %d\n", s.Targets)
	fmt.Fprintf(w, "  packages: %d\n", s.Packages)
	fmt.Fprintf(w, "  index:    %s (%dms)\n", s.DB, s.ElapsedMS)
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
