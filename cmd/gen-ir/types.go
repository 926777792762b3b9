package main

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLITarget is a JSON-friendly native target representation.
type CLITarget struct {
	Name    string `json:"name"`
	Product string `json:"product,omitempty"`
	Project string `json:"project,omitempty"`
}

// CLIProduct is one target → product mapping entry.
type CLIProduct struct {
	Target  string `json:"target"`
	Product string `json:"product"`
}

// CLIPackage is a JSON-friendly package dependency representation.
type CLIPackage struct {
	Name          string `json:"name"`
	RepositoryURL string `json:"repository_url,omitempty"`
	Project       string `json:"project,omitempty"`
}

// CLIDependency is one resolved dependency of a target.
type CLIDependency struct {
	Identifier string `json:"identifier"`
	Kind       string `json:"kind"`
}

// CLIIndexSummary reports what an index run wrote.
type CLIIndexSummary struct {
	Bundle    string `json:"bundle"`
	DB        string `json:"db"`
	Projects  int    `json:"projects"`
	Targets   int    `json:"targets"`
	Packages  int    `json:"packages"`
	ElapsedMS int64  `json:"elapsed_ms"`
}
