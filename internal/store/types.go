package store

// Row types returned by queries.

type Project struct {
	ID   int64
	Name string
	Path string
}

type Target struct {
	ID          int64
	ProjectID   int64
	Project     string // owning project name, filled by joins
	Name        string
	ProductPath string
}

type Dependency struct {
	ID         int64
	TargetID   int64
	Position   int
	Identifier string
	Kind       string
}

type Package struct {
	ID            int64
	ProjectID     int64
	Project       string // owning project name, filled by joins
	Name          string
	RepositoryURL string
}

// Record types accepted by CommitGraph. They mirror the resolved build
// graph: dependencies carry the already-resolved identifier, not a raw
// object reference.

type ProjectRecord struct {
	Name     string
	Path     string
	Targets  []TargetRecord
	Packages []PackageRecord
}

type TargetRecord struct {
	Name         string
	ProductPath  string
	Dependencies []DependencyRecord
}

type DependencyRecord struct {
	Identifier string
	Kind       string
}

type PackageRecord struct {
	Name          string
	RepositoryURL string
}
