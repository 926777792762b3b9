package genir

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_RoutingFirstProjectWins(t *testing.T) {
	t.Parallel()
	log, h := newCaptureLogger()

	first := NewProject("First", "", []*Target{
		{Name: "Shared", Ref: "REF_1", ProductPath: "First.framework"},
	}, nil)
	second := NewProject("Second", "", []*Target{
		{Name: "Shared", Ref: "REF_2", ProductPath: "Second.framework"},
	}, nil)

	ws := NewWorkspace([]*Project{first, second}, log)

	assert.Same(t, first, ws.ProjectFor("Shared"))
	// The collision is flagged, not silently swallowed.
	assert.Equal(t, 1, h.countLevel(slog.LevelWarn))
}

func TestWorkspace_TargetsToProductsIsUnionOfProjects(t *testing.T) {
	t.Parallel()
	log, _ := newCaptureLogger()

	projA := NewProject("A", "", []*Target{
		{Name: "Alpha", Ref: "RA", ProductPath: "Alpha.app"},
	}, nil)
	projB := NewProject("B", "", []*Target{
		{Name: "Beta", Ref: "RB", ProductPath: "Beta.framework"},
		{Name: "Gamma", Ref: "RG", ProductPath: "Gamma.a"},
	}, nil)

	ws := NewWorkspace([]*Project{projA, projB}, log)

	want := map[string]string{}
	for _, p := range []*Project{projA, projB} {
		for name, product := range p.TargetsToProducts() {
			want[name] = product
		}
	}
	assert.Equal(t, want, ws.TargetsToProducts())
	assert.Len(t, ws.TargetsToProducts(), 3)
}

func TestWorkspace_TargetsToProductsCollisionKeepsFirst(t *testing.T) {
	t.Parallel()
	log, _ := newCaptureLogger()

	first := NewProject("First", "", []*Target{
		{Name: "Shared", Ref: "R1", ProductPath: "First.framework"},
	}, nil)
	second := NewProject("Second", "", []*Target{
		{Name: "Shared", Ref: "R2", ProductPath: "Second.framework"},
	}, nil)

	ws := NewWorkspace([]*Project{first, second}, log)
	assert.Equal(t, map[string]string{"Shared": "First.framework"}, ws.TargetsToProducts())
}

func TestWorkspace_TargetsPreservePerProjectOrder(t *testing.T) {
	t.Parallel()
	log, _ := newCaptureLogger()

	projA := NewProject("A", "", []*Target{
		{Name: "A2", Ref: "RA2"},
		{Name: "A1", Ref: "RA1"},
	}, nil)
	projB := NewProject("B", "", []*Target{
		{Name: "B1", Ref: "RB1"},
	}, nil)

	ws := NewWorkspace([]*Project{projA, projB}, log)

	var names []string
	for _, target := range ws.Targets() {
		names = append(names, target.Name)
	}
	// Per-project blocks are contiguous, declared order kept within each.
	assert.Equal(t, []string{"A2", "A1", "B1"}, names)
}

func TestWorkspace_PackagesConcatenateAcrossProjects(t *testing.T) {
	t.Parallel()
	log, _ := newCaptureLogger()

	projA := NewProject("A", "", nil, []*Package{
		{Name: "swift-log", RepositoryURL: "https://github.com/apple/swift-log.git"},
	})
	projB := NewProject("B", "", nil, []*Package{
		{Name: "swift-nio", RepositoryURL: "https://github.com/apple/swift-nio.git"},
		{Name: "swift-log", RepositoryURL: "https://github.com/apple/swift-log.git"},
	})

	ws := NewWorkspace([]*Project{projA, projB}, log)

	pkgs := ws.Packages()
	require.Len(t, pkgs, 3)
	assert.Equal(t, "swift-log", pkgs[0].Name)
	assert.Equal(t, "swift-nio", pkgs[1].Name)
	assert.Equal(t, "swift-log", pkgs[2].Name)
}

func TestWorkspace_EmptyWorkspace(t *testing.T) {
	t.Parallel()
	log, _ := newCaptureLogger()

	ws := NewWorkspace(nil, log)
	assert.Empty(t, ws.Projects())
	assert.Empty(t, ws.Targets())
	assert.Empty(t, ws.Packages())
	assert.Empty(t, ws.TargetsToProducts())
	assert.Nil(t, ws.ProjectFor("anything"))
}

func TestNewProject_DuplicateTargetNamesKeepFirst(t *testing.T) {
	t.Parallel()
	p := NewProject("P", "", []*Target{
		{Name: "Dup", Ref: "R1", ProductPath: "One.app"},
		{Name: "Dup", Ref: "R2", ProductPath: "Two.app"},
	}, nil)

	target, ok := p.Target("Dup")
	require.True(t, ok)
	assert.Equal(t, "R1", target.Ref)
	assert.Len(t, p.Targets(), 1)
}

func TestPackageDisplayName(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"explicit", "https://github.com/apple/swift-log.git", "explicit"},
		{"", "https://github.com/apple/swift-log.git", "swift-log"},
		{"", "https://github.com/apple/swift-nio", "swift-nio"},
		{"", "../LocalPackages/Shared", "Shared"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, packageDisplayName(tc.name, tc.url))
	}
}
