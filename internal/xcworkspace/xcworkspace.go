// Package xcworkspace parses contents.xcworkspacedata — the XML document
// inside an .xcworkspace bundle — and yields the ordered list of .xcodeproj
// bundles the workspace aggregates. Ordering is deterministic and fixes the
// workspace's project order, which downstream lookups rely on: file
// references at each nesting level come before those in nested groups, and
// siblings keep document order.
package xcworkspace

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"
)

// document mirrors the contents.xcworkspacedata layout. Groups nest.
type document struct {
	XMLName  xml.Name  `xml:"Workspace"`
	Version  string    `xml:"version,attr"`
	FileRefs []fileRef `xml:"FileRef"`
	Groups   []group   `xml:"Group"`
}

type group struct {
	Location string    `xml:"location,attr"`
	Name     string    `xml:"name,attr"`
	FileRefs []fileRef `xml:"FileRef"`
	Groups   []group   `xml:"Group"`
}

type fileRef struct {
	Location string `xml:"location,attr"`
}

// ProjectRefs parses the workspace description and returns the referenced
// .xcodeproj paths, resolved relative to rootDir (the directory containing
// the .xcworkspace bundle). References to anything other than an .xcodeproj
// bundle are skipped.
//
// Location attributes use a scheme prefix: "group:" and "container:" paths
// are relative (group paths compose with their enclosing group's location),
// "absolute:" paths are taken as-is, and "self:" points at the container
// itself and never names a project.
func ProjectRefs(data []byte, rootDir string) ([]string, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode xcworkspacedata: %w", err)
	}

	var refs []string
	collect := func(base string, frs []fileRef) {
		for _, fr := range frs {
			p, ok := resolveLocation(base, fr.Location)
			if !ok || filepath.Ext(p) != ".xcodeproj" {
				continue
			}
			refs = append(refs, p)
		}
	}

	collect(rootDir, doc.FileRefs)
	var walk func(base string, groups []group)
	walk = func(base string, groups []group) {
		for _, g := range groups {
			groupDir, ok := resolveLocation(base, g.Location)
			if !ok {
				groupDir = base
			}
			collect(groupDir, g.FileRefs)
			walk(groupDir, g.Groups)
		}
	}
	walk(rootDir, doc.Groups)

	return refs, nil
}

// resolveLocation turns a scheme-prefixed location into a filesystem path.
// Returns false for "self:" and unrecognized schemes.
func resolveLocation(base, location string) (string, bool) {
	scheme, rest, found := strings.Cut(location, ":")
	if !found {
		return "", false
	}
	switch scheme {
	case "group", "container":
		return filepath.Join(base, filepath.FromSlash(rest)), true
	case "absolute":
		return filepath.FromSlash(rest), true
	default:
		return "", false
	}
}
