// Package pbx parses project.pbxproj files — the OpenStep-format property
// list inside an .xcodeproj bundle — into a flat object graph keyed by
// object identifier. It models only the object kinds needed to answer
// target and dependency queries; everything else (build phases, build
// configurations, groups) is carried as opaque entries and ignored.
package pbx

import (
	"fmt"

	"howett.net/plist"
)

// Object kinds this package consumes. Any other isa is skipped, not an error.
const (
	ISAProject                  = "PBXProject"
	ISANativeTarget             = "PBXNativeTarget"
	ISAAggregateTarget          = "PBXAggregateTarget"
	ISATargetDependency         = "PBXTargetDependency"
	ISAFileReference            = "PBXFileReference"
	ISAPackageProductDependency = "XCSwiftPackageProductDependency"
	ISARemotePackageReference   = "XCRemoteSwiftPackageReference"
	ISALocalPackageReference    = "XCLocalSwiftPackageReference"
)

// Object is a single entry in the pbxproj objects table. OpenStep plists
// carry every scalar as a string, so accessors only deal in strings and
// string lists.
type Object map[string]any

// ISA returns the object's type tag.
func (o Object) ISA() string {
	return o.Str("isa")
}

// Str returns the string value for key, or "" when absent or not a string.
func (o Object) Str(key string) string {
	s, _ := o[key].(string)
	return s
}

// Refs returns the list of object identifiers stored under key, preserving
// declared order. Non-string entries are dropped.
func (o Object) Refs(key string) []string {
	raw, _ := o[key].([]any)
	if raw == nil {
		return nil
	}
	refs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			refs = append(refs, s)
		}
	}
	return refs
}

// Document is a parsed project.pbxproj.
type Document struct {
	ObjectVersion string
	RootObject    string
	Objects       map[string]Object
}

// Object returns the object with the given identifier, or nil.
func (d *Document) Object(ref string) Object {
	return d.Objects[ref]
}

// Project returns the root PBXProject object.
func (d *Document) Project() (Object, error) {
	obj := d.Objects[d.RootObject]
	if obj == nil {
		return nil, fmt.Errorf("root object %q not found", d.RootObject)
	}
	if obj.ISA() != ISAProject {
		return nil, fmt.Errorf("root object %q is %q, want %s", d.RootObject, obj.ISA(), ISAProject)
	}
	return obj, nil
}

// rawDocument mirrors the top-level pbxproj dictionary for plist decoding.
type rawDocument struct {
	ObjectVersion string                    `plist:"objectVersion"`
	RootObject    string                    `plist:"rootObject"`
	Objects       map[string]map[string]any `plist:"objects"`
}

// Parse decodes a project.pbxproj. The file is an OpenStep text plist in
// practice, but XML and binary plists decode identically.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode pbxproj: %w", err)
	}
	if raw.RootObject == "" {
		return nil, fmt.Errorf("pbxproj has no rootObject")
	}
	if len(raw.Objects) == 0 {
		return nil, fmt.Errorf("pbxproj has no objects table")
	}

	doc := &Document{
		ObjectVersion: raw.ObjectVersion,
		RootObject:    raw.RootObject,
		Objects:       make(map[string]Object, len(raw.Objects)),
	}
	for ref, obj := range raw.Objects {
		doc.Objects[ref] = Object(obj)
	}
	if _, err := doc.Project(); err != nil {
		return nil, fmt.Errorf("pbxproj: %w", err)
	}
	return doc, nil
}
