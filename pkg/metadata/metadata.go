package metadata

import (
	"encoding/json"
	"io"
	"slices"

	"github.com/matzehuels/libcheck/pkg/errors"
)

// KindLib is the target kind tag marking a linkable library artifact.
const KindLib = "lib"

// Document is a build-metadata document: an ordered set of packages.
// It is read-only input; none of its methods mutate it.
type Document struct {
	Packages []Package `json:"packages"`
}

// Package describes one package and the build targets it produces.
// Names are not guaranteed unique across a whole workspace document.
type Package struct {
	Name    string   `json:"name"`
	Targets []Target `json:"targets"`
}

// Target is a single build artifact descriptor. A target may carry several
// kind tags at once (e.g. both "lib" and "staticlib").
type Target struct {
	Name string   `json:"name,omitempty"`
	Kind []string `json:"kind"`
}

// Decode reads a metadata document from r.
// Fields beyond the modeled shape are ignored, not rejected.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "decode metadata document")
	}
	return &doc, nil
}

// Package returns the first package named name, in document order.
// The second return is false if no package matches.
func (d *Document) Package(name string) (Package, bool) {
	for _, pkg := range d.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return Package{}, false
}

// HasLibTarget reports whether the first package named name produces a
// library target. Absent packages yield false.
func (d *Document) HasLibTarget(name string) bool {
	pkg, ok := d.Package(name)
	if !ok {
		return false
	}
	return pkg.HasLibTarget()
}

// HasLibTarget reports whether any of the package's targets is a lib target.
func (p Package) HasLibTarget() bool {
	for _, t := range p.Targets {
		if t.HasKind(KindLib) {
			return true
		}
	}
	return false
}

// HasKind reports whether the target's kind set contains kind.
// Matching is exact string equality.
func (t Target) HasKind(kind string) bool {
	return slices.Contains(t.Kind, kind)
}
