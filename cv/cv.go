// Package cv models controlled-vocabulary parameters as used by the
// PSI mzML format.
//
// A param is a (vocabulary, accession, name, value, unit) tuple. Params
// can be declared directly on an element or inherited through a
// referenceable param group; Resolve flattens the two into the
// element's effective attribute set.
package cv

import "encoding/xml"

// Param is a single controlled-vocabulary attribute.
type Param struct {
	XMLName       xml.Name `xml:"cvParam"`
	CVRef         string   `xml:"cvRef,attr"`
	Accession     string   `xml:"accession,attr"`
	Name          string   `xml:"name,attr"`
	Value         string   `xml:"value,attr,omitempty"`
	UnitCVRef     string   `xml:"unitCvRef,attr,omitempty"`
	UnitAccession string   `xml:"unitAccession,attr,omitempty"`
	UnitName      string   `xml:"unitName,attr,omitempty"`
}

// UserParam is a free-form attribute outside any controlled vocabulary.
type UserParam struct {
	XMLName xml.Name `xml:"userParam"`
	Name    string   `xml:"name,attr"`
	Value   string   `xml:"value,attr,omitempty"`
	Type    string   `xml:"type,attr,omitempty"`
}

// ParamGroup is a referenceable group of params declared once near the
// top of a document and shared by reference.
type ParamGroup struct {
	ID     string
	Params []Param
}

// GroupRef references a ParamGroup by id.
type GroupRef struct {
	XMLName xml.Name `xml:"referenceableParamGroupRef"`
	Ref     string   `xml:"ref,attr"`
}

// Resolver resolves group references against the groups declared in a
// document.
type Resolver struct {
	groups map[string]*ParamGroup
}

// NewResolver builds a Resolver over the given groups.
func NewResolver(groups []ParamGroup) *Resolver {
	m := make(map[string]*ParamGroup, len(groups))
	for i := range groups {
		m[groups[i].ID] = &groups[i]
	}
	return &Resolver{groups: m}
}

// Group returns the group with the given id.
func (r *Resolver) Group(id string) (*ParamGroup, bool) {
	g, ok := r.groups[id]
	return g, ok
}

// Resolve returns the effective param set of an element: params from
// every referenced group first (in group declaration order), then the
// directly declared params. When the same accession occurs more than
// once, the last declaration wins, so direct params override inherited
// ones.
func (r *Resolver) Resolve(direct []Param, refs []GroupRef) []Param {
	merged := make([]Param, 0, len(direct))
	for _, ref := range refs {
		if g, ok := r.groups[ref.Ref]; ok {
			merged = append(merged, g.Params...)
		}
	}
	merged = append(merged, direct...)
	return dedupe(merged)
}

// dedupe keeps one entry per accession, preferring the last declared.
// Relative order follows the first occurrence of each accession.
func dedupe(params []Param) []Param {
	last := make(map[string]Param, len(params))
	for _, p := range params {
		last[p.Accession] = p
	}

	out := params[:0]
	seen := make(map[string]bool, len(last))
	for _, p := range params {
		if seen[p.Accession] {
			continue
		}
		seen[p.Accession] = true
		out = append(out, last[p.Accession])
	}
	return out
}

// Find returns the first param with the given accession.
func Find(params []Param, accession string) (Param, bool) {
	for _, p := range params {
		if p.Accession == accession {
			return p, true
		}
	}
	return Param{}, false
}
