// Package taxonomy reads the NCBI taxonomy database from a taxdmp.zip
// archive and answers id, lineage and subtree queries, including ids
// that NCBI has merged away or deleted since a sample was annotated.
package taxonomy

import (
	"errors"
	"fmt"
	"sort"
)

// TaxdmpURL is where NCBI publishes the current taxdmp.zip.
const TaxdmpURL = "https://ftp.ncbi.nih.gov/pub/taxonomy/taxdmp.zip"

var (
	// ErrNotFound is returned for ids absent from the database.
	ErrNotFound = errors.New("taxonomy: taxon not found")

	// ErrDeleted is returned for ids listed in delnodes.dmp.
	ErrDeleted = errors.New("taxonomy: taxon was deleted")
)

// Taxon is one node of the NCBI taxonomy.
type Taxon struct {
	ID             uint64
	ParentID       uint64
	ScientificName string
	Rank           string
}

// Tree is the loaded taxonomy. Immutable after loading, safe for
// concurrent reads.
type Tree struct {
	taxa     map[uint64]*Taxon
	children map[uint64][]uint64
	merged   map[uint64]uint64
	deleted  map[uint64]struct{}
	ranks    []string
}

// Len returns the number of taxa.
func (t *Tree) Len() int { return len(t.taxa) }

// Ranks returns the distinct rank names, sorted.
func (t *Tree) Ranks() []string { return t.ranks }

// Merged reports whether id was merged into another taxon and returns
// the replacement id.
func (t *Tree) Merged(id uint64) (uint64, bool) {
	newID, ok := t.merged[id]
	return newID, ok
}

// Deleted reports whether id is listed as deleted.
func (t *Tree) Deleted(id uint64) bool {
	_, ok := t.deleted[id]
	return ok
}

// Lookup returns the taxon for id. A merged id resolves to its
// replacement. A deleted id fails with ErrDeleted, an unknown one with
// ErrNotFound.
func (t *Tree) Lookup(id uint64) (*Taxon, error) {
	if tax, ok := t.taxa[id]; ok {
		return tax, nil
	}
	if newID, ok := t.merged[id]; ok {
		if tax, ok := t.taxa[newID]; ok {
			return tax, nil
		}
	}
	if t.Deleted(id) {
		return nil, fmt.Errorf("%w: %d", ErrDeleted, id)
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Lineage returns the path from the root to the taxon, both inclusive.
func (t *Tree) Lineage(id uint64) ([]*Taxon, error) {
	tax, err := t.Lookup(id)
	if err != nil {
		return nil, err
	}

	var path []*Taxon
	seen := make(map[uint64]struct{})
	for {
		if _, ok := seen[tax.ID]; ok {
			return nil, fmt.Errorf("taxonomy: cyclic lineage at taxon %d", tax.ID)
		}
		seen[tax.ID] = struct{}{}

		path = append(path, tax)
		// The root is its own parent.
		if tax.ParentID == tax.ID {
			break
		}
		parent, ok := t.taxa[tax.ParentID]
		if !ok {
			return nil, fmt.Errorf("taxonomy: taxon %d has unknown parent %d", tax.ID, tax.ParentID)
		}
		tax = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Subtree returns all descendants of the taxon, excluding the taxon
// itself, in depth-first order.
func (t *Tree) Subtree(id uint64) ([]*Taxon, error) {
	tax, err := t.Lookup(id)
	if err != nil {
		return nil, err
	}

	var descendants []*Taxon
	seen := map[uint64]struct{}{tax.ID: {}}
	stack := append([]uint64(nil), t.children[tax.ID]...)
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// A parent cycle in nodes.dmp would revisit ids forever.
		if _, ok := seen[next]; ok {
			continue
		}
		seen[next] = struct{}{}
		descendants = append(descendants, t.taxa[next])
		stack = append(stack, t.children[next]...)
	}
	return descendants, nil
}

func newTree(taxa map[uint64]*Taxon, merged map[uint64]uint64, deleted []uint64) *Tree {
	t := &Tree{
		taxa:     taxa,
		children: make(map[uint64][]uint64),
		merged:   merged,
		deleted:  make(map[uint64]struct{}, len(deleted)),
	}
	for _, id := range deleted {
		t.deleted[id] = struct{}{}
	}

	rankSet := make(map[string]struct{})
	for _, tax := range taxa {
		rankSet[tax.Rank] = struct{}{}
		if tax.ParentID != tax.ID {
			t.children[tax.ParentID] = append(t.children[tax.ParentID], tax.ID)
		}
	}
	// Deterministic child order.
	for _, ids := range t.children {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	t.ranks = make([]string, 0, len(rankSet))
	for rank := range rankSet {
		t.ranks = append(t.ranks, rank)
	}
	sort.Strings(t.ranks)
	return t
}
