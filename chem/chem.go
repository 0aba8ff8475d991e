// Package chem provides the constant tables of proteomics: amino acid
// residues, elements and subatomic particles, plus peptide mass and
// retention-behavior helpers built on them.
//
// The tables in tables.go are generated from the CSV files under data/
// (see internal/gentables); edit the CSVs and re-run go generate, never
// the generated file.
package chem

//go:generate go run ./internal/gentables

import (
	"errors"
	"fmt"
)

// ErrUnknown is wrapped by every failed table lookup.
var ErrUnknown = errors.New("chem: unknown")

// AminoAcid describes one residue. Masses are residue masses, without
// the water of condensation.
type AminoAcid struct {
	Name            string
	Code            byte // one-letter code
	ThreeLetterCode string

	// Composition is the residue formula. Empty for the ambiguity
	// codes (B, Z, J), which have no single formula.
	Composition string

	MonoMass    float64
	AverageMass float64

	// Canonical is false for the ambiguity codes.
	Canonical bool
}

// AminoAcidByCode returns the amino acid for a one-letter code.
func AminoAcidByCode(code byte) (*AminoAcid, error) {
	aa, ok := aminoAcidsByCode[code]
	if !ok {
		return nil, fmt.Errorf("%w amino acid code %q", ErrUnknown, string(code))
	}
	return aa, nil
}

// AminoAcids returns all known amino acids, canonical first, in table
// order. The slice is shared; callers must not modify it.
func AminoAcids() []*AminoAcid { return aminoAcids }

// Element describes one chemical element.
type Element struct {
	Name        string
	Symbol      string
	MonoMass    float64
	AverageMass float64
}

// ElementBySymbol returns the element for a symbol, e.g. "Se".
func ElementBySymbol(symbol string) (*Element, error) {
	e, ok := elementsBySymbol[symbol]
	if !ok {
		return nil, fmt.Errorf("%w element %q", ErrUnknown, symbol)
	}
	return e, nil
}

// Particle describes one subatomic particle.
type Particle struct {
	Name string
	Mass float64
}

// ParticleByName returns the particle for a name: "proton", "neutron"
// or "electron".
func ParticleByName(name string) (*Particle, error) {
	p, ok := particlesByName[name]
	if !ok {
		return nil, fmt.Errorf("%w particle %q", ErrUnknown, name)
	}
	return p, nil
}

// WaterMonoMass is the monoisotopic mass of H2O, the condensation water
// re-added when summing residue masses into a peptide mass.
var WaterMonoMass = 2*elementsBySymbol["H"].MonoMass + elementsBySymbol["O"].MonoMass

// PeptideMonoMass returns the uncharged monoisotopic mass of a peptide
// sequence given in one-letter codes.
func PeptideMonoMass(sequence string) (float64, error) {
	if sequence == "" {
		return 0, fmt.Errorf("chem: empty peptide sequence")
	}
	mass := WaterMonoMass
	for i := 0; i < len(sequence); i++ {
		aa, err := AminoAcidByCode(sequence[i])
		if err != nil {
			return 0, err
		}
		mass += aa.MonoMass
	}
	return mass, nil
}

// MZ returns the mass-to-charge ratio of a neutral mass at the given
// positive charge state.
func MZ(neutralMass float64, charge int) (float64, error) {
	if charge < 1 {
		return 0, fmt.Errorf("chem: charge must be positive, got %d", charge)
	}
	proton := particlesByName["proton"].Mass
	return (neutralMass + float64(charge)*proton) / float64(charge), nil
}
