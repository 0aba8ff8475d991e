package proteomics

import (
	"github.com/mzkit-go/mzkit/chem"
)

// ModificationType distinguishes modifications applied to every
// occurrence of a residue from those applied optionally.
type ModificationType int

const (
	StaticModification ModificationType = iota
	VariableModification
)

// Position restricts where on a peptide a modification may sit.
type Position int

const (
	Anywhere Position = iota
	AtNTerminus
	AtCTerminus
)

// PositionAt returns the Position for a terminus.
func PositionAt(t Terminus) Position {
	if t == NTerminus {
		return AtNTerminus
	}
	return AtCTerminus
}

// Modification is a post-translational modification of one amino acid.
type Modification struct {
	Name      string
	AminoAcid *chem.AminoAcid
	MassDelta float64
	Type      ModificationType
	Position  Position
}

// NewModification builds a Modification for the amino acid with the
// given one-letter code.
func NewModification(name string, code byte, massDelta float64, typ ModificationType, pos Position) (*Modification, error) {
	aa, err := chem.AminoAcidByCode(code)
	if err != nil {
		return nil, err
	}
	return &Modification{
		Name:      name,
		AminoAcid: aa,
		MassDelta: massDelta,
		Type:      typ,
		Position:  pos,
	}, nil
}

// TotalMonoMass returns the monoisotopic mass of the modified residue.
func (m *Modification) TotalMonoMass() float64 {
	return m.AminoAcid.MonoMass + m.MassDelta
}

func (m *Modification) IsStatic() bool   { return m.Type == StaticModification }
func (m *Modification) IsVariable() bool { return m.Type == VariableModification }

// IsTerminal reports whether the modification is restricted to either
// terminus.
func (m *Modification) IsTerminal() bool { return m.Position != Anywhere }

func (m *Modification) IsNTerminal() bool { return m.Position == AtNTerminus }
func (m *Modification) IsCTerminal() bool { return m.Position == AtCTerminus }
