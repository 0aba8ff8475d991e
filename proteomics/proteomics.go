// Package proteomics models protein digestion: proteases with their
// cleavage rules, the peptides a digest yields, and post-translational
// modifications. Residue masses come from the chem tables.
package proteomics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mzkit-go/mzkit/chem"
)

var (
	// ErrUnknownProtease is returned by ByName for names it does not
	// recognize.
	ErrUnknownProtease = errors.New("proteomics: unknown protease")

	// ErrEmptySequence is returned for operations that need at least
	// one residue.
	ErrEmptySequence = errors.New("proteomics: empty sequence")
)

// Terminus is one end of a peptide.
type Terminus int

const (
	NTerminus Terminus = iota
	CTerminus
)

func (t Terminus) String() string {
	switch t {
	case NTerminus:
		return "N"
	case CTerminus:
		return "C"
	}
	return fmt.Sprintf("Terminus(%d)", int(t))
}

// ParseTerminus parses "N" or "C", case-insensitively.
func ParseTerminus(s string) (Terminus, error) {
	switch strings.ToUpper(s) {
	case "N":
		return NTerminus, nil
	case "C":
		return CTerminus, nil
	}
	return 0, fmt.Errorf("proteomics: invalid terminus %q, valid termini are N and C", s)
}

// Peptide is one digestion product: a sequence in one-letter codes and
// the number of cleavage sites the protease left uncut inside it.
type Peptide struct {
	Sequence        string
	MissedCleavages int
}

// MonoMass returns the uncharged monoisotopic mass of the peptide.
func (p Peptide) MonoMass() (float64, error) {
	return chem.PeptideMonoMass(p.Sequence)
}
