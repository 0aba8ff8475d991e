package proteomics

import "iter"

// Unspecific cleaves between every pair of residues, yielding all
// substrings within the length limits. Missed cleavages are not
// defined for it; every peptide reports zero.
type Unspecific struct {
	limits Limits
}

// NewUnspecific returns an Unspecific bounded by the length limits.
// MaxMissedCleavages is ignored.
func NewUnspecific(limits Limits) *Unspecific {
	limits.MaxMissedCleavages = -1
	return &Unspecific{limits: limits}
}

func (u *Unspecific) Name() string { return "unspecific" }

func (u *Unspecific) FullDigest(sequence string) []string {
	fragments := make([]string, 0, len(sequence))
	for i := 0; i < len(sequence); i++ {
		fragments = append(fragments, sequence[i:i+1])
	}
	return fragments
}

func (u *Unspecific) CountMissedCleavages(sequence string) (int, error) {
	if sequence == "" {
		return 0, ErrEmptySequence
	}
	return 0, nil
}

func (u *Unspecific) Cleave(sequence string) iter.Seq[Peptide] {
	return cleave(u.FullDigest(sequence), u.limits, false)
}
