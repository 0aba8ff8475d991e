package proteomics

import "iter"

// Trypsin cleaves after lysine (K) and arginine (R), except when the
// next residue is proline (P).
type Trypsin struct {
	limits Limits
}

// NewTrypsin returns a Trypsin bounded by limits.
func NewTrypsin(limits Limits) *Trypsin {
	return &Trypsin{limits: limits}
}

func (t *Trypsin) Name() string { return "trypsin" }

// trypticSite reports whether a cleavage site lies between positions i
// and i+1 of sequence. Sites at the end of the sequence do not count:
// there is nothing left to cleave off.
func trypticSite(sequence string, i int) bool {
	if i+1 >= len(sequence) {
		return false
	}
	return (sequence[i] == 'K' || sequence[i] == 'R') && sequence[i+1] != 'P'
}

func (t *Trypsin) FullDigest(sequence string) []string {
	var fragments []string
	start := 0
	for i := 0; i < len(sequence); i++ {
		if trypticSite(sequence, i) {
			fragments = append(fragments, sequence[start:i+1])
			start = i + 1
		}
	}
	if start < len(sequence) {
		fragments = append(fragments, sequence[start:])
	}
	return fragments
}

func (t *Trypsin) CountMissedCleavages(sequence string) (int, error) {
	if sequence == "" {
		return 0, ErrEmptySequence
	}
	missed := 0
	for i := 0; i < len(sequence); i++ {
		if trypticSite(sequence, i) {
			missed++
		}
	}
	return missed, nil
}

func (t *Trypsin) Cleave(sequence string) iter.Seq[Peptide] {
	return cleave(t.FullDigest(sequence), t.limits, true)
}
