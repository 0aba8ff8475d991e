package proteomics

import (
	"fmt"
	"iter"
	"strings"
)

// Limits bounds the peptides a digestion yields. A MinLength or
// MaxLength of zero leaves that bound open. A negative
// MaxMissedCleavages leaves the missed-cleavage count unbounded; zero
// means fully cleaved peptides only.
type Limits struct {
	MinLength          int
	MaxLength          int
	MaxMissedCleavages int
}

// Protease digests protein sequences into peptides.
type Protease interface {
	// Name returns the lower-case protease name, as accepted by ByName.
	Name() string

	// FullDigest splits the sequence at every cleavage site, yielding
	// the fragments of a digest with zero missed cleavages.
	FullDigest(sequence string) []string

	// CountMissedCleavages counts the cleavage sites left uncut inside
	// the sequence.
	CountMissedCleavages(sequence string) (int, error)

	// Cleave digests the sequence and iterates over every peptide
	// within the protease limits, including partially cleaved ones.
	Cleave(sequence string) iter.Seq[Peptide]
}

// ByName returns the protease with the given name, case-insensitively.
func ByName(name string, limits Limits) (Protease, error) {
	switch strings.ToLower(name) {
	case "trypsin":
		return NewTrypsin(limits), nil
	case "unspecific":
		return NewUnspecific(limits), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownProtease, name)
}

// cleave joins runs of consecutive full-digest fragments into peptides.
// A run of n fragments carries n-1 missed cleavages; proteases without
// a missed-cleavage notion report zero instead.
func cleave(fragments []string, limits Limits, countMissed bool) iter.Seq[Peptide] {
	return func(yield func(Peptide) bool) {
		for start := range fragments {
			end := len(fragments) - 1
			if limits.MaxMissedCleavages >= 0 {
				end = min(start+limits.MaxMissedCleavages, end)
			}

			var b strings.Builder
			for i := start; i <= end; i++ {
				b.WriteString(fragments[i])
				if limits.MinLength > 0 && b.Len() < limits.MinLength {
					continue
				}
				if limits.MaxLength > 0 && b.Len() > limits.MaxLength {
					continue
				}
				missed := 0
				if countMissed {
					missed = i - start
				}
				if !yield(Peptide{Sequence: b.String(), MissedCleavages: missed}) {
					return
				}
			}
		}
	}
}
