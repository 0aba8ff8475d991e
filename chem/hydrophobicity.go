package chem

import "fmt"

// Krokhin-Wilkins hydrophobicity (Krokhin et al. 2004, SSRCalc v1):
// a length-corrected sum of per-residue retention coefficients with
// extra weight on the first three N-terminal positions. Correlates with
// reversed-phase retention time, which makes it a cheap plausibility
// check against observed elution order.

// retentionCorrection is the length correction K_L.
func retentionCorrection(n int) float64 {
	switch {
	case n < 10:
		return 1.0 - 0.027*float64(10-n)
	case n > 20:
		return 1.0 - 0.014*float64(n-20)
	default:
		return 1.0
	}
}

// Hydrophobicity calculates the Krokhin-Wilkins v1 hydrophobicity of a
// peptide given in one-letter codes. The sequence must be at least 3
// residues of the 20 standard amino acids.
func Hydrophobicity(sequence string) (float64, error) {
	if len(sequence) < 3 {
		return 0, fmt.Errorf("chem: sequence %q too short for hydrophobicity, need at least 3 residues", sequence)
	}

	var sum float64
	for i := 0; i < len(sequence); i++ {
		rc, ok := retentionCoefficients[sequence[i]]
		if !ok {
			return 0, fmt.Errorf("chem: no retention coefficient for %q", string(sequence[i]))
		}
		sum += rc.rn
	}

	// N-terminal weighting of the first three residues.
	sum += 0.42 * retentionCoefficients[sequence[0]].rcnt
	sum += 0.22 * retentionCoefficients[sequence[1]].rcnt
	sum += 0.05 * retentionCoefficients[sequence[2]].rcnt

	h := retentionCorrection(len(sequence)) * sum
	if h >= 38.0 {
		h -= 0.3 * (h - 38.0)
	}
	return h, nil
}

// Hydropathy returns the Kyte-Doolittle hydropathy of a single residue.
func Hydropathy(code byte) (float64, error) {
	v, ok := hydropathyKD[code]
	if !ok {
		return 0, fmt.Errorf("%w amino acid code %q", ErrUnknown, string(code))
	}
	return v, nil
}

var hydropathyKD = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'Q': -3.5, 'E': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}
