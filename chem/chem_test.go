package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAminoAcidByCode(t *testing.T) {
	aa, err := AminoAcidByCode('W')
	require.NoError(t, err)
	assert.Equal(t, "Tryptophan", aa.Name)
	assert.Equal(t, "Trp", aa.ThreeLetterCode)
	assert.Equal(t, "C11H10N2O", aa.Composition)
	assert.InDelta(t, 186.07931, aa.MonoMass, 1e-9)
	assert.True(t, aa.Canonical)

	// Ambiguity codes resolve but carry no composition.
	aa, err = AminoAcidByCode('B')
	require.NoError(t, err)
	assert.False(t, aa.Canonical)
	assert.Empty(t, aa.Composition)

	_, err = AminoAcidByCode('1')
	require.ErrorIs(t, err, ErrUnknown)
}

func TestAminoAcidsTable(t *testing.T) {
	all := AminoAcids()
	assert.Len(t, all, 25)

	seen := map[byte]bool{}
	for _, aa := range all {
		assert.False(t, seen[aa.Code], "duplicate code %q", string(aa.Code))
		seen[aa.Code] = true
		assert.Positive(t, aa.MonoMass)
	}

	// Leucine and isoleucine are isobaric; J carries the shared mass.
	leu, _ := AminoAcidByCode('L')
	ile, _ := AminoAcidByCode('I')
	xle, _ := AminoAcidByCode('J')
	assert.Equal(t, leu.MonoMass, ile.MonoMass)
	assert.Equal(t, leu.MonoMass, xle.MonoMass)
}

func TestElementBySymbol(t *testing.T) {
	se, err := ElementBySymbol("Se")
	require.NoError(t, err)
	assert.Equal(t, "Selenium", se.Name)
	assert.InDelta(t, 79.9165196, se.MonoMass, 1e-9)

	c, err := ElementBySymbol("C")
	require.NoError(t, err)
	assert.Equal(t, 12.0, c.MonoMass)

	_, err = ElementBySymbol("Xx")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestParticleByName(t *testing.T) {
	p, err := ParticleByName("proton")
	require.NoError(t, err)
	assert.InDelta(t, 1.007276466, p.Mass, 1e-9)

	n, err := ParticleByName("neutron")
	require.NoError(t, err)
	e, err2 := ParticleByName("electron")
	require.NoError(t, err2)
	assert.Greater(t, n.Mass, p.Mass)
	assert.Less(t, e.Mass, 0.001)

	_, err = ParticleByName("quark")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestPeptideMonoMass(t *testing.T) {
	mass, err := PeptideMonoMass("PEPTIDE")
	require.NoError(t, err)
	assert.InDelta(t, 799.35997, mass, 0.001)

	// Single residue plus water.
	mass, err = PeptideMonoMass("G")
	require.NoError(t, err)
	assert.InDelta(t, 57.02146+WaterMonoMass, mass, 1e-9)

	_, err = PeptideMonoMass("")
	require.Error(t, err)
	_, err = PeptideMonoMass("PEPT1DE")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestMZ(t *testing.T) {
	mass, err := PeptideMonoMass("PEPTIDE")
	require.NoError(t, err)

	mz1, err := MZ(mass, 1)
	require.NoError(t, err)
	assert.InDelta(t, 800.36725, mz1, 0.001)

	mz2, err := MZ(mass, 2)
	require.NoError(t, err)
	assert.InDelta(t, 400.68726, mz2, 0.001)

	_, err = MZ(mass, 0)
	require.Error(t, err)
}
