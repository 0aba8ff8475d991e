package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHydrophobicityReferencePeptides(t *testing.T) {
	// Reference values from Krokhin et al. 2004.
	h, err := Hydrophobicity("SCHTAVGR")
	require.NoError(t, err)
	assert.InDelta(t, 4.05, h, 0.005)

	h, err = Hydrophobicity("SASDLTWDNLK")
	require.NoError(t, err)
	assert.InDelta(t, 27.72, h, 0.005)
}

func TestHydrophobicityLengthCorrection(t *testing.T) {
	assert.InDelta(t, 0.946, retentionCorrection(8), 1e-9)
	assert.Equal(t, 1.0, retentionCorrection(10))
	assert.Equal(t, 1.0, retentionCorrection(20))
	assert.InDelta(t, 0.986, retentionCorrection(21), 1e-9)
}

func TestHydrophobicityDamping(t *testing.T) {
	// Ten tryptophans: raw value far above the 38 threshold, so the
	// overall damping must apply.
	h, err := Hydrophobicity("WWWWWWWWWW")
	require.NoError(t, err)
	assert.InDelta(t, 87.917, h, 0.01)
}

func TestHydrophobicityRejectsBadInput(t *testing.T) {
	_, err := Hydrophobicity("SC")
	require.Error(t, err, "too short")

	// Pyrrolysine has a mass but no retention coefficient.
	_, err = Hydrophobicity("SCHTAVGRO")
	require.Error(t, err)
}

func TestHydropathy(t *testing.T) {
	v, err := Hydropathy('I')
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	v, err = Hydropathy('R')
	require.NoError(t, err)
	assert.Equal(t, -4.5, v)

	_, err = Hydropathy('U')
	require.ErrorIs(t, err, ErrUnknown)
}
