package mzml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzkit-go/mzkit/blobstore"
	"github.com/mzkit-go/mzkit/cv"
)

func TestFetchPartialRecordSuccess(t *testing.T) {
	doc := twoKindDoc()
	// Plant a corrupt payload in the intensity array of scan=1; the m/z
	// array stays healthy.
	doc.spectra[0].arrays[1].rawBinary = "%%not-base64%%"

	r := doc.open(t)

	s, err := r.Spectrum("scan=1")
	require.NoError(t, err, "a bad array must not fail the record")

	assert.Equal(t, []float64{100.1, 200.2, 300.3}, s.MZ())
	assert.Nil(t, s.Intensity())

	errs := s.ArrayErrors()
	require.Len(t, errs, 1)
	var encErr *EncodingError
	assert.ErrorAs(t, errs[0], &encErr)

	// The failed array keeps its metadata.
	require.Len(t, s.Arrays, 2)
	assert.Equal(t, cv.AccIntensityArray, s.Arrays[1].ArrayType)
	assert.Nil(t, s.Arrays[1].Data)
}

func TestFetchArrayLengthOverride(t *testing.T) {
	doc := testDoc{
		spectra: []testSpectrum{
			{
				id:      "scan=1",
				msLevel: 1,
				arrays: []testArray{
					{arrayType: cv.AccMZArray, values: []float64{1, 2, 3, 4}},
					// Shorter than the record default; carries its own
					// length attribute.
					{arrayType: cv.AccIntensityArray, values: []float64{9, 8}, arrayLength: 2},
				},
			},
		},
	}
	r := doc.open(t)

	s, err := r.Spectrum("scan=1")
	require.NoError(t, err)
	assert.Equal(t, 4, s.DefaultArrayLength)
	assert.Equal(t, []float64{1, 2, 3, 4}, s.MZ())
	assert.Equal(t, []float64{9, 8}, s.Intensity())
	assert.Empty(t, s.ArrayErrors())
}

func TestFetchTruncatedRecord(t *testing.T) {
	doc := twoKindDoc()
	doc.noIndex = true
	doc.noChecksum = true
	data := doc.build(t)

	// Cut inside the last chromatogram so its close tag is gone.
	blob := blobstore.NewMemoryBlob(data[:len(data)-60])

	idx, _, err := buildIndexByScan(blob, 0)
	require.NoError(t, err)
	require.Equal(t, 1, idx.Chromatograms())

	f := &fetcher{blob: blob, resolver: cv.NewResolver(nil)}

	entry, ok := idx.At(KindChromatogram, 0)
	require.True(t, ok)
	_, err = f.fetchChromatogram(entry)

	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
	assert.Equal(t, "TIC", trunc.ID)

	// Records before the damage stay fetchable.
	entry, ok = idx.At(KindSpectrum, 2)
	require.True(t, ok)
	s, err := f.fetchSpectrum(entry)
	require.NoError(t, err)
	assert.Equal(t, "scan=3", s.ID)
}

func TestFetchOffsetOutOfRange(t *testing.T) {
	doc := twoKindDoc()
	blob := blobstore.NewMemoryBlob(doc.build(t))
	f := &fetcher{blob: blob, resolver: cv.NewResolver(nil)}

	_, err := f.fetchSpectrum(IndexEntry{ID: "scan=1", Kind: KindSpectrum, Offset: blob.Size() + 10})

	var offErr *OffsetError
	require.ErrorAs(t, err, &offErr)
	assert.Equal(t, "scan=1", offErr.ID)
}

func TestFetchWrongElementAtOffset(t *testing.T) {
	doc := twoKindDoc()
	blob := blobstore.NewMemoryBlob(doc.build(t))

	idx, _, err := buildIndexByScan(blob, 0)
	require.NoError(t, err)

	f := &fetcher{blob: blob, resolver: cv.NewResolver(nil)}

	// A chromatogram entry pointing at a spectrum offset is a parse
	// error, not a silent misread.
	spec, ok := idx.At(KindSpectrum, 0)
	require.True(t, ok)
	_, err = f.fetchChromatogram(IndexEntry{ID: "TIC", Kind: KindChromatogram, Offset: spec.Offset})

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestIterationContinuesPastBadRecord(t *testing.T) {
	doc := twoKindDoc()
	doc.spectra[1].arrays[0].rawBinary = "!!corrupt!!"
	r := doc.open(t)

	var good, bad int
	for rec, err := range r.All() {
		// Array-level corruption still yields the record; only the
		// affected array carries an error.
		require.NoError(t, err)
		if s, ok := rec.(*Spectrum); ok && len(s.ArrayErrors()) > 0 {
			bad++
		} else {
			good++
		}
	}
	assert.Equal(t, 3, good)
	assert.Equal(t, 1, bad)
}
