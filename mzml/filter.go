package mzml

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Summary is a byproduct of a full index scan: compressed bitmaps of
// spectrum positions keyed by MS level. It answers "which spectra are
// MS2" without fetching any record.
//
// A Summary is only available when the index was built by scan; loading
// an embedded index never touches the records, so there is nothing to
// summarize.
type Summary struct {
	spectra  *roaring.Bitmap
	msLevels map[int]*roaring.Bitmap
}

type summaryBuilder struct {
	spectra  *roaring.Bitmap
	msLevels map[int]*roaring.Bitmap
}

func newSummaryBuilder() *summaryBuilder {
	return &summaryBuilder{
		spectra:  roaring.New(),
		msLevels: make(map[int]*roaring.Bitmap),
	}
}

func (b *summaryBuilder) addSpectrum(pos int) {
	b.spectra.Add(uint32(pos))
}

func (b *summaryBuilder) setMSLevel(pos, level int) {
	bm, ok := b.msLevels[level]
	if !ok {
		bm = roaring.New()
		b.msLevels[level] = bm
	}
	bm.Add(uint32(pos))
}

func (b *summaryBuilder) build() *Summary {
	return &Summary{spectra: b.spectra, msLevels: b.msLevels}
}

// SpectrumCount returns the number of spectra seen by the scan.
func (s *Summary) SpectrumCount() int {
	return int(s.spectra.GetCardinality())
}

// MSLevels returns the distinct MS levels present in the document, in
// ascending order.
func (s *Summary) MSLevels() []int {
	levels := make([]int, 0, len(s.msLevels))
	for level := range s.msLevels {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// PositionsWithMSLevel returns the spectrumList positions of all
// spectra with the given MS level, in list order.
func (s *Summary) PositionsWithMSLevel(level int) []int {
	bm, ok := s.msLevels[level]
	if !ok {
		return nil
	}
	positions := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		positions = append(positions, int(it.Next()))
	}
	return positions
}
