package mzml

// IndexEntry locates one record in the source document.
type IndexEntry struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Offset int64  `json:"offset"`
}

// RecordIndex maps native ids and ordinal positions to byte offsets.
// It is built once when the reader opens and immutable afterwards, so
// it is safe to share across concurrent fetches.
type RecordIndex struct {
	// entries in file order across both kinds; this is the
	// acquisition order.
	entries []IndexEntry

	spectra       []int // positions into entries, spectrumList order
	chromatograms []int

	byID map[indexKey]int
}

type indexKey struct {
	kind Kind
	id   string
}

func newRecordIndex(entries []IndexEntry) *RecordIndex {
	idx := &RecordIndex{
		entries: entries,
		byID:    make(map[indexKey]int, len(entries)),
	}
	for i, e := range entries {
		idx.byID[indexKey{kind: e.Kind, id: e.ID}] = i
		switch e.Kind {
		case KindSpectrum:
			idx.spectra = append(idx.spectra, i)
		case KindChromatogram:
			idx.chromatograms = append(idx.chromatograms, i)
		}
	}
	return idx
}

// Len returns the total number of indexed records.
func (idx *RecordIndex) Len() int { return len(idx.entries) }

// Spectra returns the number of indexed spectra.
func (idx *RecordIndex) Spectra() int { return len(idx.spectra) }

// Chromatograms returns the number of indexed chromatograms.
func (idx *RecordIndex) Chromatograms() int { return len(idx.chromatograms) }

// Entries returns the index entries in file order. The slice is shared;
// callers must not modify it.
func (idx *RecordIndex) Entries() []IndexEntry { return idx.entries }

// Lookup returns the entry for a native id of the given kind.
func (idx *RecordIndex) Lookup(kind Kind, id string) (IndexEntry, bool) {
	i, ok := idx.byID[indexKey{kind: kind, id: id}]
	if !ok {
		return IndexEntry{}, false
	}
	return idx.entries[i], true
}

// At returns the pos-th entry of the given kind, in list order.
func (idx *RecordIndex) At(kind Kind, pos int) (IndexEntry, bool) {
	var positions []int
	switch kind {
	case KindSpectrum:
		positions = idx.spectra
	case KindChromatogram:
		positions = idx.chromatograms
	}
	if pos < 0 || pos >= len(positions) {
		return IndexEntry{}, false
	}
	return idx.entries[positions[pos]], true
}
