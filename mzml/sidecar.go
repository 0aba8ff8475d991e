package mzml

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pierrec/lz4/v4"
)

// Index sidecar cache. A scan over an unindexed multi-gigabyte document
// is expensive; the resulting index is tiny. WriteIndexCache persists
// it next to the document (lz4-framed JSON) so the next open skips the
// scan. Cached offsets are still run through the usual sample
// verification, so a stale sidecar degrades to a rescan, never to wrong
// records.

const sidecarMagic = "mzkit-index/1"

type sidecarFile struct {
	Magic   string       `json:"magic"`
	Source  int64        `json:"source_size"`
	Entries []IndexEntry `json:"entries"`
}

// WriteIndexCache writes the index to path.
func WriteIndexCache(path string, idx *RecordIndex, sourceSize int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	zw := lz4.NewWriter(f)
	enc := json.NewEncoder(zw)
	err = enc.Encode(sidecarFile{
		Magic:   sidecarMagic,
		Source:  sourceSize,
		Entries: idx.Entries(),
	})
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}

// ReadIndexCache loads an index written by WriteIndexCache. The cache
// is rejected when the source document size has changed.
func ReadIndexCache(path string, sourceSize int64) (*RecordIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sc sidecarFile
	if err := json.NewDecoder(lz4.NewReader(f)).Decode(&sc); err != nil {
		return nil, fmt.Errorf("mzml: reading index cache: %w", err)
	}
	if sc.Magic != sidecarMagic {
		return nil, fmt.Errorf("mzml: %q is not an index cache", path)
	}
	if sc.Source != sourceSize {
		return nil, fmt.Errorf("mzml: index cache is stale (source was %d bytes, now %d)", sc.Source, sourceSize)
	}

	return newRecordIndex(sc.Entries), nil
}
