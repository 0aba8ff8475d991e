package mzml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mzkit-go/mzkit/blobstore"
	"github.com/mzkit-go/mzkit/cv"
)

// Reader provides indexed, random access to the spectra and
// chromatograms of an mzML document without materializing the document.
//
// A Reader is either open or closed. All fetch operations require the
// open state; Close is terminal for the instance and a fresh Open
// rebuilds everything from the file (the index is not cached across
// instances unless an index sidecar is configured).
//
// The index is immutable once built and all reads go through
// io.ReaderAt, so a single Reader is safe for concurrent fetches;
// no seek cursor is ever shared.
type Reader struct {
	mu     sync.RWMutex
	closed bool

	blob    blobstore.Blob
	index   *RecordIndex
	summary *Summary
	tail    docTail
	run     Run
	fetcher *fetcher
	opts    Options
}

// Open opens the mzML document at path, memory-mapping it and building
// the record index.
func Open(path string, optFns ...Option) (*Reader, error) {
	blob, err := blobstore.OpenFile(path)
	if err != nil {
		return nil, err
	}
	r, err := OpenBlob(blob, optFns...)
	if err != nil {
		blob.Close()
		return nil, err
	}
	return r, nil
}

// OpenBlob opens an mzML document from any blob. The reader takes
// ownership of the blob and closes it on Close.
func OpenBlob(blob blobstore.Blob, optFns ...Option) (*Reader, error) {
	opts := applyOptions(optFns)

	hdr, err := readHeader(blob)
	if err != nil {
		return nil, err
	}

	tail, err := readTail(blob)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		blob: blob,
		tail: tail,
		run:  hdr.run,
		opts: opts,
		fetcher: &fetcher{
			blob:     blob,
			resolver: cv.NewResolver(hdr.groups),
		},
	}

	if err := r.buildIndex(); err != nil {
		return nil, err
	}

	r.run.SpectrumCount = r.index.Spectra()
	r.run.ChromatogramCount = r.index.Chromatograms()
	return r, nil
}

// buildIndex loads the embedded index when it verifies, consulting and
// maintaining the sidecar cache, and otherwise rebuilds by scan. Index
// inconsistencies are recovered here; callers never see the failed
// attempt.
func (r *Reader) buildIndex() error {
	log := r.opts.Logger

	if !r.opts.ForceScan {
		idx, err := loadEmbeddedIndex(r.blob, r.tail)
		if err == nil {
			r.index = idx
			return nil
		}
		if !errors.Is(err, ErrMalformedIndex) {
			return err
		}
		log.Warn("embedded index rejected, falling back", "reason", err)
	}

	if r.opts.IndexCachePath != "" {
		idx, err := ReadIndexCache(r.opts.IndexCachePath, r.blob.Size())
		if err == nil {
			if verr := verifySample(r.blob, idx.Entries()); verr == nil {
				r.index = idx
				return nil
			} else {
				log.Warn("index cache rejected", "path", r.opts.IndexCachePath, "reason", verr)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("index cache unreadable", "path", r.opts.IndexCachePath, "reason", err)
		}
	}

	idx, summary, err := buildIndexByScan(r.blob, r.opts.BufferSize)
	if err != nil {
		return err
	}
	r.index = idx
	r.summary = summary

	if r.opts.IndexCachePath != "" {
		if err := WriteIndexCache(r.opts.IndexCachePath, idx, r.blob.Size()); err != nil {
			log.Warn("writing index cache failed", "path", r.opts.IndexCachePath, "reason", err)
		}
	}
	return nil
}

// Close releases the backing blob. Further reads fail with ErrClosed.
// Close is idempotent.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	return r.blob.Close()
}

// guard takes a read lock for the duration of fn, failing fast when the
// reader is closed.
func (r *Reader) guard(fn func() error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrClosed
	}
	return fn()
}

// Index returns the record index. The index is immutable and remains
// valid after Close (though fetching through it does not).
func (r *Reader) Index() *RecordIndex { return r.index }

// Run returns the run-level attributes of the document.
func (r *Reader) Run() Run { return r.run }

// Summary returns the scan summary, which exists only when the index
// was rebuilt by a full scan.
func (r *Reader) Summary() (*Summary, bool) {
	return r.summary, r.summary != nil
}

// Spectrum fetches one spectrum by native id.
func (r *Reader) Spectrum(id string) (*Spectrum, error) {
	var s *Spectrum
	err := r.guard(func() error {
		entry, ok := r.index.Lookup(KindSpectrum, id)
		if !ok {
			return fmt.Errorf("%w: spectrum %q", ErrNotFound, id)
		}
		var ferr error
		s, ferr = r.fetcher.fetchSpectrum(entry)
		return ferr
	})
	return s, err
}

// SpectrumAt fetches the pos-th spectrum in spectrumList order.
func (r *Reader) SpectrumAt(pos int) (*Spectrum, error) {
	var s *Spectrum
	err := r.guard(func() error {
		entry, ok := r.index.At(KindSpectrum, pos)
		if !ok {
			return fmt.Errorf("%w: spectrum position %d of %d", ErrNotFound, pos, r.index.Spectra())
		}
		var ferr error
		s, ferr = r.fetcher.fetchSpectrum(entry)
		return ferr
	})
	return s, err
}

// Chromatogram fetches one chromatogram by native id.
func (r *Reader) Chromatogram(id string) (*Chromatogram, error) {
	var c *Chromatogram
	err := r.guard(func() error {
		entry, ok := r.index.Lookup(KindChromatogram, id)
		if !ok {
			return fmt.Errorf("%w: chromatogram %q", ErrNotFound, id)
		}
		var ferr error
		c, ferr = r.fetcher.fetchChromatogram(entry)
		return ferr
	})
	return c, err
}

// ChromatogramAt fetches the pos-th chromatogram in chromatogramList
// order.
func (r *Reader) ChromatogramAt(pos int) (*Chromatogram, error) {
	var c *Chromatogram
	err := r.guard(func() error {
		entry, ok := r.index.At(KindChromatogram, pos)
		if !ok {
			return fmt.Errorf("%w: chromatogram position %d of %d", ErrNotFound, pos, r.index.Chromatograms())
		}
		var ferr error
		c, ferr = r.fetcher.fetchChromatogram(entry)
		return ferr
	})
	return c, err
}

// fetch retrieves the record behind an index entry.
func (r *Reader) fetch(entry IndexEntry) (Record, error) {
	switch entry.Kind {
	case KindChromatogram:
		return r.fetcher.fetchChromatogram(entry)
	default:
		return r.fetcher.fetchSpectrum(entry)
	}
}

// All returns a restartable iterator over every record in file order.
// A record that fails to parse yields a nil record with its error and
// iteration continues; iteration stops early only when the reader is
// closed mid-sequence or the caller breaks.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for _, entry := range r.index.Entries() {
			var rec Record
			err := r.guard(func() error {
				var ferr error
				rec, ferr = r.fetch(entry)
				return ferr
			})
			if errors.Is(err, ErrClosed) {
				yield(nil, err)
				return
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

// Spectra returns a restartable iterator over all spectra in list
// order, with the same per-record error semantics as All.
func (r *Reader) Spectra() iter.Seq2[*Spectrum, error] {
	return func(yield func(*Spectrum, error) bool) {
		for _, entry := range r.index.Entries() {
			if entry.Kind != KindSpectrum {
				continue
			}
			var s *Spectrum
			err := r.guard(func() error {
				var ferr error
				s, ferr = r.fetcher.fetchSpectrum(entry)
				return ferr
			})
			if errors.Is(err, ErrClosed) {
				yield(nil, err)
				return
			}
			if !yield(s, err) {
				return
			}
		}
	}
}

// ForEach fetches every record using the given number of workers and
// calls fn for each. All reads go through ReadAt on the shared blob, so
// workers never contend on a seek cursor. fn must be safe for
// concurrent calls; records arrive in no particular order. The first
// error from fn cancels the remaining work; per-record parse failures
// are passed to fn rather than aborting the sweep.
func (r *Reader) ForEach(ctx context.Context, workers int, fn func(Record, error) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	entries := make(chan IndexEntry)

	g.Go(func() error {
		defer close(entries)
		for _, entry := range r.index.Entries() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			select {
			case entries <- entry:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range workers {
		g.Go(func() error {
			for entry := range entries {
				var rec Record
				err := r.guard(func() error {
					var ferr error
					rec, ferr = r.fetch(entry)
					return ferr
				})
				if errors.Is(err, ErrClosed) {
					return err
				}
				if err := fn(rec, err); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// Validate recomputes the document checksum and compares it to the
// declared trailing digest. A mismatch is advisory (many producers emit
// this field inconsistently) and reported in the result, never as an
// error; the error return covers I/O failures, a closed reader, and
// documents without a checksum element.
func (r *Reader) Validate() (ChecksumReport, error) {
	var report ChecksumReport
	err := r.guard(func() error {
		var verr error
		report, verr = validateChecksum(r.blob, r.tail)
		return verr
	})
	return report, err
}
