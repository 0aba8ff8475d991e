// Package blobstore abstracts read-only access to source documents.
//
// Indexed readers never stream a document front to back: they seek to
// byte offsets recorded in an index. The Blob interface therefore
// exposes io.ReaderAt rather than io.Reader, and every fetch carves its
// own io.SectionReader out of it, so concurrent fetches never share a
// seek cursor.
package blobstore

import (
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error satisfying
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// Store opens blobs for reading.
type Store interface {
	// Open opens the named blob for reading.
	Open(name string) (Blob, error)
}

// Blob is a read-only handle to a source document.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs whose full content is
// available as a byte slice without copying. The slice is valid until
// the Blob is closed.
type Mappable interface {
	Bytes() ([]byte, error)
}
