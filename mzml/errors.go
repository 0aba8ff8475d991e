package mzml

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when a read operation is attempted on a
	// closed Reader.
	ErrClosed = errors.New("mzml: reader is closed")

	// ErrNotFound is returned when a native id is absent from the
	// document index.
	ErrNotFound = errors.New("mzml: record not found")

	// ErrMalformedIndex signals that an embedded index is present but
	// failed offset verification. It never escapes Open: the reader
	// falls back to a full scan. Exposed for log inspection.
	ErrMalformedIndex = errors.New("mzml: malformed embedded index")

	// ErrNoChecksum is returned by Validate when the document carries
	// no fileChecksum element.
	ErrNoChecksum = errors.New("mzml: document has no fileChecksum")
)

// OffsetError indicates an index offset beyond the end of the document,
// e.g. a stale index over a truncated file.
type OffsetError struct {
	ID     string
	Offset int64
	Size   int64
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("mzml: offset %d for %q out of range (document is %d bytes)", e.Offset, e.ID, e.Size)
}

// TruncatedError indicates a record whose close tag was not found
// before end of document.
type TruncatedError struct {
	ID     string
	Offset int64
	cause  error
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("mzml: record %q at offset %d is truncated", e.ID, e.Offset)
}

func (e *TruncatedError) Unwrap() error { return e.cause }

// EncodingError indicates a binary payload that is not valid base64.
type EncodingError struct {
	cause error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("mzml: invalid base64 payload: %v", e.cause)
}

func (e *EncodingError) Unwrap() error { return e.cause }

// InflateError indicates corrupt compressed data inside a binary
// payload.
type InflateError struct {
	cause error
}

func (e *InflateError) Error() string {
	return fmt.Sprintf("mzml: inflating binary payload: %v", e.cause)
}

func (e *InflateError) Unwrap() error { return e.cause }

// LengthMismatchError indicates a decoded byte buffer that does not
// divide into the declared element width, or an element count that
// disagrees with the record's declared length.
type LengthMismatchError struct {
	// Width is the element width in bytes (4 or 8).
	Width int
	// Bytes is the decoded byte count. Meaningful when Bytes%Width != 0.
	Bytes int
	// Declared and Got are element counts. Meaningful when the buffer
	// divided cleanly but the count disagrees.
	Declared int
	Got      int
}

func (e *LengthMismatchError) Error() string {
	if e.Bytes%e.Width != 0 {
		return fmt.Sprintf("mzml: %d payload bytes is not a multiple of element width %d", e.Bytes, e.Width)
	}
	return fmt.Sprintf("mzml: decoded %d elements, declared %d", e.Got, e.Declared)
}

// ParseError wraps an XML-level failure inside a single record.
type ParseError struct {
	ID     string
	Offset int64
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mzml: parsing record %q at offset %d: %v", e.ID, e.Offset, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }
