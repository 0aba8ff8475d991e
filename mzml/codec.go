package mzml

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"
)

// Decode turns an encoded binary payload into its numeric values.
//
// Steps, in order: base64-decode the text, inflate if compression is
// declared, then reinterpret the bytes as a contiguous run of
// little-endian IEEE-754 values of the declared width.
//
// declared is the record's defaultArrayLength (or the array's own
// arrayLength when present). A declared count of 0 with an empty
// payload is a legitimate zero-peak array, not an error. A non-zero
// declared count that disagrees with the decoded count fails with
// *LengthMismatchError.
func Decode(payload string, precision Precision, compression Compression, declared int) ([]float64, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &EncodingError{cause: err}
	}

	if compression == ZlibCompression && len(raw) > 0 {
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, &InflateError{cause: err}
		}
		inflated, err := io.ReadAll(zr)
		if cerr := zr.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, &InflateError{cause: err}
		}
		raw = inflated
	}

	width := precision.Width()
	if len(raw)%width != 0 {
		return nil, &LengthMismatchError{Width: width, Bytes: len(raw)}
	}

	n := len(raw) / width
	if declared > 0 && n != declared {
		return nil, &LengthMismatchError{Width: width, Bytes: len(raw), Declared: declared, Got: n}
	}

	values := make([]float64, n)
	switch precision {
	case Float32:
		for i := range values {
			bits := binary.LittleEndian.Uint32(raw[i*4:])
			values[i] = float64(math.Float32frombits(bits))
		}
	default:
		for i := range values {
			bits := binary.LittleEndian.Uint64(raw[i*8:])
			values[i] = math.Float64frombits(bits)
		}
	}
	return values, nil
}

// Encode packs values with the given precision and compression and
// returns the base64 text. Decode(Encode(v)) round-trips byte-exactly
// for the same settings.
func Encode(values []float64, precision Precision, compression Compression) (string, error) {
	width := precision.Width()
	raw := make([]byte, len(values)*width)
	switch precision {
	case Float32:
		for i, v := range values {
			binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(float32(v)))
		}
	default:
		for i, v := range values {
			binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(v))
		}
	}

	if compression == ZlibCompression && len(raw) > 0 {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			return "", err
		}
		if err := zw.Close(); err != nil {
			return "", err
		}
		raw = buf.Bytes()
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
