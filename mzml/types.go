package mzml

import (
	"strconv"

	"github.com/mzkit-go/mzkit/cv"
)

// Kind discriminates the two record lists of a run.
type Kind uint8

const (
	// KindSpectrum identifies entries of the spectrumList.
	KindSpectrum Kind = iota
	// KindChromatogram identifies entries of the chromatogramList.
	KindChromatogram
)

func (k Kind) String() string {
	switch k {
	case KindSpectrum:
		return "spectrum"
	case KindChromatogram:
		return "chromatogram"
	default:
		return "unknown"
	}
}

// Precision is the IEEE-754 width of a binary data array.
type Precision uint8

const (
	// Float64 is 64-bit precision (MS:1000523). The format default.
	Float64 Precision = iota
	// Float32 is 32-bit precision (MS:1000521).
	Float32
)

// Width returns the element width in bytes.
func (p Precision) Width() int {
	if p == Float32 {
		return 4
	}
	return 8
}

// Compression is the codec applied to a binary payload before base64.
type Compression uint8

const (
	// NoCompression leaves the packed floats uncompressed (MS:1000576).
	NoCompression Compression = iota
	// ZlibCompression deflates the packed floats (MS:1000574).
	ZlibCompression
)

// Record is a fetched spectrum or chromatogram.
type Record interface {
	RecordKind() Kind
	RecordID() string
}

// BinaryDataArray is one decoded numeric array of a record.
type BinaryDataArray struct {
	// Params is the effective (group-resolved) param set of the array.
	Params []cv.Param

	// ArrayType is the accession describing what the values are
	// (m/z, intensity, time, ...).
	ArrayType string

	Precision   Precision
	Compression Compression

	// EncodedLength is the declared length of the base64 text.
	EncodedLength int

	// Data holds the decoded values. Nil when Err is set.
	Data []float64

	// Err records a decode failure for this array. A failed array does
	// not fail the record: its params remain available (partial-record
	// success).
	Err error
}

// Spectrum is one record of the spectrumList, constructed per fetch and
// owned by the caller.
type Spectrum struct {
	ID                 string
	Index              int
	DefaultArrayLength int

	// Params is the effective param set: referenced groups first,
	// direct params last, duplicates overridden by the direct ones.
	Params     []cv.Param
	UserParams []cv.UserParam

	Precursors []Precursor
	Arrays     []BinaryDataArray
}

func (s *Spectrum) RecordKind() Kind { return KindSpectrum }

func (s *Spectrum) RecordID() string { return s.ID }

// MSLevel returns the ms level param, or 0 if absent.
func (s *Spectrum) MSLevel() int {
	p, ok := cv.Find(s.Params, cv.AccMSLevel)
	if !ok {
		return 0
	}
	level, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0
	}
	return level
}

// MZ returns the m/z array, or nil if absent or failed to decode.
func (s *Spectrum) MZ() []float64 { return arrayByType(s.Arrays, cv.AccMZArray) }

// Intensity returns the intensity array, or nil if absent or failed to
// decode.
func (s *Spectrum) Intensity() []float64 { return arrayByType(s.Arrays, cv.AccIntensityArray) }

// ArrayErrors returns the decode failures of this record's arrays, one
// entry per failed array.
func (s *Spectrum) ArrayErrors() []error { return arrayErrors(s.Arrays) }

// Precursor describes the ion selection that produced an MSn spectrum.
type Precursor struct {
	// SpectrumRef is the native id of the precursor spectrum. For
	// external precursors this is "sourceFileRef // externalSpectrumID".
	SpectrumRef string

	IsolationWindow []cv.Param
	SelectedIons    [][]cv.Param
	Activation      []cv.Param
}

// Chromatogram is one record of the chromatogramList.
type Chromatogram struct {
	ID                 string
	Index              int
	DefaultArrayLength int

	Params     []cv.Param
	UserParams []cv.UserParam

	Arrays []BinaryDataArray
}

func (c *Chromatogram) RecordKind() Kind { return KindChromatogram }

func (c *Chromatogram) RecordID() string { return c.ID }

// Time returns the time array, or nil if absent or failed to decode.
func (c *Chromatogram) Time() []float64 { return arrayByType(c.Arrays, cv.AccTimeArray) }

// Intensity returns the intensity array, or nil if absent or failed to
// decode.
func (c *Chromatogram) Intensity() []float64 { return arrayByType(c.Arrays, cv.AccIntensityArray) }

// ArrayErrors returns the decode failures of this record's arrays.
func (c *Chromatogram) ArrayErrors() []error { return arrayErrors(c.Arrays) }

func arrayByType(arrays []BinaryDataArray, accession string) []float64 {
	for i := range arrays {
		if arrays[i].ArrayType == accession {
			return arrays[i].Data
		}
	}
	return nil
}

func arrayErrors(arrays []BinaryDataArray) []error {
	var errs []error
	for i := range arrays {
		if arrays[i].Err != nil {
			errs = append(errs, arrays[i].Err)
		}
	}
	return errs
}

// Run carries the run-level attributes of the document.
type Run struct {
	ID                                string
	DefaultInstrumentConfigurationRef string
	StartTimeStamp                    string
	SpectrumCount                     int
	ChromatogramCount                 int
}
