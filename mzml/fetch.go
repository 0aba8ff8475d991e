package mzml

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mzkit-go/mzkit/blobstore"
	"github.com/mzkit-go/mzkit/cv"
)

// XML shapes for exactly one record subtree. Only what the fetch needs
// is modelled; unknown children are skipped by the decoder.

type xmlBinaryDataArray struct {
	EncodedLength int           `xml:"encodedLength,attr"`
	ArrayLength   int           `xml:"arrayLength,attr"`
	GroupRefs     []cv.GroupRef `xml:"referenceableParamGroupRef"`
	Params        []cv.Param    `xml:"cvParam"`
	Binary        string        `xml:"binary"`
}

type xmlPrecursor struct {
	SpectrumRef        string `xml:"spectrumRef,attr"`
	SourceFileRef      string `xml:"sourceFileRef,attr"`
	ExternalSpectrumID string `xml:"externalSpectrumID,attr"`
	IsolationWindow    struct {
		Params []cv.Param `xml:"cvParam"`
	} `xml:"isolationWindow"`
	SelectedIonList struct {
		SelectedIons []struct {
			Params []cv.Param `xml:"cvParam"`
		} `xml:"selectedIon"`
	} `xml:"selectedIonList"`
	Activation struct {
		Params []cv.Param `xml:"cvParam"`
	} `xml:"activation"`
}

type xmlSpectrum struct {
	Index              int            `xml:"index,attr"`
	ID                 string         `xml:"id,attr"`
	DefaultArrayLength int            `xml:"defaultArrayLength,attr"`
	GroupRefs          []cv.GroupRef  `xml:"referenceableParamGroupRef"`
	Params             []cv.Param     `xml:"cvParam"`
	UserParams         []cv.UserParam `xml:"userParam"`
	PrecursorList      struct {
		Precursors []xmlPrecursor `xml:"precursor"`
	} `xml:"precursorList"`
	BinaryDataArrayList struct {
		Arrays []xmlBinaryDataArray `xml:"binaryDataArray"`
	} `xml:"binaryDataArrayList"`
}

type xmlChromatogram struct {
	Index               int            `xml:"index,attr"`
	ID                  string         `xml:"id,attr"`
	DefaultArrayLength  int            `xml:"defaultArrayLength,attr"`
	GroupRefs           []cv.GroupRef  `xml:"referenceableParamGroupRef"`
	Params              []cv.Param     `xml:"cvParam"`
	UserParams          []cv.UserParam `xml:"userParam"`
	BinaryDataArrayList struct {
		Arrays []xmlBinaryDataArray `xml:"binaryDataArray"`
	} `xml:"binaryDataArrayList"`
}

// fetcher parses single records out of the source document.
type fetcher struct {
	blob     blobstore.Blob
	resolver *cv.Resolver
}

// startAt positions a decoder on the record open tag at the entry's
// offset. It returns the decoder and the start element.
func (f *fetcher) startAt(entry IndexEntry) (*xml.Decoder, xml.StartElement, error) {
	size := f.blob.Size()
	if entry.Offset < 0 || entry.Offset >= size {
		return nil, xml.StartElement{}, &OffsetError{ID: entry.ID, Offset: entry.Offset, Size: size}
	}

	section := io.NewSectionReader(f.blob, entry.Offset, size-entry.Offset)
	dec := xml.NewDecoder(bufio.NewReader(section))

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, xml.StartElement{}, &ParseError{ID: entry.ID, Offset: entry.Offset, cause: err}
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) > 0 {
				return nil, xml.StartElement{}, &ParseError{
					ID: entry.ID, Offset: entry.Offset,
					cause: fmt.Errorf("offset does not point at an element"),
				}
			}
		case xml.StartElement:
			if t.Name.Local != entry.Kind.String() {
				return nil, xml.StartElement{}, &ParseError{
					ID: entry.ID, Offset: entry.Offset,
					cause: fmt.Errorf("expected <%s>, found <%s>", entry.Kind, t.Name.Local),
				}
			}
			return dec, t, nil
		default:
			// Comments and directives before the tag are legal.
		}
	}
}

// fetchSpectrum parses the one spectrum subtree at the entry's offset.
// Siblings are never touched: DecodeElement consumes tokens only until
// the matching close tag, tracking nesting depth internally.
func (f *fetcher) fetchSpectrum(entry IndexEntry) (*Spectrum, error) {
	dec, start, err := f.startAt(entry)
	if err != nil {
		return nil, err
	}

	var raw xmlSpectrum
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return nil, f.classify(entry, err)
	}

	s := &Spectrum{
		ID:                 raw.ID,
		Index:              raw.Index,
		DefaultArrayLength: raw.DefaultArrayLength,
		Params:             f.resolver.Resolve(raw.Params, raw.GroupRefs),
		UserParams:         raw.UserParams,
		Arrays:             f.decodeArrays(raw.BinaryDataArrayList.Arrays, raw.DefaultArrayLength),
	}

	for _, p := range raw.PrecursorList.Precursors {
		ref := p.SpectrumRef
		if ref == "" && p.SourceFileRef != "" {
			// External precursor: no native id in this document.
			ref = p.SourceFileRef + " // " + p.ExternalSpectrumID
		}
		precursor := Precursor{
			SpectrumRef:     ref,
			IsolationWindow: p.IsolationWindow.Params,
			Activation:      p.Activation.Params,
		}
		for _, ion := range p.SelectedIonList.SelectedIons {
			precursor.SelectedIons = append(precursor.SelectedIons, ion.Params)
		}
		s.Precursors = append(s.Precursors, precursor)
	}

	return s, nil
}

// fetchChromatogram parses the one chromatogram subtree at the entry's
// offset.
func (f *fetcher) fetchChromatogram(entry IndexEntry) (*Chromatogram, error) {
	dec, start, err := f.startAt(entry)
	if err != nil {
		return nil, err
	}

	var raw xmlChromatogram
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return nil, f.classify(entry, err)
	}

	return &Chromatogram{
		ID:                 raw.ID,
		Index:              raw.Index,
		DefaultArrayLength: raw.DefaultArrayLength,
		Params:             f.resolver.Resolve(raw.Params, raw.GroupRefs),
		UserParams:         raw.UserParams,
		Arrays:             f.decodeArrays(raw.BinaryDataArrayList.Arrays, raw.DefaultArrayLength),
	}, nil
}

// decodeArrays resolves each array's params and decodes its payload.
// A malformed array keeps its params and records the failure on the
// array itself; the record as a whole still succeeds.
func (f *fetcher) decodeArrays(raws []xmlBinaryDataArray, declared int) []BinaryDataArray {
	if len(raws) == 0 {
		return nil
	}

	arrays := make([]BinaryDataArray, 0, len(raws))
	for _, raw := range raws {
		params := f.resolver.Resolve(raw.Params, raw.GroupRefs)

		arr := BinaryDataArray{
			Params:        params,
			EncodedLength: raw.EncodedLength,
			Precision:     Float64,
			Compression:   NoCompression,
		}

		for _, p := range params {
			switch p.Accession {
			case cv.AccFloat32:
				arr.Precision = Float32
			case cv.AccFloat64:
				arr.Precision = Float64
			case cv.AccZlibCompression:
				arr.Compression = ZlibCompression
			case cv.AccNoCompression:
				arr.Compression = NoCompression
			case cv.AccMZArray, cv.AccIntensityArray, cv.AccTimeArray:
				arr.ArrayType = p.Accession
			}
		}

		count := declared
		if raw.ArrayLength > 0 {
			// An array-level length overrides the record default
			// (e.g. wavelength arrays shorter than the peak count).
			count = raw.ArrayLength
		}

		arr.Data, arr.Err = Decode(strings.TrimSpace(raw.Binary), arr.Precision, arr.Compression, count)
		arrays = append(arrays, arr)
	}
	return arrays
}

// classify maps an XML decode failure to the record-level error
// taxonomy: running out of document before the close tag is a
// truncation, anything else a parse error.
func (f *fetcher) classify(entry IndexEntry, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || isSyntaxEOF(err) {
		return &TruncatedError{ID: entry.ID, Offset: entry.Offset, cause: err}
	}
	return &ParseError{ID: entry.ID, Offset: entry.Offset, cause: err}
}

func isSyntaxEOF(err error) bool {
	var se *xml.SyntaxError
	return errors.As(err, &se) && strings.Contains(se.Msg, "unexpected EOF")
}
