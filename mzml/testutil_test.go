package mzml

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/mzkit-go/mzkit/blobstore"
	"github.com/mzkit-go/mzkit/cv"
)

// Test documents are assembled programmatically so that every byte
// offset and the trailing digest are computed, not transcribed.

type testArray struct {
	arrayType   string // accession, e.g. cv.AccMZArray
	values      []float64
	precision   Precision
	compression Compression

	// rawBinary, when set, is written verbatim instead of encoding
	// values. Used to plant corrupt payloads.
	rawBinary string

	// arrayLength, when positive, is written as the array-level length
	// attribute.
	arrayLength int
}

type testSpectrum struct {
	id        string
	msLevel   int
	arrays    []testArray
	groupRefs []string

	precursorRef       string
	sourceFileRef      string
	externalSpectrumID string
}

type testChromatogram struct {
	id     string
	arrays []testArray
}

type testDoc struct {
	groupsXML     string // raw referenceableParamGroupList, optional
	spectra       []testSpectrum
	chromatograms []testChromatogram

	noIndex     bool  // omit indexList and indexListOffset
	skewOffsets int64 // added to every offset written into the index
	noChecksum  bool
	badChecksum bool
}

func precisionAccession(p Precision) string {
	if p == Float32 {
		return cv.AccFloat32
	}
	return cv.AccFloat64
}

func compressionAccession(c Compression) string {
	if c == ZlibCompression {
		return cv.AccZlibCompression
	}
	return cv.AccNoCompression
}

func (a testArray) binary(t *testing.T) string {
	t.Helper()
	if a.rawBinary != "" {
		return a.rawBinary
	}
	payload, err := Encode(a.values, a.precision, a.compression)
	if err != nil {
		t.Fatalf("encoding test array: %v", err)
	}
	return payload
}

func writeArrayList(t *testing.T, buf *bytes.Buffer, arrays []testArray) {
	t.Helper()
	if len(arrays) == 0 {
		return
	}
	fmt.Fprintf(buf, "<binaryDataArrayList count=\"%d\">\n", len(arrays))
	for _, a := range arrays {
		payload := a.binary(t)
		buf.WriteString("<binaryDataArray")
		fmt.Fprintf(buf, " encodedLength=\"%d\"", len(payload))
		if a.arrayLength > 0 {
			fmt.Fprintf(buf, " arrayLength=\"%d\"", a.arrayLength)
		}
		buf.WriteString(">\n")
		fmt.Fprintf(buf, "<cvParam cvRef=\"MS\" accession=%q name=\"precision\"/>\n", precisionAccession(a.precision))
		fmt.Fprintf(buf, "<cvParam cvRef=\"MS\" accession=%q name=\"compression\"/>\n", compressionAccession(a.compression))
		if a.arrayType != "" {
			fmt.Fprintf(buf, "<cvParam cvRef=\"MS\" accession=%q name=\"array type\"/>\n", a.arrayType)
		}
		fmt.Fprintf(buf, "<binary>%s</binary>\n", payload)
		buf.WriteString("</binaryDataArray>\n")
	}
	buf.WriteString("</binaryDataArrayList>\n")
}

// build renders the document and returns its bytes.
func (d testDoc) build(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	buf.WriteString("<indexedmzML>\n<mzML>\n")
	if d.groupsXML != "" {
		buf.WriteString(d.groupsXML)
		buf.WriteString("\n")
	}
	buf.WriteString("<run id=\"test_run\" defaultInstrumentConfigurationRef=\"IC1\" startTimeStamp=\"2024-05-01T09:30:00Z\">\n")

	type located struct {
		id     string
		offset int64
	}
	var specOffsets, chromOffsets []located

	fmt.Fprintf(&buf, "<spectrumList count=\"%d\">\n", len(d.spectra))
	for i, s := range d.spectra {
		specOffsets = append(specOffsets, located{id: s.id, offset: int64(buf.Len())})

		length := 0
		if len(s.arrays) > 0 {
			if s.arrays[0].rawBinary == "" {
				length = len(s.arrays[0].values)
			}
		}
		fmt.Fprintf(&buf, "<spectrum index=\"%d\" id=%q defaultArrayLength=\"%d\">\n", i, s.id, length)
		for _, ref := range s.groupRefs {
			fmt.Fprintf(&buf, "<referenceableParamGroupRef ref=%q/>\n", ref)
		}
		if s.msLevel > 0 {
			fmt.Fprintf(&buf, "<cvParam cvRef=\"MS\" accession=%q name=\"ms level\" value=\"%d\"/>\n", cv.AccMSLevel, s.msLevel)
		}
		if s.precursorRef != "" || s.sourceFileRef != "" {
			buf.WriteString("<precursorList count=\"1\">\n<precursor")
			if s.precursorRef != "" {
				fmt.Fprintf(&buf, " spectrumRef=%q", s.precursorRef)
			}
			if s.sourceFileRef != "" {
				fmt.Fprintf(&buf, " sourceFileRef=%q externalSpectrumID=%q", s.sourceFileRef, s.externalSpectrumID)
			}
			buf.WriteString(">\n")
			buf.WriteString("<selectedIonList count=\"1\"><selectedIon>\n")
			buf.WriteString("<cvParam cvRef=\"MS\" accession=\"MS:1000744\" name=\"selected ion m/z\" value=\"445.12\"/>\n")
			buf.WriteString("</selectedIon></selectedIonList>\n")
			buf.WriteString("</precursor>\n</precursorList>\n")
		}
		writeArrayList(t, &buf, s.arrays)
		buf.WriteString("</spectrum>\n")
	}
	buf.WriteString("</spectrumList>\n")

	if len(d.chromatograms) > 0 {
		fmt.Fprintf(&buf, "<chromatogramList count=\"%d\">\n", len(d.chromatograms))
		for i, c := range d.chromatograms {
			chromOffsets = append(chromOffsets, located{id: c.id, offset: int64(buf.Len())})

			length := 0
			if len(c.arrays) > 0 && c.arrays[0].rawBinary == "" {
				length = len(c.arrays[0].values)
			}
			fmt.Fprintf(&buf, "<chromatogram index=\"%d\" id=%q defaultArrayLength=\"%d\">\n", i, c.id, length)
			writeArrayList(t, &buf, c.arrays)
			buf.WriteString("</chromatogram>\n")
		}
		buf.WriteString("</chromatogramList>\n")
	}

	buf.WriteString("</run>\n</mzML>\n")

	if !d.noIndex {
		indexListOffset := int64(buf.Len())
		buf.WriteString("<indexList count=\"2\">\n<index name=\"spectrum\">\n")
		for _, e := range specOffsets {
			fmt.Fprintf(&buf, "<offset idRef=%q>%d</offset>\n", e.id, e.offset+d.skewOffsets)
		}
		buf.WriteString("</index>\n<index name=\"chromatogram\">\n")
		for _, e := range chromOffsets {
			fmt.Fprintf(&buf, "<offset idRef=%q>%d</offset>\n", e.id, e.offset+d.skewOffsets)
		}
		buf.WriteString("</index>\n</indexList>\n")
		fmt.Fprintf(&buf, "<indexListOffset>%d</indexListOffset>\n", indexListOffset)
	}

	if !d.noChecksum {
		buf.WriteString("<fileChecksum>")
		sum := sha1.Sum(buf.Bytes())
		digest := hex.EncodeToString(sum[:])
		if d.badChecksum {
			digest = "0000000000000000000000000000000000000000"
		}
		buf.WriteString(digest)
		buf.WriteString("</fileChecksum>\n")
	}

	buf.WriteString("</indexedmzML>\n")
	return buf.Bytes()
}

// open builds the document and opens a reader over it in memory.
func (d testDoc) open(t *testing.T, optFns ...Option) *Reader {
	t.Helper()
	r, err := OpenBlob(blobstore.NewMemoryBlob(d.build(t)), optFns...)
	if err != nil {
		t.Fatalf("opening test document: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

// twoKindDoc is the workhorse fixture: three spectra (MS1, MS2, MS1)
// and one TIC chromatogram.
func twoKindDoc() testDoc {
	return testDoc{
		spectra: []testSpectrum{
			{
				id:      "scan=1",
				msLevel: 1,
				arrays: []testArray{
					{arrayType: cv.AccMZArray, values: []float64{100.1, 200.2, 300.3}},
					{arrayType: cv.AccIntensityArray, values: []float64{10, 20, 30}, precision: Float32},
				},
			},
			{
				id:           "scan=2",
				msLevel:      2,
				precursorRef: "scan=1",
				arrays: []testArray{
					{arrayType: cv.AccMZArray, values: []float64{110.5, 220.6}, compression: ZlibCompression},
					{arrayType: cv.AccIntensityArray, values: []float64{5, 15}, precision: Float32, compression: ZlibCompression},
				},
			},
			{
				id:      "scan=3",
				msLevel: 1,
				arrays: []testArray{
					{arrayType: cv.AccMZArray, values: nil},
					{arrayType: cv.AccIntensityArray, values: nil},
				},
			},
		},
		chromatograms: []testChromatogram{
			{
				id: "TIC",
				arrays: []testArray{
					{arrayType: cv.AccTimeArray, values: []float64{0.5, 1.5, 2.5, 3.5}},
					{arrayType: cv.AccIntensityArray, values: []float64{1000, 2000, 1500, 800}},
				},
			},
		},
	}
}
