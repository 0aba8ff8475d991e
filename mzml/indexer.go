package mzml

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mzkit-go/mzkit/blobstore"
	"github.com/mzkit-go/mzkit/cv"
)

// tailScanSize is how many trailing bytes are searched for the
// indexListOffset and fileChecksum elements. The trailer of an
// indexedmzML document is tiny; 4KB is generous.
const tailScanSize = 4096

// defaultBufferSize is the read buffer for full-document scans.
const defaultBufferSize = 1 << 20

// docTail holds what the trailing region of an indexedmzML declares.
type docTail struct {
	indexListOffset int64 // -1 when absent
	checksum        string
	// checksumTagEnd is the absolute offset one past the
	// `<fileChecksum>` open tag; the digest covers [0, checksumTagEnd).
	checksumTagEnd int64
}

func readTail(blob blobstore.Blob) (docTail, error) {
	tail := docTail{indexListOffset: -1, checksumTagEnd: -1}

	size := blob.Size()
	n := int64(tailScanSize)
	if n > size {
		n = size
	}
	buf := make([]byte, n)
	if _, err := blob.ReadAt(buf, size-n); err != nil && err != io.EOF {
		return tail, err
	}

	if v, ok := tailElement(buf, "indexListOffset"); ok {
		off, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err == nil && off >= 0 && off < size {
			tail.indexListOffset = off
		}
	}

	if i := bytes.LastIndex(buf, []byte("<fileChecksum>")); i >= 0 {
		tagEnd := i + len("<fileChecksum>")
		tail.checksumTagEnd = size - n + int64(tagEnd)
		if v, ok := tailElement(buf[i:], "fileChecksum"); ok {
			tail.checksum = strings.TrimSpace(v)
		}
	}

	return tail, nil
}

// tailElement extracts the text content of the last `<name>...</name>`
// in buf.
func tailElement(buf []byte, name string) (string, bool) {
	open := []byte("<" + name + ">")
	closeTag := []byte("</" + name + ">")
	i := bytes.LastIndex(buf, open)
	if i < 0 {
		return "", false
	}
	rest := buf[i+len(open):]
	j := bytes.Index(rest, closeTag)
	if j < 0 {
		return "", false
	}
	return string(rest[:j]), true
}

// xmlIndexList mirrors the embedded trailing index.
type xmlIndexList struct {
	XMLName xml.Name `xml:"indexList"`
	Indexes []struct {
		Name    string `xml:"name,attr"`
		Offsets []struct {
			IDRef string `xml:"idRef,attr"`
			Value string `xml:",chardata"`
		} `xml:"offset"`
	} `xml:"index"`
}

// loadEmbeddedIndex parses the trailing indexList and verifies a sample
// of its offsets before trusting it. Verification failure returns
// ErrMalformedIndex so the caller can fall back to a full scan.
func loadEmbeddedIndex(blob blobstore.Blob, tail docTail) (*RecordIndex, error) {
	if tail.indexListOffset < 0 {
		return nil, fmt.Errorf("%w: no indexListOffset declared", ErrMalformedIndex)
	}

	section := io.NewSectionReader(blob, tail.indexListOffset, blob.Size()-tail.indexListOffset)
	dec := xml.NewDecoder(bufio.NewReader(section))

	var list xmlIndexList
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedIndex, err)
	}

	var entries []IndexEntry
	for _, index := range list.Indexes {
		var kind Kind
		switch index.Name {
		case "spectrum":
			kind = KindSpectrum
		case "chromatogram":
			kind = KindChromatogram
		default:
			continue
		}
		for _, off := range index.Offsets {
			value, err := strconv.ParseInt(strings.TrimSpace(off.Value), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: offset for %q: %v", ErrMalformedIndex, off.IDRef, err)
			}
			entries = append(entries, IndexEntry{ID: off.IDRef, Kind: kind, Offset: value})
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty indexList", ErrMalformedIndex)
	}

	if err := verifySample(blob, entries); err != nil {
		return nil, err
	}

	return newRecordIndex(entries), nil
}

// verifySample checks the first, middle and last entry of each kind:
// the bytes at the recorded offset must start the right open tag and
// carry the expected id attribute. Cheap enough to catch truncated or
// stale indexes without paying full-scan cost.
func verifySample(blob blobstore.Blob, entries []IndexEntry) error {
	byKind := map[Kind][]IndexEntry{}
	for _, e := range entries {
		byKind[e.Kind] = append(byKind[e.Kind], e)
	}

	for _, kindEntries := range byKind {
		samples := []int{0, len(kindEntries) / 2, len(kindEntries) - 1}
		for _, i := range samples {
			if err := verifyEntry(blob, kindEntries[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func verifyEntry(blob blobstore.Blob, e IndexEntry) error {
	if e.Offset < 0 || e.Offset >= blob.Size() {
		return fmt.Errorf("%w: offset %d for %q beyond document end", ErrMalformedIndex, e.Offset, e.ID)
	}

	want := "<" + e.Kind.String()
	probe := make([]byte, len(want)+len(e.ID)+512)
	n, err := blob.ReadAt(probe, e.Offset)
	if err != nil && err != io.EOF {
		return err
	}
	probe = probe[:n]

	// Offsets written by some producers point at the whitespace before
	// the tag; tolerate it.
	probe = bytes.TrimLeft(probe, " \t\r\n")
	if !bytes.HasPrefix(probe, []byte(want)) {
		return fmt.Errorf("%w: offset %d for %q does not start a %s element", ErrMalformedIndex, e.Offset, e.ID, e.Kind)
	}

	tagEnd := bytes.IndexByte(probe, '>')
	if tagEnd < 0 {
		tagEnd = len(probe)
	}
	idAttr := []byte(` id="` + escapeAttr(e.ID) + `"`)
	if !bytes.Contains(probe[:tagEnd], idAttr) {
		return fmt.Errorf("%w: offset %d does not carry id %q", ErrMalformedIndex, e.Offset, e.ID)
	}
	return nil
}

func escapeAttr(s string) string {
	var buf strings.Builder
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// buildIndexByScan performs a single forward pass over the document,
// recording the byte offset of every spectrum and chromatogram open
// tag. Always correct, O(document size). It also collects the scan
// summary (per-kind and per-MS-level position bitmaps) for free.
func buildIndexByScan(blob blobstore.Blob, bufferSize int) (*RecordIndex, *Summary, error) {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	section := io.NewSectionReader(blob, 0, blob.Size())
	dec := xml.NewDecoder(bufio.NewReaderSize(section, bufferSize))

	var entries []IndexEntry
	sb := newSummaryBuilder()

	inSpectrum := false
	spectrumPos := -1

	for {
		offset := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A damaged or truncated tail must not lose the records
			// already located; fetches past the damage fail per record.
			if errors.Is(err, io.ErrUnexpectedEOF) || isSyntaxError(err) {
				break
			}
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "spectrum":
				id, ok := findAttr(t, "id")
				if !ok {
					return nil, nil, fmt.Errorf("mzml: spectrum at offset %d has no id attribute", offset)
				}
				entries = append(entries, IndexEntry{ID: id, Kind: KindSpectrum, Offset: offset})
				inSpectrum = true
				spectrumPos++
				sb.addSpectrum(spectrumPos)
			case "chromatogram":
				id, ok := findAttr(t, "id")
				if !ok {
					return nil, nil, fmt.Errorf("mzml: chromatogram at offset %d has no id attribute", offset)
				}
				entries = append(entries, IndexEntry{ID: id, Kind: KindChromatogram, Offset: offset})
			case "cvParam":
				if inSpectrum {
					if acc, ok := findAttr(t, "accession"); ok && acc == cv.AccMSLevel {
						if value, ok := findAttr(t, "value"); ok {
							if level, err := strconv.Atoi(value); err == nil {
								sb.setMSLevel(spectrumPos, level)
							}
						}
					}
				}
			case "indexList":
				// Past the run; nothing left to index.
				return newRecordIndex(entries), sb.build(), nil
			}
		case xml.EndElement:
			if t.Name.Local == "spectrum" {
				inSpectrum = false
			}
		}
	}

	return newRecordIndex(entries), sb.build(), nil
}

func isSyntaxError(err error) bool {
	var se *xml.SyntaxError
	return errors.As(err, &se)
}

func findAttr(e xml.StartElement, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
