package mzml

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/mzkit-go/mzkit/blobstore"
	"github.com/mzkit-go/mzkit/cv"
)

type xmlParamGroup struct {
	ID     string     `xml:"id,attr"`
	Params []cv.Param `xml:"cvParam"`
}

// docHeader is what the reader needs from the region before the record
// lists: the shared param groups and the run attributes.
type docHeader struct {
	groups []cv.ParamGroup
	run    Run
}

// readHeader parses the document forward only until the first record
// list; the lists themselves are never materialized.
func readHeader(blob blobstore.Blob) (docHeader, error) {
	var hdr docHeader

	section := io.NewSectionReader(blob, 0, blob.Size())
	dec := xml.NewDecoder(bufio.NewReader(section))

	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return hdr, fmt.Errorf("mzml: parsing document header: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "indexedmzML", "mzML":
			sawRoot = true
		case "referenceableParamGroup":
			var g xmlParamGroup
			if err := dec.DecodeElement(&g, &start); err != nil {
				return hdr, fmt.Errorf("mzml: parsing param group: %w", err)
			}
			hdr.groups = append(hdr.groups, cv.ParamGroup{ID: g.ID, Params: g.Params})
		case "run":
			if id, ok := findAttr(start, "id"); ok {
				hdr.run.ID = id
			}
			if ref, ok := findAttr(start, "defaultInstrumentConfigurationRef"); ok {
				hdr.run.DefaultInstrumentConfigurationRef = ref
			}
			if ts, ok := findAttr(start, "startTimeStamp"); ok {
				hdr.run.StartTimeStamp = ts
			}
		case "spectrumList", "chromatogramList":
			// Header ends where the record lists begin.
			return hdr, nil
		}
	}

	if !sawRoot {
		return hdr, fmt.Errorf("mzml: not an mzML document")
	}
	return hdr, nil
}
