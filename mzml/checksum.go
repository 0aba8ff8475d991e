package mzml

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"strings"

	"github.com/mzkit-go/mzkit/blobstore"
)

// ChecksumReport is the outcome of an integrity validation.
type ChecksumReport struct {
	// Match is true when the recomputed digest equals the declared one.
	Match bool
	// Declared is the digest the document carries.
	Declared string
	// Computed is the digest recomputed over the document.
	Computed string
}

// validateChecksum recomputes the document digest and compares it to
// the declared one.
//
// Scope convention: the SHA-1 covers every byte from the start of the
// file up to and including the literal `<fileChecksum>` open tag, the
// convention used by ProteoWizard. Producers disagree on this scope in
// practice, which is why a mismatch is reported rather than fatal.
func validateChecksum(blob blobstore.Blob, tail docTail) (ChecksumReport, error) {
	if tail.checksum == "" || tail.checksumTagEnd < 0 {
		return ChecksumReport{}, ErrNoChecksum
	}

	h := sha1.New()
	section := io.NewSectionReader(blob, 0, tail.checksumTagEnd)
	if _, err := io.Copy(h, section); err != nil {
		return ChecksumReport{}, err
	}

	computed := hex.EncodeToString(h.Sum(nil))
	declared := strings.ToLower(tail.checksum)

	return ChecksumReport{
		Match:    computed == declared,
		Declared: declared,
		Computed: computed,
	}, nil
}
