// Package mzml reads indexed mzML mass-spectrometry documents with
// random access.
//
// The document is never materialized. Opening a file parses the header
// (referenceable param groups, run attributes) and the trailing index,
// verifies a sample of the indexed offsets, and falls back to a single
// forward scan when the index is missing or lies. Every fetch then
// parses exactly one record subtree at its byte offset.
//
//	r, err := mzml.Open("run.mzML")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	s, err := r.Spectrum("controllerType=0 controllerNumber=1 scan=42")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s.MSLevel(), len(s.MZ()))
//
// Binary data arrays are base64 text, optionally zlib-compressed,
// packing little-endian IEEE-754 floats of 32 or 64 bit width. A
// malformed array does not fail its record; the failure is recorded on
// the array and the rest of the record stays usable.
//
// All reads go through io.ReaderAt, so one Reader serves concurrent
// fetches without coordination. Remote documents work through the
// blobstore abstraction (see blobstore/s3).
package mzml
