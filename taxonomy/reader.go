package taxonomy

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The .dmp files of a taxdmp.zip are line records with fields delimited
// by "\t|\t" and a trailing "\t|". Splitting on '|' and trimming each
// field handles both the delimiters and the terminator.

// ReadArchive loads the taxonomy from a taxdmp.zip file on disk.
func ReadArchive(path string) (*Tree, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: opening %s: %w", path, err)
	}
	defer zr.Close()
	return ReadZip(&zr.Reader)
}

// ReadZip loads the taxonomy from an already opened taxdmp archive.
func ReadZip(zr *zip.Reader) (*Tree, error) {
	var (
		nodes   map[uint64]*Taxon
		names   map[uint64]string
		merged  = map[uint64]uint64{}
		deleted []uint64
		err     error
	)

	for _, f := range zr.File {
		switch f.Name {
		case "nodes.dmp":
			nodes, err = withFile(f, readNodes)
		case "names.dmp":
			names, err = withFile(f, readNames)
		case "merged.dmp":
			merged, err = withFile(f, readMerged)
		case "delnodes.dmp":
			deleted, err = withFile(f, readDelnodes)
		}
		if err != nil {
			return nil, err
		}
	}
	if nodes == nil {
		return nil, fmt.Errorf("taxonomy: archive has no nodes.dmp")
	}
	if names == nil {
		return nil, fmt.Errorf("taxonomy: archive has no names.dmp")
	}

	for id, tax := range nodes {
		name, ok := names[id]
		if !ok {
			return nil, fmt.Errorf("taxonomy: no scientific name for taxon %d", id)
		}
		tax.ScientificName = name
	}

	return newTree(nodes, merged, deleted), nil
}

func withFile[T any](f *zip.File, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := f.Open()
	if err != nil {
		return zero, fmt.Errorf("taxonomy: opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	v, err := read(rc)
	if err != nil {
		return zero, fmt.Errorf("taxonomy: reading %s: %w", f.Name, err)
	}
	return v, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func readNodes(r io.Reader) (map[uint64]*Taxon, error) {
	taxa := make(map[uint64]*Taxon)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := splitFields(scanner.Text())
		if len(fields) < 3 {
			return nil, fmt.Errorf("short node record %q", scanner.Text())
		}
		id, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("taxon id: %w", err)
		}
		parent, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parent id of taxon %d: %w", id, err)
		}
		taxa[id] = &Taxon{ID: id, ParentID: parent, Rank: fields[2]}
	}
	return taxa, scanner.Err()
}

func readNames(r io.Reader) (map[uint64]string, error) {
	names := make(map[uint64]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := splitFields(scanner.Text())
		if len(fields) < 4 {
			return nil, fmt.Errorf("short name record %q", scanner.Text())
		}
		if fields[3] != "scientific name" {
			continue
		}
		id, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("taxon id: %w", err)
		}
		names[id] = fields[1]
	}
	return names, scanner.Err()
}

func readMerged(r io.Reader) (map[uint64]uint64, error) {
	merged := make(map[uint64]uint64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := splitFields(scanner.Text())
		if len(fields) < 2 {
			return nil, fmt.Errorf("short merge record %q", scanner.Text())
		}
		oldID, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("old taxon id: %w", err)
		}
		newID, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("new taxon id: %w", err)
		}
		merged[oldID] = newID
	}
	return merged, scanner.Err()
}

func readDelnodes(r io.Reader) ([]uint64, error) {
	var deleted []uint64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := splitFields(scanner.Text())
		id, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("deleted taxon id: %w", err)
		}
		deleted = append(deleted, id)
	}
	return deleted, scanner.Err()
}
