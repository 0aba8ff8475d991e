package taxonomy

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Miniature taxdmp archive: root -> cellular organisms -> Homo ->
// Homo sapiens -> two subspecies, plus one merged and one deleted id.
func buildTaxdmp(t *testing.T) []byte {
	t.Helper()

	nodes := "" +
		"1\t|\t1\t|\tno rank\t|\n" +
		"131567\t|\t1\t|\tcellular organisms\t|\n" +
		"9605\t|\t131567\t|\tgenus\t|\n" +
		"9606\t|\t9605\t|\tspecies\t|\n" +
		"63221\t|\t9606\t|\tsubspecies\t|\n" +
		"741158\t|\t9606\t|\tsubspecies\t|\n"

	names := "" +
		"1\t|\troot\t|\t\t|\tscientific name\t|\n" +
		"131567\t|\tcellular organisms\t|\t\t|\tscientific name\t|\n" +
		"9605\t|\tHomo\t|\t\t|\tscientific name\t|\n" +
		"9606\t|\tHomo sapiens\t|\t\t|\tscientific name\t|\n" +
		"9606\t|\thuman\t|\t\t|\tgenbank common name\t|\n" +
		"63221\t|\tHomo sapiens neanderthalensis\t|\t\t|\tscientific name\t|\n" +
		"741158\t|\tHomo sapiens subsp. 'Denisova'\t|\t\t|\tscientific name\t|\n"

	mergedDmp := "666\t|\t9606\t|\n"
	delnodes := "999\t|\n"

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"nodes.dmp":    nodes,
		"names.dmp":    names,
		"merged.dmp":   mergedDmp,
		"delnodes.dmp": delnodes,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func loadTestTree(t *testing.T) *Tree {
	t.Helper()
	data := buildTaxdmp(t)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	tree, err := ReadZip(zr)
	require.NoError(t, err)
	return tree
}

func TestReadZip(t *testing.T) {
	tree := loadTestTree(t)

	assert.Equal(t, 6, tree.Len())
	assert.Equal(t, []string{"genus", "no rank", "species", "subspecies"}, tree.Ranks())
}

func TestLookup(t *testing.T) {
	tree := loadTestTree(t)

	tax, err := tree.Lookup(9606)
	require.NoError(t, err)
	assert.Equal(t, "Homo sapiens", tax.ScientificName)
	assert.Equal(t, "species", tax.Rank)
	assert.Equal(t, uint64(9605), tax.ParentID)
}

func TestLookupMerged(t *testing.T) {
	tree := loadTestTree(t)

	tax, err := tree.Lookup(666)
	require.NoError(t, err)
	assert.Equal(t, uint64(9606), tax.ID, "merged ids resolve to their replacement")

	newID, ok := tree.Merged(666)
	assert.True(t, ok)
	assert.Equal(t, uint64(9606), newID)
}

func TestLookupDeleted(t *testing.T) {
	tree := loadTestTree(t)

	_, err := tree.Lookup(999)
	require.ErrorIs(t, err, ErrDeleted)
	assert.True(t, tree.Deleted(999))
}

func TestLookupUnknown(t *testing.T) {
	tree := loadTestTree(t)

	_, err := tree.Lookup(123456)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLineage(t *testing.T) {
	tree := loadTestTree(t)

	lineage, err := tree.Lineage(63221)
	require.NoError(t, err)

	var names []string
	for _, tax := range lineage {
		names = append(names, tax.ScientificName)
	}
	assert.Equal(t, []string{
		"root",
		"cellular organisms",
		"Homo",
		"Homo sapiens",
		"Homo sapiens neanderthalensis",
	}, names)
}

func TestSubtree(t *testing.T) {
	tree := loadTestTree(t)

	sub, err := tree.Subtree(9606)
	require.NoError(t, err)

	ids := make([]uint64, 0, len(sub))
	for _, tax := range sub {
		ids = append(ids, tax.ID)
	}
	assert.ElementsMatch(t, []uint64{63221, 741158}, ids)

	// A leaf has no descendants.
	sub, err = tree.Subtree(741158)
	require.NoError(t, err)
	assert.Empty(t, sub)
}

// Corrupt archive whose nodes 10 and 11 are each other's parent, never
// reaching a self-parented root.
func loadCyclicTree(t *testing.T) *Tree {
	t.Helper()

	nodes := "" +
		"1\t|\t1\t|\tno rank\t|\n" +
		"10\t|\t11\t|\tgenus\t|\n" +
		"11\t|\t10\t|\tspecies\t|\n"
	names := "" +
		"1\t|\troot\t|\t\t|\tscientific name\t|\n" +
		"10\t|\tOuro\t|\t\t|\tscientific name\t|\n" +
		"11\t|\tOuro boros\t|\t\t|\tscientific name\t|\n"

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"nodes.dmp": nodes,
		"names.dmp": names,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	tree, err := ReadZip(zr)
	require.NoError(t, err)
	return tree
}

func TestLineageCyclicNodes(t *testing.T) {
	tree := loadCyclicTree(t)

	_, err := tree.Lineage(10)
	require.ErrorContains(t, err, "cyclic lineage")

	// A well-formed path through the same tree still resolves.
	lineage, err := tree.Lineage(1)
	require.NoError(t, err)
	assert.Len(t, lineage, 1)
}

func TestSubtreeCyclicNodes(t *testing.T) {
	tree := loadCyclicTree(t)

	sub, err := tree.Subtree(10)
	require.NoError(t, err)

	// Each node of the cycle is visited once.
	ids := make([]uint64, 0, len(sub))
	for _, tax := range sub {
		ids = append(ids, tax.ID)
	}
	assert.Equal(t, []uint64{11}, ids)
}

func TestReadArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxdmp.zip")
	require.NoError(t, os.WriteFile(path, buildTaxdmp(t), 0o644))

	tree, err := ReadArchive(path)
	require.NoError(t, err)
	assert.Equal(t, 6, tree.Len())

	_, err = ReadArchive(filepath.Join(t.TempDir(), "missing.zip"))
	require.Error(t, err)
}

func TestReadZipRejectsIncompleteArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("nodes.dmp")
	require.NoError(t, err)
	_, err = w.Write([]byte("1\t|\t1\t|\tno rank\t|\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	_, err = ReadZip(zr)
	require.Error(t, err, "names.dmp is required")
}
