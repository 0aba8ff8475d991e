package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveGroupOrder(t *testing.T) {
	r := NewResolver([]ParamGroup{
		{ID: "g1", Params: []Param{
			{Accession: "MS:1", Name: "a", Value: "1"},
			{Accession: "MS:2", Name: "b", Value: "2"},
		}},
		{ID: "g2", Params: []Param{
			{Accession: "MS:3", Name: "c", Value: "3"},
		}},
	})

	got := r.Resolve(
		[]Param{{Accession: "MS:4", Name: "d", Value: "4"}},
		[]GroupRef{{Ref: "g1"}, {Ref: "g2"}},
	)

	require.Len(t, got, 4)
	assert.Equal(t, "MS:1", got[0].Accession)
	assert.Equal(t, "MS:2", got[1].Accession)
	assert.Equal(t, "MS:3", got[2].Accession)
	assert.Equal(t, "MS:4", got[3].Accession)
}

func TestResolveDirectOverridesGroup(t *testing.T) {
	r := NewResolver([]ParamGroup{
		{ID: "common", Params: []Param{
			{Accession: "MS:1000511", Name: "ms level", Value: "1"},
		}},
	})

	got := r.Resolve(
		[]Param{{Accession: "MS:1000511", Name: "ms level", Value: "2"}},
		[]GroupRef{{Ref: "common"}},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].Value)
}

func TestResolveLastDeclaredWinsWithinScope(t *testing.T) {
	r := NewResolver(nil)

	got := r.Resolve([]Param{
		{Accession: "MS:9", Value: "first"},
		{Accession: "MS:9", Value: "second"},
	}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Value)
}

func TestResolveUnknownGroupRefIgnored(t *testing.T) {
	r := NewResolver(nil)
	got := r.Resolve([]Param{{Accession: "MS:1", Value: "1"}}, []GroupRef{{Ref: "missing"}})
	require.Len(t, got, 1)
}

func TestFind(t *testing.T) {
	params := []Param{
		{Accession: AccMSLevel, Value: "2"},
		{Accession: AccZlibCompression},
	}

	p, ok := Find(params, AccZlibCompression)
	require.True(t, ok)
	assert.Equal(t, AccZlibCompression, p.Accession)

	_, ok = Find(params, "MS:0000000")
	assert.False(t, ok)
}
