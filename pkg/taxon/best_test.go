package taxon_test

import (
	"testing"

	"github.com/gnames/gncode/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestPrefersAccepted(t *testing.T) {
	cands := []taxon.Candidate{
		{RegistryID: 10, Status: taxon.StatusSynonym,
			AcceptedName: "Acanthurus nigricans", AcceptedRegistryID: 20},
		{RegistryID: 20, Status: taxon.StatusAccepted,
			AcceptedName: "Acanthurus nigricans", AcceptedRegistryID: 20},
	}

	best, ok := taxon.Best(cands)
	require.True(t, ok)
	assert.Equal(t, int64(20), best.RegistryID)

	// Accepted candidate wins regardless of input ordering.
	best, ok = taxon.Best([]taxon.Candidate{cands[1], cands[0]})
	require.True(t, ok)
	assert.Equal(t, int64(20), best.RegistryID)
}

func TestBestMissingStatusBeatsSynonym(t *testing.T) {
	cands := []taxon.Candidate{
		{RegistryID: 1, Status: taxon.StatusSynonym, AcceptedRegistryID: 5},
		{RegistryID: 2, Status: "", AcceptedRegistryID: 2},
	}
	best, ok := taxon.Best(cands)
	require.True(t, ok)
	assert.Equal(t, int64(2), best.RegistryID)
}

func TestBestPrefersSelfReferential(t *testing.T) {
	// Both accepted, only one is its own accepted record.
	cands := []taxon.Candidate{
		{RegistryID: 7, Status: taxon.StatusAccepted, AcceptedRegistryID: 9},
		{RegistryID: 8, Status: taxon.StatusAccepted, AcceptedRegistryID: 8},
	}
	best, ok := taxon.Best(cands)
	require.True(t, ok)
	assert.Equal(t, int64(8), best.RegistryID)
}

func TestBestFallsBackToInputOrder(t *testing.T) {
	cands := []taxon.Candidate{
		{RegistryID: 3, Status: taxon.StatusAccepted, AcceptedRegistryID: 3},
		{RegistryID: 4, Status: taxon.StatusAccepted, AcceptedRegistryID: 4},
	}
	best, ok := taxon.Best(cands)
	require.True(t, ok)
	assert.Equal(t, int64(3), best.RegistryID)
}

func TestBestEmpty(t *testing.T) {
	_, ok := taxon.Best(nil)
	assert.False(t, ok)
}

func TestAmbiguous(t *testing.T) {
	same := []taxon.Candidate{
		{RegistryID: 1, AcceptedRegistryID: 5},
		{RegistryID: 2, AcceptedRegistryID: 5},
	}
	assert.False(t, taxon.Ambiguous(same))

	diverging := []taxon.Candidate{
		{RegistryID: 1, AcceptedRegistryID: 5},
		{RegistryID: 2, AcceptedRegistryID: 6},
	}
	assert.True(t, taxon.Ambiguous(diverging))
}

func TestInferRank(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want taxon.Rank
	}{
		{"binomial", "Acanthurus achilles", taxon.RankSpecies},
		{"single word", "Gymnothorax", taxon.RankGenus},
		{"animal family", "Pomacentridae", taxon.RankFamily},
		{"plant family", "Poaceae", taxon.RankFamily},
		{"empty", "", taxon.RankUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taxon.InferRank(tt.in))
		})
	}
}
