package codes_test

import (
	"testing"

	"github.com/gnames/gncode/pkg/codes"
	"github.com/gnames/gncode/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		rank taxon.Rank
		want string
	}{
		{"species", "Acanthurus achilles", taxon.RankSpecies, "AC.ACHI"},
		{"short epithet", "Naso lituratus", taxon.RankSpecies, "NA.LITU"},
		{"genus", "Gymnothorax", taxon.RankGenus, "GYMN.SP"},
		{"family", "Pomacentridae", taxon.RankFamily, "POMA.SPP"},
		{"hybrid", "Acanthurus achilles x nigricans",
			taxon.RankSpecies, "AC.ACxNI"},
		{"rank inferred", "Acanthurus achilles", taxon.RankUnknown, "AC.ACHI"},
		{"subspecies uses terminal epithet",
			"Salarias fasciatus phaiosoma", taxon.RankSpecies, "SA.PHAI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codes.Base(tt.in, tt.rank)
			assert.Equal(t, tt.want, got)
			assert.True(t, codes.ValidShape(got), "shape of %s", got)
		})
	}
}

func TestIsHybrid(t *testing.T) {
	assert.True(t, codes.IsHybrid("Acanthurus achilles x nigricans"))
	assert.True(t, codes.IsHybrid("Acanthurus achilles × nigricans"))
	assert.False(t, codes.IsHybrid("Acanthurus achilles"))
	assert.False(t, codes.IsHybrid("Xiphias gladius"))
}

func TestAssignCollisionExtendsGenus(t *testing.T) {
	a := codes.NewAssigner(nil)
	// Same two-letter genus prefix, same four-letter epithet prefix.
	got, err := a.Assign([]codes.Entry{
		{Name: "Apogon tristis", Rank: taxon.RankSpecies, Frequency: 9},
		{Name: "Aplysia tristis", Rank: taxon.RankSpecies, Frequency: 2},
	})
	require.NoError(t, err)

	// The frequent taxon keeps the short code; the other grows its
	// genus prefix first.
	assert.Equal(t, "AP.TRIS", got["Apogon tristis"])
	assert.Equal(t, "APL.TRIS", got["Aplysia tristis"])
}

func TestAssignCollisionTieAlphabetical(t *testing.T) {
	a := codes.NewAssigner(nil)
	got, err := a.Assign([]codes.Entry{
		{Name: "Apogon tristis", Rank: taxon.RankSpecies, Frequency: 1},
		{Name: "Aplysia tristis", Rank: taxon.RankSpecies, Frequency: 1},
	})
	require.NoError(t, err)

	// Equal frequency: first alphabetically is the keeper.
	assert.Equal(t, "AP.TRIS", got["Aplysia tristis"])
	assert.Equal(t, "APO.TRIS", got["Apogon tristis"])
}

func TestAssignUniqueInvariant(t *testing.T) {
	a := codes.NewAssigner(nil)
	entries := []codes.Entry{
		{Name: "Acanthurus achilles", Rank: taxon.RankSpecies, Frequency: 5},
		{Name: "Acanthurus nigricans", Rank: taxon.RankSpecies, Frequency: 3},
		{Name: "Apogon tristis", Rank: taxon.RankSpecies, Frequency: 2},
		{Name: "Aplysia tristis", Rank: taxon.RankSpecies, Frequency: 1},
		{Name: "Gymnothorax", Rank: taxon.RankGenus, Frequency: 1},
		{Name: "Pomacentridae", Rank: taxon.RankFamily, Frequency: 1},
	}
	got, err := a.Assign(entries)
	require.NoError(t, err)
	require.Len(t, got, len(entries))

	seen := make(map[string]string)
	for name, code := range got {
		if prev, ok := seen[code]; ok {
			t.Fatalf("code %s assigned to both %q and %q", code, prev, name)
		}
		seen[code] = name
	}
}

func TestAssignDeterministic(t *testing.T) {
	entries := []codes.Entry{
		{Name: "Apogon tristis", Rank: taxon.RankSpecies, Frequency: 2},
		{Name: "Aplysia tristis", Rank: taxon.RankSpecies, Frequency: 1},
		{Name: "Acanthurus achilles", Rank: taxon.RankSpecies, Frequency: 7},
	}
	a := codes.NewAssigner(nil)
	first, err := a.Assign(entries)
	require.NoError(t, err)

	// Reversed input order produces identical assignments.
	reversed := []codes.Entry{entries[2], entries[1], entries[0]}
	second, err := a.Assign(reversed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssignOverrideWins(t *testing.T) {
	a := codes.NewAssigner(map[string]string{
		"Acanthurus nigricans": "AC.NIGR2",
	})
	got, err := a.Assign([]codes.Entry{
		{Name: "Acanthurus nigricans", Rank: taxon.RankSpecies, Frequency: 9},
		{Name: "Acanthurus nigros", Rank: taxon.RankSpecies, Frequency: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "AC.NIGR2", got["Acanthurus nigricans"])
	// With the frequent taxon pinned elsewhere, the machine-derived
	// base is free for the other member of the set.
	assert.Equal(t, "AC.NIGR", got["Acanthurus nigros"])
}

func TestAssignOverrideCollisionIsSurfaced(t *testing.T) {
	a := codes.NewAssigner(map[string]string{
		"Acanthurus nigricans": "AC.NIGR",
		"Acanthurus nigros":    "AC.NIGR",
	})
	_, err := a.Assign([]codes.Entry{
		{Name: "Acanthurus nigricans", Rank: taxon.RankSpecies, Frequency: 1},
		{Name: "Acanthurus nigros", Rank: taxon.RankSpecies, Frequency: 1},
	})
	assert.Error(t, err)
}

func TestAssignMergesDuplicateEntries(t *testing.T) {
	a := codes.NewAssigner(nil)
	got, err := a.Assign([]codes.Entry{
		{Name: "Acanthurus achilles", Rank: taxon.RankSpecies, Frequency: 1},
		{Name: "Acanthurus achilles", Rank: taxon.RankSpecies, Frequency: 4},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AC.ACHI", got["Acanthurus achilles"])
}

func TestOverridesValidate(t *testing.T) {
	cfg := &codes.OverridesConfig{Overrides: map[string]string{
		"Acanthurus nigricans": "AC.NIGR",
		"Zebrasoma scopas":     "weird-code",
	}}
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Warnings, 1)
	assert.Equal(t, "Zebrasoma scopas", cfg.Warnings[0].Entry)

	bad := &codes.OverridesConfig{Overrides: map[string]string{
		"Acanthurus nigricans": "AC.NIGR",
		"Acanthurus nigros":    "AC.NIGR",
	}}
	assert.Error(t, bad.Validate())
}
