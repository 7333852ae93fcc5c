package normalize_test

import (
	"testing"

	"github.com/gnames/gncode/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCleanup(t *testing.T) {
	n := normalize.New(nil, nil)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"whitespace", "  Acanthurus   achilles ", "Acanthurus achilles"},
		{"sp marker", "Gymnothorax sp.", "Gymnothorax"},
		{"spp marker", "Pomacentridae spp", "Pomacentridae"},
		{"capitalization", "acanthurus ACHILLES", "Acanthurus achilles"},
		{"hybrid x kept", "Acanthurus achilles x nigricans",
			"Acanthurus achilles x nigricans"},
		{"hybrid X lowered", "Acanthurus achilles X nigricans",
			"Acanthurus achilles x nigricans"},
		{"multibyte genus initial", "ærva lanata", "Ærva lanata"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Normalize(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Clean)
		})
	}
}

func TestNormalizeCorrections(t *testing.T) {
	n := normalize.New(map[string]string{
		"Acanthrus achiles": "Acanthurus achilles",
	}, nil)

	// A known misspelling resolves to the corrected name, so the
	// registry sees the correct string, not the typo.
	got, ok := n.Normalize("acanthrus  achiles")
	require.True(t, ok)
	assert.Equal(t, "Acanthurus achilles", got.Clean)
	assert.Equal(t, "acanthrus  achiles", got.Verbatim)
}

func TestNormalizeBlocklist(t *testing.T) {
	n := normalize.New(nil, []string{"juv unknown"})

	_, ok := n.Normalize("Juv   unknown")
	assert.False(t, ok, "blocked names leave the pipeline")

	_, ok = n.Normalize("   ")
	assert.False(t, ok, "empty names leave the pipeline")
}

func TestNormalizeDiacritics(t *testing.T) {
	n := normalize.New(nil, nil)

	got, ok := n.Normalize("Pocillopora verrucósa")
	require.True(t, ok)
	assert.Equal(t, "Pocillopora verrucosa", got.Matchable)
	// Display form keeps the original spelling.
	assert.Equal(t, "Pocillopora verrucósa", got.Clean)
}

func TestCorrectionsValidate(t *testing.T) {
	cfg := &normalize.CorrectionsConfig{
		Corrections: map[string]string{
			"Acanthrus achiles": "Acanthurus achilles",
			"Zebrasoma velifer": "Zebrasoma velifer",
		},
		Block: []string{"juv unknown", "juv  unknown"},
	}
	err := cfg.Validate()
	require.NoError(t, err)
	// self-correction + duplicated block entry
	assert.Len(t, cfg.Warnings, 2)
}

func TestCorrectionsValidateErrors(t *testing.T) {
	cfg := &normalize.CorrectionsConfig{
		Corrections: map[string]string{"Acanthrus achiles": "  "},
	}
	assert.Error(t, cfg.Validate())

	cfg = &normalize.CorrectionsConfig{Block: []string{" "}}
	assert.Error(t, cfg.Validate())
}
