package ioresolve

import (
	"log/slog"
	"os"

	"github.com/gnames/gncode/pkg/codes"
	"github.com/gnames/gncode/pkg/config"
	"github.com/gnames/gncode/pkg/normalize"
	"gopkg.in/yaml.v3"
)

// LoadCorrections reads and validates corrections.yaml. Validation
// warnings are logged, not fatal.
func LoadCorrections(homeDir string) (*normalize.CorrectionsConfig, error) {
	path := config.CorrectionsFilePath(homeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CorrectionsError(path, err)
	}

	var res normalize.CorrectionsConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, CorrectionsError(path, err)
	}
	if err = res.Validate(); err != nil {
		return nil, CorrectionsError(path, err)
	}
	for _, w := range res.Warnings {
		slog.Warn("Corrections file issue",
			"entry", w.Entry,
			"problem", w.Message,
			"suggestion", w.Suggestion,
		)
	}
	return &res, nil
}

// LoadOverrides reads and validates overrides.yaml.
func LoadOverrides(homeDir string) (*codes.OverridesConfig, error) {
	path := config.OverridesFilePath(homeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, OverridesError(path, err)
	}

	var res codes.OverridesConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, OverridesError(path, err)
	}
	if err = res.Validate(); err != nil {
		return nil, OverridesError(path, err)
	}
	for _, w := range res.Warnings {
		slog.Warn("Overrides file issue",
			"entry", w.Entry,
			"problem", w.Message,
			"suggestion", w.Suggestion,
		)
	}
	return &res, nil
}
