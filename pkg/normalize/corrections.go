package normalize

import (
	"fmt"
	"strings"
)

// CorrectionsConfig is the schema of corrections.yaml, the curated
// cleanup data for raw field names.
type CorrectionsConfig struct {
	// Corrections maps raw misspelled names to their corrected form.
	Corrections map[string]string `yaml:"corrections"`

	// Block lists known-invalid names (ambiguous field shorthand)
	// that are dropped from the pipeline entirely.
	Block []string `yaml:"block"`

	// Warnings holds non-fatal validation findings (not serialized).
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Entry      string
	Message    string
	Suggestion string
}

// Validate checks the corrections table for entries that would be
// silently useless at run time. Structural problems are errors;
// suspicious but workable entries become Warnings.
func (c *CorrectionsConfig) Validate() error {
	seen := make(map[string]string, len(c.Corrections))
	for raw, fixed := range c.Corrections {
		if Tidy(fixed) == "" {
			return fmt.Errorf(
				"correction for %q has an empty replacement", raw)
		}
		key := strings.ToLower(Tidy(raw))
		if key == "" {
			return fmt.Errorf("correction table has an empty key")
		}
		if prev, ok := seen[key]; ok && prev != Tidy(fixed) {
			return fmt.Errorf(
				"correction for %q appears twice with different replacements",
				raw)
		}
		seen[key] = Tidy(fixed)

		if strings.EqualFold(Tidy(raw), Tidy(fixed)) {
			c.Warnings = append(c.Warnings, ValidationWarning{
				Entry:      raw,
				Message:    "correction replaces a name with itself",
				Suggestion: "remove the entry or fix the replacement",
			})
		}
	}

	blocked := make(map[string]struct{}, len(c.Block))
	for _, b := range c.Block {
		key := strings.ToLower(Tidy(b))
		if key == "" {
			return fmt.Errorf("block-list has an empty entry")
		}
		if _, ok := blocked[key]; ok {
			c.Warnings = append(c.Warnings, ValidationWarning{
				Entry:   b,
				Message: "block-list entry is duplicated",
			})
		}
		blocked[key] = struct{}{}

		if _, ok := seen[key]; ok {
			c.Warnings = append(c.Warnings, ValidationWarning{
				Entry:      b,
				Message:    "name is both corrected and blocked; the block wins",
				Suggestion: "remove it from one of the two lists",
			})
		}
	}

	return nil
}
