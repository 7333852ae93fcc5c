package codes

import (
	"fmt"
	"strings"
)

// OverridesConfig is the schema of overrides.yaml, the manually
// curated patch table that pins codes to full accepted names.
type OverridesConfig struct {
	// Overrides maps full accepted names to hand-picked codes.
	Overrides map[string]string `yaml:"overrides"`

	// Warnings holds non-fatal validation findings (not serialized).
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Entry      string
	Message    string
	Suggestion string
}

// Validate checks the override table. Two names claiming the same
// code is a hard error, the same defect Assign would report at run
// time. A code with an unusual shape is only a warning since curators
// may pin non-standard codes deliberately.
func (o *OverridesConfig) Validate() error {
	owner := make(map[string]string, len(o.Overrides))
	for name, code := range o.Overrides {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("override table has an empty name key")
		}
		code = strings.TrimSpace(code)
		if code == "" {
			return fmt.Errorf("override for %q has an empty code", name)
		}
		if prev, ok := owner[code]; ok && prev != name {
			return fmt.Errorf(
				"override code %s is claimed by both %q and %q",
				code, prev, name)
		}
		owner[code] = name

		if !ValidShape(code) {
			o.Warnings = append(o.Warnings, ValidationWarning{
				Entry:      name,
				Message:    fmt.Sprintf("code %s has a non-standard shape", code),
				Suggestion: "expected forms like AC.ACHI, ACAN.SP, POMA.SPP",
			})
		}
	}
	return nil
}
