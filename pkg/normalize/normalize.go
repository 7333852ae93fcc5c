// Package normalize maps raw field-recorded taxon names to canonical
// comparison strings. The correction table and block-list come from a
// user-curated corrections.yaml; the functions here are pure.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gnames/gncode/pkg/taxon"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markerRe strips trailing informal species markers such as "sp",
// "sp.", "spp." from field shorthand like "Gymnothorax sp.".
var markerRe = regexp.MustCompile(`(?i)\s+spp?\.?$`)

// foldDiacritics removes combining marks so that e.g. "Entomacrodus
// niuafoʻouensis" and its plain-ASCII spelling match the same registry
// record.
var foldDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalizer cleans raw taxon names using a curated correction table
// and drops names on the block-list.
type Normalizer struct {
	corrections map[string]string
	blocked     map[string]struct{}
}

// New creates a Normalizer from a correction table (raw → corrected
// string, exact substitutions) and a block-list of known-invalid names.
// Both are matched case-insensitively after whitespace cleanup.
func New(corrections map[string]string, blocklist []string) *Normalizer {
	n := &Normalizer{
		corrections: make(map[string]string, len(corrections)),
		blocked:     make(map[string]struct{}, len(blocklist)),
	}
	for raw, fixed := range corrections {
		n.corrections[strings.ToLower(Tidy(raw))] = Tidy(fixed)
	}
	for _, b := range blocklist {
		n.blocked[strings.ToLower(Tidy(b))] = struct{}{}
	}
	return n
}

// Normalize maps a raw name to its normalized form. The second return
// value is false when the name is on the block-list or empty after
// cleanup; such entries leave the pipeline entirely.
func (n *Normalizer) Normalize(raw string) (taxon.Name, bool) {
	clean := Tidy(raw)
	if clean == "" {
		return taxon.Name{}, false
	}
	if _, ok := n.blocked[strings.ToLower(clean)]; ok {
		return taxon.Name{}, false
	}

	clean = markerRe.ReplaceAllString(clean, "")
	clean = capitalize(clean)

	if fixed, ok := n.corrections[strings.ToLower(clean)]; ok {
		clean = fixed
	}

	// Block-list applies to the corrected form too.
	if _, ok := n.blocked[strings.ToLower(clean)]; ok {
		return taxon.Name{}, false
	}

	matchable, _, err := transform.String(foldDiacritics, clean)
	if err != nil {
		matchable = clean
	}

	return taxon.Name{
		Verbatim:  strings.TrimSpace(raw),
		Clean:     clean,
		Matchable: matchable,
	}, true
}

// Tidy trims the string and collapses internal whitespace runs to a
// single space.
func Tidy(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// capitalize upper-cases the first letter of the genus word and
// lower-cases everything after it, the convention scientific names
// follow. The hybrid sign "X" is an epithet-position word, so it is
// lower-cased too.
func capitalize(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if i == 0 {
			r := []rune(w)
			words[i] = strings.ToUpper(string(r[0])) +
				strings.ToLower(string(r[1:]))
			continue
		}
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, " ")
}
