// Package codes computes short mnemonic taxon codes used for compact
// field data entry. Codes derive deterministically from the accepted
// name and rank; the truncation scheme is lossy, so the assigner
// extends truncations until every code in a batch is unique. A manually
// curated override table always takes precedence.
package codes

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/gnames/gncode/pkg/taxon"
)

// maxExtend caps truncation growth; no realistic genus or epithet
// needs more letters than this to disambiguate.
const maxExtend = 12

// shapeRe describes valid code shapes: species-style XX.YYYY,
// hybrid-style XX.AAxBB, and genus/family codes ending in .SP/.SPP.
var shapeRe = regexp.MustCompile(
	`^[A-Z]{2,}\.([A-Z]{2,}|[A-Z]+x[A-Z]+|SP|SPP)$`)

// ValidShape reports whether a code has one of the documented shapes.
func ValidShape(code string) bool {
	return shapeRe.MatchString(code)
}

// Entry is one accepted taxon to receive a code.
type Entry struct {
	// Name is the canonical accepted name without authorship.
	Name string

	// Rank of the taxon. RankUnknown is inferred from the name.
	Rank taxon.Rank

	// Frequency is how often the taxon occurs in the input corpus;
	// the most frequent member of a colliding set keeps the short code.
	Frequency int
}

// Assigner computes unique codes for a batch of accepted taxa.
type Assigner struct {
	overrides map[string]string
}

// NewAssigner creates an Assigner. Overrides map full accepted names
// to hand-picked codes and win over any machine derivation.
func NewAssigner(overrides map[string]string) *Assigner {
	ovr := make(map[string]string, len(overrides))
	for name, code := range overrides {
		ovr[name] = code
	}
	return &Assigner{overrides: ovr}
}

// Base returns the unextended code for a name, before any collision
// handling.
func Base(name string, rank taxon.Rank) string {
	return split(name, rank).code(0, 0)
}

// IsHybrid reports whether a name joins two species epithets with a
// literal "x" (or the multiplication sign).
func IsHybrid(name string) bool {
	return split(name, taxon.RankSpecies).kind == kindHybrid
}

// Assign computes one unique code per entry and returns the mapping
// accepted-name → code. Entries with the same name are merged, their
// frequencies summed. A collision that survives truncation extension
// and overrides is a data-quality defect and returns an error.
func (a *Assigner) Assign(entries []Entry) (map[string]string, error) {
	merged := mergeByName(entries)

	res := make(map[string]string, len(merged))
	owner := make(map[string]string, len(merged))

	// Overrides reserve their codes first; they always win.
	var machine []Entry
	for _, e := range merged {
		code, ok := a.overrides[e.Name]
		if !ok {
			machine = append(machine, e)
			continue
		}
		if prev, clash := owner[code]; clash && prev != e.Name {
			return nil, fmt.Errorf(
				"override code %s is claimed by both %q and %q",
				code, prev, e.Name)
		}
		res[e.Name] = code
		owner[code] = e.Name
	}

	groups := make(map[string][]Entry)
	for _, e := range machine {
		base := Base(e.Name, e.Rank)
		groups[base] = append(groups[base], e)
	}

	bases := make([]string, 0, len(groups))
	for b := range groups {
		bases = append(bases, b)
	}
	sort.Strings(bases)

	for _, base := range bases {
		group := groups[base]
		// The keeper of the short code is the most frequent taxon,
		// then the first alphabetically.
		sort.Slice(group, func(i, j int) bool {
			if group[i].Frequency != group[j].Frequency {
				return group[i].Frequency > group[j].Frequency
			}
			return group[i].Name < group[j].Name
		})

		for _, e := range group {
			code := base
			if _, taken := owner[code]; taken {
				var ok bool
				code, ok = extend(split(e.Name, e.Rank), owner)
				if !ok {
					return nil, fmt.Errorf(
						"cannot derive a unique code for %q: "+
							"%s collides with %q even after extension",
						e.Name, base, owner[base])
				}
			}
			res[e.Name] = code
			owner[code] = e.Name
		}
	}

	return res, nil
}

// extend grows the truncation lengths until the code no longer
// collides with an already assigned one. Genus letters grow before
// species letters, so "Aplysia tristis" colliding on AP.TRIS becomes
// APL.TRIS.
func extend(p parts, owner map[string]string) (string, bool) {
	for t := 1; t <= maxExtend; t++ {
		for gx := t; gx >= 0; gx-- {
			sx := t - gx
			code := p.code(gx, sx)
			if _, taken := owner[code]; !taken {
				return code, true
			}
		}
	}
	return "", false
}

func mergeByName(entries []Entry) []Entry {
	byName := make(map[string]int)
	var res []Entry
	for _, e := range entries {
		if i, ok := byName[e.Name]; ok {
			res[i].Frequency += e.Frequency
			continue
		}
		byName[e.Name] = len(res)
		res = append(res, e)
	}
	return res
}

type kind int

const (
	kindSpecies kind = iota
	kindGenus
	kindFamily
	kindHybrid
)

// parts is a name broken into the words the truncation scheme uses.
type parts struct {
	kind     kind
	genus    string
	species  string
	ep1, ep2 string
}

func split(name string, rank taxon.Rank) parts {
	words := strings.Fields(name)
	if rank == taxon.RankUnknown {
		rank = taxon.InferRank(name)
	}

	// "Genus epithet1 x epithet2" marks a hybrid between two species.
	if len(words) == 4 && (words[2] == "x" || words[2] == "×") {
		return parts{
			kind:  kindHybrid,
			genus: words[0],
			ep1:   words[1],
			ep2:   words[3],
		}
	}

	switch {
	case rank == taxon.RankFamily && len(words) > 0:
		return parts{kind: kindFamily, genus: words[0]}
	case rank == taxon.RankGenus && len(words) > 0:
		return parts{kind: kindGenus, genus: words[0]}
	case len(words) >= 2:
		// The terminal epithet identifies subspecific names too.
		return parts{
			kind:    kindSpecies,
			genus:   words[0],
			species: words[len(words)-1],
		}
	case len(words) == 1:
		return parts{kind: kindGenus, genus: words[0]}
	default:
		return parts{}
	}
}

// code builds the code at the given extension levels. Extensions are
// clamped to the word lengths, so a fully spelled out word cannot grow
// further.
func (p parts) code(gx, sx int) string {
	switch p.kind {
	case kindHybrid:
		return prefix(p.genus, 2+gx) + "." +
			prefix(p.ep1, 2+sx) + "x" + prefix(p.ep2, 2+sx)
	case kindGenus:
		return prefix(p.genus, 4+gx) + ".SP"
	case kindFamily:
		return prefix(p.genus, 4+gx) + ".SPP"
	default:
		return prefix(p.genus, 2+gx) + "." + prefix(p.species, 4+sx)
	}
}

func prefix(word string, n int) string {
	r := []rune(word)
	if n > len(r) {
		n = len(r)
	}
	return strings.ToUpper(string(r[:n]))
}
