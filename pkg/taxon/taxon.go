// Package taxon defines the core entities of the taxon code resolver:
// ranks, registry statuses, normalized names, registry candidates and
// resolved records. This is a pure package with no I/O dependencies.
package taxon

import (
	"database/sql"
	"strings"
)

// Rank is the taxonomic resolution level at which a field observation
// was identified.
type Rank string

const (
	RankUnknown Rank = ""
	RankSpecies Rank = "species"
	RankGenus   Rank = "genus"
	RankFamily  Rank = "family"
)

// RankFromString converts a registry rank string to a Rank.
// Unknown values map to RankUnknown.
func RankFromString(s string) Rank {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "species", "subspecies":
		return RankSpecies
	case "genus":
		return RankGenus
	case "family":
		return RankFamily
	default:
		return RankUnknown
	}
}

// InferRank guesses the rank of a name that the registry could not
// resolve. Single words ending in the animal family suffix are treated
// as families, other single words as genera, multi-word names as
// species.
func InferRank(name string) Rank {
	words := strings.Fields(name)
	switch {
	case len(words) == 0:
		return RankUnknown
	case len(words) >= 2:
		return RankSpecies
	case strings.HasSuffix(strings.ToLower(words[0]), "idae"),
		strings.HasSuffix(strings.ToLower(words[0]), "aceae"):
		return RankFamily
	default:
		return RankGenus
	}
}

// Status is the nomenclatural status of a name per the registry.
type Status string

const (
	StatusAccepted   Status = "accepted"
	StatusSynonym    Status = "synonym"
	StatusUnresolved Status = "unresolved"
	StatusHybrid     Status = "hybrid"
)

// Name is a field-recorded taxon name after normalization.
type Name struct {
	// Verbatim is the name exactly as recorded in the field.
	Verbatim string

	// Clean is the normalized display form: whitespace collapsed,
	// informal markers stripped, known misspellings corrected.
	Clean string

	// Matchable is the Clean form with diacritics folded away,
	// used as the registry lookup key.
	Matchable string
}

// Candidate is one registry record returned for a normalized name.
type Candidate struct {
	// RegistryID is the numeric authoritative identifier of this record.
	RegistryID int64

	// Rank of the record.
	Rank Rank

	// Status of the record. Empty means the registry did not report one.
	Status Status

	// MatchedName is the registry name that matched the query.
	MatchedName string

	// AcceptedName is the currently valid name for this taxon.
	AcceptedName string

	// AcceptedRegistryID points at the accepted record. Equal to
	// RegistryID when the record itself is accepted.
	AcceptedRegistryID int64
}

// Match pairs a queried name with its registry candidates.
// Zero candidates means the name is unresolved.
type Match struct {
	Name       string
	Candidates []Candidate
}

// Resolved is the outcome of matching one normalized name against the
// registry. Candidate is nil for unresolved names.
type Resolved struct {
	Name      Name
	Frequency int
	Candidate *Candidate
}

// Resolution tracks the provenance of a taxon code.
type Resolution string

const (
	ResolutionMachine    Resolution = "machine"
	ResolutionOverride   Resolution = "override"
	ResolutionUnresolved Resolution = "unresolved"
)

// Record is one row of the output table.
type Record struct {
	Code               string
	TaxonName          string
	RegistryID         sql.NullInt64
	Rank               Rank
	Status             Status
	AcceptedName       string
	AcceptedRegistryID sql.NullInt64
	Resolution         Resolution
	Notes              string
}
