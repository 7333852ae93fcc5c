// Package schema provides warehouse models for resolved taxon codes.
// Downstream consumers join on taxon_code or accepted_registry_id.
package schema

import (
	"database/sql"
	"time"
)

// ResolutionRun records one execution of the resolver, so downstream
// consumers can tell warehouse loads apart.
type ResolutionRun struct {
	// ID is a random UUID assigned to the run.
	ID string `gorm:"type:uuid;primaryKey;autoIncrement:false"`

	// StartedAt is when the run began.
	StartedAt time.Time `gorm:"type:timestamp without time zone"`

	// InputRecords is the number of raw rows read.
	InputRecords int

	// ResolvedRecords is the number of names matched to the registry.
	ResolvedRecords int

	// UnresolvedRecords is the number of names kept with null ids for
	// manual review.
	UnresolvedRecords int

	// OverriddenRecords is the number of codes pinned by the manual
	// override table.
	OverriddenRecords int
}

// TaxonCode is one row of the output table.
type TaxonCode struct {
	// ID is a UUID v5 generated from the run id and the cleaned
	// name-string using DNS:"globalnames.org". Scoping the id to the
	// run keeps rows from successive loads distinct.
	ID string `gorm:"type:uuid;primaryKey;autoIncrement:false"`

	// RunID references the resolution run that produced this row.
	RunID string `gorm:"type:uuid;index:run"`

	// Code is the short mnemonic identifier, unique within a run.
	Code string `gorm:"type:varchar(32);not null;index:code"`

	// TaxonName is the normalized field-recorded name.
	TaxonName string `gorm:"type:varchar(255);not null"`

	// RegistryID is the numeric authoritative identifier; null when
	// the registry had no match.
	RegistryID sql.NullInt64

	// Rank: species, genus or family.
	Rank string `gorm:"type:varchar(16)"`

	// Status: accepted, synonym, unresolved or hybrid.
	Status string `gorm:"type:varchar(16)"`

	// AcceptedName is the currently valid name per the registry.
	AcceptedName string `gorm:"type:varchar(255)"`

	// AcceptedRegistryID points at the accepted record.
	AcceptedRegistryID sql.NullInt64

	// Resolution tracks provenance: machine, override or unresolved.
	Resolution string `gorm:"type:varchar(16)"`

	// Notes holds curation remarks (ambiguous matches etc.).
	Notes string `gorm:"type:text"`
}
