// Package iosqlite writes the resolved output table to a local SQLite
// file. The file is self-contained and useful for field laptops that
// have no PostgreSQL server.
package iosqlite

import (
	"context"
	"database/sql"

	"github.com/gnames/gncode/pkg/taxon"
	_ "modernc.org/sqlite"
)

const createTable = `
CREATE TABLE IF NOT EXISTS taxon_codes (
  taxon_code TEXT NOT NULL,
  taxon_name TEXT NOT NULL,
  registry_id INTEGER,
  rank TEXT,
  status TEXT,
  accepted_name TEXT,
  accepted_registry_id INTEGER,
  resolution TEXT,
  notes TEXT
);
CREATE INDEX IF NOT EXISTS taxon_codes_code ON taxon_codes (taxon_code);
`

const insertRow = `
INSERT INTO taxon_codes (
  taxon_code, taxon_name, registry_id, rank, status,
  accepted_name, accepted_registry_id, resolution, notes
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// WriteRecords creates or replaces the taxon_codes table in the SQLite
// file at path and fills it with records. Previous rows are removed so
// a rerun produces the same table.
func WriteRecords(
	ctx context.Context,
	path string,
	records []taxon.Record,
) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return OpenError(path, err)
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, createTable); err != nil {
		return WriteError(path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return WriteError(path, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM taxon_codes"); err != nil {
		return WriteError(path, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertRow)
	if err != nil {
		return WriteError(path, err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.ExecContext(ctx,
			r.Code, r.TaxonName, r.RegistryID, string(r.Rank),
			string(r.Status), r.AcceptedName, r.AcceptedRegistryID,
			string(r.Resolution), r.Notes,
		)
		if err != nil {
			return WriteError(path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return WriteError(path, err)
	}
	return nil
}
