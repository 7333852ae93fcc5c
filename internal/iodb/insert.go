package iodb

import (
	"context"
	"log/slog"

	"github.com/gnames/gncode/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsertRun records one resolver execution in the resolution_runs
// table.
func InsertRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	run *schema.ResolutionRun,
) error {
	q := `
INSERT INTO resolution_runs
	(id, started_at, input_records, resolved_records,
	 unresolved_records, overridden_records)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := pool.Exec(ctx, q,
		run.ID, run.StartedAt, run.InputRecords,
		run.ResolvedRecords, run.UnresolvedRecords,
		run.OverriddenRecords,
	)
	if err != nil {
		return InsertError("resolution_runs", err)
	}

	return nil
}

// InsertCodes bulk-loads the resolved table with CopyFrom.
func InsertCodes(
	ctx context.Context,
	pool *pgxpool.Pool,
	codes []schema.TaxonCode,
) error {
	rows := make([][]any, len(codes))
	for i, c := range codes {
		rows[i] = []any{
			c.ID, c.RunID, c.Code, c.TaxonName,
			c.RegistryID, c.Rank, c.Status,
			c.AcceptedName, c.AcceptedRegistryID,
			c.Resolution, c.Notes,
		}
	}

	n, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{"taxon_codes"},
		[]string{
			"id", "run_id", "code", "taxon_name",
			"registry_id", "rank", "status",
			"accepted_name", "accepted_registry_id",
			"resolution", "notes",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return InsertError("taxon_codes", err)
	}

	slog.Info("Loaded taxon codes into warehouse", "rows", n)
	return nil
}
