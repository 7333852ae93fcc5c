// Package ioresolve runs the resolution pipeline: read raw field
// names, normalize them, match against the registry, pick the best
// candidate per name, assign mnemonic codes and write the output
// artifacts.
package ioresolve

import (
	"context"
	"database/sql"
	"log/slog"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gncode/internal/iocsv"
	"github.com/gnames/gncode/internal/iodb"
	"github.com/gnames/gncode/internal/iosqlite"
	"github.com/gnames/gncode/pkg/codes"
	"github.com/gnames/gncode/pkg/config"
	"github.com/gnames/gncode/pkg/gncode"
	"github.com/gnames/gncode/pkg/normalize"
	"github.com/gnames/gncode/pkg/parserpool"
	"github.com/gnames/gncode/pkg/schema"
	"github.com/gnames/gncode/pkg/taxon"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

type resolver struct {
	cfg      *config.Config
	verifier gncode.Verifier
	operator gncode.Operator
}

// New creates a Resolver. The operator may be nil when the warehouse
// load is not requested.
func New(
	cfg *config.Config,
	verifier gncode.Verifier,
	operator gncode.Operator,
) gncode.Resolver {
	return &resolver{cfg: cfg, verifier: verifier, operator: operator}
}

// entry is one normalized input name moving through the pipeline.
type entry struct {
	name      taxon.Name
	frequency int
	candidate *taxon.Candidate
	ambiguous bool

	// accepted is the canonical accepted name without authorship,
	// the string codes derive from. For unresolved names it is the
	// cleaned input name.
	accepted string
	rank     taxon.Rank
	status   taxon.Status
}

func (r *resolver) Resolve(ctx context.Context) error {
	start := time.Now()

	corr, err := LoadCorrections(r.cfg.HomeDir)
	if err != nil {
		return err
	}
	ovr, err := LoadOverrides(r.cfg.HomeDir)
	if err != nil {
		return err
	}

	raw, err := iocsv.ReadNames(r.cfg.Resolve.InputPath)
	if err != nil {
		return err
	}
	slog.Info("Read input names",
		"file", r.cfg.Resolve.InputPath,
		"records", humanize.Comma(int64(len(raw))),
	)

	entries := r.normalizeNames(raw, corr)
	slog.Info("Normalized names",
		"unique", humanize.Comma(int64(len(entries))))

	if err = r.matchNames(ctx, entries); err != nil {
		return err
	}

	r.acceptNames(entries)

	assigned, err := r.assignCodes(entries, ovr)
	if err != nil {
		return err
	}

	records := buildRecords(entries, assigned, ovr.Overrides)

	if err = r.writeOutputs(ctx, len(raw), records); err != nil {
		return err
	}

	resolved, unresolved, overridden := tally(records)
	slog.Info("Resolution complete",
		"input", humanize.Comma(int64(len(raw))),
		"taxa", humanize.Comma(int64(len(records))),
		"resolved", humanize.Comma(int64(resolved)),
		"unresolved", humanize.Comma(int64(unresolved)),
		"overridden", humanize.Comma(int64(overridden)),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	gn.Info(`Resolution complete
Taxa: %d, resolved: %d, unresolved: %d, overridden: %d.
Elapsed time: <em>%s</em>
`,
		len(records), resolved, unresolved, overridden,
		gnfmt.TimeString(time.Since(start).Seconds()),
	)

	return nil
}

// normalizeNames cleans the raw names, drops blocked ones and counts
// how often each distinct cleaned name occurs. First-seen order is
// preserved.
func (r *resolver) normalizeNames(
	raw []string,
	corr *normalize.CorrectionsConfig,
) []*entry {
	nrm := normalize.New(corr.Corrections, corr.Block)

	var res []*entry
	index := make(map[string]*entry)
	for _, rawName := range raw {
		name, ok := nrm.Normalize(rawName)
		if !ok {
			continue
		}
		if e, seen := index[name.Clean]; seen {
			e.frequency++
			continue
		}
		e := &entry{name: name, frequency: 1}
		index[name.Clean] = e
		res = append(res, e)
	}
	return res
}

// matchNames queries the registry and attaches the best candidate to
// each entry. Names without candidates stay unresolved.
func (r *resolver) matchNames(ctx context.Context, entries []*entry) error {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name.Matchable
	}

	matches, err := r.verifier.Verify(ctx, names)
	if err != nil {
		return err
	}

	for i, m := range matches {
		e := entries[i]
		best, ok := taxon.Best(m.Candidates)
		if !ok {
			continue
		}
		if taxon.Ambiguous(m.Candidates) {
			e.ambiguous = true
			slog.Warn("Ambiguous registry match",
				"name", e.name.Clean,
				"candidates", len(m.Candidates),
				"picked", best.AcceptedName,
			)
		}
		cand := best
		e.candidate = &cand
	}
	return nil
}

// acceptNames parses accepted names to their canonical form (no
// authorship) and settles rank and status per entry.
func (r *resolver) acceptNames(entries []*entry) {
	pool := parserpool.New(
		parserpool.CodeFromString(r.cfg.Codes.NomenclaturalCode),
		r.cfg.JobsNumber,
	)
	defer pool.Close()

	bar := newProgressBar(len(entries), "accepted names: ")
	defer bar.Finish()

	for _, e := range entries {
		bar.Increment()

		if e.candidate == nil {
			e.accepted = e.name.Clean
			e.rank = taxon.InferRank(e.name.Clean)
			e.status = taxon.StatusUnresolved
			continue
		}

		e.accepted = canonicalOf(pool, e.candidate.AcceptedName)
		e.rank = e.candidate.Rank
		if e.rank == taxon.RankUnknown {
			e.rank = taxon.InferRank(e.accepted)
		}

		e.status = e.candidate.Status
		if e.status == "" {
			if e.candidate.RegistryID == e.candidate.AcceptedRegistryID {
				e.status = taxon.StatusAccepted
			} else {
				e.status = taxon.StatusSynonym
			}
		}
		if codes.IsHybrid(e.accepted) {
			e.status = taxon.StatusHybrid
		}
	}
}

// canonicalOf strips authorship and annotations. Unparseable strings
// pass through tidied, so damaged registry data still yields a code.
func canonicalOf(pool parserpool.Pool, name string) string {
	p := pool.Parse(name)
	if p.Parsed && p.Canonical != nil && p.Canonical.Simple != "" {
		return p.Canonical.Simple
	}
	return normalize.Tidy(name)
}

// assignCodes derives one unique code per accepted taxon. Frequencies
// of input names sharing an accepted taxon are summed, so the keeper
// of a colliding short code is the taxon recorded most often.
func (r *resolver) assignCodes(
	entries []*entry,
	ovr *codes.OverridesConfig,
) (map[string]string, error) {
	var list []codes.Entry
	for _, e := range entries {
		list = append(list, codes.Entry{
			Name:      e.accepted,
			Rank:      e.rank,
			Frequency: e.frequency,
		})
	}

	assigner := codes.NewAssigner(ovr.Overrides)
	assigned, err := assigner.Assign(list)
	if err != nil {
		return nil, CodeAssignError(err)
	}
	return assigned, nil
}

// buildRecords produces one output row per distinct normalized input
// name. Rows are sorted by code, then by name, so re-runs emit
// byte-identical tables.
func buildRecords(
	entries []*entry,
	assigned map[string]string,
	overrides map[string]string,
) []taxon.Record {
	res := make([]taxon.Record, 0, len(entries))
	for _, e := range entries {
		rec := taxon.Record{
			Code:       assigned[e.accepted],
			TaxonName:  e.name.Clean,
			Rank:       e.rank,
			Status:     e.status,
			Resolution: taxon.ResolutionMachine,
		}
		if _, ok := overrides[e.accepted]; ok {
			rec.Resolution = taxon.ResolutionOverride
		}
		if e.candidate == nil {
			rec.Resolution = taxon.ResolutionUnresolved
			rec.Notes = "no registry match"
		} else {
			rec.AcceptedName = e.accepted
			rec.RegistryID = sql.NullInt64{
				Int64: e.candidate.RegistryID, Valid: true}
			rec.AcceptedRegistryID = sql.NullInt64{
				Int64: e.candidate.AcceptedRegistryID, Valid: true}
			if e.ambiguous {
				rec.Notes = "ambiguous registry match"
			}
		}
		res = append(res, rec)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Code != res[j].Code {
			return res[i].Code < res[j].Code
		}
		return res[i].TaxonName < res[j].TaxonName
	})
	return res
}

// writeOutputs writes the CSV table and, when requested, the SQLite
// file and the PostgreSQL warehouse tables.
func (r *resolver) writeOutputs(
	ctx context.Context,
	inputRecords int,
	records []taxon.Record,
) error {
	if err := iocsv.WriteRecords(r.cfg.Resolve.OutputPath, records); err != nil {
		return err
	}
	slog.Info("Wrote output table",
		"file", r.cfg.Resolve.OutputPath,
		"rows", humanize.Comma(int64(len(records))),
	)

	if path := r.cfg.Resolve.SQLitePath; path != "" {
		if err := iosqlite.WriteRecords(ctx, path, records); err != nil {
			return err
		}
		slog.Info("Wrote SQLite file", "file", path)
	}

	if r.cfg.Resolve.ToDB {
		if err := r.loadWarehouse(ctx, inputRecords, records); err != nil {
			return err
		}
	}
	return nil
}

// loadWarehouse inserts the run metadata and the output rows into
// PostgreSQL.
func (r *resolver) loadWarehouse(
	ctx context.Context,
	inputRecords int,
	records []taxon.Record,
) error {
	if r.operator == nil || r.operator.Pool() == nil {
		return iodb.NotConnectedError()
	}
	pool := r.operator.Pool()

	resolved, unresolved, overridden := tally(records)
	run := &schema.ResolutionRun{
		ID:                uuid.New().String(),
		StartedAt:         time.Now().UTC(),
		InputRecords:      inputRecords,
		ResolvedRecords:   resolved,
		UnresolvedRecords: unresolved,
		OverriddenRecords: overridden,
	}
	if err := iodb.InsertRun(ctx, pool, run); err != nil {
		return err
	}

	return iodb.InsertCodes(ctx, pool, warehouseRows(run.ID, records))
}

// warehouseRows converts output records into warehouse rows. Row ids
// are scoped to the run, so repeated loads of the same input append
// new rows instead of colliding on the primary key.
func warehouseRows(runID string, records []taxon.Record) []schema.TaxonCode {
	rows := make([]schema.TaxonCode, len(records))
	for i, rec := range records {
		rows[i] = schema.TaxonCode{
			ID:                 gnuuid.New(runID + "|" + rec.TaxonName).String(),
			RunID:              runID,
			Code:               rec.Code,
			TaxonName:          rec.TaxonName,
			RegistryID:         rec.RegistryID,
			Rank:               string(rec.Rank),
			Status:             string(rec.Status),
			AcceptedName:       rec.AcceptedName,
			AcceptedRegistryID: rec.AcceptedRegistryID,
			Resolution:         string(rec.Resolution),
			Notes:              rec.Notes,
		}
	}
	return rows
}

func tally(records []taxon.Record) (resolved, unresolved, overridden int) {
	for _, rec := range records {
		switch rec.Resolution {
		case taxon.ResolutionUnresolved:
			unresolved++
		case taxon.ResolutionOverride:
			overridden++
			resolved++
		default:
			resolved++
		}
	}
	return resolved, unresolved, overridden
}
