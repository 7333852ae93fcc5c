// Package iocsv reads raw field species lists and writes the resolved
// output table. This is an impure I/O package.
package iocsv

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gncode/pkg/taxon"
)

// Header is the column layout of the output table. Downstream
// consumers join on taxon_code or accepted_registry_id.
var Header = []string{
	"taxon_code",
	"taxon_name",
	"registry_id",
	"rank",
	"status",
	"accepted_name",
	"accepted_registry_id",
	"resolution",
	"notes",
}

// headerNames are the column labels recognized as the taxon name
// column. Field sheets from different expeditions label it
// inconsistently.
var headerNames = map[string]struct{}{
	"taxon":           {},
	"taxon_name":      {},
	"name":            {},
	"species":         {},
	"scientific_name": {},
	"scientific name": {},
}

// ReadNames reads raw taxon names from a CSV file, one row per
// observation. A recognized name column from the header is used when
// the file has one; otherwise the first column is taken. Duplicates
// are kept: the resolver uses row counts as taxon frequency.
func ReadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field metadata columns vary by expedition

	rows, err := r.ReadAll()
	if err != nil {
		return nil, ParseError(path, err)
	}
	if len(rows) == 0 {
		return nil, EmptyError(path)
	}

	col := 0
	start := 0
	for i, h := range rows[0] {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, ok := headerNames[h]; ok {
			col = i
			start = 1
			break
		}
	}

	var res []string
	for _, row := range rows[start:] {
		if col >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[col])
		if name == "" {
			continue
		}
		res = append(res, name)
	}

	if len(res) == 0 {
		return nil, EmptyError(path)
	}

	return res, nil
}

// WriteRecords writes the resolved table to a CSV file. Rows are
// written in the order given; the resolver sorts them by code so that
// re-runs produce byte-identical files.
func WriteRecords(path string, recs []taxon.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return OpenError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return WriteError(path, err)
	}
	for _, rec := range recs {
		if err := w.Write(Row(rec)); err != nil {
			return WriteError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return WriteError(path, err)
	}

	return nil
}

// Row converts a record to its CSV representation. Null registry ids
// become empty fields.
func Row(rec taxon.Record) []string {
	return []string{
		rec.Code,
		rec.TaxonName,
		nullInt(rec.RegistryID.Int64, rec.RegistryID.Valid),
		string(rec.Rank),
		string(rec.Status),
		rec.AcceptedName,
		nullInt(rec.AcceptedRegistryID.Int64, rec.AcceptedRegistryID.Valid),
		string(rec.Resolution),
		rec.Notes,
	}
}

func nullInt(i int64, valid bool) string {
	if !valid {
		return ""
	}
	return strconv.FormatInt(i, 10)
}
