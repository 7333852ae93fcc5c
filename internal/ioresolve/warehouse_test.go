package ioresolve

import (
	"testing"

	"github.com/gnames/gncode/pkg/taxon"
	"github.com/stretchr/testify/assert"
)

func TestWarehouseRowsDistinctAcrossRuns(t *testing.T) {
	records := []taxon.Record{
		{Code: "AC.ACHI", TaxonName: "Acanthurus achilles"},
		{Code: "ZE.FLAV", TaxonName: "Zebrasoma flavescens"},
	}

	first := warehouseRows("6d8a2c1e-0e6f-5f0a-9f25-6a4c8c1d0001", records)
	second := warehouseRows("6d8a2c1e-0e6f-5f0a-9f25-6a4c8c1d0002", records)

	seen := make(map[string]bool)
	for _, row := range append(first, second...) {
		assert.False(t, seen[row.ID], "duplicate row id %s", row.ID)
		seen[row.ID] = true
	}

	// the same run and input always produce the same ids
	again := warehouseRows("6d8a2c1e-0e6f-5f0a-9f25-6a4c8c1d0001", records)
	for i := range first {
		assert.Equal(t, first[i].ID, again[i].ID)
		assert.Equal(t, first[i].RunID, again[i].RunID)
	}
}
