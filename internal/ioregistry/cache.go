package ioregistry

import (
	"log/slog"
	"os"

	"github.com/gnames/gncode/pkg/taxon"
	"github.com/gnames/gnfmt"
	gocache "github.com/patrickmn/go-cache"
)

// loadSnapshot primes the in-memory cache from the gob snapshot left
// by previous runs. A missing or unreadable snapshot is not an error;
// the registry is simply asked again.
func (c *Client) loadSnapshot() {
	data, err := os.ReadFile(c.snapshot)
	if err != nil {
		return
	}

	enc := gnfmt.GNgob{}
	var stored map[string]taxon.Match
	if err := enc.Decode(data, &stored); err != nil {
		slog.Warn("Ignoring unreadable registry snapshot",
			"path", c.snapshot, "error", err)
		return
	}

	for name, m := range stored {
		c.mem.Set(name, m, gocache.NoExpiration)
	}
	slog.Debug("Loaded registry snapshot",
		"path", c.snapshot, "names", len(stored))
}

// saveSnapshot persists the in-memory cache so the next run can skip
// the network. Failures are logged, never fatal: the snapshot is an
// optimization, not state.
func (c *Client) saveSnapshot() {
	if c.snapshot == "" {
		return
	}

	items := c.mem.Items()
	stored := make(map[string]taxon.Match, len(items))
	for name, item := range items {
		stored[name] = item.Object.(taxon.Match)
	}

	enc := gnfmt.GNgob{}
	data, err := enc.Encode(stored)
	if err != nil {
		slog.Warn("Cannot encode registry snapshot", "error", err)
		return
	}

	if err := os.WriteFile(c.snapshot, data, 0644); err != nil {
		slog.Warn("Cannot write registry snapshot",
			"path", c.snapshot, "error", err)
	}
}
