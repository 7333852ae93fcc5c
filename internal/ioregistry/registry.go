// Package ioregistry implements the Verifier contract against a
// GlobalNames-style name verification API. This is an impure I/O
// package: it talks HTTP and keeps a response snapshot on disk so
// re-runs are idempotent and work offline.
package ioregistry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gnames/gncode/pkg/config"
	"github.com/gnames/gncode/pkg/gncode"
	"github.com/gnames/gncode/pkg/taxon"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

var _ gncode.Verifier = (*Client)(nil)

// Client implements gncode.Verifier over HTTP.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	mem        *cache.Cache
	snapshot   string
}

// New creates a registry client. When the config enables caching, a
// gob snapshot of previous responses is loaded from the cache
// directory and consulted before the network.
func New(cfg *config.Config) *Client {
	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		mem: cache.New(cache.NoExpiration, 0),
	}

	if !cfg.Resolve.NoCache && cfg.HomeDir != "" {
		c.snapshot = config.RegistryCacheFilePath(cfg.HomeDir)
		c.loadSnapshot()
	}

	return c
}

// verificationRequest is the wire format of a batch lookup.
type verificationRequest struct {
	NameStrings []string `json:"name_strings"`
}

// verificationResponse is the wire format of the registry's answer.
type verificationResponse struct {
	Names []nameResult `json:"names"`
}

type nameResult struct {
	Name       string       `json:"name"`
	Candidates []candidates `json:"candidates"`
}

type candidates struct {
	RegistryID         int64  `json:"registry_id"`
	Rank               string `json:"rank"`
	Status             string `json:"status"`
	MatchedName        string `json:"matched_name"`
	AcceptedName       string `json:"accepted_name"`
	AcceptedRegistryID int64  `json:"accepted_registry_id"`
}

// Verify resolves names against the registry. Names are batched to
// respect the request-size limit and batches run concurrently; results
// come back in input order. A name without any registry record is
// returned with zero candidates, not as an error.
func (c *Client) Verify(
	ctx context.Context,
	names []string,
) ([]taxon.Match, error) {
	res := make([]taxon.Match, len(names))

	// Serve what we can from cache, collect the rest.
	var missing []string
	var missingIdx []int
	for i, name := range names {
		if m, ok := c.mem.Get(name); ok {
			res[i] = m.(taxon.Match)
			continue
		}
		missing = append(missing, name)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		slog.Debug("All names served from cache", "names", len(names))
		return res, nil
	}
	slog.Info("Querying registry",
		"names", len(missing), "cached", len(names)-len(missing))

	batchSize := c.cfg.Registry.BatchSize
	if batchSize < 1 {
		batchSize = 100
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.cfg.JobsNumber))

	for start := 0; start < len(missing); start += batchSize {
		end := min(start+batchSize, len(missing))
		g.Go(func() error {
			matches, err := c.verifyBatch(gctx, missing[start:end])
			if err != nil {
				return err
			}
			// Batches are independent; merging by input position keeps
			// the output deterministic.
			for i, m := range matches {
				res[missingIdx[start+i]] = m
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, idx := range missingIdx {
		c.mem.Set(names[idx], res[idx], cache.NoExpiration)
	}
	c.saveSnapshot()

	return res, nil
}

// verifyBatch issues one POST with up to BatchSize names.
func (c *Client) verifyBatch(
	ctx context.Context,
	names []string,
) ([]taxon.Match, error) {
	payload, err := json.Marshal(verificationRequest{NameStrings: names})
	if err != nil {
		return nil, RequestError(err)
	}

	url := c.cfg.Registry.URL + "/verifications"
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, RequestError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, RequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, StatusError(url, resp.StatusCode, string(body))
	}

	var vr verificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, ResponseError(err)
	}
	if len(vr.Names) != len(names) {
		return nil, ResponseError(fmt.Errorf(
			"sent %d names, got %d results", len(names), len(vr.Names)))
	}

	res := make([]taxon.Match, len(vr.Names))
	for i, n := range vr.Names {
		m := taxon.Match{Name: names[i]}
		for _, cand := range n.Candidates {
			m.Candidates = append(m.Candidates, taxon.Candidate{
				RegistryID:         cand.RegistryID,
				Rank:               taxon.RankFromString(cand.Rank),
				Status:             taxon.Status(cand.Status),
				MatchedName:        cand.MatchedName,
				AcceptedName:       cand.AcceptedName,
				AcceptedRegistryID: cand.AcceptedRegistryID,
			})
		}
		res[i] = m
	}

	return res, nil
}
