package ioregistry

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"sync/atomic"
	"testing"

	"github.com/gnames/gncode/pkg/config"
	"github.com/gnames/gncode/pkg/taxon"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, batchSize int) *Client {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRegistryURL("http://registry.test/api/v1"),
		config.OptRegistryBatchSize(batchSize),
		config.OptJobsNumber(2),
		config.OptResolveNoCache(true),
	})
	c := New(cfg)
	httpmock.ActivateNonDefault(c.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

// echoResponder answers every queried name with one accepted
// candidate derived from the name itself.
func echoResponder(calls *atomic.Int64) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		calls.Add(1)
		var vr verificationRequest
		if err := json.NewDecoder(req.Body).Decode(&vr); err != nil {
			return httpmock.NewStringResponse(400, err.Error()), nil
		}
		resp := verificationResponse{}
		for i, n := range vr.NameStrings {
			resp.Names = append(resp.Names, nameResult{
				Name: n,
				Candidates: []candidates{{
					RegistryID:         int64(i + 1),
					Rank:               "species",
					Status:             "accepted",
					MatchedName:        n,
					AcceptedName:       n,
					AcceptedRegistryID: int64(i + 1),
				}},
			})
		}
		return httpmock.NewJsonResponse(200, resp)
	}
}

func TestVerifyBatching(t *testing.T) {
	c := testClient(t, 2)
	var calls atomic.Int64
	httpmock.RegisterResponder(
		"POST", "http://registry.test/api/v1/verifications",
		echoResponder(&calls))

	names := []string{
		"Acanthurus achilles",
		"Acanthurus nigricans",
		"Naso lituratus",
		"Zebrasoma scopas",
		"Chaetodon lunula",
	}
	res, err := c.Verify(context.Background(), names)
	require.NoError(t, err)
	require.Len(t, res, len(names))

	// 5 names with batch size 2 means 3 requests.
	assert.Equal(t, int64(3), calls.Load())

	// Results come back in input order regardless of batch scheduling.
	for i, m := range res {
		assert.Equal(t, names[i], m.Name)
		require.Len(t, m.Candidates, 1)
		assert.Equal(t, names[i], m.Candidates[0].AcceptedName)
	}
}

func TestVerifyUnresolvedRetained(t *testing.T) {
	c := testClient(t, 10)
	httpmock.RegisterResponder(
		"POST", "http://registry.test/api/v1/verifications",
		func(req *http.Request) (*http.Response, error) {
			var vr verificationRequest
			_ = json.NewDecoder(req.Body).Decode(&vr)
			resp := verificationResponse{}
			for _, n := range vr.NameStrings {
				// No candidates for anything.
				resp.Names = append(resp.Names, nameResult{Name: n})
			}
			return httpmock.NewJsonResponse(200, resp)
		})

	res, err := c.Verify(context.Background(),
		[]string{"Nonexistius fishius"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Empty(t, res[0].Candidates,
		"unknown names come back with zero candidates, not an error")
}

func TestVerifyCachesResponses(t *testing.T) {
	c := testClient(t, 10)
	var calls atomic.Int64
	httpmock.RegisterResponder(
		"POST", "http://registry.test/api/v1/verifications",
		echoResponder(&calls))

	names := []string{"Acanthurus achilles"}
	_, err := c.Verify(context.Background(), names)
	require.NoError(t, err)
	_, err = c.Verify(context.Background(), names)
	require.NoError(t, err)

	assert.Equal(t, int64(1), calls.Load(),
		"second run must be served from cache")
}

func TestVerifyBadStatus(t *testing.T) {
	c := testClient(t, 10)
	httpmock.RegisterResponder(
		"POST", "http://registry.test/api/v1/verifications",
		httpmock.NewStringResponder(500, "boom"))

	_, err := c.Verify(context.Background(), []string{"Naso lituratus"})
	assert.Error(t, err)
}

func TestVerifyCountMismatch(t *testing.T) {
	c := testClient(t, 10)
	httpmock.RegisterResponder(
		"POST", "http://registry.test/api/v1/verifications",
		func(*http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, verificationResponse{})
		})

	_, err := c.Verify(context.Background(), []string{"Naso lituratus"})
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRegistryURL("http://registry.test/api/v1"),
		config.OptHomeDir(home),
	})
	require.NoError(t,
		os.MkdirAll(config.CacheDir(home), 0755))

	c := New(cfg)
	c.mem.Set("Naso lituratus", taxon.Match{
		Name: "Naso lituratus",
		Candidates: []taxon.Candidate{{
			RegistryID: 7, AcceptedRegistryID: 7,
			Status: taxon.StatusAccepted,
		}},
	}, 0)
	c.saveSnapshot()

	// A fresh client primes its cache from the snapshot.
	c2 := New(cfg)
	got, ok := c2.mem.Get("Naso lituratus")
	require.True(t, ok)
	assert.Equal(t, int64(7), got.(taxon.Match).Candidates[0].RegistryID)
}
