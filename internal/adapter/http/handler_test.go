package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"clearfund/internal/adapter/memory"
	"clearfund/internal/adapter/usecase"
)

type staticTicks struct{ tick uint64 }

func (s staticTicks) Current(context.Context) (uint64, error) { return s.tick, nil }

type okCustody struct{}

func (okCustody) Move(context.Context, string, string, uint64) error { return nil }

type okRewards struct{}

func (okRewards) Mint(context.Context, string) error { return nil }

func newTestServer(tick uint64) *httptest.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewCrowdfundUseCase(memory.NewEscrowStore(), staticTicks{tick}, okCustody{}, okRewards{}, logger)
	return httptest.NewServer(NewHandler(svc, logger).Router())
}

func do(t *testing.T, method, url, identity, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if identity != "" {
		req.Header.Set(identityHeader, identity)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const launchBody = `{"title":"Test Campaign","description":"This is a campaign that I made.","link":"https://example.com","fund_goal":10000,"starts_at":5,"ends_at":100}`

func TestLaunchEndpoint(t *testing.T) {
	srv := newTestServer(5)
	defer srv.Close()

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/campaigns", "alice", launchBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, float64(1), decode(t, resp)["id"])

	got := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns/1", "", "")
	require.Equal(t, http.StatusOK, got.StatusCode)
	body := decode(t, got)
	require.Equal(t, "alice", body["owner"])
	require.Equal(t, float64(10000), body["fund_goal"])
	require.Equal(t, false, body["target_reached"])
}

func TestLaunchRequiresIdentity(t *testing.T) {
	srv := newTestServer(0)
	defer srv.Close()

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/campaigns", "", launchBody)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFailureCodes(t *testing.T) {
	srv := newTestServer(5)
	defer srv.Close()

	// unknown campaign
	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns/42", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, float64(105), decode(t, resp)["code"])

	do(t, http.MethodPost, srv.URL+"/api/v1/campaigns", "alice", launchBody)

	// zero pledge into the active campaign
	resp = do(t, http.MethodPost, srv.URL+"/api/v1/campaigns/1/pledges", "bob", `{"amount":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, float64(110), decode(t, resp)["code"])

	// update by someone else
	resp = do(t, http.MethodPut, srv.URL+"/api/v1/campaigns/1", "bob", `{"title":"a","description":"b","link":"c"}`)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, float64(107), decode(t, resp)["code"])

	// unpledge more than pledged
	resp = do(t, http.MethodPost, srv.URL+"/api/v1/campaigns/1/pledges", "bob", `{"amount":100}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, http.MethodDelete, srv.URL+"/api/v1/campaigns/1/pledges", "bob", `{"amount":101}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, float64(113), decode(t, resp)["code"])
}

func TestPledgeAndInvestmentEndpoints(t *testing.T) {
	srv := newTestServer(5)
	defer srv.Close()

	do(t, http.MethodPost, srv.URL+"/api/v1/campaigns", "alice", launchBody)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/campaigns/1/pledges", "bob", `{"amount":1500}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, decode(t, resp)["pledged"])

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/campaigns/1/pledges/bob", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := decode(t, resp)["investment"].(map[string]any)
	require.Equal(t, float64(1500), inv["amount"])

	// no record reads as null, not an error
	resp = do(t, http.MethodGet, srv.URL+"/api/v1/campaigns/1/pledges/carol", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Nil(t, decode(t, resp)["investment"])
}
