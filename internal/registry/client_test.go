package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	internalcommon "github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.RegistryConfig{BaseURL: srv.URL + "/", Timeout: internalcommon.NewDuration(time.Second)}
	cfg.ApplyDefaults()

	return NewClient(cfg, logger.NewNopLogger())
}

func TestClient_ResolveAddress(t *testing.T) {
	node := Namehash("komgoresolver.contract.komgo")
	resolved := common.HexToAddress("0x36eFb40A6a5bA83461682066FD81fE85a01E5491")

	tests := []struct {
		name    string
		status  int
		body    string
		want    common.Address
		wantErr string
	}{
		{name: "resolved", body: `[{"address":"0x36efb40a6a5ba83461682066fd81fe85a01e5491","node":"x"}]`, want: resolved},
		{name: "empty array", body: `[]`, wantErr: "no registry entry"},
		{name: "missing address", body: `[{"node":"x"}]`, wantErr: "has no address"},
		{name: "invalid address", body: `[{"address":"0x1234"}]`, wantErr: "is invalid"},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: "unexpected status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, cachePath, r.URL.Path)
				require.Equal(t, companyData(node), r.URL.Query().Get("companyData"))

				w.Header().Set("Content-Type", "application/json")
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := client.ResolveAddress(context.Background(), node)
			if tt.wantErr != "" {
				var regErr *CompanyRegistryError
				require.ErrorAs(t, err, &regErr)
				require.Equal(t, node, regErr.Node)
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClient_ResolveAddress_Unreachable(t *testing.T) {
	cfg := config.RegistryConfig{BaseURL: "http://127.0.0.1:1", Timeout: internalcommon.NewDuration(time.Second)}
	client := NewClient(cfg, logger.NewNopLogger())

	_, err := client.ResolveAddress(context.Background(), Namehash("komgo"))

	var regErr *CompanyRegistryError
	require.ErrorAs(t, err, &regErr)
	require.Equal(t, "request failed", regErr.Reason)
	require.Error(t, regErr.Unwrap())
}

func TestClient_Ping(t *testing.T) {
	healthy := true
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v0/healthz", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	})

	require.NoError(t, client.Ping(context.Background()))

	healthy = false
	require.ErrorContains(t, client.Ping(context.Background()), "503")
}
