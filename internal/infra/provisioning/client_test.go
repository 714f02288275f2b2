package provisioning

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"esimhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))

	return NewClient(server.URL, "test-access-code", 5*time.Second, logger)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))

	return len(p), nil
}

func TestClient_SendsAccessCodeHeader(t *testing.T) {
	var gotHeader string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("RT-AccessCode")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"errorCode": "0",
			"obj": map[string]any{
				"balanceInfo": map[string]any{"balance": 42.5, "currencyCode": "USD"},
			},
		})
	})

	balance, err := client.QueryBalance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-access-code", gotHeader)
	assert.InDelta(t, 42.5, balance.Amount, 0.001)
	assert.Equal(t, "USD", balance.Currency)
}

func TestClient_ProviderRejectionReturnsProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":   false,
			"errorCode": "200010",
			"errorMsg":  "insufficient balance",
		})
	})

	_, err := client.OrderProfile(context.Background(), &service.OrderRequest{
		TransactionID: "txn-1",
		PackageCode:   "PKG-JP-1GB",
	})
	require.Error(t, err)

	var providerErr *service.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "200010", providerErr.Code)
	assert.Equal(t, "insufficient balance", providerErr.Message)
}

func TestClient_SuccessCodeVariantsAccepted(t *testing.T) {
	for _, code := range []string{"0", "000000", ""} {
		t.Run("code_"+code, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success":   true,
					"errorCode": code,
				})
			})

			assert.NoError(t, client.Suspend(context.Background(), "8944500000000000001"))
		})
	}
}

func TestClient_QueryProfilesRequiresExactlyOneSelector(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid query")
	})

	_, err := client.QueryProfiles(context.Background(), &service.ProfileQuery{})
	assert.Error(t, err)

	_, err = client.QueryProfiles(context.Background(), &service.ProfileQuery{
		OrderNo: "ORD-1",
		ICCID:   "8944500000000000001",
	})
	assert.Error(t, err)
}

func TestClient_QueryProfilesDecodesProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ORD-1", body["orderNo"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"errorCode": "000000",
			"obj": map[string]any{
				"esimList": []map[string]any{
					{
						"iccid":       "8944500000000000001",
						"orderNo":     "ORD-1",
						"ac":          "LPA:1$smdp.example.com$TOKEN",
						"qrCodeUrl":   "https://cdn.example.com/qr/ORD-1.png",
						"esimStatus":  "GOT_RESOURCE",
						"orderUsage":  1024,
						"totalVolume": 1073741824,
						"expiredTime": "2026-09-30T00:00:00Z",
						"packageList": []map[string]any{{"packageCode": "PKG-JP-1GB"}},
					},
				},
			},
		})
	})

	profiles, err := client.QueryProfiles(context.Background(), &service.ProfileQuery{OrderNo: "ORD-1"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	profile := profiles[0]
	assert.Equal(t, "8944500000000000001", profile.ICCID)
	assert.Equal(t, "LPA:1$smdp.example.com$TOKEN", profile.ActivationCode)
	assert.Equal(t, "GOT_RESOURCE", profile.ProviderStatus)
	assert.Equal(t, int64(1024), profile.DataUsed)
	assert.Equal(t, int64(1073741824), profile.DataTotal)
	assert.Equal(t, "PKG-JP-1GB", profile.PackageCode)
	require.NotNil(t, profile.ExpiredAt)
	assert.Equal(t, 2026, profile.ExpiredAt.Year())
}

func TestClient_NonOKStatusIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.QueryBalance(context.Background())
	require.Error(t, err)

	var providerErr *service.ProviderError
	assert.NotErrorAs(t, err, &providerErr)
}
