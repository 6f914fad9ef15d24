package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryanshah010/payhive-web-application/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	client := NewClient(logger, &config.BackendConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	return client, server
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"u1"}}`))
	}))

	ctx := WithToken(context.Background(), "opaque-token")
	_, err := client.LookupBeneficiary(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque-token", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"u1"}}`))
	}))

	_, err := client.LookupBeneficiary(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_NormalizesBackendRejection(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Recipient not found"}`))
	}))

	_, err := client.LookupBeneficiary(context.Background(), "9876543210")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "Recipient not found", apiErr.Message)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClient_NormalizesSuccessFalseBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"Insufficient funds"}`))
	}))

	_, err := client.PreviewTransfer(context.Background(), TransferPayload{
		ToPhoneNumber: "9876543210",
		Amount:        100,
	})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "Insufficient funds", apiErr.Message)
	assert.Zero(t, apiErr.Status)
}

func TestClient_FallbackMessageOnGarbageBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))

	_, err := client.LookupBeneficiary(context.Background(), "9876543210")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "Lookup beneficiary failed", apiErr.Message)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestClient_TransportFailureUsesFallback(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	client := NewClient(logger, &config.BackendConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: 200 * time.Millisecond,
	})

	_, err := client.LookupBeneficiary(context.Background(), "9876543210")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "Lookup beneficiary failed", apiErr.Message)
	assert.Zero(t, apiErr.Status)
}

func TestAPIError_RemainingMs(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		err := &APIError{Details: map[string]interface{}{"remainingMs": float64(120000)}}
		ms, ok := err.RemainingMs()
		assert.True(t, ok)
		assert.Equal(t, int64(120000), ms)
	})

	t.Run("NoDetails", func(t *testing.T) {
		err := &APIError{}
		_, ok := err.RemainingMs()
		assert.False(t, ok)
	})

	t.Run("WrongShape", func(t *testing.T) {
		err := &APIError{Details: map[string]interface{}{"remainingMs": "soon"}}
		_, ok := err.RemainingMs()
		assert.False(t, ok)
	})
}
