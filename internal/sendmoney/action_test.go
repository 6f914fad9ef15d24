package sendmoney

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

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/config"
)

func newActionsAgainst(t *testing.T, handler http.Handler) *BackendActions {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	client := backend.NewClient(logger, &config.BackendConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	return NewBackendActions(logger, client)
}

func TestBackendActions_LookupBeneficiary(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		actions := newActionsAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"u1","fullName":"Jane Doe","phoneNumber":"9876543210"}}`))
		}))

		result := actions.LookupBeneficiary(context.Background(), "9876543210")
		assert.True(t, result.Success)
		require.NotNil(t, result.Recipient)
		assert.Equal(t, "Jane Doe", result.Recipient.FullName)
	})

	t.Run("NotFound", func(t *testing.T) {
		actions := newActionsAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"message":"Recipient not found"}`))
		}))

		result := actions.LookupBeneficiary(context.Background(), "9876543210")
		assert.False(t, result.Success)
		assert.Equal(t, "Recipient not found", result.Message)
		assert.Equal(t, http.StatusNotFound, result.Status)
		assert.Nil(t, result.Recipient)
	})

	t.Run("TransportFailureUsesFallback", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		client := backend.NewClient(logger, &config.BackendConfig{
			BaseURL: "http://127.0.0.1:1",
			Timeout: 200 * time.Millisecond,
		})
		actions := NewBackendActions(logger, client)

		result := actions.LookupBeneficiary(context.Background(), "9876543210")
		assert.False(t, result.Success)
		assert.Equal(t, "Lookup beneficiary failed", result.Message)
	})
}

func TestBackendActions_ConfirmTransfer_Lockout(t *testing.T) {
	actions := newActionsAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusLocked)
		_, _ = w.Write([]byte(`{"success":false,"message":"PIN locked","data":{"remainingMs":120000}}`))
	}))

	result := actions.ConfirmTransfer(context.Background(), backend.ConfirmPayload{
		ToPhoneNumber: "9876543210",
		Amount:        100.5,
		Pin:           "1234",
	}, "key-1")

	assert.False(t, result.Success)
	assert.Equal(t, 423, result.Status)
	ms, ok := result.RemainingMs()
	require.True(t, ok)
	assert.Equal(t, int64(120000), ms)
}

func TestBackendActions_ConfirmTransfer_Success(t *testing.T) {
	actions := newActionsAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-1", r.Header.Get(backend.IdempotencyKeyHeader))
		_, _ = w.Write([]byte(`{"success":true,"data":{
			"receipt":{"txId":"tx-1","status":"COMPLETED","amount":10,
				"from":{"id":"u0"},"to":{"id":"u1"},"createdAt":"2026-08-30T10:00:00Z"},
			"warning":{"largeAmount":false}
		}}`))
	}))

	result := actions.ConfirmTransfer(context.Background(), backend.ConfirmPayload{
		ToPhoneNumber: "9876543210",
		Amount:        10,
		Pin:           "1234",
	}, "key-1")

	assert.True(t, result.Success)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, "tx-1", result.Receipt.TxID)
	require.NotNil(t, result.Warning)
	assert.False(t, result.Warning.LargeAmount)
}
