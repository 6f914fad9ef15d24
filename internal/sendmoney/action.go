// Package sendmoney implements the send-money flow: an action layer that
// flattens backend results into a uniform shape, and the wizard state
// machine that sequences recipient lookup, amount preview and PIN
// confirmation.
package sendmoney

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/domain/transfer"
)

// Result is the uniform outcome shape every action returns. A failed call
// never surfaces as a Go error to the wizard: Message is always populated
// on failure, Status and Details only when the backend provided them.
type Result struct {
	Success bool
	Message string
	Status  int
	Details interface{}
}

// RemainingMs extracts the PIN-lockout countdown from Details, if present
func (r Result) RemainingMs() (int64, bool) {
	details, ok := r.Details.(map[string]interface{})
	if !ok {
		return 0, false
	}
	ms, ok := details["remainingMs"].(float64)
	if !ok || ms <= 0 {
		return 0, false
	}
	return int64(ms), true
}

// LookupResult is the outcome of a beneficiary lookup
type LookupResult struct {
	Result
	Recipient *transfer.UserRef
}

// PreviewResult is the outcome of a transfer preview
type PreviewResult struct {
	Result
	Preview *transfer.PreviewData
}

// ConfirmResult is the outcome of a transfer confirmation
type ConfirmResult struct {
	Result
	Receipt *transfer.Receipt
	Warning *transfer.Warning
}

// Actions is the boundary the wizard drives. Implementations must convert
// every transport or backend failure into a failed Result and never panic.
type Actions interface {
	LookupBeneficiary(ctx context.Context, phoneNumber string) LookupResult
	PreviewTransfer(ctx context.Context, payload backend.TransferPayload) PreviewResult
	ConfirmTransfer(ctx context.Context, payload backend.ConfirmPayload, idempotencyKey string) ConfirmResult
}

// BackendActions implements Actions against the wallet backend client
type BackendActions struct {
	client *backend.Client
	logger *slog.Logger
}

// NewBackendActions creates the production action layer
func NewBackendActions(logger *slog.Logger, client *backend.Client) *BackendActions {
	return &BackendActions{
		client: client,
		logger: logger,
	}
}

// failure converts any error into a failed Result, keeping the backend's
// message, status and details when the error carries them
func failure(err error, fallback string) Result {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		return Result{Message: message, Status: apiErr.Status, Details: apiErr.Details}
	}
	return Result{Message: fallback}
}

// LookupBeneficiary resolves the recipient account for a phone number
func (a *BackendActions) LookupBeneficiary(ctx context.Context, phoneNumber string) LookupResult {
	recipient, err := a.client.LookupBeneficiary(ctx, phoneNumber)
	if err != nil {
		return LookupResult{Result: failure(err, "Lookup beneficiary failed")}
	}
	return LookupResult{Result: Result{Success: true}, Recipient: recipient}
}

// PreviewTransfer computes the transfer outcome without moving funds
func (a *BackendActions) PreviewTransfer(ctx context.Context, payload backend.TransferPayload) PreviewResult {
	preview, err := a.client.PreviewTransfer(ctx, payload)
	if err != nil {
		return PreviewResult{Result: failure(err, "Preview transfer failed")}
	}
	return PreviewResult{Result: Result{Success: true}, Preview: preview}
}

// ConfirmTransfer executes the transfer under the given idempotency key
func (a *BackendActions) ConfirmTransfer(ctx context.Context, payload backend.ConfirmPayload, idempotencyKey string) ConfirmResult {
	data, err := a.client.ConfirmTransfer(ctx, payload, idempotencyKey)
	if err != nil {
		a.logger.Warn("Confirm transfer failed", "error", err)
		return ConfirmResult{Result: failure(err, "Confirm transfer failed")}
	}
	receipt := data.Receipt
	return ConfirmResult{
		Result:  Result{Success: true},
		Receipt: &receipt,
		Warning: data.Warning,
	}
}
