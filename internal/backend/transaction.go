package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Aryanshah010/payhive-web-application/internal/domain/transfer"
)

// TransferPayload is the body of preview requests
type TransferPayload struct {
	ToPhoneNumber string  `json:"toPhoneNumber"`
	Amount        float64 `json:"amount"`
	Remark        string  `json:"remark,omitempty"`
}

// ConfirmPayload is the body of confirm requests. The idempotency key is
// carried both here and in the Idempotency-Key header so the backend
// recognizes a retried request as the same attempt.
type ConfirmPayload struct {
	ToPhoneNumber  string  `json:"toPhoneNumber"`
	Amount         float64 `json:"amount"`
	Remark         string  `json:"remark,omitempty"`
	Pin            string  `json:"pin"`
	IdempotencyKey string  `json:"idempotencyKey,omitempty"`
}

// ConfirmData is the payload of a successful confirm response
type ConfirmData struct {
	Receipt transfer.Receipt  `json:"receipt"`
	Warning *transfer.Warning `json:"warning,omitempty"`
}

// LookupBeneficiary resolves a recipient account by phone number
func (c *Client) LookupBeneficiary(ctx context.Context, phoneNumber string) (*transfer.UserRef, error) {
	const fallback = "Lookup beneficiary failed"

	query := url.Values{}
	query.Set("phoneNumber", phoneNumber)

	env, err := c.doJSON(ctx, http.MethodGet, endpointBeneficiary, query, nil, nil, fallback)
	if err != nil {
		return nil, err
	}

	var ref transfer.UserRef
	if err := decodeData(env, &ref, fallback); err != nil {
		return nil, err
	}
	return &ref, nil
}

// PreviewTransfer computes the transfer outcome and risk warnings without
// moving funds
func (c *Client) PreviewTransfer(ctx context.Context, payload TransferPayload) (*transfer.PreviewData, error) {
	const fallback = "Preview transfer failed"

	env, err := c.doJSON(ctx, http.MethodPost, endpointTransferPreview, nil, payload, nil, fallback)
	if err != nil {
		return nil, err
	}

	var preview transfer.PreviewData
	if err := decodeData(env, &preview, fallback); err != nil {
		return nil, err
	}
	return &preview, nil
}

// ConfirmTransfer executes the transfer. A retried call with the same
// idempotency key is recognized by the backend as the same attempt and is
// not double-executed. PIN lockout comes back as an *APIError with status
// 423 and a remainingMs detail.
func (c *Client) ConfirmTransfer(ctx context.Context, payload ConfirmPayload, idempotencyKey string) (*ConfirmData, error) {
	const fallback = "Confirm transfer failed"

	header := http.Header{}
	if idempotencyKey != "" {
		payload.IdempotencyKey = idempotencyKey
		header.Set(IdempotencyKeyHeader, idempotencyKey)
	}

	env, err := c.doJSON(ctx, http.MethodPost, endpointTransferConfirm, nil, payload, header, fallback)
	if err != nil {
		return nil, err
	}

	var data ConfirmData
	if err := decodeData(env, &data, fallback); err != nil {
		return nil, err
	}
	return &data, nil
}
