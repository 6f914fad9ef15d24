package sendmoney

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/domain/transfer"
	"github.com/Aryanshah010/payhive-web-application/internal/validation"
)

// ErrBusy is returned when a submission arrives while another one for the
// same wizard is still in flight
var ErrBusy = errors.New("a submission is already in progress")

// State is an immutable snapshot of a wizard for rendering. Pointer fields
// are never mutated after being set, so sharing them is safe.
type State struct {
	Step      transfer.Step         `json:"step"`
	Draft     transfer.Draft        `json:"draft"`
	Recipient *transfer.UserRef     `json:"recipient,omitempty"`
	Preview   *transfer.PreviewData `json:"preview,omitempty"`
	Receipt   *transfer.Receipt     `json:"receipt,omitempty"`
	Error     string                `json:"error,omitempty"`
	Advisory  string                `json:"advisory,omitempty"`
}

// Wizard owns the state of one send-money attempt and sequences its steps:
// Recipient -> Amount -> Pin -> Success, with Back from Amount and Pin and a
// full reset out of Success.
//
// All state is private to the instance. Submissions validate their input
// first (failures never reach the network), then perform exactly one backend
// call; the step only advances when that call succeeds. The idempotency key
// is minted once per attempt when the recipient is confirmed and stays fixed
// until a reset, so repeated confirm submissions are one logical attempt to
// the backend.
type Wizard struct {
	actions Actions
	logger  *slog.Logger

	mu             sync.Mutex
	busy           bool
	step           transfer.Step
	draft          transfer.Draft
	recipient      *transfer.UserRef
	preview        *transfer.PreviewData
	receipt        *transfer.Receipt
	idempotencyKey string
	errMsg         string
}

// NewWizard creates a wizard at the recipient step with an empty draft
func NewWizard(logger *slog.Logger, actions Actions) *Wizard {
	return &Wizard{
		actions: actions,
		logger:  logger,
		step:    transfer.StepRecipient,
	}
}

// begin marks a submission in flight and clears the previous error.
// Concurrent submissions to the same wizard are rejected with ErrBusy.
func (w *Wizard) begin() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		return ErrBusy
	}
	w.busy = true
	w.errMsg = ""
	return nil
}

func (w *Wizard) finish() {
	w.mu.Lock()
	w.busy = false
	w.mu.Unlock()
}

// transitionLocked advances the step, refusing transitions the step machine
// does not allow. Callers hold w.mu.
func (w *Wizard) transitionLocked(target transfer.Step) {
	if !w.step.CanTransitionTo(target) {
		w.logger.Error("Refusing invalid step transition", "from", string(w.step), "to", string(target))
		return
	}
	w.step = target
}

func (w *Wizard) snapshotLocked() State {
	return State{
		Step:      w.step,
		Draft:     w.draft,
		Recipient: w.recipient,
		Preview:   w.preview,
		Receipt:   w.receipt,
		Error:     w.errMsg,
		Advisory:  transfer.AdvisoryMessage(w.preview),
	}
}

// State returns the current snapshot
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// IdempotencyKey returns the key of the current attempt, empty before the
// recipient step has completed
func (w *Wizard) IdempotencyKey() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.idempotencyKey
}

// SubmitRecipient resolves the recipient phone number and, on success,
// seeds the draft, mints the attempt's idempotency key and advances to the
// amount step. Validation failures are returned as validation.FieldErrors
// without touching the network.
func (w *Wizard) SubmitRecipient(ctx context.Context, phoneNumber string) (State, error) {
	if err := w.begin(); err != nil {
		return w.State(), err
	}
	defer w.finish()

	input := validation.BeneficiaryLookupInput{PhoneNumber: phoneNumber}
	if errs := input.Validate(); errs != nil {
		return w.State(), errs
	}

	result := w.actions.LookupBeneficiary(ctx, input.PhoneNumber)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !result.Success {
		w.errMsg = messageOr(result.Message, "Recipient lookup failed")
		return w.snapshotLocked(), nil
	}

	w.recipient = result.Recipient
	w.draft = transfer.Draft{ToPhoneNumber: input.PhoneNumber}
	w.idempotencyKey = NewIdempotencyKey()
	w.transitionLocked(transfer.StepAmount)
	return w.snapshotLocked(), nil
}

// SubmitAmount previews the transfer for the entered amount and optional
// remark and, on success, stores the preview and advances to the PIN step.
// A no-op when no recipient has been resolved yet.
func (w *Wizard) SubmitAmount(ctx context.Context, amount *float64, remark string) (State, error) {
	if err := w.begin(); err != nil {
		return w.State(), err
	}
	defer w.finish()

	w.mu.Lock()
	recipient := w.recipient
	draftPhone := w.draft.ToPhoneNumber
	step := w.step
	w.mu.Unlock()

	if recipient == nil || step != transfer.StepAmount {
		return w.State(), nil
	}

	input := validation.AmountInput{Amount: amount, Remark: remark}
	if errs := input.Validate(); errs != nil {
		return w.State(), errs
	}

	trimmedRemark := trimRemark(input.Remark)
	payload := backend.TransferPayload{
		ToPhoneNumber: recipientPhone(recipient, draftPhone),
		Amount:        *input.Amount,
		Remark:        trimmedRemark,
	}

	result := w.actions.PreviewTransfer(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !result.Success {
		w.errMsg = messageOr(result.Message, "Preview failed")
		return w.snapshotLocked(), nil
	}

	w.draft = transfer.Draft{
		ToPhoneNumber: payload.ToPhoneNumber,
		Amount:        input.Amount,
		Remark:        trimmedRemark,
	}
	w.preview = result.Preview
	w.transitionLocked(transfer.StepPin)
	return w.snapshotLocked(), nil
}

// SubmitPin confirms the transfer with the attempt's idempotency key. The
// same key is sent on every retry at this step, so the backend treats them
// as one logical attempt. A no-op when recipient or amount are missing.
func (w *Wizard) SubmitPin(ctx context.Context, pin string) (State, error) {
	if err := w.begin(); err != nil {
		return w.State(), err
	}
	defer w.finish()

	w.mu.Lock()
	recipient := w.recipient
	draft := w.draft
	step := w.step
	key := w.idempotencyKey
	w.mu.Unlock()

	if recipient == nil || draft.Amount == nil || step != transfer.StepPin {
		return w.State(), nil
	}

	input := validation.PinInput{Pin: pin}
	if errs := input.Validate(); errs != nil {
		return w.State(), errs
	}

	payload := backend.ConfirmPayload{
		ToPhoneNumber: recipientPhone(recipient, draft.ToPhoneNumber),
		Amount:        *draft.Amount,
		Remark:        draft.Remark,
		Pin:           input.Pin,
	}

	result := w.actions.ConfirmTransfer(ctx, payload, key)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !result.Success {
		w.errMsg = confirmFailureMessage(result.Result)
		return w.snapshotLocked(), nil
	}

	w.receipt = result.Receipt
	// Rebuild the preview from the receipt so the success screen reflects
	// what was actually executed, including the warning computed at confirm
	// time (which may differ from the preview-time warning)
	w.preview = &transfer.PreviewData{
		From:    result.Receipt.From,
		To:      result.Receipt.To,
		Amount:  result.Receipt.Amount,
		Remark:  result.Receipt.Remark,
		Warning: result.Warning,
	}
	w.transitionLocked(transfer.StepSuccess)
	return w.snapshotLocked(), nil
}

// Back returns one step without discarding the draft or the idempotency
// key. Recipient and Success have no Back; Success only leaves via Reset.
func (w *Wizard) Back() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		return w.snapshotLocked(), ErrBusy
	}

	switch w.step {
	case transfer.StepPin:
		w.errMsg = ""
		w.preview = nil
		w.transitionLocked(transfer.StepAmount)
	case transfer.StepAmount:
		w.errMsg = ""
		w.preview = nil
		w.transitionLocked(transfer.StepRecipient)
	}
	return w.snapshotLocked(), nil
}

// Reset returns the wizard to its initial state, discarding every field
// including the idempotency key. The next attempt mints a fresh key.
func (w *Wizard) Reset() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		return w.snapshotLocked(), ErrBusy
	}

	w.step = transfer.StepRecipient
	w.draft = transfer.Draft{}
	w.recipient = nil
	w.preview = nil
	w.receipt = nil
	w.idempotencyKey = ""
	w.errMsg = ""
	return w.snapshotLocked(), nil
}

// recipientPhone prefers the resolved recipient's phone number, falling back
// to the phone number the user entered
func recipientPhone(recipient *transfer.UserRef, draftPhone string) string {
	if recipient.PhoneNumber != "" {
		return recipient.PhoneNumber
	}
	return draftPhone
}

// trimRemark reduces a remark to its trimmed form, empty meaning absent
func trimRemark(remark string) string {
	return strings.TrimSpace(remark)
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

// confirmFailureMessage renders the PIN-lockout countdown when the backend
// reports status 423 with a remaining time, and the generic message
// otherwise. The countdown rounds up to whole minutes.
func confirmFailureMessage(result Result) string {
	if result.Status == 423 {
		if ms, ok := result.RemainingMs(); ok {
			minutes := (ms + 59999) / 60000
			return fmt.Sprintf("PIN locked. Try again in %d minute(s).", minutes)
		}
	}
	return messageOr(result.Message, "Transfer failed")
}
