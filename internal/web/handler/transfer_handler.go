package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/sendmoney"
	"github.com/Aryanshah010/payhive-web-application/internal/session"
	"github.com/Aryanshah010/payhive-web-application/internal/validation"
	"github.com/Aryanshah010/payhive-web-application/internal/web/middleware"
)

// WizardSessionCookie identifies the browser's send-money wizard session
const WizardSessionCookie = "payhive_wizard"

const wizardCookieMaxAge = int((24 * time.Hour) / time.Second)

// TransferHandler exposes the send-money wizard over HTTP. Every submission
// returns the wizard's new snapshot; the client renders whatever step the
// snapshot says, so retries and refreshes always land on a consistent view.
type TransferHandler struct {
	logger       *slog.Logger
	sessions     *session.Store
	cookieSecure bool
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(logger *slog.Logger, sessions *session.Store, cookieSecure bool) *TransferHandler {
	return &TransferHandler{
		logger:       logger,
		sessions:     sessions,
		cookieSecure: cookieSecure,
	}
}

// State returns the current wizard snapshot
func (h *TransferHandler) State(c *gin.Context) {
	RespondOK(c, h.wizard(c).State())
}

// SubmitRecipient resolves the recipient and advances to the amount step
func (h *TransferHandler) SubmitRecipient(c *gin.Context) {
	var req RecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	ctx := backend.WithToken(c.Request.Context(), middleware.GetAuthToken(c))
	state, err := h.wizard(c).SubmitRecipient(ctx, req.PhoneNumber)
	h.respond(c, state, err)
}

// SubmitAmount previews the transfer and advances to the PIN step
func (h *TransferHandler) SubmitAmount(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	ctx := backend.WithToken(c.Request.Context(), middleware.GetAuthToken(c))
	state, err := h.wizard(c).SubmitAmount(ctx, req.Amount, req.Remark)
	h.respond(c, state, err)
}

// SubmitPin confirms the transfer and advances to the success step
func (h *TransferHandler) SubmitPin(c *gin.Context) {
	var req PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	ctx := backend.WithToken(c.Request.Context(), middleware.GetAuthToken(c))
	state, err := h.wizard(c).SubmitPin(ctx, req.Pin)
	h.respond(c, state, err)
}

// Back returns the wizard one step without discarding the draft
func (h *TransferHandler) Back(c *gin.Context) {
	state, err := h.wizard(c).Back()
	h.respond(c, state, err)
}

// Reset returns the wizard to a blank recipient step
func (h *TransferHandler) Reset(c *gin.Context) {
	state, err := h.wizard(c).Reset()
	h.respond(c, state, err)
}

// wizard resolves the request's wizard, minting the session cookie on first
// use
func (h *TransferHandler) wizard(c *gin.Context) *sendmoney.Wizard {
	id, err := c.Cookie(WizardSessionCookie)
	if err != nil || id == "" {
		id = session.NewSessionID()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(WizardSessionCookie, id, wizardCookieMaxAge, "/", "", h.cookieSecure, true)
	}
	return h.sessions.GetOrCreate(id)
}

// respond maps wizard outcomes onto HTTP: validation failures are 400 with
// per-field messages, a submission already in flight is 409, and everything
// else is 200 with the new snapshot. Backend failures ride inside the
// snapshot's error field, not the HTTP status, so the client can keep the
// user on the current step with the message displayed.
func (h *TransferHandler) respond(c *gin.Context, state sendmoney.State, err error) {
	var fieldErrs validation.FieldErrors
	switch {
	case err == nil:
		RespondOK(c, state)
	case errors.Is(err, sendmoney.ErrBusy):
		RespondConflict(c, "Another submission is in progress")
	case errors.As(err, &fieldErrs):
		RespondValidationFailed(c, fieldErrs)
	default:
		h.logger.Error("Wizard submission failed", "error", err)
		RespondInternalError(c)
	}
}
