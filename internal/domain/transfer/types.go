// Package transfer defines the data types carried through a send-money
// attempt: the resolved recipient, the accumulated draft, the server-computed
// preview and the final receipt. Field names follow the wallet backend's
// JSON contract exactly.
package transfer

import (
	"math"
	"strconv"
)

// UserRef identifies one side of a transfer as returned by the backend
type UserRef struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Draft accumulates validated user input across wizard steps.
// Amount is a pointer so "not yet entered" is distinguishable from zero.
type Draft struct {
	ToPhoneNumber string   `json:"toPhoneNumber"`
	Amount        *float64 `json:"amount,omitempty"`
	Remark        string   `json:"remark,omitempty"`
}

// Warning carries the backend's large-amount risk flag and the sender's
// 30-day rolling average it was computed against
type Warning struct {
	LargeAmount bool    `json:"largeAmount,omitempty"`
	Avg30d      float64 `json:"avg30d,omitempty"`
}

// PreviewData is the non-committal transfer computation returned by the
// backend before any funds move
type PreviewData struct {
	From    UserRef  `json:"from"`
	To      UserRef  `json:"to"`
	Amount  float64  `json:"amount"`
	Remark  string   `json:"remark,omitempty"`
	Warning *Warning `json:"warning,omitempty"`
}

// Receipt is the terminal artifact of a confirmed transfer
type Receipt struct {
	TxID      string  `json:"txId"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Remark    string  `json:"remark,omitempty"`
	From      UserRef `json:"from"`
	To        UserRef `json:"to"`
	CreatedAt string  `json:"createdAt"`
}

// FormatAmount renders an amount without decimals when it is a whole number
// and with exactly two decimals otherwise
func FormatAmount(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// AdvisoryMessage renders the fixed-format large-amount advisory for a
// preview, or an empty string when the preview carries no such warning
func AdvisoryMessage(preview *PreviewData) string {
	if preview == nil || preview.Warning == nil || !preview.Warning.LargeAmount {
		return ""
	}
	return "This amount is more than 2× your 30-day average (avg: " +
		FormatAmount(preview.Warning.Avg30d) + ")."
}
