package sendmoney

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewIdempotencyKey generates the token that makes a retried confirm request
// recognizable as the same attempt. One key is minted per transfer attempt
// and must never be reused across attempts.
//
// A random UUID gives the 128-bit collision margin we want; if the crypto
// randomness source is unavailable, a timestamp plus a weaker random
// component keeps keys distinct enough in practice.
func NewIdempotencyKey() string {
	if key, err := uuid.NewRandom(); err == nil {
		return key.String()
	}
	return fmt.Sprintf("%d-%x", time.Now().UnixMilli(), rand.Int63())
}
