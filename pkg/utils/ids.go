package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewMerchantTransactionID returns an "MT"-prefixed id for one payment
// attempt. Wall-clock millis alone collide under rapid calls, so a short
// uuid-derived suffix is appended.
func NewMerchantTransactionID() string {
	return fmt.Sprintf("MT%d%s", time.Now().UnixMilli(), uuid.NewString()[:6])
}
