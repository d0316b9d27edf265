package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID builds a record id from the creation time plus a random suffix,
// so ids sort roughly by age while staying unique within one millisecond.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
