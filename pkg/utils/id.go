package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID returns a prefixed random identifier, e.g. "auction-8f14…".
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
