package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without
// leaking infrastructure details.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrInvalidTradeMethod = fmt.Errorf("%w: unknown trade method", ErrValidation)
	ErrInvalidSortInput   = fmt.Errorf("%w: unsupported sort key", ErrValidation)
	ErrEmptySortInput     = fmt.Errorf("%w: sort key required", ErrValidation)
	ErrFCMTokenNotFound   = fmt.Errorf("%w: fcm token", ErrNotFound)
)
