package ratelimit

import "errors"

var (
	ErrNonPositiveMaxRequests = errors.New("maxRequests should be positive")
	ErrNonPositiveWindow      = errors.New("window should be positive")
	ErrNonPositiveTimeout     = errors.New("timeout should be positive")
)
