package services

import "errors"

// Sentinel errors the handlers translate to HTTP status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrResumeNotFound     = errors.New("resume not found")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrDuplicate          = errors.New("duplicate record")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid application status")
	ErrProvidersFailed    = errors.New("both AI services failed")

	// ErrMalformedResponse wraps any provider output that fails JSON
	// extraction, decoding, or the expected-shape check.
	ErrMalformedResponse = errors.New("malformed provider response")
)
