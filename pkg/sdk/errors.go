package talentmatch

import (
	"errors"
	"fmt"
)

// Sentinel errors matchable with errors.Is against *APIError responses.
var (
	ErrNotFound         = errors.New("talentmatch: profile not found")
	ErrUnauthorized     = errors.New("talentmatch: unauthorized")
	ErrValidationFailed = errors.New("talentmatch: validation failed")
	ErrProvider         = errors.New("talentmatch: generation provider error")
)

// APIError is a non-2xx response decoded from the service error body.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // machine-readable error code
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("talentmatch: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Is maps error codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == "profile_not_found"
	case ErrUnauthorized:
		return e.Code == "unauthorized"
	case ErrValidationFailed:
		return e.Code == "validation_failed" || e.Code == "bad_request"
	case ErrProvider:
		return e.Code == "generation_provider_error"
	default:
		return false
	}
}
