package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile is wrapped by every precondition violation Compute reports.
var ErrInvalidProfile = errors.New("invalid profile")

type ErrorCode string

const (
	ErrCodeInvalidGrossSalary         ErrorCode = "INVALID_GROSS_SALARY"
	ErrCodeUnknownContractType        ErrorCode = "UNKNOWN_CONTRACT_TYPE"
	ErrCodeUnknownAgreement           ErrorCode = "UNKNOWN_AGREEMENT"
	ErrCodeUnknownRegion              ErrorCode = "UNKNOWN_REGION"
	ErrCodeMunicipalityRegionMismatch ErrorCode = "MUNICIPALITY_REGION_MISMATCH"
)

type ProfileError struct {
	Code    ErrorCode
	Field   string
	Message string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProfileError) Unwrap() error {
	return ErrInvalidProfile
}

func profileError(code ErrorCode, field, format string, args ...interface{}) *ProfileError {
	return &ProfileError{Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}
