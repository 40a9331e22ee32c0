package ternary

import (
	"errors"
	"fmt"
)

// CodecError represents an input-contract violation at the codec boundary.
//
// Contract violations are surfaced immediately to the caller at the point of
// validation and are never retried, recovered, or silently defaulted.
type CodecError struct {
	// Code identifies the error category.
	Code CodecErrorCode

	// Message is a human-readable description.
	Message string

	// Value is the offending integer (INVALID_DOMAIN only).
	Value int

	// Digits is the offending digit string (INVALID_DIGIT only).
	Digits string

	// Position is the index of the bad character, or -1 when the whole
	// string is wrong (length mismatch).
	Position int
}

// CodecErrorCode categorizes codec errors.
type CodecErrorCode string

const (
	// ErrCodeInvalidDomain indicates an integer outside [0,728].
	ErrCodeInvalidDomain CodecErrorCode = "INVALID_DOMAIN"

	// ErrCodeInvalidDigit indicates a digit string with the wrong length or
	// a character outside {0,1,2}.
	ErrCodeInvalidDigit CodecErrorCode = "INVALID_DIGIT"
)

// Error implements the error interface.
func (e *CodecError) Error() string {
	switch e.Code {
	case ErrCodeInvalidDomain:
		return fmt.Sprintf("%s: %s (value=%d)", e.Code, e.Message, e.Value)
	case ErrCodeInvalidDigit:
		if e.Position >= 0 {
			return fmt.Sprintf("%s: %s (digits=%q, pos=%d)", e.Code, e.Message, e.Digits, e.Position)
		}
		return fmt.Sprintf("%s: %s (digits=%q)", e.Code, e.Message, e.Digits)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidDomain returns true if the error is an out-of-range value error.
// Uses errors.As to handle wrapped errors.
func IsInvalidDomain(err error) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidDomain
	}
	return false
}

// IsInvalidDigit returns true if the error is a malformed digit string error.
// Uses errors.As to handle wrapped errors.
func IsInvalidDigit(err error) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidDigit
	}
	return false
}

// NewDomainError creates a CodecError for a value outside [0,728].
func NewDomainError(value int) *CodecError {
	return &CodecError{
		Code:     ErrCodeInvalidDomain,
		Message:  fmt.Sprintf("value outside [0,%d]", MaxValue),
		Value:    value,
		Position: -1,
	}
}

// NewLengthError creates a CodecError for a digit string of the wrong length.
func NewLengthError(digits string) *CodecError {
	return &CodecError{
		Code:     ErrCodeInvalidDigit,
		Message:  fmt.Sprintf("digit string must be exactly %d characters, got %d", DigitCount, len(digits)),
		Digits:   digits,
		Position: -1,
	}
}

// NewDigitError creates a CodecError for a character outside {0,1,2}.
func NewDigitError(digits string, pos int) *CodecError {
	return &CodecError{
		Code:     ErrCodeInvalidDigit,
		Message:  fmt.Sprintf("character %q is not a ternary digit", digits[pos]),
		Digits:   digits,
		Position: pos,
	}
}
