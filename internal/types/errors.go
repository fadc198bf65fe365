// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
)

// Error codes for migration errors
const (
	ErrCodeConfiguration       = "CONFIGURATION_ERROR"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeConflictExists      = "CONFLICT_EXISTS"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeInvalidRecord       = "INVALID_RECORD"
	ErrCodeNotFound            = "NOT_FOUND"
)

// Sentinels, compare with errors.Is.
var (
	ErrConfiguration       = &MigrationError{Code: ErrCodeConfiguration, Message: "configuration error"}
	ErrUpstreamUnavailable = &MigrationError{Code: ErrCodeUpstreamUnavailable, Message: "upstream unavailable"}
	ErrConflictExists      = &MigrationError{Code: ErrCodeConflictExists, Message: "already exists"}
	ErrValidation          = &MigrationError{Code: ErrCodeValidation, Message: "validation failed"}
	ErrInvalidRecord       = &MigrationError{Code: ErrCodeInvalidRecord, Message: "invalid record"}
	ErrNotFound            = &MigrationError{Code: ErrCodeNotFound, Message: "not found"}
)

// MigrationError represents a classified failure of a migration step
type MigrationError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable error message
	Op         string            // Operation that failed (e.g., "CreateUser", "ListUsers")
	Metadata   map[string]string // Additional context about the error
	Underlying error             // The underlying error if any
}

// Error implements the error interface
func (e *MigrationError) Error() string {
	msg := e.Message
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

// Is implements error matching for errors.Is
func (e *MigrationError) Is(target error) bool {
	t, ok := target.(*MigrationError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Unwrap exposes the underlying error to errors.As
func (e *MigrationError) Unwrap() error {
	return e.Underlying
}

// Retryable reports whether retrying the operation may succeed.
func (e *MigrationError) Retryable() bool {
	return e.Code == ErrCodeUpstreamUnavailable
}

// Constructor functions for common errors
func NewConfigurationError(field, reason string) *MigrationError {
	return &MigrationError{
		Code:    ErrCodeConfiguration,
		Message: "invalid configuration",
		Op:      "LoadConfig",
		Metadata: map[string]string{
			"field":  field,
			"reason": reason,
		},
	}
}

func NewUpstreamUnavailableError(upstream, op string, err error) *MigrationError {
	return &MigrationError{
		Code:       ErrCodeUpstreamUnavailable,
		Message:    fmt.Sprintf("%s unavailable", upstream),
		Op:         op,
		Underlying: err,
		Metadata: map[string]string{
			"upstream": upstream,
		},
	}
}

func NewConflictExistsError(loginID, op string, err error) *MigrationError {
	return &MigrationError{
		Code:       ErrCodeConflictExists,
		Message:    "already exists",
		Op:         op,
		Underlying: err,
		Metadata: map[string]string{
			"login_id": loginID,
		},
	}
}

func NewValidationError(op string, err error) *MigrationError {
	return &MigrationError{
		Code:       ErrCodeValidation,
		Message:    "validation failed",
		Op:         op,
		Underlying: err,
	}
}

func NewInvalidRecordError(sourceID, reason string) *MigrationError {
	return &MigrationError{
		Code:    ErrCodeInvalidRecord,
		Message: fmt.Sprintf("invalid record: %s", reason),
		Op:      "Map",
		Metadata: map[string]string{
			"source_id": sourceID,
			"reason":    reason,
		},
	}
}

func NewNotFoundError(resource, name, op string, err error) *MigrationError {
	return &MigrationError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("%s %q not found", resource, name),
		Op:         op,
		Underlying: err,
		Metadata: map[string]string{
			"resource": resource,
			"name":     name,
		},
	}
}
