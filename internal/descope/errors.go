// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package descope

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/canonical/user-migrator/internal/types"
)

// ErrMissingCredentials is returned when the client is built without a
// project id or management key.
var ErrMissingCredentials = errors.New("descope project id and management key are required")

// APIError is the error body returned by the management API.
type APIError struct {
	StatusCode       int    `json:"-"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
	ErrorMessage     string `json:"errorMessage"`
}

func (e *APIError) Error() string {
	msg := e.ErrorDescription
	if e.ErrorMessage != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.ErrorMessage)
	}
	if e.ErrorCode != "" {
		return fmt.Sprintf("descope error %s (status %d): %s", e.ErrorCode, e.StatusCode, msg)
	}
	return fmt.Sprintf("descope error (status %d): %s", e.StatusCode, msg)
}

func (e *APIError) contains(s string) bool {
	return strings.Contains(strings.ToLower(e.ErrorDescription), s) ||
		strings.Contains(strings.ToLower(e.ErrorMessage), s)
}

func parseAPIError(status int, body []byte) *APIError {
	e := new(APIError)
	if len(body) > 0 {
		if err := json.Unmarshal(body, e); err != nil {
			e.ErrorDescription = strings.TrimSpace(string(body))
		}
	}
	e.StatusCode = status

	if e.ErrorDescription == "" && e.ErrorMessage == "" {
		e.ErrorDescription = http.StatusText(status)
	}

	return e
}

// classifyResponse maps a failed response onto the migration error
// taxonomy, name identifies the user or role the call was about
func classifyResponse(op, name string, status int, body []byte) error {
	apiErr := parseAPIError(status, body)

	switch {
	case status == http.StatusConflict || apiErr.contains("already exists"):
		return types.NewConflictExistsError(name, op, apiErr)
	case status == http.StatusNotFound || apiErr.contains("not found"):
		return types.NewNotFoundError(resourceFor(op), name, op, apiErr)
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return types.NewUpstreamUnavailableError("descope", op, apiErr)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return types.NewUpstreamUnavailableError("descope", op, apiErr)
	case status >= http.StatusBadRequest:
		return types.NewValidationError(op, apiErr)
	default:
		return types.NewUpstreamUnavailableError("descope", op, apiErr)
	}
}

func resourceFor(op string) string {
	switch op {
	case "AssociateRole", "CreateRole":
		return "role"
	default:
		return "user"
	}
}
