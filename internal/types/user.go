// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// TraceabilityAttribute is the destination custom attribute holding the
// identifier the user had in the source pool.
const TraceabilityAttribute = "cognitoUserId"

// SourceUsernameAttribute keeps the source username next to the identifier.
const SourceUsernameAttribute = "cognitoUsername"

// SourceUser is a user as read from the source pool.
type SourceUser struct {
	ID         string            `json:"id"`
	Username   string            `json:"username"`
	Attributes map[string]string `json:"attributes"`
	Groups     []string          `json:"groups"`
	Enabled    bool              `json:"enabled"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// SourceGroup is a group of the source pool.
type SourceGroup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MigrationRecord is the destination-shaped form of a SourceUser.
type MigrationRecord struct {
	SourceID         string         `json:"-" validate:"required"`
	LoginID          string         `json:"loginId" validate:"required"`
	DisplayName      string         `json:"name,omitempty"`
	GivenName        string         `json:"givenName,omitempty"`
	FamilyName       string         `json:"familyName,omitempty"`
	Email            string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone            string         `json:"phone,omitempty" validate:"omitempty,e164"`
	VerifiedEmail    *bool          `json:"verifiedEmail,omitempty"`
	VerifiedPhone    *bool          `json:"verifiedPhone,omitempty"`
	CustomAttributes map[string]any `json:"customAttributes,omitempty"`
	Roles            []string       `json:"-"`
}

// SourceReference returns the source identifier stored in the
// traceability attribute.
func (r *MigrationRecord) SourceReference() string {
	v, _ := r.CustomAttributes[TraceabilityAttribute].(string)
	return v
}

type OutcomeStatus string

const (
	OutcomePending             OutcomeStatus = "pending"
	OutcomeMapped              OutcomeStatus = "mapped"
	OutcomeCreated             OutcomeStatus = "created"
	OutcomeRolesAssociated     OutcomeStatus = "roles_associated"
	OutcomePartiallyAssociated OutcomeStatus = "partially_associated"
	OutcomeSkipped             OutcomeStatus = "skipped"
	OutcomeFailed              OutcomeStatus = "failed"
	OutcomeDryRun              OutcomeStatus = "dry_run"
)

// Terminal reports whether the status ends the per-user state machine.
func (s OutcomeStatus) Terminal() bool {
	switch s {
	case OutcomeRolesAssociated, OutcomePartiallyAssociated, OutcomeSkipped, OutcomeFailed, OutcomeDryRun:
		return true
	default:
		return false
	}
}

// MigrationOutcome is the result of migrating a single user.
type MigrationOutcome struct {
	SourceID        string        `json:"source_id"`
	LoginID         string        `json:"login_id"`
	Status          OutcomeStatus `json:"status"`
	DestinationID   string        `json:"destination_id,omitempty"`
	Err             error         `json:"-"`
	AssociatedRoles []string      `json:"associated_roles,omitempty"`
	FailedRoles     []string      `json:"failed_roles,omitempty"`
}

// Summary aggregates the outcomes of a migration pass.
type Summary struct {
	RunID               string        `json:"run_id"`
	Total               int           `json:"total"`
	Created             int           `json:"created"`
	RolesAssociated     int           `json:"roles_associated"`
	PartiallyAssociated int           `json:"partially_associated"`
	Skipped             int           `json:"skipped"`
	Failed              int           `json:"failed"`
	DryRun              int           `json:"dry_run"`
	Elapsed             time.Duration `json:"elapsed"`
	// Incomplete is set when listing the source stopped before the last user
	Incomplete          bool          `json:"incomplete"`
}

// Record adds a terminal outcome to the summary.
func (s *Summary) Record(o *MigrationOutcome) {
	s.Total++
	switch o.Status {
	case OutcomeRolesAssociated:
		s.Created++
		s.RolesAssociated++
	case OutcomePartiallyAssociated:
		s.Created++
		s.PartiallyAssociated++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeDryRun:
		s.DryRun++
	default:
		s.Failed++
	}
}
