// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package importer

import (
	"context"
	"iter"

	"github.com/canonical/user-migrator/internal/types"
)

// DriverInterface defines the contract for the source directory the users
// are read from. Implementations are read-only.
type DriverInterface interface {
	Prefix() string
	// SchemaAttributes returns the attribute names declared by the source pool.
	SchemaAttributes(ctx context.Context) (map[string]struct{}, error)
	// ListUsers lazily walks every user of the pool, paginating as needed.
	// Iteration stops at the first error.
	ListUsers(ctx context.Context) iter.Seq2[*types.SourceUser, error]
	ListGroupsForUser(ctx context.Context, username string) ([]string, error)
	ListGroups(ctx context.Context) ([]*types.SourceGroup, error)
}

// WriterInterface defines the write operations the Importer needs from the
// destination identity service. Calls are not idempotent.
type WriterInterface interface {
	CreateUser(ctx context.Context, record *types.MigrationRecord) (string, error)
	ActivateUser(ctx context.Context, loginID string) error
	AssociateRole(ctx context.Context, loginID, role string) error
	CreateRole(ctx context.Context, name, description string) error
	FindBySourceID(ctx context.Context, sourceID string) (string, bool, error)
}
