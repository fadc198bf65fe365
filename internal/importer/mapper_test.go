// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package importer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/canonical/user-migrator/internal/types"
)

func TestMapperMap(t *testing.T) {
	verified := true
	unverified := false

	tests := []struct {
		name     string
		user     *types.SourceUser
		schema   map[string]struct{}
		expected *types.MigrationRecord
	}{
		{
			name: "profile and custom attributes",
			user: &types.SourceUser{
				ID:       "sub-1",
				Username: "alice",
				Attributes: map[string]string{
					"sub":                   "sub-1",
					"email":                 "alice@example.com",
					"email_verified":        "true",
					"phone_number":          "+15555550100",
					"phone_number_verified": "false",
					"given_name":            "Alice",
					"family_name":           "Liddell",
					"custom:department":     "eng",
					"locale":                "en",
				},
				Groups: []string{"Admins", "TestGroup", "Admins"},
			},
			expected: &types.MigrationRecord{
				SourceID:      "sub-1",
				LoginID:       "alice",
				DisplayName:   "alice",
				GivenName:     "Alice",
				FamilyName:    "Liddell",
				Email:         "alice@example.com",
				Phone:         "+15555550100",
				VerifiedEmail: &verified,
				VerifiedPhone: &unverified,
				CustomAttributes: map[string]any{
					"department":                  "eng",
					"locale":                      "en",
					types.TraceabilityAttribute:   "sub-1",
					types.SourceUsernameAttribute: "alice",
				},
				Roles: []string{"Admins", "TestGroup"},
			},
		},
		{
			name: "email is the login identifier without username",
			user: &types.SourceUser{
				ID:         "sub-2",
				Attributes: map[string]string{"email": "bob@example.com", "name": "Bob"},
			},
			expected: &types.MigrationRecord{
				SourceID:    "sub-2",
				LoginID:     "bob@example.com",
				DisplayName: "Bob",
				Email:       "bob@example.com",
				CustomAttributes: map[string]any{
					types.TraceabilityAttribute: "sub-2",
				},
				Roles: []string{},
			},
		},
		{
			name: "schema filters undeclared attributes",
			user: &types.SourceUser{
				ID:       "sub-3",
				Username: "carol",
				Attributes: map[string]string{
					"custom:team":  "core",
					"custom:stale": "x",
				},
			},
			schema: map[string]struct{}{"custom:team": {}},
			expected: &types.MigrationRecord{
				SourceID:    "sub-3",
				LoginID:     "carol",
				DisplayName: "carol",
				CustomAttributes: map[string]any{
					"team":                        "core",
					types.TraceabilityAttribute:   "sub-3",
					types.SourceUsernameAttribute: "carol",
				},
				Roles: []string{},
			},
		},
		{
			name: "custom attribute cannot shadow the source identifier",
			user: &types.SourceUser{
				ID:         "sub-4",
				Username:   "dave",
				Attributes: map[string]string{"custom:" + types.TraceabilityAttribute: "forged"},
			},
			expected: &types.MigrationRecord{
				SourceID:    "sub-4",
				LoginID:     "dave",
				DisplayName: "dave",
				CustomAttributes: map[string]any{
					types.TraceabilityAttribute:   "sub-4",
					types.SourceUsernameAttribute: "dave",
				},
				Roles: []string{},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			record, err := NewMapper().Map(test.user, test.schema)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(record, test.expected) {
				t.Fatalf("expected %+v, got %+v", test.expected, record)
			}
			if record.SourceReference() != test.user.ID {
				t.Fatalf("expected source reference %q, got %q", test.user.ID, record.SourceReference())
			}
		})
	}
}

func TestMapperMapInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		user *types.SourceUser
	}{
		{name: "nil user", user: nil},
		{name: "missing source identifier", user: &types.SourceUser{Username: "alice"}},
		{name: "no login identifier", user: &types.SourceUser{ID: "sub-1"}},
		{
			name: "malformed email",
			user: &types.SourceUser{ID: "sub-1", Username: "alice", Attributes: map[string]string{"email": "not-an-email"}},
		},
		{
			name: "malformed phone",
			user: &types.SourceUser{ID: "sub-1", Username: "alice", Attributes: map[string]string{"phone_number": "555-0100"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			record, err := NewMapper().Map(test.user, nil)
			if !errors.Is(err, types.ErrInvalidRecord) {
				t.Fatalf("expected invalid record error, got %v", err)
			}
			if record != nil {
				t.Fatalf("expected no record, got %+v", record)
			}
		})
	}
}
