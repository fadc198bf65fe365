// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"reflect"
	"testing"
)

func TestSummaryRecord(t *testing.T) {
	s := &Summary{RunID: "run-1"}

	for _, status := range []OutcomeStatus{
		OutcomeRolesAssociated,
		OutcomeRolesAssociated,
		OutcomePartiallyAssociated,
		OutcomeSkipped,
		OutcomeFailed,
		OutcomeDryRun,
		OutcomeMapped,
	} {
		s.Record(&MigrationOutcome{Status: status})
	}

	expected := &Summary{
		RunID:               "run-1",
		Total:               7,
		Created:             3,
		RolesAssociated:     2,
		PartiallyAssociated: 1,
		Skipped:             1,
		Failed:              2,
		DryRun:              1,
	}
	if !reflect.DeepEqual(s, expected) {
		t.Fatalf("expected %+v, got %+v", expected, s)
	}

	if s.Created+s.Skipped+s.Failed+s.DryRun != s.Total {
		t.Fatalf("outcomes do not add up to the total: %+v", s)
	}
}

func TestOutcomeStatusTerminal(t *testing.T) {
	tests := map[OutcomeStatus]bool{
		OutcomePending:             false,
		OutcomeMapped:              false,
		OutcomeCreated:             false,
		OutcomeRolesAssociated:     true,
		OutcomePartiallyAssociated: true,
		OutcomeSkipped:             true,
		OutcomeFailed:              true,
		OutcomeDryRun:              true,
	}

	for status, terminal := range tests {
		if status.Terminal() != terminal {
			t.Fatalf("expected %s terminal to be %t", status, terminal)
		}
	}
}

func TestMigrationRecordSourceReference(t *testing.T) {
	r := &MigrationRecord{CustomAttributes: map[string]any{TraceabilityAttribute: "sub-1"}}
	if r.SourceReference() != "sub-1" {
		t.Fatalf("expected sub-1, got %q", r.SourceReference())
	}

	if (&MigrationRecord{}).SourceReference() != "" {
		t.Fatal("expected no source reference")
	}
}
