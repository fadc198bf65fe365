// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/canonical/user-migrator/internal/types"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("COGNITO_USER_POOL_ID", "eu-west-1_abc")
	t.Setenv("COGNITO_REGION", "eu-west-1")
	t.Setenv("DESCOPE_PROJECT_ID", "P123")
	t.Setenv("DESCOPE_MANAGEMENT_KEY", "K123")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Chdir(t.TempDir())

	specs, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.DescopeBaseURL != "https://api.descope.com" {
		t.Fatalf("unexpected base url %q", specs.DescopeBaseURL)
	}
	if specs.DescopeRetryWaitMin != 500*time.Millisecond {
		t.Fatalf("unexpected retry wait min %v", specs.DescopeRetryWaitMin)
	}
	if specs.MigrationMaxRetries != 3 {
		t.Fatalf("unexpected max retries %d", specs.MigrationMaxRetries)
	}
	if specs.CognitoMaxAttempts != 5 {
		t.Fatalf("unexpected max attempts %d", specs.CognitoMaxAttempts)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name     string
		unset    string
		expected string
	}{
		{name: "missing pool", unset: "COGNITO_USER_POOL_ID", expected: "COGNITO_USER_POOL_ID"},
		{name: "missing management key", unset: "DESCOPE_MANAGEMENT_KEY", expected: "DESCOPE_MANAGEMENT_KEY"},
		{name: "missing access key", unset: "AWS_ACCESS_KEY_ID", expected: "AWS_ACCESS_KEY_ID"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(test.unset, "")
			t.Chdir(t.TempDir())

			_, err := Load("")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, types.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}

			var merr *types.MigrationError
			if !errors.As(err, &merr) {
				t.Fatalf("expected a MigrationError, got %T", err)
			}
			if merr.Metadata["field"] != test.expected {
				t.Fatalf("expected field %s, got %s", test.expected, merr.Metadata["field"])
			}
		})
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DESCOPE_PROJECT_ID", "")
	os.Unsetenv("DESCOPE_PROJECT_ID")

	dir := t.TempDir()
	envFile := filepath.Join(dir, "migration.env")
	if err := os.WriteFile(envFile, []byte("DESCOPE_PROJECT_ID=Pfromfile\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
	})

	specs, err := Load(envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if specs.DescopeProjectID != "Pfromfile" {
		t.Fatalf("expected project id from file, got %q", specs.DescopeProjectID)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	setRequiredEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if !errors.Is(err, types.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
