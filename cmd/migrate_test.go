// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/user-migrator/internal/types"
)

func newMigrateCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{}
	addMigrateFlags(cmd)
	cmd.SetOut(out)

	return cmd
}

func TestMigrateFlagDefaults(t *testing.T) {
	for _, c := range []*cobra.Command{rootCmd, migrateCmd} {
		createRoles, _ := c.Flags().GetBool("create-roles")
		skipMigrated, _ := c.Flags().GetBool("skip-migrated")
		dryRun, _ := c.Flags().GetBool("dry-run")

		if !createRoles || !skipMigrated || dryRun {
			t.Fatalf("unexpected defaults on %s: create-roles=%t skip-migrated=%t dry-run=%t", c.Name(), createRoles, skipMigrated, dryRun)
		}
	}
}

func TestMigrateCmdMissingConfiguration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COGNITO_USER_POOL_ID", "")

	err := runMigrate(newMigrateCmd(new(bytes.Buffer)))
	if !errors.Is(err, types.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestMigrateCmdMissingEnvFile(t *testing.T) {
	cmd := newMigrateCmd(new(bytes.Buffer))
	_ = cmd.Flags().Set("env-file", filepath.Join(t.TempDir(), "missing.env"))

	err := runMigrate(cmd)
	if !errors.Is(err, types.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

// fakeCognito answers the AWS JSON protocol calls the driver issues
func fakeCognito(t *testing.T) *httptest.Server {
	t.Helper()

	responses := map[string]string{
		"DescribeUserPool":       `{"UserPool":{"SchemaAttributes":[{"Name":"sub"},{"Name":"email"},{"Name":"custom:department"}]}}`,
		"ListGroups":             `{"Groups":[{"GroupName":"Admins","Description":"administrators"}]}`,
		"AdminListGroupsForUser": `{"Groups":[{"GroupName":"Admins"}]}`,
		"ListUsers": `{"Users":[
			{"Username":"alice","Enabled":true,"UserStatus":"CONFIRMED","Attributes":[
				{"Name":"sub","Value":"sub-1"},
				{"Name":"email","Value":"alice@example.com"},
				{"Name":"custom:department","Value":"eng"}
			]},
			{"Username":"","Enabled":true,"UserStatus":"CONFIRMED","Attributes":[
				{"Name":"sub","Value":"sub-2"}
			]}
		]}`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := r.Header.Get("X-Amz-Target")
		op := target[strings.LastIndex(target, ".")+1:]

		body, ok := responses[op]
		if !ok {
			t.Errorf("unexpected cognito call %s", target)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

type descopeCalls struct {
	sync.Mutex
	paths   []string
	created []map[string]any

	unauthorized bool
}

func fakeDescope(t *testing.T, calls *descopeCalls) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Lock()
		defer calls.Unlock()

		calls.paths = append(calls.paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		if calls.unauthorized {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errorCode":"E011003","errorDescription":"Unauthorized access"}`))
			return
		}

		switch r.URL.Path {
		case "/v1/mgmt/user/create":
			payload := map[string]any{}
			_ = json.NewDecoder(r.Body).Decode(&payload)
			calls.created = append(calls.created, payload)
			_, _ = w.Write([]byte(`{"user":{"userId":"U1"}}`))
		case "/v2/mgmt/user/search":
			_, _ = w.Write([]byte(`{"users":[]}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func setMigrateEnv(t *testing.T, cognitoURL, descopeURL string) {
	t.Helper()

	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("COGNITO_USER_POOL_ID", "eu-west-1_abc")
	t.Setenv("COGNITO_REGION", "eu-west-1")
	t.Setenv("COGNITO_ENDPOINT", cognitoURL)
	t.Setenv("COGNITO_MAX_ATTEMPTS", "1")
	t.Setenv("DESCOPE_PROJECT_ID", "P123")
	t.Setenv("DESCOPE_MANAGEMENT_KEY", "K123")
	t.Setenv("DESCOPE_BASE_URL", descopeURL)
	t.Setenv("DESCOPE_RETRY_MAX", "0")
	t.Setenv("MIGRATION_MAX_RETRIES", "0")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("TRACING_ENABLED", "false")
	t.Setenv("PUSHGATEWAY_URL", "")
	t.Setenv("METRICS_PORT", "0")
}

func runMigrateWithTimeout(t *testing.T, out io.Writer) error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- runMigrate(newMigrateCmd(out)) }()

	select {
	case err := <-done:
		return err
	case <-time.After(30 * time.Second):
		t.Fatal("migration did not complete")
	}

	return nil
}

func TestMigrateCmdRun(t *testing.T) {
	t.Chdir(t.TempDir())

	calls := new(descopeCalls)
	setMigrateEnv(t, fakeCognito(t).URL, fakeDescope(t, calls).URL)

	out := new(bytes.Buffer)
	if err := runMigrateWithTimeout(t, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary := out.String()
	for _, line := range []string{"total:                2", "roles associated:     1", "failed:               1"} {
		if !strings.Contains(summary, line) {
			t.Fatalf("expected %q in summary, got:\n%s", line, summary)
		}
	}

	calls.Lock()
	defer calls.Unlock()

	expectedPaths := []string{
		"/v2/mgmt/user/search",
		"/v1/mgmt/role/create",
		"/v2/mgmt/user/search",
		"/v1/mgmt/user/create",
		"/v1/mgmt/user/update/status",
		"/v1/mgmt/user/update/role/add",
	}
	if strings.Join(calls.paths, ",") != strings.Join(expectedPaths, ",") {
		t.Fatalf("expected calls %v, got %v", expectedPaths, calls.paths)
	}

	attrs, _ := calls.created[0]["customAttributes"].(map[string]any)
	if calls.created[0]["loginId"] != "alice" || attrs[types.TraceabilityAttribute] != "sub-1" || attrs["department"] != "eng" {
		t.Fatalf("unexpected creation payload %v", calls.created[0])
	}
}

func TestMigrateCmdRejectedCredentials(t *testing.T) {
	t.Chdir(t.TempDir())

	calls := &descopeCalls{unauthorized: true}
	setMigrateEnv(t, fakeCognito(t).URL, fakeDescope(t, calls).URL)

	out := new(bytes.Buffer)
	err := runMigrateWithTimeout(t, out)
	if !errors.Is(err, types.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no summary, got:\n%s", out.String())
	}

	calls.Lock()
	defer calls.Unlock()

	if len(calls.paths) != 1 || calls.paths[0] != "/v2/mgmt/user/search" {
		t.Fatalf("expected only the connectivity check, got %v", calls.paths)
	}
}
