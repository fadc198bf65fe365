// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cognito

import (
	"context"
	"testing"
)

func TestNewCognitoClient(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	client, err := NewCognitoClient(context.Background(), Config{
		Region:          "eu-west-1",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "secret",
		Endpoint:        "http://localhost:9229",
		MaxAttempts:     2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := client.Options()
	if opts.Region != "eu-west-1" {
		t.Fatalf("expected region eu-west-1, got %s", opts.Region)
	}
	if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://localhost:9229" {
		t.Fatalf("expected endpoint override, got %v", opts.BaseEndpoint)
	}

	creds, err := opts.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error retrieving credentials: %v", err)
	}
	if creds.AccessKeyID != "AKIA" {
		t.Fatalf("expected static credentials, got %s", creds.AccessKeyID)
	}
}
