// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package version

// Version is overridden at build time with
// -ldflags "-X github.com/canonical/user-migrator/internal/version.Version=..."
var Version = "dev"
