// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "user-migrator",
	Short: "Migrate users and their group memberships from Cognito to Descope",
	Long: `Migrate users and their group memberships from an AWS Cognito user pool
to a Descope project.

Running the binary without a subcommand is the same as running "migrate".
Configuration is read from the environment, optionally seeded from a dotenv file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMigrate(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addMigrateFlags(rootCmd)
}

// Execute runs the root command, it is the only entrypoint of main
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
