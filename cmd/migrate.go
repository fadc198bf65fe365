// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/canonical/user-migrator/internal/cognito"
	"github.com/canonical/user-migrator/internal/config"
	"github.com/canonical/user-migrator/internal/descope"
	"github.com/canonical/user-migrator/internal/importer"
	"github.com/canonical/user-migrator/internal/logging"
	"github.com/canonical/user-migrator/internal/monitoring/prometheus"
	"github.com/canonical/user-migrator/internal/tracing"
	"github.com/canonical/user-migrator/internal/types"
	"github.com/canonical/user-migrator/pkg/web"
)

const serviceName = "user-migrator"

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run a migration pass from the Cognito user pool to Descope",
	Long: `Read every user of the configured Cognito user pool, recreate it in Descope
and associate it with a role per Cognito group.

Per-user failures are logged and reported in the final summary, they do not
stop the pass. The command exits non-zero only when the pass cannot start or
is interrupted.

Example:
  user-migrator migrate --env-file .env --dry-run`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMigrate(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addMigrateFlags(migrateCmd)

	rootCmd.AddCommand(migrateCmd)
}

func addMigrateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Map users and log what would be written without calling Descope")
	cmd.Flags().Bool("create-roles", true, "Create a Descope role for every Cognito group before migrating users")
	cmd.Flags().Bool("skip-migrated", true, "Skip users already carrying their Cognito id in Descope")
	cmd.Flags().String("env-file", "", "Dotenv file to load before reading the environment (defaults to .env when present)")
}

func runMigrate(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	createRoles, _ := cmd.Flags().GetBool("create-roles")
	skipMigrated, _ := cmd.Flags().GetBool("skip-migrated")

	specs, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logger := logging.NewLoggerWithEncoding(specs.LogLevel, specs.LogEncoding)
	defer logger.Sync()

	runID := uuid.NewString()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tracer.Shutdown(ctx); err != nil {
			logger.Warnf("failed to flush traces: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cognitoClient, err := cognito.NewCognitoClient(
		ctx,
		cognito.Config{
			Region:          specs.CognitoRegion,
			AccessKeyID:     specs.AWSAccessKeyID,
			SecretAccessKey: specs.AWSSecretAccessKey,
			SessionToken:    specs.AWSSessionToken,
			Endpoint:        specs.CognitoEndpoint,
			MaxAttempts:     specs.CognitoMaxAttempts,
		},
	)
	if err != nil {
		return types.NewConfigurationError("COGNITO_REGION", err.Error())
	}

	writer, err := descope.NewClient(
		descope.Config{
			BaseURL:       specs.DescopeBaseURL,
			ProjectID:     specs.DescopeProjectID,
			ManagementKey: specs.DescopeManagementKey,
			RetryMax:      specs.DescopeRetryMax,
			RetryWaitMin:  specs.DescopeRetryWaitMin,
			RetryWaitMax:  specs.DescopeRetryWaitMax,
			Timeout:       specs.DescopeTimeout,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return types.NewConfigurationError("DESCOPE_MANAGEMENT_KEY", err.Error())
	}

	driver := importer.NewCognitoDriver(cognitoClient, specs.CognitoUserPoolID, tracer, monitor, logger)

	retry := importer.DefaultRetryConfig()
	retry.MaxRetries = uint(specs.MigrationMaxRetries)

	imp := importer.NewImporter(
		driver,
		writer,
		importer.Options{
			RunID:        runID,
			DryRun:       dryRun,
			SkipMigrated: skipMigrated,
			CreateRoles:  createRoles,
			Retry:        retry,
		},
		tracer,
		monitor,
		logger,
	)

	if specs.MetricsPort > 0 {
		srv := &http.Server{
			Addr:         fmt.Sprintf("0.0.0.0:%v", specs.MetricsPort),
			WriteTimeout: time.Second * 60,
			ReadTimeout:  time.Second * 15,
			IdleTimeout:  time.Second * 60,
			Handler:      web.NewRouter(runID, monitor.Registry(), tracer, monitor, logger),
		}

		go func() {
			logger.Infof("Serving status and metrics on port %v", specs.MetricsPort)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("status server error: %v", err)
			}
		}()

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warnf("status server shutdown error: %v", err)
			}
		}()
	}

	logger.Security().SystemStartup()
	defer logger.Security().SystemShutdown()

	summary, runErr := imp.Run(ctx)

	if specs.PushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := monitor.Push(pushCtx, specs.PushgatewayURL, runID); err != nil {
			logger.Warnf("failed to push metrics to %s: %v", specs.PushgatewayURL, err)
		}
		cancel()
	}

	if summary != nil {
		printSummary(cmd.OutOrStdout(), summary)
	}

	if runErr != nil {
		return fmt.Errorf("migration run %s aborted: %w", runID, runErr)
	}

	return nil
}

func printSummary(w io.Writer, s *types.Summary) {
	fmt.Fprintf(w, "Run %s finished in %s\n", s.RunID, s.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  total:                %d\n", s.Total)
	fmt.Fprintf(w, "  created:              %d\n", s.Created)
	fmt.Fprintf(w, "  roles associated:     %d\n", s.RolesAssociated)
	fmt.Fprintf(w, "  partially associated: %d\n", s.PartiallyAssociated)
	fmt.Fprintf(w, "  skipped:              %d\n", s.Skipped)
	fmt.Fprintf(w, "  failed:               %d\n", s.Failed)
	if s.DryRun > 0 {
		fmt.Fprintf(w, "  dry run:              %d\n", s.DryRun)
	}
	if s.Incomplete {
		fmt.Fprintln(w, "  listing the source stopped early, the pass is incomplete")
	}
}
