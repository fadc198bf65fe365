// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/canonical/user-migrator/internal/logging"
	"github.com/canonical/user-migrator/internal/monitoring"
	"github.com/canonical/user-migrator/internal/tracing"
	"github.com/canonical/user-migrator/internal/types"
)

const (
	actor       = "user-migrator"
	destination = "descope"
	// source id searched for before the pass, no user carries it
	connectivityCheckSourceID = "user-migrator-connectivity-check"
)

// Options tune a migration pass.
type Options struct {
	RunID string
	// DryRun maps every user and logs what would be written, without
	// calling the destination
	DryRun bool
	// SkipMigrated looks the source identifier up in the destination before
	// creating a user and skips users that were migrated by a previous run
	SkipMigrated bool
	// CreateRoles creates a destination role for every source group before
	// the users are migrated
	CreateRoles bool
	// Retry bounds the retries of user and role creation, every other call
	// is retried by the client of its upstream
	Retry RetryConfig
}

// Importer runs a migration pass, reading users from a driver and writing
// them to the destination one at a time.
type Importer struct {
	driver DriverInterface
	writer WriterInterface
	mapper *Mapper

	options Options

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewImporter creates a new Importer with the given driver, writer and options.
func NewImporter(driver DriverInterface, writer WriterInterface, options Options, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Importer {
	i := new(Importer)

	i.driver = driver
	i.writer = writer
	i.mapper = NewMapper()
	i.options = options

	i.tracer = tracer
	i.monitor = monitor
	i.logger = logger

	return i
}

// Run executes the migration pass:
// 1. Reads the source schema, failing fast if the pool is unreachable.
// 2. Checks the destination answers authenticated calls.
// 3. Optionally creates a destination role per source group.
// 4. Migrates each user independently, one failure never stops the pass.
//
// An error is returned only when the pass cannot start or the context is
// cancelled, per-user failures are reported through the summary.
func (i *Importer) Run(ctx context.Context) (*types.Summary, error) {
	ctx, span := i.tracer.Start(ctx, "importer.Importer.Run")
	defer span.End()

	start := time.Now()
	summary := &types.Summary{RunID: i.options.RunID}

	schema, err := i.driver.SchemaAttributes(ctx)
	if err != nil {
		i.setAvailability(i.driver.Prefix(), 0)
		return nil, fmt.Errorf("failed to read schema from %s: %w", i.driver.Prefix(), err)
	}
	i.setAvailability(i.driver.Prefix(), 1)

	if !i.options.DryRun {
		if err := i.checkDestination(ctx); err != nil {
			return nil, err
		}
	}

	i.logger.Infof("Starting migration run %s (dry run: %t), %d schema attributes", i.options.RunID, i.options.DryRun, len(schema))

	if i.options.CreateRoles {
		i.createRoles(ctx)
	}

	for u, err := range i.driver.ListUsers(ctx) {
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return i.finish(summary, start), ctxErr
			}
			if summary.Total == 0 {
				i.setAvailability(i.driver.Prefix(), 0)
				return nil, fmt.Errorf("failed to list users from %s: %w", i.driver.Prefix(), err)
			}

			i.logger.Errorf("Listing users stopped after %d users: %v", summary.Total, err)
			summary.Incomplete = true
			break
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			i.logger.Warnf("Migration interrupted after %d users", summary.Total)
			return i.finish(summary, start), ctxErr
		}

		outcome := i.migrateUser(ctx, u, schema)
		summary.Record(outcome)
		i.report(outcome)
	}

	return i.finish(summary, start), nil
}

func (i *Importer) finish(summary *types.Summary, start time.Time) *types.Summary {
	summary.Elapsed = time.Since(start)

	i.logger.Infof(
		"Migration complete: total=%d created=%d roles_associated=%d partially_associated=%d skipped=%d failed=%d dry_run=%d incomplete=%t elapsed=%s",
		summary.Total,
		summary.Created,
		summary.RolesAssociated,
		summary.PartiallyAssociated,
		summary.Skipped,
		summary.Failed,
		summary.DryRun,
		summary.Incomplete,
		summary.Elapsed.Round(time.Millisecond),
	)

	return summary
}

// checkDestination issues one authenticated read, bad credentials or an
// unreachable destination abort the run
func (i *Importer) checkDestination(ctx context.Context) error {
	_, _, err := i.writer.FindBySourceID(ctx, connectivityCheckSourceID)
	switch {
	case err == nil:
		i.setAvailability(destination, 1)
	case errors.Is(err, types.ErrUpstreamUnavailable):
		i.setAvailability(destination, 0)
		return fmt.Errorf("failed to reach %s: %w", destination, err)
	default:
		i.logger.Warnf("Connectivity check against %s returned: %v", destination, err)
	}

	return nil
}

func (i *Importer) createRoles(ctx context.Context) {
	ctx, span := i.tracer.Start(ctx, "importer.Importer.createRoles")
	defer span.End()

	groups, err := i.driver.ListGroups(ctx)
	if err != nil {
		i.logger.Errorf("Failed to list groups, roles will not be created: %v", err)
		return
	}

	created := 0
	for _, g := range groups {
		if i.options.DryRun {
			i.logger.Infof("Dry run: would create role %q", g.Name)
			continue
		}

		err := withRetryErr(ctx, i.options.Retry, func() error {
			return i.writer.CreateRole(ctx, g.Name, g.Description)
		})

		switch {
		case err == nil:
			created++
			i.logger.Infof("Role %q created", g.Name)
			i.logger.Security().AdminAction(actor, "create_role", g.Name)
		case errors.Is(err, types.ErrConflictExists):
			i.logger.Debugf("Role %q already exists", g.Name)
		default:
			i.logger.Errorf("Failed to create role %q: %v", g.Name, err)
		}
	}

	i.logger.Infof("Roles processed: %d groups, %d created", len(groups), created)
}

func (i *Importer) migrateUser(ctx context.Context, u *types.SourceUser, schema map[string]struct{}) *types.MigrationOutcome {
	ctx, span := i.tracer.Start(ctx, "importer.Importer.migrateUser")
	defer span.End()

	o := &types.MigrationOutcome{SourceID: u.ID, Status: types.OutcomePending}
	span.SetAttributes(attribute.String("source.id", u.ID))

	defer func() {
		span.SetAttributes(attribute.String("outcome", string(o.Status)))
		if o.Status == types.OutcomeFailed {
			span.SetStatus(codes.Error, fmt.Sprint(o.Err))
		}
	}()

	groups, err := i.driver.ListGroupsForUser(ctx, u.Username)
	if err != nil {
		return fail(o, fmt.Errorf("failed to list groups: %w", err))
	}

	// the source user is shared with the driver, work on a copy
	user := *u
	user.Groups = groups

	record, err := i.mapper.Map(&user, schema)
	if err != nil {
		return fail(o, err)
	}
	o.LoginID = record.LoginID
	o.Status = types.OutcomeMapped

	if i.options.DryRun {
		i.logger.Infof("Dry run: would create user %s (source id %s) with roles [%s]", record.LoginID, u.ID, strings.Join(record.Roles, ", "))
		o.Status = types.OutcomeDryRun
		return o
	}

	if i.options.SkipMigrated {
		existing, found, err := i.writer.FindBySourceID(ctx, u.ID)
		switch {
		case err != nil:
			i.logger.Warnf("Failed to check whether user %s was already migrated, creating it anyway: %v", record.LoginID, err)
		case found:
			o.DestinationID = existing
			o.Status = types.OutcomeSkipped
			return o
		}
	}

	attempts := 0
	id, err := withRetry(ctx, i.options.Retry, func() (string, error) {
		attempts++
		return i.writer.CreateUser(ctx, record)
	})
	// only unavailable upstreams are retried, a conflict after a retry may
	// come from a first attempt whose response was lost
	if attempts > 1 && errors.Is(err, types.ErrConflictExists) {
		id, err = i.reconcileCreate(ctx, record, err)
	}
	if err != nil {
		if errors.Is(err, types.ErrConflictExists) {
			o.Status = types.OutcomeSkipped
			o.Err = err
			return o
		}
		return fail(o, fmt.Errorf("failed to create user: %w", err))
	}

	o.DestinationID = id
	o.Status = types.OutcomeCreated
	i.logger.Infof("User %s created with id %s", record.LoginID, id)
	i.logger.Security().AdminAction(actor, "create_user", record.LoginID)

	if err := i.writer.ActivateUser(ctx, record.LoginID); err != nil {
		i.logger.Warnf("Failed to activate user %s: %v", record.LoginID, err)
	}

	for _, role := range record.Roles {
		if err := i.writer.AssociateRole(ctx, record.LoginID, role); err != nil {
			i.logger.Errorf("Failed to associate user %s with role %s: %v", record.LoginID, role, err)
			o.FailedRoles = append(o.FailedRoles, role)
			continue
		}

		i.logger.Infof("User %s associated with role %s", record.LoginID, role)
		o.AssociatedRoles = append(o.AssociatedRoles, role)
	}

	if len(o.FailedRoles) > 0 {
		o.Status = types.OutcomePartiallyAssociated
		o.Err = fmt.Errorf("%d of %d role associations failed", len(o.FailedRoles), len(record.Roles))
	} else {
		o.Status = types.OutcomeRolesAssociated
	}

	return o
}

// reconcileCreate claims a conflicting user when it carries the source id of
// the record, otherwise the conflict stands
func (i *Importer) reconcileCreate(ctx context.Context, record *types.MigrationRecord, conflict error) (string, error) {
	id, found, err := i.writer.FindBySourceID(ctx, record.SourceID)
	if err != nil {
		i.logger.Warnf("Failed to look up source id %s after a conflicting retry of %s: %v", record.SourceID, record.LoginID, err)
		return "", conflict
	}
	if !found {
		return "", conflict
	}

	i.logger.Infof("User %s was created by an earlier attempt whose response was lost", record.LoginID)
	return id, nil
}

func (i *Importer) report(o *types.MigrationOutcome) {
	switch o.Status {
	case types.OutcomeFailed:
		i.logger.Errorf("User %s (source id %s) failed: %v", o.LoginID, o.SourceID, o.Err)
	case types.OutcomeSkipped:
		if o.Err != nil {
			i.logger.Infof("User %s (source id %s) skipped: %v", o.LoginID, o.SourceID, o.Err)
		} else {
			i.logger.Infof("User %s (source id %s) skipped: already migrated as %s", o.LoginID, o.SourceID, o.DestinationID)
		}
	case types.OutcomePartiallyAssociated:
		i.logger.Warnf("User %s (source id %s) partially associated, failed roles: [%s]", o.LoginID, o.SourceID, strings.Join(o.FailedRoles, ", "))
	}

	if err := i.monitor.IncOutcomeMetric(map[string]string{"status": string(o.Status)}); err != nil {
		i.logger.Debugf("failed to record outcome: %v", err)
	}
}

func (i *Importer) setAvailability(component string, v float64) {
	if err := i.monitor.SetDependencyAvailability(map[string]string{"component": component}, v); err != nil {
		i.logger.Debugf("failed to record availability of %s: %v", component, err)
	}
}

func fail(o *types.MigrationOutcome, err error) *types.MigrationOutcome {
	o.Status = types.OutcomeFailed
	o.Err = err
	return o
}
