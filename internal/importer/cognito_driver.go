// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package importer

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/canonical/user-migrator/internal/cognito"
	"github.com/canonical/user-migrator/internal/logging"
	"github.com/canonical/user-migrator/internal/monitoring"
	"github.com/canonical/user-migrator/internal/tracing"
	"github.com/canonical/user-migrator/internal/types"
)

const subAttribute = "sub"

var _ DriverInterface = (*CognitoDriver)(nil)

// CognitoDriver implements DriverInterface on top of an AWS Cognito user pool.
type CognitoDriver struct {
	client cognito.CognitoInterface
	poolID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewCognitoDriver creates a new CognitoDriver reading from the given pool.
func NewCognitoDriver(client cognito.CognitoInterface, poolID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *CognitoDriver {
	d := new(CognitoDriver)

	d.client = client
	d.poolID = poolID

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

func (d *CognitoDriver) Prefix() string {
	return "cognito"
}

func (d *CognitoDriver) SchemaAttributes(ctx context.Context) (map[string]struct{}, error) {
	ctx, span := d.tracer.Start(ctx, "importer.CognitoDriver.SchemaAttributes")
	defer span.End()

	defer d.observe("DescribeUserPool", time.Now())

	out, err := d.client.DescribeUserPool(ctx, &cip.DescribeUserPoolInput{UserPoolId: aws.String(d.poolID)})
	if err != nil {
		return nil, d.classifyError(err, "DescribeUserPool", "user pool", d.poolID)
	}

	schema := make(map[string]struct{})
	if out.UserPool == nil {
		return schema, nil
	}
	for _, attr := range out.UserPool.SchemaAttributes {
		if name := aws.ToString(attr.Name); name != "" {
			schema[name] = struct{}{}
		}
	}

	return schema, nil
}

// ListUsers walks the pool one page at a time, a new page is only requested
// once the consumer is done with the previous one
func (d *CognitoDriver) ListUsers(ctx context.Context) iter.Seq2[*types.SourceUser, error] {
	return func(yield func(*types.SourceUser, error) bool) {
		p := cip.NewListUsersPaginator(d.client, &cip.ListUsersInput{UserPoolId: aws.String(d.poolID)})

		for page := 1; p.HasMorePages(); page++ {
			start := time.Now()
			out, err := p.NextPage(ctx)
			d.observe("ListUsers", start)

			if err != nil {
				yield(nil, d.classifyError(err, "ListUsers", "user pool", d.poolID))
				return
			}

			d.logger.Debugf("Fetched page %d with %d users from pool %s", page, len(out.Users), d.poolID)

			for _, u := range out.Users {
				if !yield(toSourceUser(u), nil) {
					return
				}
			}
		}
	}
}

func (d *CognitoDriver) ListGroupsForUser(ctx context.Context, username string) ([]string, error) {
	ctx, span := d.tracer.Start(ctx, "importer.CognitoDriver.ListGroupsForUser")
	defer span.End()

	p := cip.NewAdminListGroupsForUserPaginator(d.client, &cip.AdminListGroupsForUserInput{
		UserPoolId: aws.String(d.poolID),
		Username:   aws.String(username),
	})

	groups := make([]string, 0)
	for p.HasMorePages() {
		start := time.Now()
		out, err := p.NextPage(ctx)
		d.observe("AdminListGroupsForUser", start)

		if err != nil {
			return nil, d.classifyError(err, "AdminListGroupsForUser", "user", username)
		}
		for _, g := range out.Groups {
			if name := aws.ToString(g.GroupName); name != "" {
				groups = append(groups, name)
			}
		}
	}

	return groups, nil
}

func (d *CognitoDriver) ListGroups(ctx context.Context) ([]*types.SourceGroup, error) {
	ctx, span := d.tracer.Start(ctx, "importer.CognitoDriver.ListGroups")
	defer span.End()

	p := cip.NewListGroupsPaginator(d.client, &cip.ListGroupsInput{UserPoolId: aws.String(d.poolID)})

	groups := make([]*types.SourceGroup, 0)
	for p.HasMorePages() {
		start := time.Now()
		out, err := p.NextPage(ctx)
		d.observe("ListGroups", start)

		if err != nil {
			return nil, d.classifyError(err, "ListGroups", "user pool", d.poolID)
		}
		for _, g := range out.Groups {
			name := aws.ToString(g.GroupName)
			if name == "" {
				continue
			}
			groups = append(groups, &types.SourceGroup{
				Name:        name,
				Description: aws.ToString(g.Description),
			})
		}
	}

	return groups, nil
}

func (d *CognitoDriver) observe(op string, start time.Time) {
	tags := map[string]string{"dependency": d.Prefix(), "operation": op}
	if err := d.monitor.SetResponseTimeMetric(tags, time.Since(start).Seconds()); err != nil {
		d.logger.Debugf("failed to record %s duration: %v", op, err)
	}
}

// classifyError maps SDK failures onto the migration error taxonomy.
// Cancellation is returned untouched so the caller can stop the pass.
func (d *CognitoDriver) classifyError(err error, op, resource, name string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var rnf *cognitotypes.ResourceNotFoundException
	var unf *cognitotypes.UserNotFoundException
	if errors.As(err, &rnf) || errors.As(err, &unf) {
		return types.NewNotFoundError(resource, name, op, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ResourceNotFoundException", "UserNotFoundException":
			return types.NewNotFoundError(resource, name, op, err)
		case "InvalidParameterException":
			return types.NewValidationError(op, err)
		}
	}

	// throttling, expired credentials, 5xx and network failures all surface
	// as an unavailable upstream
	return types.NewUpstreamUnavailableError(d.Prefix(), op, err)
}

func toSourceUser(u cognitotypes.UserType) *types.SourceUser {
	su := new(types.SourceUser)

	su.Username = aws.ToString(u.Username)
	su.Enabled = u.Enabled
	su.Status = string(u.UserStatus)
	su.CreatedAt = aws.ToTime(u.UserCreateDate)
	su.Attributes = make(map[string]string, len(u.Attributes))

	for _, attr := range u.Attributes {
		name := aws.ToString(attr.Name)
		if name == "" {
			continue
		}
		su.Attributes[name] = aws.ToString(attr.Value)
	}

	su.ID = su.Attributes[subAttribute]
	if su.ID == "" {
		su.ID = su.Username
	}

	return su
}
