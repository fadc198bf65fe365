// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package descope

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/user-migrator/internal/logging"
	"github.com/canonical/user-migrator/internal/monitoring"
	"github.com/canonical/user-migrator/internal/tracing"
	"github.com/canonical/user-migrator/internal/types"
)

const (
	createUserPath    = "/v1/mgmt/user/create"
	updateStatusPath  = "/v1/mgmt/user/update/status"
	addRolesPath      = "/v1/mgmt/user/update/role/add"
	createRolePath    = "/v1/mgmt/role/create"
	searchUsersPath   = "/v2/mgmt/user/search"
	userStatusEnabled = "enabled"
)

type Config struct {
	BaseURL       string
	ProjectID     string
	ManagementKey string

	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Timeout      time.Duration
}

// Client is a thin client for the Descope management API, covering the
// calls needed to recreate users and their roles.
//
// Creates are sent once: a lost response may hide a created resource, their
// retries belong to the caller. Every other call is retried here.
type Client struct {
	http   *retryablehttp.Client
	single *retryablehttp.Client

	baseURL       string
	projectID     string
	managementKey string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type createUserRequest struct {
	*types.MigrationRecord

	Test bool `json:"test"`
}

type userResponse struct {
	User struct {
		UserID   string   `json:"userId"`
		LoginIDs []string `json:"loginIds"`
	} `json:"user"`
}

type updateStatusRequest struct {
	LoginID string `json:"loginId"`
	Status  string `json:"status"`
}

type addRolesRequest struct {
	LoginID   string   `json:"loginId"`
	RoleNames []string `json:"roleNames"`
}

type createRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type searchUsersRequest struct {
	CustomAttributes map[string]any `json:"customAttributes"`
	Limit            int            `json:"limit"`
}

type searchUsersResponse struct {
	Users []struct {
		UserID string `json:"userId"`
	} `json:"users"`
}

func (c *Client) CreateUser(ctx context.Context, record *types.MigrationRecord) (string, error) {
	ctx, span := c.tracer.Start(ctx, "descope.Client.CreateUser")
	defer span.End()

	out := new(userResponse)
	if err := c.post(ctx, "CreateUser", record.LoginID, createUserPath, &createUserRequest{MigrationRecord: record}, out); err != nil {
		return "", err
	}

	if out.User.UserID == "" {
		return "", types.NewValidationError("CreateUser", fmt.Errorf("response for %s carries no user id", record.LoginID))
	}

	return out.User.UserID, nil
}

func (c *Client) ActivateUser(ctx context.Context, loginID string) error {
	ctx, span := c.tracer.Start(ctx, "descope.Client.ActivateUser")
	defer span.End()

	return c.post(ctx, "ActivateUser", loginID, updateStatusPath, &updateStatusRequest{LoginID: loginID, Status: userStatusEnabled}, nil)
}

func (c *Client) AssociateRole(ctx context.Context, loginID, role string) error {
	ctx, span := c.tracer.Start(ctx, "descope.Client.AssociateRole")
	defer span.End()

	return c.post(ctx, "AssociateRole", role, addRolesPath, &addRolesRequest{LoginID: loginID, RoleNames: []string{role}}, nil)
}

func (c *Client) CreateRole(ctx context.Context, name, description string) error {
	ctx, span := c.tracer.Start(ctx, "descope.Client.CreateRole")
	defer span.End()

	return c.post(ctx, "CreateRole", name, createRolePath, &createRoleRequest{Name: name, Description: description}, nil)
}

// FindBySourceID looks for a user carrying sourceID in the traceability
// attribute, i.e. a user created by a previous run.
func (c *Client) FindBySourceID(ctx context.Context, sourceID string) (string, bool, error) {
	ctx, span := c.tracer.Start(ctx, "descope.Client.FindBySourceID")
	defer span.End()

	rq := &searchUsersRequest{
		CustomAttributes: map[string]any{types.TraceabilityAttribute: sourceID},
		Limit:            1,
	}

	out := new(searchUsersResponse)
	if err := c.post(ctx, "FindBySourceID", sourceID, searchUsersPath, rq, out); err != nil {
		return "", false, err
	}

	if len(out.Users) == 0 {
		return "", false, nil
	}

	return out.Users[0].UserID, true, nil
}

func (c *Client) post(ctx context.Context, op, name, path string, payload, out any) error {
	start := time.Now()
	defer func() {
		tags := map[string]string{"dependency": "descope", "operation": op}
		if err := c.monitor.SetResponseTimeMetric(tags, time.Since(start).Seconds()); err != nil {
			c.logger.Debugf("failed to record %s duration: %v", op, err)
		}
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return types.NewValidationError(op, err)
	}

	rq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return types.NewValidationError(op, err)
	}
	rq.Header.Set("Authorization", fmt.Sprintf("Bearer %s:%s", c.projectID, c.managementKey))
	rq.Header.Set("Content-Type", "application/json")

	hc := c.http
	if isCreate(path) {
		hc = c.single
	}

	rs, err := hc.Do(rq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return types.NewUpstreamUnavailableError("descope", op, err)
	}
	defer rs.Body.Close()

	data, err := io.ReadAll(rs.Body)
	if err != nil {
		return types.NewUpstreamUnavailableError("descope", op, err)
	}

	if rs.StatusCode >= http.StatusMultipleChoices {
		return classifyResponse(op, name, rs.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return types.NewUpstreamUnavailableError("descope", op, fmt.Errorf("malformed response: %w", err))
		}
	}

	return nil
}

func isCreate(path string) bool {
	return path == createUserPath || path == createRolePath
}

func newRetryableClient(c Config, retryMax int, transport http.RoundTripper, logger logging.LoggerInterface) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	if c.RetryWaitMin > 0 {
		rc.RetryWaitMin = c.RetryWaitMin
	}
	if c.RetryWaitMax > 0 {
		rc.RetryWaitMax = c.RetryWaitMax
	}
	if c.Timeout > 0 {
		rc.HTTPClient.Timeout = c.Timeout
	}
	rc.HTTPClient.Transport = transport
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = logging.NewLeveledLogger(logger)

	return rc
}

func NewClient(c Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	if c.ProjectID == "" || c.ManagementKey == "" {
		return nil, ErrMissingCredentials
	}

	client := new(Client)

	client.baseURL = strings.TrimSuffix(c.BaseURL, "/")
	client.projectID = c.ProjectID
	client.managementKey = c.ManagementKey

	transport := otelhttp.NewTransport(cleanhttp.DefaultPooledTransport())

	client.http = newRetryableClient(c, c.RetryMax, transport, logger)
	client.single = newRetryableClient(c, 0, transport, logger)

	client.tracer = tracer
	client.monitor = monitor
	client.logger = logger

	return client, nil
}
