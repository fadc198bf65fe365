// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/user-migrator/internal/types"
)

// EnvSpec is the environment configuration needed for a migration run
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel    string `envconfig:"log_level" default:"info"`
	LogEncoding string `envconfig:"log_encoding" default:"console"`

	PushgatewayURL string `envconfig:"pushgateway_url" validate:"omitempty,url"`
	MetricsPort    int    `envconfig:"metrics_port" default:"0" validate:"min=0,max=65535"`

	AWSAccessKeyID     string `envconfig:"aws_access_key_id" validate:"required"`
	AWSSecretAccessKey string `envconfig:"aws_secret_access_key" validate:"required"`
	AWSSessionToken    string `envconfig:"aws_session_token"`

	CognitoUserPoolID  string `envconfig:"cognito_user_pool_id" validate:"required"`
	CognitoRegion      string `envconfig:"cognito_region" validate:"required"`
	CognitoEndpoint    string `envconfig:"cognito_endpoint" validate:"omitempty,url"`
	CognitoMaxAttempts int    `envconfig:"cognito_max_attempts" default:"5" validate:"min=1"`

	DescopeProjectID     string        `envconfig:"descope_project_id" validate:"required"`
	DescopeManagementKey string        `envconfig:"descope_management_key" validate:"required"`
	DescopeBaseURL       string        `envconfig:"descope_base_url" default:"https://api.descope.com" validate:"url"`
	DescopeRetryMax      int           `envconfig:"descope_retry_max" default:"3" validate:"min=0"`
	DescopeRetryWaitMin  time.Duration `envconfig:"descope_retry_wait_min" default:"500ms"`
	DescopeRetryWaitMax  time.Duration `envconfig:"descope_retry_wait_max" default:"10s"`
	DescopeTimeout       time.Duration `envconfig:"descope_timeout" default:"30s"`

	MigrationMaxRetries int `envconfig:"migration_max_retries" default:"3" validate:"min=0"`
}

// Validate checks the required fields, the first failure is reported as a
// configuration error naming the environment variable
func (s *EnvSpec) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return types.NewConfigurationError("", err.Error())
	}

	fe := verrs[0]
	return types.NewConfigurationError(envName(fe.StructField()), fe.Tag())
}

// Load reads an optional dotenv file and then the environment, variables
// already present in the environment win over the file
func Load(envFile string) (*EnvSpec, error) {
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrConfiguration, err)
	}

	if err := specs.Validate(); err != nil {
		return nil, err
	}

	return specs, nil
}

func loadDotEnv(envFile string) error {
	if envFile == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		return types.NewConfigurationError("env-file", err.Error())
	}

	return nil
}

var envNames = map[string]string{
	"AWSAccessKeyID":       "AWS_ACCESS_KEY_ID",
	"AWSSecretAccessKey":   "AWS_SECRET_ACCESS_KEY",
	"CognitoUserPoolID":    "COGNITO_USER_POOL_ID",
	"CognitoRegion":        "COGNITO_REGION",
	"CognitoEndpoint":      "COGNITO_ENDPOINT",
	"CognitoMaxAttempts":   "COGNITO_MAX_ATTEMPTS",
	"DescopeProjectID":     "DESCOPE_PROJECT_ID",
	"DescopeManagementKey": "DESCOPE_MANAGEMENT_KEY",
	"DescopeBaseURL":       "DESCOPE_BASE_URL",
	"DescopeRetryMax":      "DESCOPE_RETRY_MAX",
	"MigrationMaxRetries":  "MIGRATION_MAX_RETRIES",
	"PushgatewayURL":       "PUSHGATEWAY_URL",
	"MetricsPort":          "METRICS_PORT",
}

func envName(field string) string {
	if n, ok := envNames[field]; ok {
		return n
	}
	return field
}
