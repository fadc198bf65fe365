// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package importer

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/canonical/user-migrator/internal/types"
)

// RetryConfig bounds the retries of calls failing with an unavailable
// upstream, every other error is returned on the first attempt
type RetryConfig struct {
	MaxRetries      uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
	}
}

func withRetry[T any](ctx context.Context, c RetryConfig, op func() (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	if c.InitialInterval > 0 {
		b.InitialInterval = c.InitialInterval
	}
	if c.MaxInterval > 0 {
		b.MaxInterval = c.MaxInterval
	}

	v, err := backoff.Retry(
		ctx,
		func() (T, error) {
			v, err := op()
			if err != nil && !errors.Is(err, types.ErrUpstreamUnavailable) {
				return v, backoff.Permanent(err)
			}
			return v, err
		},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(c.MaxRetries+1),
	)

	// the tries limit is checked before permanent errors are unwrapped
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}

	return v, err
}

func withRetryErr(ctx context.Context, c RetryConfig, op func() error) error {
	_, err := withRetry(ctx, c, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
