/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package xio provides a resilient client for the Crestron XiO Cloud
// device-management API: bearer-token transport with retry and backoff, a
// short-TTL response cache, token-bucket rate limiting, and bounded parallel
// fan-out for multi-device operations.
package xio

import (
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/carverauto/xiobridge/pkg/logger"
)

// Client talks to the XiO Cloud API for a single account. The cache and
// limiter are shared across all concurrent calls on the client.
type Client struct {
	config     *Config
	httpClient HTTPClient
	limiter    *rate.Limiter
	cache      *responseCache
	logger     zerolog.Logger
}

// ClientOption customizes a Client, mainly for tests.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock replaces the cache clock.
func WithClock(clock Clock) ClientOption {
	return func(c *Client) {
		c.cache.clock = clock
	}
}

// NewClient validates cfg and builds a ready-to-use client.
func NewClient(cfg *Config, log logger.Logger, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewTestLogger()
	}

	c := &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.requestTimeout(),
		},
		// rate.Limiter admits waiters in FIFO order, so a large fan-out
		// batch cannot starve a single-device call that arrived first.
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cache:   newResponseCache(cfg.cacheTTL(), realClock{}),
		logger:  log.WithComponent("xio-client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MaxBulkRows reports the configured bulk claim job size limit.
func (c *Client) MaxBulkRows() int {
	return c.config.MaxBulkRows
}
