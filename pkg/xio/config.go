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

package xio

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultMaxBulkRows is the largest bulk claim job accepted by default,
// matching the XiO Cloud portal's own CSV import limit.
const DefaultMaxBulkRows = 200

const (
	defaultBaseURL        = "https://api.crestron.io/api"
	defaultCacheMinutes   = 5
	defaultMaxRetries     = 3
	defaultTimeoutSeconds = 30
	defaultRequestsPerSec = 5
	defaultBurst          = 5
	defaultMaxConcurrent  = 4
)

var (
	errMissingToken     = errors.New("token is required")
	errMissingAccountID = errors.New("account_id is required")
)

// Config holds the credentials and client policy. It is validated once and
// treated as immutable afterwards; the client never mutates it.
type Config struct {
	BaseURL              string  `json:"base_url"`
	Token                string  `json:"token"`
	AccountID            string  `json:"account_id"`
	CacheDurationMinutes int     `json:"cache_duration_minutes"`
	MaxRetries           int     `json:"max_retries"`
	TimeoutSeconds       int     `json:"timeout_seconds"`
	RequestsPerSecond    float64 `json:"requests_per_second"`
	Burst                int     `json:"burst"`
	MaxConcurrent        int     `json:"max_concurrent"`
	MaxBulkRows          int     `json:"max_bulk_rows"`
}

// Validate fills in defaults and checks required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return errMissingToken
	}

	if strings.TrimSpace(c.AccountID) == "" {
		return errMissingAccountID
	}

	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}

	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.CacheDurationMinutes < 0 {
		return fmt.Errorf("cache_duration_minutes must not be negative: %d", c.CacheDurationMinutes)
	}

	if c.CacheDurationMinutes == 0 {
		c.CacheDurationMinutes = defaultCacheMinutes
	}

	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}

	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}

	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = defaultRequestsPerSec
	}

	if c.Burst <= 0 {
		c.Burst = defaultBurst
	}

	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = defaultMaxConcurrent
	}

	// The fan-out cap never exceeds what the limiter can admit in one burst.
	if c.MaxConcurrent > c.Burst {
		c.MaxConcurrent = c.Burst
	}

	if c.MaxBulkRows <= 0 {
		c.MaxBulkRows = DefaultMaxBulkRows
	}

	return nil
}

func (c *Config) cacheTTL() time.Duration {
	return time.Duration(c.CacheDurationMinutes) * time.Minute
}

func (c *Config) requestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
