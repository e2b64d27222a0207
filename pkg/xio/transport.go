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
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	retryInitialInterval = 500 * time.Millisecond
	retryMaxInterval     = 15 * time.Second
	retryMultiplier      = 1.6
	retryRandomization   = 0.2

	// Grace added on top of a server-advertised retry delay.
	retryAfterGrace = time.Second
)

// send performs one authenticated request against the XiO Cloud API with
// rate limiting and retry. idempotent marks requests that are safe to repeat
// after they may have reached the server; non-idempotent calls (claim) only
// retry on failures where the request definitively did not execute (429,
// pre-send admission errors).
func (c *Client) send(ctx context.Context, method, path string, idempotent bool) ([]byte, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval
	bo.MaxInterval = retryMaxInterval
	bo.Multiplier = retryMultiplier
	bo.RandomizationFactor = retryRandomization

	var lastErr *Error

	operation := func() ([]byte, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}

		payload, attemptErr := c.attempt(ctx, method, path)
		if attemptErr == nil {
			return payload, nil
		}

		lastErr = attemptErr

		switch attemptErr.Kind {
		case KindRateLimited:
			if delay, ok := retryAfterHint(attemptErr.Body); ok {
				c.logger.Debug().
					Str("method", method).
					Str("path", path).
					Dur("retry_after", delay).
					Msg("Rate limited, honoring server delay")

				return nil, &backoff.RetryAfterError{Duration: delay}
			}

			return nil, attemptErr
		case KindTimeout, KindNetworkError:
			if !idempotent {
				// The request may have reached the server; a blind retry
				// could double-provision. Surface the ambiguity instead.
				return nil, backoff.Permanent(attemptErr)
			}

			return nil, attemptErr
		case KindRequestFailed:
			if attemptErr.Status >= http.StatusInternalServerError {
				return nil, attemptErr
			}

			return nil, backoff.Permanent(attemptErr)
		default:
			// auth errors, not found, other 4xx
			return nil, backoff.Permanent(attemptErr)
		}
	}

	payload, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(c.config.MaxRetries)+1),
	)
	if err != nil {
		resolved := resolveSendError(err, lastErr)
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("kind", string(resolved.Kind)).
			Int("status", resolved.Status).
			Msg("Request failed")

		return nil, resolved
	}

	return payload, nil
}

// attempt performs a single HTTP exchange and classifies the outcome.
func (c *Client) attempt(ctx context.Context, method, path string) ([]byte, *Error) {
	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, http.NoBody)
	if err != nil {
		return nil, invalidArgument("failed to build request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("XiO-subscription-key", c.config.Token)
	req.Header.Set("Accept", "application/json")

	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Debug().Err(cerr).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	return nil, statusError(resp.StatusCode, body)
}

// classifyTransportError distinguishes timeouts from other network failures.
func classifyTransportError(err error) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Message: err.Error()}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Message: err.Error()}
	}

	return &Error{Kind: KindNetworkError, Message: err.Error()}
}

// resolveSendError picks the error to surface after retries are exhausted.
func resolveSendError(err error, lastErr *Error) *Error {
	if apiErr, ok := AsError(err); ok {
		return apiErr
	}

	if lastErr != nil {
		return lastErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Message: "request deadline exceeded"}
	}

	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindTimeout, Message: "operation canceled"}
	}

	return &Error{Kind: KindNetworkError, Message: err.Error()}
}

// retryAfterHint extracts a server-advertised delay from a 429 response
// body. XiO replies with a message of the form "... Try again in 30 ...".
func retryAfterHint(body string) (time.Duration, bool) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return 0, false
	}

	if !strings.Contains(payload.Message, "Try again in") {
		return 0, false
	}

	var digits strings.Builder

	for _, r := range payload.Message {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0, false
	}

	seconds, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}

	return time.Duration(seconds)*time.Second + retryAfterGrace, true
}
