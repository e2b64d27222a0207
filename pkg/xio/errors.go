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
	"net/http"
)

// ErrorKind classifies a failed XiO Cloud operation.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindNotFound        ErrorKind = "not_found"
	KindAuthError       ErrorKind = "auth_error"
	KindRateLimited     ErrorKind = "rate_limited"
	KindTimeout         ErrorKind = "timeout"
	KindNetworkError    ErrorKind = "network_error"
	KindRequestFailed   ErrorKind = "request_failed"
)

// Error is the typed error surfaced by the client. Status and Body are set
// when the failure came from an HTTP response.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int
	Body    string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AsError extracts a typed *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// KindOf reports the ErrorKind of err, defaulting to request_failed for
// errors that did not originate from this package.
func KindOf(err error) ErrorKind {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Kind
	}

	return KindRequestFailed
}

func invalidArgument(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// statusError maps a non-2xx HTTP response to the error taxonomy.
func statusError(status int, body []byte) *Error {
	excerpt := bodyExcerpt(body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{
			Kind:    KindAuthError,
			Message: "invalid or expired token/account",
			Status:  status,
			Body:    excerpt,
		}
	case status == http.StatusNotFound:
		return &Error{
			Kind:    KindNotFound,
			Message: "resource not found",
			Status:  status,
			Body:    excerpt,
		}
	case status == http.StatusTooManyRequests:
		return &Error{
			Kind:    KindRateLimited,
			Message: "rate limited by XiO Cloud",
			Status:  status,
			Body:    excerpt,
		}
	default:
		return &Error{
			Kind:    KindRequestFailed,
			Message: fmt.Sprintf("unexpected status code %d", status),
			Status:  status,
			Body:    excerpt,
		}
	}
}

const maxBodyExcerpt = 512

func bodyExcerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		return string(body[:maxBodyExcerpt])
	}

	return string(body)
}
