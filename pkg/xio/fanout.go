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

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/xiobridge/pkg/models"
)

// ClaimRequest is one row of a bulk claim job.
type ClaimRequest struct {
	MACAddress   string `json:"mac_address"`
	SerialNumber string `json:"serial_number"`
	DeviceName   string `json:"device_name,omitempty"`
}

// BulkClaimDevices claims every row concurrently. Rows are independent: a
// failed row is recorded at its index and never aborts its siblings. The
// result slice always has exactly one entry per input row, in input order.
func (c *Client) BulkClaimDevices(ctx context.Context, rows []ClaimRequest) []models.OperationResult {
	return c.fanOut(ctx, len(rows), func(ctx context.Context, i int) models.OperationResult {
		row := rows[i]

		device, err := c.ClaimDevice(ctx, row.MACAddress, row.SerialNumber, row.DeviceName)
		if err != nil {
			return failureResult(i, row.MACAddress, err)
		}

		return successResult(i, device.MACAddress, device)
	})
}

// GetMultiDeviceStatus fetches status for each id concurrently, isolating
// per-id failures.
func (c *Client) GetMultiDeviceStatus(ctx context.Context, deviceIDs []string) []models.OperationResult {
	return c.fanOut(ctx, len(deviceIDs), func(ctx context.Context, i int) models.OperationResult {
		status, err := c.GetDeviceStatus(ctx, deviceIDs[i])
		if err != nil {
			return failureResult(i, deviceIDs[i], err)
		}

		return successResult(i, deviceIDs[i], status)
	})
}

// GetMultiDeviceNetworkInfo fetches network info for each id concurrently,
// isolating per-id failures.
func (c *Client) GetMultiDeviceNetworkInfo(ctx context.Context, deviceIDs []string) []models.OperationResult {
	return c.fanOut(ctx, len(deviceIDs), func(ctx context.Context, i int) models.OperationResult {
		info, err := c.GetDeviceNetworkInfo(ctx, deviceIDs[i])
		if err != nil {
			return failureResult(i, deviceIDs[i], err)
		}

		return successResult(i, deviceIDs[i], info)
	})
}

// fanOut runs one call per input index with bounded concurrency and waits
// for all of them to settle. Output order matches input order regardless of
// completion order. A canceled context abandons entries that have not
// started yet; their results are recorded as failures.
func (c *Client) fanOut(ctx context.Context, n int, call func(ctx context.Context, i int) models.OperationResult) []models.OperationResult {
	results := make([]models.OperationResult, n)

	g := new(errgroup.Group)
	g.SetLimit(c.config.MaxConcurrent)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = failureResult(i, "", &Error{
					Kind:    KindTimeout,
					Message: "operation canceled before start",
				})

				return nil
			}

			results[i] = call(ctx, i)

			return nil
		})
	}

	// Errors are captured per entry; the group itself never fails.
	_ = g.Wait()

	return results
}

func successResult(index int, deviceID string, payload interface{}) models.OperationResult {
	return models.OperationResult{
		Index:    index,
		DeviceID: deviceID,
		OK:       true,
		Payload:  payload,
	}
}

func failureResult(index int, deviceID string, err error) models.OperationResult {
	opErr := &models.OperationError{
		Kind:    string(KindOf(err)),
		Message: err.Error(),
	}

	if apiErr, ok := AsError(err); ok {
		opErr.Message = apiErr.Message
		opErr.Status = apiErr.Status
	}

	return models.OperationResult{
		Index:    index,
		DeviceID: deviceID,
		OK:       false,
		Error:    opErr,
	}
}
