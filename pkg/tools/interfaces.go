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

package tools

import (
	"context"

	"github.com/carverauto/xiobridge/pkg/models"
	"github.com/carverauto/xiobridge/pkg/xio"
)

//go:generate mockgen -destination=mock_tools.go -package=tools github.com/carverauto/xiobridge/pkg/tools DeviceManager

// DeviceManager is the device client surface the tool layer delegates to.
// *xio.Client satisfies it.
type DeviceManager interface {
	ClaimDevice(ctx context.Context, macAddress, serialNumber, deviceName string) (*models.Device, error)
	GetDevices(ctx context.Context) ([]models.Device, error)
	GetDeviceStatus(ctx context.Context, deviceID string) (*models.DeviceStatus, error)
	GetDeviceNetworkInfo(ctx context.Context, deviceID string) (*models.NetworkInfo, error)
	BulkClaimDevices(ctx context.Context, rows []xio.ClaimRequest) []models.OperationResult
	GetMultiDeviceStatus(ctx context.Context, deviceIDs []string) []models.OperationResult
	GetMultiDeviceNetworkInfo(ctx context.Context, deviceIDs []string) []models.OperationResult
	MaxBulkRows() int
}
