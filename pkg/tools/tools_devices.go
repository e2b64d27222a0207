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
	"encoding/json"
	"os"

	"github.com/carverauto/xiobridge/pkg/xio"
)

// ClaimDeviceArgs represents arguments for a single device claim.
type ClaimDeviceArgs struct {
	MACAddress   string `json:"mac_address"`
	SerialNumber string `json:"serial_number"`
	DeviceName   string `json:"device_name,omitempty"`
}

// BulkClaimArgs represents arguments for a CSV bulk claim.
type BulkClaimArgs struct {
	FilePath string `json:"file_path"`
}

// DeviceIDArgs represents arguments for single device retrieval.
type DeviceIDArgs struct {
	DeviceID string `json:"device_id"`
}

// DeviceIDsArgs represents arguments for multi-device retrieval.
type DeviceIDsArgs struct {
	DeviceIDs []string `json:"device_ids"`
}

// registerDeviceTools registers all device-management tools.
func (s *Server) registerDeviceTools() {
	s.register("claim_device", "Claims a device to the XiO Cloud account by MAC address and serial number",
		func(ctx *CallContext, args json.RawMessage) (interface{}, error) {
			var claimArgs ClaimDeviceArgs
			if err := unmarshalArgs(args, &claimArgs); err != nil {
				return nil, err
			}

			return s.client.ClaimDevice(ctx.Context(), claimArgs.MACAddress, claimArgs.SerialNumber, claimArgs.DeviceName)
		})

	s.register("bulk_claim_devices", "Claims multiple devices from a CSV file (header: MAC Address,Serial Number,Device Name)",
		func(ctx *CallContext, args json.RawMessage) (interface{}, error) {
			var bulkArgs BulkClaimArgs
			if err := unmarshalArgs(args, &bulkArgs); err != nil {
				return nil, err
			}

			if bulkArgs.FilePath == "" {
				return nil, &xio.Error{Kind: xio.KindInvalidArgument, Message: "file_path is required"}
			}

			f, err := os.Open(bulkArgs.FilePath)
			if err != nil {
				return nil, &xio.Error{
					Kind:    xio.KindInvalidArgument,
					Message: "cannot open CSV file: " + err.Error(),
				}
			}
			defer f.Close()

			rows, err := xio.ParseClaimCSV(f, s.client.MaxBulkRows())
			if err != nil {
				return nil, err
			}

			results := s.client.BulkClaimDevices(ctx.Context(), rows)

			return map[string]interface{}{
				"results": results,
				"count":   len(results),
			}, nil
		})

	s.register("get_devices", "Retrieves the list of all devices on the account",
		func(ctx *CallContext, _ json.RawMessage) (interface{}, error) {
			devices, err := s.client.GetDevices(ctx.Context())
			if err != nil {
				return nil, err
			}

			return map[string]interface{}{
				"devices": devices,
				"count":   len(devices),
			}, nil
		})

	s.register("get_device_status", "Retrieves the status of a single device by id",
		func(ctx *CallContext, args json.RawMessage) (interface{}, error) {
			var idArgs DeviceIDArgs
			if err := unmarshalArgs(args, &idArgs); err != nil {
				return nil, err
			}

			return s.client.GetDeviceStatus(ctx.Context(), idArgs.DeviceID)
		})

	s.register("get_device_network_info", "Retrieves the network information of a single device by id",
		func(ctx *CallContext, args json.RawMessage) (interface{}, error) {
			var idArgs DeviceIDArgs
			if err := unmarshalArgs(args, &idArgs); err != nil {
				return nil, err
			}

			return s.client.GetDeviceNetworkInfo(ctx.Context(), idArgs.DeviceID)
		})

	s.register("get_multi_device_status", "Retrieves status for multiple devices in parallel",
		func(ctx *CallContext, args json.RawMessage) (interface{}, error) {
			var idsArgs DeviceIDsArgs
			if err := unmarshalArgs(args, &idsArgs); err != nil {
				return nil, err
			}

			results := s.client.GetMultiDeviceStatus(ctx.Context(), idsArgs.DeviceIDs)

			return map[string]interface{}{
				"results": results,
				"count":   len(results),
			}, nil
		})

	s.register("get_multi_device_network_info", "Retrieves network information for multiple devices in parallel",
		func(ctx *CallContext, args json.RawMessage) (interface{}, error) {
			var idsArgs DeviceIDsArgs
			if err := unmarshalArgs(args, &idsArgs); err != nil {
				return nil, err
			}

			results := s.client.GetMultiDeviceNetworkInfo(ctx.Context(), idsArgs.DeviceIDs)

			return map[string]interface{}{
				"results": results,
				"count":   len(results),
			}, nil
		})
}

func unmarshalArgs(args json.RawMessage, dst interface{}) error {
	if len(args) == 0 {
		return nil
	}

	if err := json.Unmarshal(args, dst); err != nil {
		return &xio.Error{
			Kind:    xio.KindInvalidArgument,
			Message: "invalid tool arguments: " + err.Error(),
		}
	}

	return nil
}
