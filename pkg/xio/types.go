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

import "github.com/carverauto/xiobridge/pkg/models"

// xioDevice is the device record shape returned by the XiO Cloud device
// list endpoint.
type xioDevice struct {
	DeviceCID    string `json:"device-cid"`
	DeviceName   string `json:"device-name"`
	DeviceModel  string `json:"device-model"`
	MACAddress   string `json:"mac-address"`
	SerialNumber string `json:"serial-number"`
	DeviceStatus string `json:"device-status"`
}

func (d *xioDevice) toModel() models.Device {
	return models.Device{
		DeviceID:     d.DeviceCID,
		MACAddress:   d.MACAddress,
		SerialNumber: d.SerialNumber,
		Name:         d.DeviceName,
		Model:        d.DeviceModel,
		Status:       d.DeviceStatus,
	}
}

// statusDocument is the subset of a device status payload the bridge
// interprets. Status documents are device-family specific; everything else
// is carried through raw.
type statusDocument struct {
	DeviceStatus string                 `json:"device-status"`
	Network      map[string]interface{} `json:"network"`
}

// Keys within the network section of a status document.
const (
	networkKeyIPAddress  = "nic-1-ip-address"
	networkKeyMACAddress = "nic-1-mac-address"
	networkKeyHostname   = "status-host-name"
)

func (s *statusDocument) networkString(key string) string {
	if s.Network == nil {
		return ""
	}

	if value, ok := s.Network[key].(string); ok {
		return value
	}

	return ""
}
