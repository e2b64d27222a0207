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
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/carverauto/xiobridge/pkg/models"
)

// deviceListTag is the cache tag for the account-wide device list.
const deviceListTag = "devices"

// ClaimDevice registers a device to the account by MAC address and serial
// number. The MAC is validated and normalized before any network call; a
// malformed MAC or empty serial fails immediately with invalid_argument.
// Claiming is not blindly retried on ambiguous transport failures.
func (c *Client) ClaimDevice(ctx context.Context, macAddress, serialNumber, deviceName string) (*models.Device, error) {
	mac, err := FormatMACAddress(macAddress)
	if err != nil {
		return nil, err
	}

	serial := strings.TrimSpace(serialNumber)
	if serial == "" {
		return nil, invalidArgument("serial_number must not be empty")
	}

	path := fmt.Sprintf("/v2/deviceclaim/accountid/%s/macaddress/%s/serialnumber/%s",
		url.PathEscape(c.config.AccountID), url.PathEscape(mac), url.PathEscape(serial))

	if _, err := c.send(ctx, http.MethodPost, path, false); err != nil {
		return nil, err
	}

	// The account's device set changed; cached reads for the list and this
	// device are no longer trustworthy.
	c.cache.invalidate(func(deviceID string) bool {
		return deviceID == deviceListTag || deviceID == mac
	})

	c.logger.Info().
		Str("mac_address", mac).
		Str("serial_number", serial).
		Msg("Device claimed")

	return &models.Device{
		MACAddress:   mac,
		SerialNumber: serial,
		Name:         deviceName,
		Status:       "claimed",
	}, nil
}

// GetDevices lists all devices on the account. Results are served from the
// response cache within the configured TTL.
func (c *Client) GetDevices(ctx context.Context) ([]models.Device, error) {
	path := fmt.Sprintf("/v1/device/accountid/%s/devices", url.PathEscape(c.config.AccountID))

	payload, err := c.getCached(ctx, path, deviceListTag)
	if err != nil {
		return nil, err
	}

	var records []xioDevice

	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, &Error{
			Kind:    KindRequestFailed,
			Message: fmt.Sprintf("failed to parse device list: %v", err),
		}
	}

	devices := make([]models.Device, 0, len(records))

	for i := range records {
		devices = append(devices, records[i].toModel())
	}

	return devices, nil
}

// GetDeviceStatus fetches the status document for one device. An unknown
// device id surfaces as not_found (remote 404).
func (c *Client) GetDeviceStatus(ctx context.Context, deviceID string) (*models.DeviceStatus, error) {
	id := strings.TrimSpace(deviceID)
	if id == "" {
		return nil, invalidArgument("device_id must not be empty")
	}

	payload, err := c.getCached(ctx, c.statusPath(id), id)
	if err != nil {
		return nil, err
	}

	var doc statusDocument

	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, &Error{
			Kind:    KindRequestFailed,
			Message: fmt.Sprintf("failed to parse status for device %s: %v", id, err),
		}
	}

	return &models.DeviceStatus{
		DeviceID: id,
		Online:   strings.EqualFold(doc.DeviceStatus, "online"),
		Raw:      payload,
	}, nil
}

// GetDeviceNetworkInfo extracts the network identity of a device from its
// status document. A status without a network section yields empty fields,
// not an error.
func (c *Client) GetDeviceNetworkInfo(ctx context.Context, deviceID string) (*models.NetworkInfo, error) {
	status, err := c.GetDeviceStatus(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	var doc statusDocument

	if err := json.Unmarshal(status.Raw, &doc); err != nil {
		return nil, &Error{
			Kind:    KindRequestFailed,
			Message: fmt.Sprintf("failed to parse status for device %s: %v", deviceID, err),
		}
	}

	return &models.NetworkInfo{
		IPAddress:  doc.networkString(networkKeyIPAddress),
		MACAddress: doc.networkString(networkKeyMACAddress),
		Hostname:   doc.networkString(networkKeyHostname),
	}, nil
}

func (c *Client) statusPath(deviceID string) string {
	return fmt.Sprintf("/v1/device/accountid/%s/devicecid/%s/status",
		url.PathEscape(c.config.AccountID), url.PathEscape(deviceID))
}

// getCached serves a GET through the response cache. Only successful
// payloads are stored, as a single atomic assignment.
func (c *Client) getCached(ctx context.Context, path, deviceID string) ([]byte, error) {
	sig := requestSignature(http.MethodGet, path)

	if payload, ok := c.cache.get(sig); ok {
		c.logger.Debug().Str("path", path).Msg("Cache hit")
		return payload, nil
	}

	payload, err := c.send(ctx, http.MethodGet, path, true)
	if err != nil {
		return nil, err
	}

	c.cache.put(sig, deviceID, payload)

	return payload, nil
}
