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

// Package models contains the shared domain types for the XiO bridge.
package models

import "encoding/json"

// Device represents an XiO Cloud device as known to the remote account.
// The bridge holds no authoritative copy; everything here is sourced from
// the API and only kept within the response cache TTL. Network identity is
// not part of the device list payload; it is served separately as a
// NetworkInfo derived from the status document.
type Device struct {
	DeviceID     string `json:"device_id"`
	MACAddress   string `json:"mac_address"`
	SerialNumber string `json:"serial_number"`
	Name         string `json:"name,omitempty"`
	Model        string `json:"device_model,omitempty"`
	Status       string `json:"status,omitempty"`
}

// DeviceStatus is the raw status document returned by the status endpoint.
// XiO status payloads are device-family specific, so the full document is
// preserved alongside the fields the bridge interprets.
type DeviceStatus struct {
	DeviceID string          `json:"device_id"`
	Online   bool            `json:"online"`
	Raw      json.RawMessage `json:"raw,omitempty"`
}

// NetworkInfo carries the network identity extracted from a device status
// document. Absent fields stay empty rather than failing the lookup.
type NetworkInfo struct {
	IPAddress  string `json:"ip_address,omitempty"`
	MACAddress string `json:"mac_address,omitempty"`
	Hostname   string `json:"hostname,omitempty"`
}

// OperationError is the externally visible error descriptor attached to a
// failed per-device operation.
type OperationError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// OperationResult reports the outcome of one entry in a fan-out batch.
// Batches always produce exactly one result per input, at the input index,
// regardless of completion order.
type OperationResult struct {
	Index    int             `json:"index"`
	DeviceID string          `json:"device_id,omitempty"`
	OK       bool            `json:"ok"`
	Payload  interface{}     `json:"payload,omitempty"`
	Error    *OperationError `json:"error,omitempty"`
}
