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
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Expected CSV header columns, matched case-insensitively.
const (
	columnMACAddress   = "mac address"
	columnSerialNumber = "serial number"
	columnDeviceName   = "device name"
)

// ParseClaimCSV reads a bulk claim job from CSV. The header row is required
// and must contain at least the MAC Address and Serial Number columns; a
// Device Name column is optional. Row values are returned as-is so that a
// bad row becomes a per-row claim failure rather than aborting the batch.
// maxRows bounds the job size when positive.
func ParseClaimCSV(r io.Reader, maxRows int) ([]ClaimRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidArgument("CSV header row is required")
		}

		return nil, invalidArgument("failed to read CSV header: %v", err)
	}

	macIdx, serialIdx, nameIdx := -1, -1, -1

	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case columnMACAddress:
			macIdx = i
		case columnSerialNumber:
			serialIdx = i
		case columnDeviceName:
			nameIdx = i
		}
	}

	if macIdx < 0 || serialIdx < 0 {
		return nil, invalidArgument(
			"CSV header must contain %q and %q columns, got %q",
			"MAC Address", "Serial Number", strings.Join(header, ","))
	}

	var rows []ClaimRequest

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, invalidArgument("malformed CSV row %d: %v", len(rows)+2, err)
		}

		rows = append(rows, ClaimRequest{
			MACAddress:   field(record, macIdx),
			SerialNumber: field(record, serialIdx),
			DeviceName:   field(record, nameIdx),
		})

		if maxRows > 0 && len(rows) > maxRows {
			return nil, invalidArgument("CSV file contains more than %d devices", maxRows)
		}
	}

	return rows, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}
