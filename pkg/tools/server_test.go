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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/xiobridge/pkg/logger"
	"github.com/carverauto/xiobridge/pkg/models"
	"github.com/carverauto/xiobridge/pkg/xio"
)

func newTestServer(t *testing.T) (*Server, *MockDeviceManager, *mux.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	manager := NewMockDeviceManager(ctrl)

	server := NewServer(manager, logger.NewTestLogger())
	router := mux.NewRouter()
	server.RegisterRoutes(router)

	return server, manager, router
}

func callTool(t *testing.T, router *mux.Router, name string, args interface{}) *httptest.ResponseRecorder {
	t.Helper()

	arguments, err := json.Marshal(args)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]interface{}{
		"method": "tools/call",
		"params": map[string]interface{}{
			"name":      name,
			"arguments": json.RawMessage(arguments),
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/mcp/tools/call", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestToolList(t *testing.T) {
	t.Parallel()

	_, _, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/mcp/tools/list", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"tools"`
		Count int `json:"count"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 7, response.Count)

	names := make([]string, 0, len(response.Tools))
	for _, tool := range response.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description)
	}

	assert.Equal(t, []string{
		"bulk_claim_devices",
		"claim_device",
		"get_device_network_info",
		"get_device_status",
		"get_devices",
		"get_multi_device_network_info",
		"get_multi_device_status",
	}, names)
}

func TestClaimDeviceTool(t *testing.T) {
	t.Parallel()

	_, manager, router := newTestServer(t)

	manager.EXPECT().
		ClaimDevice(gomock.Any(), "00:10:7F:B1:E3:00", "1829JBH01829", "Lobby Panel").
		Return(&models.Device{
			MACAddress:   "00.10.7f.b1.e3.00",
			SerialNumber: "1829JBH01829",
			Name:         "Lobby Panel",
			Status:       "claimed",
		}, nil)

	rec := callTool(t, router, "claim_device", ClaimDeviceArgs{
		MACAddress:   "00:10:7F:B1:E3:00",
		SerialNumber: "1829JBH01829",
		DeviceName:   "Lobby Panel",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Result models.Device `json:"result"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "00.10.7f.b1.e3.00", response.Result.MACAddress)
	assert.Equal(t, "claimed", response.Result.Status)
}

func TestUnknownTool(t *testing.T) {
	t.Parallel()

	_, _, router := newTestServer(t)

	rec := callTool(t, router, "reboot_device", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var response ToolResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.Error)
	assert.Contains(t, response.Error.Message, "reboot_device")
}

func TestInvalidRequestBody(t *testing.T) {
	t.Parallel()

	_, _, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/mcp/tools/call", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     xio.ErrorKind
		wantCode int
	}{
		{"invalid argument", xio.KindInvalidArgument, http.StatusBadRequest},
		{"not found", xio.KindNotFound, http.StatusNotFound},
		{"auth error", xio.KindAuthError, http.StatusUnauthorized},
		{"rate limited", xio.KindRateLimited, http.StatusTooManyRequests},
		{"timeout", xio.KindTimeout, http.StatusGatewayTimeout},
		{"network error", xio.KindNetworkError, http.StatusBadGateway},
		{"request failed", xio.KindRequestFailed, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, manager, router := newTestServer(t)

			manager.EXPECT().
				GetDeviceStatus(gomock.Any(), "cid-1").
				Return(nil, &xio.Error{Kind: tt.kind, Message: "boom"})

			rec := callTool(t, router, "get_device_status", DeviceIDArgs{DeviceID: "cid-1"})
			require.Equal(t, tt.wantCode, rec.Code)

			var response ToolResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			require.NotNil(t, response.Error)
			assert.Equal(t, string(tt.kind), response.Error.Kind)
			assert.Equal(t, "boom", response.Error.Message)
		})
	}
}

func TestGetDevicesTool(t *testing.T) {
	t.Parallel()

	_, manager, router := newTestServer(t)

	manager.EXPECT().GetDevices(gomock.Any()).Return([]models.Device{
		{DeviceID: "cid-1", Name: "Panel"},
		{DeviceID: "cid-2", Name: "Switcher"},
	}, nil)

	rec := callTool(t, router, "get_devices", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Result struct {
			Devices []models.Device `json:"devices"`
			Count   int             `json:"count"`
		} `json:"result"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Result.Count)
	require.Len(t, response.Result.Devices, 2)
	assert.Equal(t, "cid-1", response.Result.Devices[0].DeviceID)
}

func TestBulkClaimTool(t *testing.T) {
	t.Parallel()

	_, manager, router := newTestServer(t)

	csvPath := filepath.Join(t.TempDir(), "devices.csv")
	csvBody := "MAC Address,Serial Number,Device Name\n" +
		"00:10:7f:b1:e3:00,SN-1,Lobby Panel\n" +
		"00:10:7f:b1:e3:01,SN-2,\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csvBody), 0o600))

	manager.EXPECT().MaxBulkRows().Return(200)
	manager.EXPECT().
		BulkClaimDevices(gomock.Any(), []xio.ClaimRequest{
			{MACAddress: "00:10:7f:b1:e3:00", SerialNumber: "SN-1", DeviceName: "Lobby Panel"},
			{MACAddress: "00:10:7f:b1:e3:01", SerialNumber: "SN-2"},
		}).
		Return([]models.OperationResult{
			{Index: 0, DeviceID: "00.10.7f.b1.e3.00", OK: true},
			{Index: 1, DeviceID: "00.10.7f.b1.e3.01", OK: true},
		})

	rec := callTool(t, router, "bulk_claim_devices", BulkClaimArgs{FilePath: csvPath})
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Result struct {
			Results []models.OperationResult `json:"results"`
			Count   int                      `json:"count"`
		} `json:"result"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Result.Count)
}

func TestBulkClaimTool_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, router := newTestServer(t)

	rec := callTool(t, router, "bulk_claim_devices", BulkClaimArgs{
		FilePath: filepath.Join(t.TempDir(), "absent.csv"),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkClaimTool_EmptyFilePath(t *testing.T) {
	t.Parallel()

	_, _, router := newTestServer(t)

	rec := callTool(t, router, "bulk_claim_devices", BulkClaimArgs{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMultiDeviceStatusTool(t *testing.T) {
	t.Parallel()

	_, manager, router := newTestServer(t)

	manager.EXPECT().
		GetMultiDeviceStatus(gomock.Any(), []string{"cid-1", "cid-2"}).
		Return([]models.OperationResult{
			{Index: 0, DeviceID: "cid-1", OK: true},
			{Index: 1, DeviceID: "cid-2", OK: false, Error: &models.OperationError{
				Kind:    string(xio.KindNotFound),
				Message: "device not found",
				Status:  http.StatusNotFound,
			}},
		})

	rec := callTool(t, router, "get_multi_device_status", DeviceIDsArgs{DeviceIDs: []string{"cid-1", "cid-2"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Result struct {
			Results []models.OperationResult `json:"results"`
			Count   int                      `json:"count"`
		} `json:"result"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Result.Count)
	assert.True(t, response.Result.Results[0].OK)
	assert.False(t, response.Result.Results[1].OK)
}

func TestInvalidToolArguments(t *testing.T) {
	t.Parallel()

	_, _, router := newTestServer(t)

	body := []byte(`{"method":"tools/call","params":{"name":"get_device_status","arguments":["not","an","object"]}}`)
	req := httptest.NewRequest(http.MethodPost, "/mcp/tools/call", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
