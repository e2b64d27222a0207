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
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMultiDeviceStatus_IsolatesFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "bad-device") {
			http.Error(w, "device not found", http.StatusNotFound)
			return
		}

		_, _ = w.Write([]byte(`{"device-status":"online"}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, nil)

	ids := []string{"cid-1", "bad-device", "cid-2"}
	results := client.GetMultiDeviceStatus(context.Background(), ids)
	require.Len(t, results, len(ids))

	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, ids[i], res.DeviceID)
	}

	assert.True(t, results[0].OK)
	assert.True(t, results[2].OK)

	require.False(t, results[1].OK)
	require.NotNil(t, results[1].Error)
	assert.Equal(t, string(KindNotFound), results[1].Error.Kind)
	assert.Equal(t, http.StatusNotFound, results[1].Error.Status)
}

func TestBulkClaimDevices_RowsAreIndependent(t *testing.T) {
	t.Parallel()

	var posts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		posts.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, nil)

	rows := []ClaimRequest{
		{MACAddress: "00.10.7f.b1.e3.00", SerialNumber: "SN-1"},
		{MACAddress: "garbage", SerialNumber: "SN-2"},
		{MACAddress: "00:10:7f:b1:e3:02", SerialNumber: "SN-3", DeviceName: "Panel 3"},
	}

	results := client.BulkClaimDevices(context.Background(), rows)
	require.Len(t, results, 3)

	assert.True(t, results[0].OK)
	assert.True(t, results[2].OK)
	assert.Equal(t, "00.10.7f.b1.e3.02", results[2].DeviceID)

	require.False(t, results[1].OK)
	require.NotNil(t, results[1].Error)
	assert.Equal(t, string(KindInvalidArgument), results[1].Error.Kind)

	assert.Equal(t, int32(2), posts.Load(), "the invalid row must never reach the wire")
}

func TestFanOut_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		now := inFlight.Add(1)
		defer inFlight.Add(-1)

		for {
			old := peak.Load()
			if now <= old || peak.CompareAndSwap(old, now) {
				break
			}
		}

		time.Sleep(30 * time.Millisecond)
		_, _ = w.Write([]byte(`{"device-status":"online"}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, func(cfg *Config) {
		cfg.MaxConcurrent = 2
	})

	ids := make([]string, 8)
	for i := range ids {
		ids[i] = fmt.Sprintf("cid-%d", i)
	}

	results := client.GetMultiDeviceStatus(context.Background(), ids)
	require.Len(t, results, 8)

	for _, res := range results {
		assert.True(t, res.OK)
	}

	assert.LessOrEqual(t, peak.Load(), int32(2), "fan-out must respect max_concurrent")
}

func TestFanOut_CanceledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"device-status":"online"}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := client.GetMultiDeviceStatus(ctx, []string{"cid-1", "cid-2", "cid-3"})
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.False(t, res.OK)
		require.NotNil(t, res.Error)
	}
}

func TestGetMultiDeviceNetworkInfo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "cid-2") {
			_, _ = w.Write([]byte(`{"device-status":"offline"}`))
			return
		}

		_, _ = w.Write([]byte(`{
			"device-status": "online",
			"network": {"nic-1-ip-address": "10.0.0.5"}
		}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, nil)

	results := client.GetMultiDeviceNetworkInfo(context.Background(), []string{"cid-1", "cid-2"})
	require.Len(t, results, 2)
	require.True(t, results[0].OK)
	require.True(t, results[1].OK)
}
