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
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

func TestResponseCache_TTL(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	cache := newResponseCache(5*time.Minute, clock)

	sig := requestSignature("GET", "/v1/device/accountid/a/devices")
	cache.put(sig, deviceListTag, []byte(`[]`))

	payload, ok := cache.get(sig)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), payload)

	clock.advance(4 * time.Minute)

	_, ok = cache.get(sig)
	assert.True(t, ok, "entry should still be valid within TTL")

	clock.advance(2 * time.Minute)

	_, ok = cache.get(sig)
	assert.False(t, ok, "entry must not outlive its TTL")
	assert.Equal(t, 0, cache.len(), "expired entry should be purged on read")
}

func TestResponseCache_InvalidateByDevice(t *testing.T) {
	t.Parallel()

	cache := newResponseCache(5*time.Minute, newFakeClock())

	listSig := requestSignature("GET", "/devices")
	statusSig := requestSignature("GET", "/devicecid/dev-1/status")
	otherSig := requestSignature("GET", "/devicecid/dev-2/status")

	cache.put(listSig, deviceListTag, []byte(`[]`))
	cache.put(statusSig, "dev-1", []byte(`{}`))
	cache.put(otherSig, "dev-2", []byte(`{}`))

	cache.invalidate(func(deviceID string) bool {
		return deviceID == deviceListTag || deviceID == "dev-1"
	})

	_, ok := cache.get(listSig)
	assert.False(t, ok)

	_, ok = cache.get(statusSig)
	assert.False(t, ok)

	_, ok = cache.get(otherSig)
	assert.True(t, ok, "unrelated device entries must survive invalidation")
}

func TestResponseCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cache := newResponseCache(5*time.Minute, newFakeClock())

	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			sig := requestSignature("GET", fmt.Sprintf("/devicecid/dev-%d/status", n%4))
			cache.put(sig, fmt.Sprintf("dev-%d", n%4), []byte(`{}`))
			cache.get(sig)
			cache.invalidate(func(deviceID string) bool { return deviceID == "dev-0" })
		}(i)
	}

	wg.Wait()
}

func TestRequestSignature_Distinct(t *testing.T) {
	t.Parallel()

	a := requestSignature("GET", "/devices")
	b := requestSignature("GET", "/devicecid/x/status")
	c := requestSignature("POST", "/devices")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, requestSignature("GET", "/devices"), "signature must be deterministic")
}
