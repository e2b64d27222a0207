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
	"time"

	"github.com/cespare/xxhash/v2"
)

// requestSignature derives the cache key for a logical request. The path
// already contains the account scoping and any query string, so method+path
// uniquely identifies the request within one client.
func requestSignature(method, path string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(method+" "+path))
}

type cacheEntry struct {
	payload   []byte
	deviceID  string
	expiresAt time.Time
}

// responseCache is a TTL cache for GET payloads. Entries are tagged with the
// device identity they describe so mutations can invalidate them. Reads and
// writes are safe under concurrent fan-out; a put is one map assignment under
// the lock, so an abandoned request can never leave a torn entry behind.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	clock   Clock
}

func newResponseCache(ttl time.Duration, clock Clock) *responseCache {
	if clock == nil {
		clock = realClock{}
	}

	return &responseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// get returns the cached payload for sig, purging it if expired.
func (c *responseCache) get(sig string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[sig]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if !c.clock.Now().Before(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent put may have refreshed it.
		if current, stillThere := c.entries[sig]; stillThere && !c.clock.Now().Before(current.expiresAt) {
			delete(c.entries, sig)
		}
		c.mu.Unlock()

		return nil, false
	}

	return entry.payload, true
}

func (c *responseCache) put(sig, deviceID string, payload []byte) {
	entry := cacheEntry{
		payload:   payload,
		deviceID:  deviceID,
		expiresAt: c.clock.Now().Add(c.ttl),
	}

	c.mu.Lock()
	c.entries[sig] = entry
	c.mu.Unlock()
}

// invalidate removes every entry whose device tag matches the predicate.
func (c *responseCache) invalidate(match func(deviceID string) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for sig, entry := range c.entries {
		if match(entry.deviceID) {
			delete(c.entries, sig)
		}
	}
}

func (c *responseCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
