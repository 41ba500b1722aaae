/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package inspector

import "sync"

// History is a thread-safe bounded store of decoded results.
//
// It is a ring buffer rather than a growing slice: fixed memory footprint,
// O(1) insertion with zero allocations on eviction, and the oldest entry is
// simply overwritten once the buffer is full.
//
// Ring buffer layout:
//
//	entries[head] is the oldest element; the newest sits at
//	(head + count - 1) % maxSize. While count < maxSize the buffer is
//	filling and head stays at 0; once full, head advances on each insert.
type History struct {
	mu      sync.RWMutex
	entries []Result
	head    int
	count   int
	total   int64
	maxSize int
}

// NewHistory creates a History with a pre-allocated buffer of maxSize
// entries. The buffer never grows or shrinks after creation.
func NewHistory(maxSize int) *History {
	return &History{
		entries: make([]Result, maxSize),
		maxSize: maxSize,
	}
}

// Add inserts one result, evicting the oldest entry when the buffer is full.
func (h *History) Add(res Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	writeIdx := (h.head + h.count) % h.maxSize
	h.entries[writeIdx] = res

	if h.count < h.maxSize {
		h.count++
	} else {
		h.head = (h.head + 1) % h.maxSize
	}
	h.total++
}

// Len returns the number of results currently retained.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Total returns the number of results ever added, including evicted ones.
func (h *History) Total() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.total
}

// Last returns the most recently added result.
func (h *History) Last() (Result, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return Result{}, false
	}
	return h.entries[(h.head+h.count-1)%h.maxSize], true
}

// Recent returns up to limit results in chronological order, oldest first.
// A single allocation sized to the actual result count.
func (h *History) Recent(limit int) []Result {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 || limit <= 0 {
		return nil
	}

	n := limit
	if n > h.count {
		n = h.count
	}

	out := make([]Result, n)
	// The n most recent entries start n-1 positions back from the newest.
	start := h.head + h.count - n
	for i := 0; i < n; i++ {
		out[i] = h.entries[(start+i)%h.maxSize]
	}
	return out
}

// BySymbol returns up to limit results whose extracted trade is for the given
// symbol, oldest first. Two passes: count matches backwards from the newest,
// then fill a slice of exact capacity from the end, which avoids the O(n²)
// prepend pattern.
func (h *History) BySymbol(symbol string, limit int) []Result {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 || limit <= 0 {
		return nil
	}

	matches := 0
	for i := 0; i < h.count && matches < limit; i++ {
		idx := (h.head + h.count - 1 - i) % h.maxSize
		if r := h.entries[idx]; r.Trade != nil && r.Trade.Symbol == symbol {
			matches++
		}
	}
	if matches == 0 {
		return nil
	}

	out := make([]Result, matches)
	resultIdx := matches - 1
	for i := 0; i < h.count && resultIdx >= 0; i++ {
		idx := (h.head + h.count - 1 - i) % h.maxSize
		if r := h.entries[idx]; r.Trade != nil && r.Trade.Symbol == symbol {
			out[resultIdx] = r
			resultIdx--
		}
	}
	return out
}

// All returns a defensive copy of every retained result, oldest first.
func (h *History) All() []Result {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return nil
	}

	out := make([]Result, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.entries[(h.head+i)%h.maxSize]
	}
	return out
}
