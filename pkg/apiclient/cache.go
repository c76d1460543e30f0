package apiclient

import (
	"strings"
	"sync"
	"time"
)

// DefaultStaleAfter is how long a cached value is served without refetching.
const DefaultStaleAfter = 5 * time.Minute

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

type inflightCall struct {
	done  chan struct{}
	value any
	err   error
}

// Snapshot captures the cached state of one key so a failed optimistic
// mutation can roll it back.
type Snapshot struct {
	key       string
	value     any
	fetchedAt time.Time
	existed   bool
}

// QueryCache is a keyed response cache with staleness tracking and
// in-flight request de-duplication.
type QueryCache struct {
	mu         sync.Mutex
	staleAfter time.Duration
	entries    map[string]cacheEntry
	inflight   map[string]*inflightCall

	now func() time.Time
}

// NewQueryCache creates a cache that serves values for staleAfter before
// they are considered stale. Zero means DefaultStaleAfter.
func NewQueryCache(staleAfter time.Duration) *QueryCache {
	if staleAfter == 0 {
		staleAfter = DefaultStaleAfter
	}
	return &QueryCache{
		staleAfter: staleAfter,
		entries:    make(map[string]cacheEntry),
		inflight:   make(map[string]*inflightCall),
		now:        time.Now,
	}
}

// Get returns the cached value for key if it is still fresh.
func (q *QueryCache) Get(key string) (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.entries[key]
	if !ok || q.now().Sub(e.fetchedAt) >= q.staleAfter {
		return nil, false
	}
	return e.value, true
}

// Set stores a value for key, marking it freshly fetched.
func (q *QueryCache) Set(key string, value any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries[key] = cacheEntry{value: value, fetchedAt: q.now()}
}

// Invalidate removes a single key.
func (q *QueryCache) Invalidate(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.entries, key)
}

// InvalidatePrefix removes every key starting with prefix.
func (q *QueryCache) InvalidatePrefix(prefix string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for k := range q.entries {
		if strings.HasPrefix(k, prefix) {
			delete(q.entries, k)
		}
	}
}

// Clear removes all cached values.
func (q *QueryCache) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = make(map[string]cacheEntry)
}

// Snapshot captures the current state of key for later Restore.
func (q *QueryCache) Snapshot(key string) Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.entries[key]
	return Snapshot{key: key, value: e.value, fetchedAt: e.fetchedAt, existed: ok}
}

// Restore puts a snapshot back, including the original fetch time. A
// snapshot of an absent key removes the key.
func (q *QueryCache) Restore(snap Snapshot) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !snap.existed {
		delete(q.entries, snap.key)
		return
	}
	q.entries[snap.key] = cacheEntry{value: snap.value, fetchedAt: snap.fetchedAt}
}

// Fetch returns the fresh cached value for key, or runs fn to produce it.
// Concurrent fetches for the same key are coalesced into a single fn call;
// the result is cached only on success.
func (q *QueryCache) Fetch(key string, fn func() (any, error)) (any, error) {
	q.mu.Lock()
	if e, ok := q.entries[key]; ok && q.now().Sub(e.fetchedAt) < q.staleAfter {
		q.mu.Unlock()
		return e.value, nil
	}
	if call, ok := q.inflight[key]; ok {
		q.mu.Unlock()
		<-call.done
		return call.value, call.err
	}
	call := &inflightCall{done: make(chan struct{})}
	q.inflight[key] = call
	q.mu.Unlock()

	call.value, call.err = fn()

	q.mu.Lock()
	delete(q.inflight, key)
	if call.err == nil {
		q.entries[key] = cacheEntry{value: call.value, fetchedAt: q.now()}
	}
	q.mu.Unlock()

	close(call.done)
	return call.value, call.err
}
