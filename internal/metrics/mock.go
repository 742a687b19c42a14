package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu             sync.Mutex
	apiRequests    int
	apiFailures    int
	cacheHits      int
	cacheMisses    int
	verifyFailures int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncAPIRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiRequests++
}

func (m *Mock) IncAPIFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiFailures++
}

func (m *Mock) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Mock) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

func (m *Mock) IncVerifyFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifyFailures++
}

// APIRequests returns the number of times IncAPIRequests was called.
func (m *Mock) APIRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apiRequests
}

// APIFailures returns the number of times IncAPIFailures was called.
func (m *Mock) APIFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apiFailures
}

// CacheHits returns the number of times IncCacheHits was called.
func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

// CacheMisses returns the number of times IncCacheMisses was called.
func (m *Mock) CacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses
}

// VerifyFailures returns the number of times IncVerifyFailures was called.
func (m *Mock) VerifyFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verifyFailures
}
