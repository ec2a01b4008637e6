package snapshot

import (
	"encoding/json"
	"sync"
)

// MockKV is an in-memory mock implementation of the KV interface for testing.
// It is safe for concurrent use.
type MockKV struct {
	mu   sync.Mutex
	data map[string][]byte

	// Spies for method calls
	GetFunc    func(key string, v any) (bool, error)
	PutFunc    func(key string, v any) error
	DeleteFunc func(key string) error

	// Call records
	PutCalls    []string
	DeleteCalls []string
}

// NewMock creates a new mock instance backed by an in-memory map.
func NewMock() *MockKV {
	return &MockKV{data: make(map[string][]byte)}
}

// Reset clears all call records and stored data.
func (m *MockKV) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	m.PutCalls = nil
	m.DeleteCalls = nil
}

func (m *MockKV) Get(key string, v any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(key, v)
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *MockKV) Put(key string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, key)
	if m.PutFunc != nil {
		return m.PutFunc(key, v)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *MockKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, key)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(key)
	}
	delete(m.data, key)
	return nil
}
