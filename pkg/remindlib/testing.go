package remindlib

import (
	"context"
	"sync"
)

// MockDelivery records schedule requests for verification in tests.
// If Err is set, ScheduleOneShot returns it without recording.
type MockDelivery struct {
	mu       sync.Mutex
	Err      error
	Requests []Request
}

func (m *MockDelivery) ScheduleOneShot(_ context.Context, req Request) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()
	return nil
}

// Calls returns a copy of the recorded requests.
func (m *MockDelivery) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.Requests...)
}

// MockAuthorizer counts authorization requests and answers with the
// configured grant result.
type MockAuthorizer struct {
	mu       sync.Mutex
	Granted  bool
	Err      error
	requests int
}

func (m *MockAuthorizer) RequestAuthorization(_ context.Context) (bool, error) {
	m.mu.Lock()
	m.requests++
	m.mu.Unlock()
	return m.Granted, m.Err
}

// RequestCount returns how many times authorization was requested.
func (m *MockAuthorizer) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

var (
	_ Delivery   = (*MockDelivery)(nil)
	_ Authorizer = (*MockAuthorizer)(nil)
)
