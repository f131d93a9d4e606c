package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

var errMockExhausted = errors.New("mock: no responses left")

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Stop    string // Defaults to StopEnd
	Err     error
}

// MockJSON marshals v into a canned response. It panics if v cannot be
// marshaled, which only happens with programmer error in tests.
func MockJSON(v any) MockResponse {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return MockResponse{Content: b}
}

// MockProvider is a deterministic Provider for tests. Responses are
// served in FIFO order and every request is recorded. Content goes through
// the same schema check as real providers.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response. An empty queue fails as
// KindUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		m.mu.Unlock()
		return nil, &Error{Kind: KindUnavailable, Provider: "mock", Err: errMockExhausted}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	m.mu.Unlock()

	if resp.Err != nil {
		return nil, resp.Err
	}
	stop := resp.Stop
	if stop == "" {
		stop = StopEnd
	}
	return finish("mock", req, resp.Content, resp.Usage, "mock", stop)
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
