package mocks

import (
	"context"
	"sync"
)

// MockTextGenerator implements generation.TextGenerator for testing.
type MockTextGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior.
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values used when GenerateFn is nil.
	Response string
	Err      error

	// Responses, when non-empty, is consumed one entry per call before
	// falling back to Response/Err. An entry with a non-nil error models a
	// transport failure on that call.
	Responses []MockGeneratorCall

	// Call tracking for verification
	GenerateCalls struct {
		mu      sync.Mutex
		Count   int
		Prompts []string
	}
}

// MockGeneratorCall is one scripted provider response.
type MockGeneratorCall struct {
	Response string
	Err      error
}

// Generate implements the generation.TextGenerator interface.
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	call := m.GenerateCalls.Count
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	if len(m.Responses) > 0 {
		idx := call - 1
		if idx >= len(m.Responses) {
			idx = len(m.Responses) - 1
		}
		scripted := m.Responses[idx]
		return scripted.Response, scripted.Err
	}

	return m.Response, m.Err
}

// CallCount returns how many times Generate was invoked.
func (m *MockTextGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// Reset resets the call tracking state.
func (m *MockTextGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
}
