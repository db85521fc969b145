package testutil

import (
	"context"
	"sync"

	"github.com/clinician-ai/portal-service/internal/llm"
)

// MockGateway is a scripted llm.Completer for tests. It returns the queued
// replies in order, or Reply once the queue is exhausted.
type MockGateway struct {
	mu      sync.Mutex
	Reply   string
	Err     error
	queue   []string
	history [][]llm.Message
}

func NewMockGateway(reply string) *MockGateway {
	return &MockGateway{Reply: reply}
}

// Enqueue adds a one-shot reply ahead of the default Reply
func (m *MockGateway) Enqueue(reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, reply)
}

func (m *MockGateway) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, messages)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.queue) > 0 {
		reply := m.queue[0]
		m.queue = m.queue[1:]
		return reply, nil
	}
	return m.Reply, nil
}

// Calls returns each recorded conversation sent to the gateway
func (m *MockGateway) Calls() [][]llm.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([][]llm.Message, len(m.history))
	copy(calls, m.history)
	return calls
}
