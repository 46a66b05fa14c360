package mqtt

import (
	"fmt"
	"sync"
)

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	Messages   map[string][]any
	FailTopics map[string]bool
	mu         sync.Mutex
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		Messages:   make(map[string][]any),
		FailTopics: make(map[string]bool),
	}
}

// PublishEvent records the payload or returns an error if configured to fail.
func (m *MockPublisher) PublishEvent(topicSuffix string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailTopics[topicSuffix] {
		return fmt.Errorf("publish failed")
	}
	m.Messages[topicSuffix] = append(m.Messages[topicSuffix], payload)
	return nil
}

// Published returns the payloads recorded for a topic suffix.
func (m *MockPublisher) Published(topicSuffix string) []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]any, len(m.Messages[topicSuffix]))
	copy(out, m.Messages[topicSuffix])
	return out
}

// Close is a no-op.
func (m *MockPublisher) Close() {}
