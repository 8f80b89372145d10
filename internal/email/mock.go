package email

import (
	"context"
	"sync"
)

// MockProvider records sent messages for tests.
type MockProvider struct {
	mu   sync.Mutex
	Sent []MockMessage
}

type MockMessage struct {
	To    string
	Name  string
	Token string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) SendVerificationEmail(_ context.Context, to, name, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, MockMessage{To: to, Name: name, Token: token})
	return nil
}
