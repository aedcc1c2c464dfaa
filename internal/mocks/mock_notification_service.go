package mocks

import "sync"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error

	mu      sync.Mutex
	SentSMS []SentMessage
}

// SentMessage records one delivered SMS
type SentMessage struct {
	To      string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records the message and invokes the configured behavior
func (m *MockNotificationService) SendSMS(to, message string) error {
	m.mu.Lock()
	m.SentSMS = append(m.SentSMS, SentMessage{To: to, Message: message})
	m.mu.Unlock()

	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	return nil
}
