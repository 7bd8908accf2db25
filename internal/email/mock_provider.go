package email

import "sync"

// MockProvider используется для тестов и когда отправка почты выключена.
// Письма не уходят, а складываются в Sent.
type MockProvider struct {
	mu   sync.Mutex
	Sent []Email
}

func (m *MockProvider) Send(email *Email) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, *email)
	m.mu.Unlock()
	return nil
}

func (m *MockProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	return m.Send(&Email{To: to, Subject: subject, Body: templateName})
}

func (m *MockProvider) Validate() error { return nil }
func (m *MockProvider) Close() error    { return nil }

// Messages returns a snapshot of what was sent.
func (m *MockProvider) Messages() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Email, len(m.Sent))
	copy(out, m.Sent)
	return out
}
