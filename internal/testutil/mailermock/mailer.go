package mailermock

import (
	"context"
	"sync"
)

// Sent records one delivered message.
type Sent struct {
	To      string
	Subject string
	Body    string
}

// Mailer records sends instead of talking to an email API.
type Mailer struct {
	mu   sync.Mutex
	sent []Sent

	// SendFn overrides the default record-and-succeed behavior.
	SendFn func(ctx context.Context, to, subject, body string) error
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFn != nil {
		return m.SendFn(ctx, to, subject, body)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, Sent{To: to, Subject: subject, Body: body})
	return nil
}

func (m *Mailer) Messages() []Sent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Sent, len(m.sent))
	copy(out, m.sent)
	return out
}
