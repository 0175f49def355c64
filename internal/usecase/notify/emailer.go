// Package notify holds the best-effort email side of notification dispatch.
// In-app notification rows are written by the usecases inside their own
// transactions; email happens after commit and never fails the request.
package notify

import (
	"context"
	"log"
	"time"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Emailer struct {
	mailer  Mailer
	enabled bool
}

func NewEmailer(m Mailer, enabled bool) *Emailer {
	return &Emailer{mailer: m, enabled: enabled}
}

// BestEffort sends an email and only logs on failure. The passed context's
// cancellation is deliberately not inherited: the triggering request may have
// already completed.
func (e *Emailer) BestEffort(to, subject, body string) {
	if !e.enabled || e.mailer == nil || to == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.mailer.Send(ctx, to, subject, body); err != nil {
		log.Printf("notify: email to %s failed: %v", to, err)
	}
}
