// Package mailertest provides a recording mailer.Sender for tests.
package mailertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/locaddo/locaddo/pkg/mailer"
)

// Recorder keeps every message it is asked to send. When FailOn is n > 0,
// the n-th Send (1-based) returns Err instead.
type Recorder struct {
	FailOn int
	Err    error

	mu   sync.Mutex
	sent []mailer.Message
	n    int
}

var _ mailer.Sender = &Recorder{}

func (r *Recorder) Send(_ context.Context, msg mailer.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.n++
	if r.FailOn > 0 && r.n == r.FailOn {
		err := r.Err
		if err == nil {
			err = fmt.Errorf("send %d failed", r.n)
		}
		return "", err
	}
	r.sent = append(r.sent, msg)
	return fmt.Sprintf("msg-%d", r.n), nil
}

// Sent returns a copy of the delivered messages.
func (r *Recorder) Sent() []mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mailer.Message(nil), r.sent...)
}
