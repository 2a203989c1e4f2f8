// Package notify formats the evaluation report into the outbound message
// and delivers it. The transport is an injected capability; the core never
// depends on which concrete backend carries the message.
package notify

import "context"

// Sender delivers a formatted report message to the outbound channel.
type Sender interface {
	// Send delivers text, honoring ctx for cancellation and deadline.
	// Any non-delivery condition is reported as an ErrTransport-wrapped
	// error; there is no automatic retry.
	Send(ctx context.Context, text string) error
}

// NopSender discards messages. Used when no notification channel is
// configured (dry-run deployments, tests).
type NopSender struct{}

// Send discards the message.
func (NopSender) Send(_ context.Context, _ string) error { return nil }
