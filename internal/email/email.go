package email

import "context"

// Provider delivers outbound mail. Delivery failures are logged by
// callers and never fail the triggering operation.
type Provider interface {
	SendVerificationEmail(ctx context.Context, to, name, token string) error
}
