package domain

import "context"

// GatewayPort is the narrow surface of the payment provider this service
// depends on. The signature check of inbound webhooks is local; there is no
// verification call.
type GatewayPort interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (string, error)
}

// MailerPort delivers receipt emails. SendAsync must never block the caller.
type MailerPort interface {
	Send(to, subject, htmlBody string) error
	SendAsync(to, subject, htmlBody string)
}
