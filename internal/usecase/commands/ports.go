package commands

import "context"

// PaymentGateway abstracts the upstream payment provider so settlement logic
// stays testable without network calls.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (orderID string, err error)
	CreateTransfer(ctx context.Context, paymentID string, amountMinor int64, currency, account string) (transferID string, err error)
}

// SignatureVerifier checks the gateway callback signature. Implementations
// must compare in constant time.
type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}
