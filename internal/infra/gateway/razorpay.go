package gateway

import (
	"context"

	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/pkg/gatewaysig"
	"venuebook/internal/usecase/commands"

	razorpay "github.com/razorpay/razorpay-go"
)

var (
	errOrderCreateFailed    = errs.New("gateway order create failed")
	errTransferCreateFailed = errs.New("gateway transfer create failed")
	errMalformedResponse    = errs.New("malformed gateway response")
)

// RazorpayGateway wraps the Razorpay SDK behind the settlement ports.
type RazorpayGateway struct {
	client *razorpay.Client
	cfg    config.GatewayConfig
}

func NewRazorpayGateway(cfg config.GatewayConfig) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:    cfg,
	}
}

var _ commands.PaymentGateway = (*RazorpayGateway)(nil)
var _ commands.SignatureVerifier = (*RazorpayGateway)(nil)

func (g *RazorpayGateway) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", errs.Mark(err, errOrderCreateFailed)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", errMalformedResponse
	}
	return orderID, nil
}

func (g *RazorpayGateway) CreateTransfer(_ context.Context, paymentID string, amountMinor int64, currency, account string) (string, error) {
	data := map[string]interface{}{
		"transfers": []map[string]interface{}{
			{
				"account":  account,
				"amount":   amountMinor,
				"currency": currency,
			},
		},
	}

	result, err := g.client.Payment.Transfer(paymentID, data, nil)
	if err != nil {
		return "", errs.Mark(err, errTransferCreateFailed)
	}

	items, ok := result["items"].([]interface{})
	if !ok || len(items) == 0 {
		return "", errMalformedResponse
	}
	first, ok := items[0].(map[string]interface{})
	if !ok {
		return "", errMalformedResponse
	}
	transferID, ok := first["id"].(string)
	if !ok || transferID == "" {
		return "", errMalformedResponse
	}
	return transferID, nil
}

// Verify checks the checkout callback signature locally instead of through
// the SDK so the comparison is guaranteed constant time.
func (g *RazorpayGateway) Verify(orderID, paymentID, signature string) bool {
	return gatewaysig.Verify(orderID, paymentID, g.cfg.KeySecret, signature)
}
