// Package gatewaysig computes and verifies the HMAC signature the payment
// gateway attaches to checkout confirmations. The signature proves a
// confirmation came from the gateway and not from a tampering client, so
// verification uses a constant-time comparison.
package gatewaysig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Compute returns the hex HMAC-SHA256 of "orderID|paymentID" keyed with the
// gateway secret. This is the signing scheme the gateway documents for
// checkout callbacks.
func Compute(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the supplied signature matches the expected one.
func Verify(orderID, paymentID, secret, signature string) bool {
	expected := Compute(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
