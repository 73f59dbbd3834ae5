//go:build unit

package gatewaysig_test

import (
	"testing"

	"venuebook/internal/pkg/gatewaysig"

	"github.com/stretchr/testify/assert"
)

func TestComputeAndVerify(t *testing.T) {
	const secret = "rzp_test_secret"

	t.Run("round trip", func(t *testing.T) {
		sig := gatewaysig.Compute("order_1", "pay_1", secret)
		assert.True(t, gatewaysig.Verify("order_1", "pay_1", secret, sig))
	})

	t.Run("tampered signature fails", func(t *testing.T) {
		sig := gatewaysig.Compute("order_1", "pay_1", secret)
		tampered := sig[:len(sig)-1] + "0"
		if tampered == sig {
			tampered = sig[:len(sig)-1] + "1"
		}
		assert.False(t, gatewaysig.Verify("order_1", "pay_1", secret, tampered))
	})

	t.Run("different order or payment fails", func(t *testing.T) {
		sig := gatewaysig.Compute("order_1", "pay_1", secret)
		assert.False(t, gatewaysig.Verify("order_2", "pay_1", secret, sig))
		assert.False(t, gatewaysig.Verify("order_1", "pay_2", secret, sig))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		sig := gatewaysig.Compute("order_1", "pay_1", secret)
		assert.False(t, gatewaysig.Verify("order_1", "pay_1", "other_secret", sig))
	})

	t.Run("empty signature fails", func(t *testing.T) {
		assert.False(t, gatewaysig.Verify("order_1", "pay_1", secret, ""))
	})
}
