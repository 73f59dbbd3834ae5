package payment

import "math"

// Money is an amount in the gateway's minor currency unit (paise for INR).
type Money struct {
	amount int64
}

func NewMoney(minor int64) (Money, error) {
	if minor <= 0 {
		return Money{}, ErrNonPositiveAmount
	}
	return Money{amount: minor}, nil
}

// MoneyFromMajor converts a major-unit amount (rupees) to minor units,
// rounding half away from zero.
func MoneyFromMajor(major float64) (Money, error) {
	return NewMoney(int64(math.Round(major * 100)))
}

func (m Money) Minor() int64 {
	return m.amount
}
