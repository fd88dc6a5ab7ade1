package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetPriceFromDecimal_Rounds(t *testing.T) {
	cases := map[float64]int64{
		0.29:    29, // truncation would store 28
		0.01:    1,
		1.10:    110,
		8999.50: 899950,
		1234.56: 123456,
	}
	for price, paise := range cases {
		var p Product
		p.SetPriceFromDecimal(price)
		require.Equal(t, paise, p.Price, "price %v", price)
	}
}

func TestPriceDecimalRoundTrip(t *testing.T) {
	// Every paise-representable price up to ₹5000 must survive the
	// decimal → paise → decimal round trip exactly.
	for paise := int64(1); paise <= 500000; paise++ {
		var p Product
		p.SetPriceFromDecimal(float64(paise) / 100)
		if p.Price != paise {
			t.Fatalf("%d paise stored as %d", paise, p.Price)
		}
	}
}
