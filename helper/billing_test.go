package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rate(v float64) *float64 { return &v }

func TestCalculateTotalsGolden(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		rates TaxRates
		want  BillTotals
	}{
		{
			name:  "all rates nil",
			base:  100,
			rates: TaxRates{},
			want:  BillTotals{TotalAmount: 100},
		},
		{
			name:  "vat low and high",
			base:  100,
			rates: TaxRates{VatLow: rate(10), VatHigh: rate(5), ServiceTax: rate(0), ServiceCharge: rate(0)},
			want: BillTotals{
				VatLowAmount:  10,
				VatHighAmount: 5,
				TotalAmount:   115,
			},
		},
		{
			name:  "third decimal rounds down",
			base:  33,
			rates: TaxRates{VatLow: rate(10)},
			want: BillTotals{
				VatLowAmount: 3.30,
				TotalAmount:  36.30,
			},
		},
		{
			name:  "half rounds up",
			base:  0.50,
			rates: TaxRates{ServiceCharge: rate(25)},
			want: BillTotals{
				ServiceChargeAmount: 0.13, // 0.125 rounds half up
				TotalAmount:         0.63,
			},
		},
		{
			name:  "zero base",
			base:  0,
			rates: TaxRates{VatLow: rate(10), VatHigh: rate(21), ServiceTax: rate(5), ServiceCharge: rate(12.5)},
			want:  BillTotals{},
		},
		{
			name:  "all four charges",
			base:  200,
			rates: TaxRates{VatLow: rate(9), VatHigh: rate(21), ServiceTax: rate(2.5), ServiceCharge: rate(10)},
			want: BillTotals{
				VatLowAmount:        18,
				VatHighAmount:       42,
				ServiceTaxAmount:    5,
				ServiceChargeAmount: 20,
				TotalAmount:         285,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.base, tt.rates)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTotalsRoundsBeforeSumming(t *testing.T) {
	// Each 5% charge on 10.05 is 0.5025; rounded per charge that is 0.50
	// four times, so the total is 12.05. Summing first and rounding once
	// would give 12.06.
	got := CalculateTotals(10.05, TaxRates{
		VatLow:        rate(5),
		VatHigh:       rate(5),
		ServiceTax:    rate(5),
		ServiceCharge: rate(5),
	})
	assert.Equal(t, 0.50, got.VatLowAmount)
	assert.Equal(t, 12.05, got.TotalAmount)
}

func TestCalculateTotalsNoFloatDrift(t *testing.T) {
	// 0.1+0.2 style inputs must not leak binary-float noise into totals.
	got := CalculateTotals(0.30, TaxRates{VatLow: rate(10)})
	assert.Equal(t, 0.03, got.VatLowAmount)
	assert.Equal(t, 0.33, got.TotalAmount)
}

func TestCalculateTotalsMonotonic(t *testing.T) {
	bases := []float64{0, 1, 33, 99.99, 250}
	prev := -1.0
	for _, base := range bases {
		got := CalculateTotals(base, TaxRates{VatLow: rate(10), ServiceCharge: rate(5)})
		assert.GreaterOrEqual(t, got.TotalAmount, prev, "total must not decrease as base grows")
		prev = got.TotalAmount
	}

	prev = -1.0
	for _, r := range []float64{0, 2.5, 10, 50, 100} {
		got := CalculateTotals(80, TaxRates{ServiceTax: rate(r)})
		assert.GreaterOrEqual(t, got.TotalAmount, prev, "total must not decrease as rate grows")
		prev = got.TotalAmount
	}
}
