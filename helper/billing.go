package helper

import "github.com/shopspring/decimal"

// TaxRates are percentages in [0,100]. A nil rate contributes nothing.
// Range checks are the caller's job (validate layer).
type TaxRates struct {
	VatLow        *float64
	VatHigh       *float64
	ServiceTax    *float64
	ServiceCharge *float64
}

type BillTotals struct {
	VatLowAmount        float64 `json:"vatLowAmount"`
	VatHighAmount       float64 `json:"vatHighAmount"`
	ServiceTaxAmount    float64 `json:"serviceTaxAmount"`
	ServiceChargeAmount float64 `json:"serviceChargeAmount"`
	TotalAmount         float64 `json:"totalAmount"`
}

var oneHundred = decimal.NewFromInt(100)

// CalculateTotals computes the four charge amounts and the bill total in exact
// decimal arithmetic. Each charge is baseAmount*rate/100 rounded to 2 decimal
// places, half away from zero. The total is the base plus the sum of the
// already-rounded charges: round-then-sum, never sum-then-round.
func CalculateTotals(baseAmount float64, rates TaxRates) BillTotals {
	base := decimal.NewFromFloat(baseAmount).Round(2)

	vatLow := chargeAmount(base, rates.VatLow)
	vatHigh := chargeAmount(base, rates.VatHigh)
	serviceTax := chargeAmount(base, rates.ServiceTax)
	serviceCharge := chargeAmount(base, rates.ServiceCharge)

	total := base.Add(vatLow).Add(vatHigh).Add(serviceTax).Add(serviceCharge)

	return BillTotals{
		VatLowAmount:        vatLow.InexactFloat64(),
		VatHighAmount:       vatHigh.InexactFloat64(),
		ServiceTaxAmount:    serviceTax.InexactFloat64(),
		ServiceChargeAmount: serviceCharge.InexactFloat64(),
		TotalAmount:         total.InexactFloat64(),
	}
}

func chargeAmount(base decimal.Decimal, rate *float64) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}
	return base.Mul(decimal.NewFromFloat(*rate)).Div(oneHundred).Round(2)
}
