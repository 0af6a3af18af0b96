package payment

import "github.com/shopspring/decimal"

// FeePercent is the flat transaction fee applied at creation.
const FeePercent = 2.5

var feeRate = decimal.NewFromFloat(FeePercent).Div(decimal.NewFromInt(100))

// CalculateFee returns amount * 2.5% computed in decimal space, so
// 100 yields exactly 2.5 instead of a float artifact.
func CalculateFee(amount float64) float64 {
	fee, _ := decimal.NewFromFloat(amount).Mul(feeRate).Float64()
	return fee
}

// TotalWithFee returns amount + fee, again via decimal to keep the
// advertised total consistent with the two parts.
func TotalWithFee(amount, fee float64) float64 {
	total, _ := decimal.NewFromFloat(amount).Add(decimal.NewFromFloat(fee)).Float64()
	return total
}
