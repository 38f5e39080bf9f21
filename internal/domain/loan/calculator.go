package loan

import "errors"

var (
	ErrUnknownPeriod = errors.New("unknown repayment period")
	ErrInvalidTerms  = errors.New("amount and duration must be positive")
)

const (
	annualRate = 0.12

	feeRateLow   = 0.05
	feeRateHigh  = 0.08
	feeThreshold = 60000.0
)

type Terms struct {
	Fee      float64 `json:"fee"`
	Interest float64 `json:"interest"`
	Total    float64 `json:"total"`
}

// Calculate derives the one-time fee, the simple (non-compounding)
// interest and the total repayment for a requested loan. The fee tier
// switches at 60,000 with no proration; the boundary amount itself uses
// the lower rate. The number of periods keeps its fractional part (a
// 10-month loan repaid quarterly is 3.33 periods).
func Calculate(amount float64, durationMonths int, period Period) (Terms, error) {
	if amount <= 0 || durationMonths <= 0 {
		return Terms{}, ErrInvalidTerms
	}
	months := period.Months()
	if months == 0 {
		return Terms{}, ErrUnknownPeriod
	}

	fee := amount * feeRateLow
	if amount > feeThreshold {
		fee = amount * feeRateHigh
	}

	ratePerPeriod := annualRate / float64(12/months)
	nPeriods := float64(durationMonths) / float64(months)
	interest := amount * ratePerPeriod * nPeriods

	return Terms{
		Fee:      fee,
		Interest: interest,
		Total:    amount + fee + interest,
	}, nil
}
