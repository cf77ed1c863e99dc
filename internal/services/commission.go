package services

import (
	"math"

	"staffhub/internal/apperrors"
)

const (
	commissionRate  = 0.10
	commissionFloor = 30.00
)

// ComputeCommission derives the commission owed on a sale: 10% of the sale
// amount with a £30 floor, rounded to pennies at this monetary boundary.
// The amount is fixed at booking time and never recomputed.
func ComputeCommission(saleAmount float64) (float64, error) {
	if math.IsNaN(saleAmount) || math.IsInf(saleAmount, 0) || saleAmount < 0 {
		return 0, &apperrors.ValidationError{Field: "sale_amount", Message: "must be a non-negative number"}
	}
	amount := saleAmount * commissionRate
	if amount < commissionFloor {
		amount = commissionFloor
	}
	return math.Round(amount*100) / 100, nil
}
