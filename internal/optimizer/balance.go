package optimizer

import (
	"math"

	"github.com/alexanderramin/gradeplan/internal/domain"
)

// WeightSumTolerance is the allowed deviation of the weight sum from 1.
const WeightSumTolerance = 1e-3

// CheckWeightSum verifies that weights sum to 1 within WeightSumTolerance.
// It returns nil or a *WeightSumError carrying the actual sum.
func CheckWeightSum(activities []domain.Activity) error {
	sum := domain.WeightSum(activities)
	if math.IsNaN(sum) || math.Abs(sum-1.0) > WeightSumTolerance {
		return &WeightSumError{ActualSum: sum}
	}
	return nil
}
