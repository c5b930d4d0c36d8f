package optimizer

import (
	"fmt"

	"github.com/alexanderramin/gradeplan/internal/domain"
)

// Preflight reports every problem that would stop or degrade a solve,
// without solving. Unlike ComputeOptimalEffort it does not stop at the
// first defect. Zero-effort activities are reported only under the reject
// policy.
func (e *Engine) Preflight(activities []domain.Activity) []error {
	var errs []error

	if n := PendingCount(activities); n > e.opts.MaxPending {
		errs = append(errs, &EngineError{
			Kind: domain.KindInputTooLarge, Index: -1,
			Message: fmt.Sprintf("%d pending activities exceed the limit of %d", n, e.opts.MaxPending),
		})
	}

	if err := CheckWeightSum(activities); err != nil {
		errs = append(errs, err)
	}

	for i, a := range activities {
		if err := checkRecord(i, a); err != nil {
			errs = append(errs, err)
			continue
		}
		if a.Done {
			continue
		}
		if _, err := newCandidate(i, a, e.opts.ZeroEffort); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
