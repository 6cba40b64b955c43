package accuracy

import (
	"errors"
	"fmt"

	apperrors "github.com/agbru/qdcalc/internal/errors"
)

// Check verifies the report's invariants: every result is canonical, and
// the accurate multiplication has a mean error no larger than the sloppy
// one. Failures are reported as apperrors.CheckError values joined into a
// single error.
func (r *Report) Check() error {
	var errs []error
	for _, res := range r.Results {
		if res.NonCanonical > 0 {
			errs = append(errs, apperrors.CheckError{
				Check: res.Name + " canonical form",
				Want:  "0 violations",
				Got:   fmt.Sprintf("%d of %d", res.NonCanonical, res.Trials),
			})
		}
	}

	sloppy, errS := r.Result("sloppy mul")
	accurate, errA := r.Result("accurate mul")
	if err := errors.Join(errS, errA); err != nil {
		return err
	}
	if accurate.MeanErr > sloppy.MeanErr {
		errs = append(errs, apperrors.CheckError{
			Check: "accurate mul mean error",
			Want:  fmt.Sprintf("<= %.3g eps (sloppy mul)", sloppy.MeanErr),
			Got:   fmt.Sprintf("%.3g eps", accurate.MeanErr),
		})
	}
	return errors.Join(errs...)
}
