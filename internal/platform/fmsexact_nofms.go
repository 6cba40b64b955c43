//go:build qd_nofms

package platform

// fmsExact is never reached without FMS; CheckRounding guards on HasFMS.
func fmsExact(_, _ Word) Word { return 0 }
