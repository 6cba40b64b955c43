//go:build !qd_nofms

package platform

func fmsExact(a, p Word) Word { return FMS(a, a, p) }
