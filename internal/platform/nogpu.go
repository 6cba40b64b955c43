//go:build !qd_gpu

package platform

// GPU reports whether the package is built for the GPU kernel profile, in
// which the arithmetic core may not allocate, panic or touch global state.
const GPU = false
