// Package bindings loads the native MatCalc core library (mc_core) at run
// time and exposes its six exported entry points as typed Go functions. The
// package owns everything that touches the foreign boundary: locating the
// library file, opening it, resolving symbols, and releasing the handle.
//
// Platforms without a dynamic-loading implementation compile against stub
// functions that return ErrNotBuilt, so the public matcalc package always
// builds.
package bindings
