// Package mockengine provides an in-memory implementation of the native
// mc_core function table for testing session and protocol behavior without a
// vendor library.
package mockengine
