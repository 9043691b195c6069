// Package internalcheck contains repository-hygiene tests that enforce the
// layering rules of the wrapper: the foreign boundary stays confined to
// internal/bindings, and everything else goes through the public matcalc
// package. The checks load the module's packages and inspect their imports;
// they contain no runtime code.
package internalcheck
