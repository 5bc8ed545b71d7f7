// Package conv provides small, reflection-based helpers shared by the
// registry and the coercer: instance checks with pointer normalization,
// conversion input adaptation and a best-effort JSON round-trip Convert used
// to build typed values from loosely decoded documents.
package conv
