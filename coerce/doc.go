// Package coerce converts values between declared host types.  Its central
// Service type resolves a (source, target) pair to a push, pull or external
// conversion hint, caches every outcome forever and applies the conversion
// on demand.  Types and conversions arrive through modules that register
// eagerly but load lazily, and consumers reach the service either directly
// or through installed helper namespaces.
package coerce
