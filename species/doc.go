// Package species provides the immutable nuclide catalog and the Species
// value type used throughout nucmix.
//
// The catalog is a curated subset of the AME2020 / NUBASE2020 evaluations,
// embedded in the binary and parsed once on first use. It behaves as a
// globally shared, read-only table for the lifetime of the process: every
// lookup for the same symbol returns an identical Species value.
//
// Ordering:
//
//	Species carry a total order, primarily by atomic mass and tie-broken
//	by symbol, so two distinct nuclides never compare equal even when
//	their tabulated masses coincide. Compare is the single source of
//	truth for that order; sorted containers elsewhere in nucmix rely on it.
//
// Equality:
//
//	Two Species values are the same nuclide iff their symbols match.
//	Because every Species originates from the one embedded catalog, plain
//	== comparison is equivalent and Species may be used as a map key.
//
// Errors (sentinel):
//
//	ErrUnknownSpecies - a symbol does not resolve in the catalog.
package species
