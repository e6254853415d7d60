// Package composition models the isotopic composition of a quantity of
// matter: a duplicate-free registry of nuclide species, one non-negative
// molar abundance per species, and every derived quantity kept mutually
// consistent with that source of truth.
//
// Model:
//
//	Molar abundance (moles of a species per unit mass of the whole
//	composition) is the only stored quantity. Mass fractions, number
//	fractions, mean particle mass, electron abundance and the canonical
//	(X, Y, Z) split are derived on demand and memoized until the next
//	mutation. There is no finalize step: a Composition is always valid
//	once its species are registered, and every read reflects current state.
//
// Storage and determinism:
//
//	Species live in a flat slice kept strictly sorted by the species total
//	order (atomic mass, tie-broken by symbol), with the abundance slice
//	index-aligned. Registration order therefore never affects iteration
//	order, vector indices, or the content hash. Lookup is O(log n) by
//	binary search; insertion is O(n) — compositions are small (tens of
//	species) and read far more often than mutated.
//
// Views:
//
//	The View interface is the read capability shared by *Composition and
//	*Masked. A Masked view restricts a cloned snapshot of a base
//	composition to a fixed active species list: explicit getters outside
//	the active list fail, aggregate getters zero-fill, and later mutation
//	of the original base is never visible through the mask.
//
// Hashing:
//
//	Hash and HashOf produce a 64-bit, order-independent, bit-exact
//	fingerprint of the (species, abundance) pairs, suitable as a
//	deduplication or memoization key. HashQuantized collapses near-equal
//	compositions onto one digest. Not cryptographic.
//
// Concurrency:
//
//	Compositions are not safe for concurrent mutation. Reads are lazy —
//	the first read after a mutation populates the cache — so concurrent
//	readers are only safe once no mutation (including a first, cache-
//	populating read) can run alongside them.
//
// Errors (sentinel):
//
//	ErrNotRegistered      - species valid in the catalog but not registered here.
//	ErrNegativeAbundance  - a negative molar abundance was supplied.
//	ErrInvalidComposition - a derived self-consistency check failed.
//	ErrIndexOutOfRange    - a vector-index query exceeded the species count.
//	ErrLengthMismatch     - batch inputs with mismatched lengths.
//	species.ErrUnknownSpecies surfaces unchanged from symbol resolution.
package composition
