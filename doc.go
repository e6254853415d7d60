// Package nucmix models the chemical and isotopic composition of matter
// for nuclear-astrophysics code — a registry of nuclide species with
// molar abundances, plus every derived quantity a simulation asks of it.
//
// 🚀 What is nucmix?
//
//	A small, deterministic, in-memory library that brings together:
//		• Species catalog: an immutable nuclide table (curated AME2020/NUBASE2020
//		  subset) with a total order by atomic mass
//		• Composition: sorted-storage value type holding one molar abundance
//		  per registered species, with invariants enforced at every call
//		• Derived quantities: mass fractions, number fractions, mean particle
//		  mass, electron abundance, canonical (X, Y, Z) split — computed once
//		  per mutation epoch and served from a private cache
//		• Content hashing: a 64-bit, order-independent, bit-exact fingerprint
//		  of a composition, plus a quantized variant for fuzzy deduplication
//		• Masked views: read-only restrictions of a composition to a fixed
//		  subset of species
//
// ✨ Why choose nucmix?
//
//   - Deterministic by construction – storage is always sorted by species
//     mass, so vector indices, iteration order and hashes never depend on
//     registration order
//   - Explicit contracts – sentinel errors for every misuse, no silent
//     clamping, no hidden state machine
//   - Pure Go – no cgo, no I/O, no background goroutines
//
// Everything is organized under two subpackages:
//
//	species/     — the immutable nuclide catalog and Species value type
//	composition/ — Composition, Masked views, canonical split, hashing
//
// Quick sketch:
//
//	c := composition.New()
//	c.RegisterSpecies(species.MustLookup("H-1"), species.MustLookup("He-4"))
//	_ = c.SetMolarAbundance(species.MustLookup("H-1"), 0.6)
//	x, _ := c.MassFraction(species.MustLookup("H-1"))
//
// Dive into the examples/ directory for runnable scenarios.
package nucmix
