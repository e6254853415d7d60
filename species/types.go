// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Species value type, sentinel errors, and the total order contract.
// Determinism:
//   - Compare is a strict total order: atomic mass ascending, symbol as the
//     tie-break. Sorted storage and binary search elsewhere depend on it.

package species

import (
	"errors"
	"math"
)

// Sentinel errors for catalog lookups.
var (
	// ErrUnknownSpecies indicates that a symbol does not resolve in the
	// nuclide catalog at all.
	ErrUnknownSpecies = errors.New("species: unknown species symbol")
)

// Species is an immutable record identifying a specific nuclide.
//
// A Species is obtained from the catalog via Lookup or MustLookup; the
// zero value is not a valid nuclide. All fields are unexported so a value
// handed out by the catalog can never be altered by a caller.
//
// Species is comparable and may be used as a map key; equality by == is
// equivalent to symbol equality for catalog-issued values.
type Species struct {
	symbol     string  // canonical symbol, e.g. "He-4"
	element    string  // element symbol, e.g. "He"
	z          int     // proton count
	n          int     // neutron count
	a          int     // mass number (z + n)
	mass       float64 // atomic mass in u
	halfLife   float64 // half-life in seconds; +Inf for stable nuclides
	spinParity string  // raw JPi assignment from the evaluation, e.g. "1/2+"
	decayModes string  // dominant decay modes; empty for stable nuclides
	spin       float64 // numeric spin parsed from spinParity; 0 if unknown
	spinKnown  bool    // whether spin could be parsed from spinParity
}

// Symbol returns the canonical nuclide symbol, e.g. "Fe-56".
func (s Species) Symbol() string { return s.symbol }

// Element returns the element symbol, e.g. "Fe".
func (s Species) Element() string { return s.element }

// Z returns the proton count (atomic number).
func (s Species) Z() int { return s.z }

// N returns the neutron count.
func (s Species) N() int { return s.n }

// A returns the mass number (protons + neutrons).
func (s Species) A() int { return s.a }

// Mass returns the atomic mass in unified atomic mass units (u).
func (s Species) Mass() float64 { return s.mass }

// HalfLife returns the half-life in seconds; +Inf for stable nuclides.
func (s Species) HalfLife() float64 { return s.halfLife }

// IsStable reports whether the nuclide is stable against decay.
func (s Species) IsStable() bool { return math.IsInf(s.halfLife, 1) }

// SpinParity returns the raw spin-parity assignment string, e.g. "3/2-".
func (s Species) SpinParity() string { return s.spinParity }

// Spin returns the numeric nuclear spin parsed from the spin-parity
// assignment. The second return is false when the assignment string does
// not encode a usable spin value.
func (s Species) Spin() (float64, bool) { return s.spin, s.spinKnown }

// DecayModes returns the dominant decay modes string from the evaluation;
// it is empty for stable nuclides.
func (s Species) DecayModes() string { return s.decayModes }

// String returns the nuclide symbol.
func (s Species) String() string { return s.symbol }

// Compare orders a before b by atomic mass, tie-broken by symbol.
// It returns a negative value when a sorts first, zero only when a and b
// are the same nuclide, and a positive value otherwise.
//
// The tie-break keeps the order a strict total order consistent with
// symbol equality: two nuclides with coincident tabulated masses still
// occupy distinct positions in sorted storage.
func Compare(a, b Species) int {
	switch {
	case a.mass < b.mass:
		return -1
	case a.mass > b.mass:
		return 1
	}
	switch {
	case a.symbol < b.symbol:
		return -1
	case a.symbol > b.symbol:
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b under Compare.
func Less(a, b Species) bool { return Compare(a, b) < 0 }
