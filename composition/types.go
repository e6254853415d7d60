// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel error set, the View capability interface, and the
//       canonical (X, Y, Z) value type.
// Policy:
//   - All public operations return these sentinels; tests match them via
//     errors.Is. Call sites wrap with fmt.Errorf("Op(...): %w", ErrX) so
//     callers keep both context and matchability.

package composition

import (
	"errors"
	"fmt"
	"iter"

	"github.com/nucmix/nucmix/species"
)

// Sentinel errors for composition operations.
var (
	// ErrNotRegistered indicates a species that is valid per the catalog
	// but has not been registered in this particular composition.
	ErrNotRegistered = errors.New("composition: species not registered")

	// ErrNegativeAbundance indicates a negative molar abundance supplied
	// to a setter. Negative values are rejected at assignment, never stored.
	ErrNegativeAbundance = errors.New("composition: negative molar abundance")

	// ErrInvalidComposition indicates a derived self-consistency check
	// failed (currently the canonical X/Y/Z cross-check).
	ErrInvalidComposition = errors.New("composition: invalid composition")

	// ErrIndexOutOfRange indicates a vector-index query outside
	// [0, Size()-1].
	ErrIndexOutOfRange = errors.New("composition: species index out of range")

	// ErrLengthMismatch indicates batch inputs whose lengths disagree,
	// or a bulk vector whose length differs from the registered count.
	ErrLengthMismatch = errors.New("composition: input lengths mismatch")
)

// View is the read-only capability shared by *Composition and *Masked.
//
// It lets downstream code consume any composition representation — the
// concrete mutable type or a masked restriction — without concrete-type
// coupling. All index-based methods share one contract: indices follow
// RegisteredSpecies() order (ascending species order), and
// MassFractionVector, NumberFractionVector and MolarAbundanceVector are
// aligned with SpeciesIndex / SpeciesAtIndex.
type View interface {
	// Size returns the number of registered species.
	Size() int

	// Contains reports whether sp is registered in this view.
	// It never fails: a Species value needs no external validation.
	Contains(sp species.Species) bool

	// ContainsSymbol reports whether the symbol is registered in this
	// view. It fails with species.ErrUnknownSpecies when the symbol is
	// not in the catalog at all.
	ContainsSymbol(symbol string) (bool, error)

	// RegisteredSpecies returns the registered species in ascending
	// order. The slice is a fresh copy.
	RegisteredSpecies() []species.Species

	// RegisteredSymbols returns the symbols of the registered species in
	// ascending species order.
	RegisteredSymbols() []string

	// MolarAbundance returns the stored molar abundance of sp; it fails
	// with ErrNotRegistered when sp is not registered.
	MolarAbundance(sp species.Species) (float64, error)

	// MolarAbundanceOf is the symbol-resolving variant of MolarAbundance.
	MolarAbundanceOf(symbol string) (float64, error)

	// MassFraction returns X_i = (y_i*A_i) / Σ_j(y_j*A_j), or 0 when the
	// total is zero; it fails with ErrNotRegistered when sp is absent.
	MassFraction(sp species.Species) (float64, error)

	// MassFractionOf is the symbol-resolving variant of MassFraction.
	MassFractionOf(symbol string) (float64, error)

	// NumberFraction returns n_i = y_i / Σ_j y_j, or 0 when the total is
	// zero; it fails with ErrNotRegistered when sp is absent.
	NumberFraction(sp species.Species) (float64, error)

	// NumberFractionOf is the symbol-resolving variant of NumberFraction.
	NumberFractionOf(symbol string) (float64, error)

	// MassFractions returns the mass fraction of every registered species.
	MassFractions() map[species.Species]float64

	// NumberFractions returns the number fraction of every registered
	// species.
	NumberFractions() map[species.Species]float64

	// MeanParticleMass returns Σ_i(y_i*A_i) / Σ_i y_i, the abundance-
	// weighted mean particle mass in u. A zero-total composition yields 0.
	MeanParticleMass() float64

	// ElectronAbundance returns Y_e = Σ_i(Z_i * y_i).
	ElectronAbundance() float64

	// MassFractionVector returns the mass fractions for all species in
	// RegisteredSpecies() order. Empty compositions yield an empty vector.
	MassFractionVector() []float64

	// NumberFractionVector returns the number fractions for all species
	// in RegisteredSpecies() order.
	NumberFractionVector() []float64

	// MolarAbundanceVector returns the molar abundances for all species
	// in RegisteredSpecies() order.
	MolarAbundanceVector() []float64

	// SpeciesIndex returns sp's index in the sorted vector representation;
	// it fails with ErrNotRegistered when sp is absent.
	SpeciesIndex(sp species.Species) (int, error)

	// SpeciesIndexOf is the symbol-resolving variant of SpeciesIndex.
	SpeciesIndexOf(symbol string) (int, error)

	// SpeciesAtIndex returns the species stored at the given vector index;
	// it fails with ErrIndexOutOfRange outside [0, Size()-1].
	SpeciesAtIndex(index int) (species.Species, error)

	// All iterates the (species, molar abundance) pairs in ascending
	// species order.
	All() iter.Seq2[species.Species, float64]

	// CloneView returns an independent deep copy of this view.
	CloneView() View
}

// Both composition representations satisfy View.
var (
	_ View = (*Composition)(nil)
	_ View = (*Masked)(nil)
)

// CanonicalComposition is the astrophysical (X, Y, Z) split of total mass
// fraction: X sums the canonical hydrogen isotopes (H-1..H-7), Y the
// canonical helium isotopes (He-3..He-10), Z everything heavier.
// By definition X + Y + Z = 1 for any composition with positive total mass.
type CanonicalComposition struct {
	X float64 // hydrogen mass fraction
	Y float64 // helium mass fraction
	Z float64 // metals mass fraction
}

// String renders the split for diagnostics.
func (c CanonicalComposition) String() string {
	return fmt.Sprintf("Canonical(X=%g, Y=%g, Z=%g)", c.X, c.Y, c.Z)
}

// isCanonicalH reports membership in the seven canonical hydrogen isotopes.
func isCanonicalH(sp species.Species) bool {
	return sp.Z() == 1 && sp.A() >= 1 && sp.A() <= 7
}

// isCanonicalHe reports membership in the eight canonical helium isotopes.
func isCanonicalHe(sp species.Species) bool {
	return sp.Z() == 2 && sp.A() >= 3 && sp.A() <= 10
}
