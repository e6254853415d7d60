// SPDX-License-Identifier: MIT
//
// File: masked.go
// Role: Masked — a read-only restriction of a composition to an active
//       species subset.
// Semantics:
//   - Construction deep-copies the base: later mutation of the original
//     never leaks through the mask.
//   - The active set is the masked view's own "registered" set. Queries
//     outside it fail with ErrNotRegistered; active species absent from
//     the base read as zero.
//   - Fractions are NOT renormalized over the active set: the mask
//     restricts visibility, it does not rescale the mixture. Aggregates
//     (MeanParticleMass, ElectronAbundance) therefore sum base-relative
//     terms over the active species only.

package composition

import (
	"fmt"
	"iter"
	"slices"

	"github.com/nucmix/nucmix/species"
)

// Masked is a read-only view of a composition restricted to an active
// subset of species. It satisfies View; it has no mutators.
type Masked struct {
	base   *Composition      // private deep copy, frozen at construction
	active []species.Species // sorted ascending, deduplicated
}

// NewMasked returns a masked view of v restricted to the active species.
// The base is deep-copied at construction. Duplicate active species
// collapse; the active set may name species the base never registered,
// which then read as zero.
func NewMasked(v View, active ...species.Species) *Masked {
	act := slices.Clone(active)
	slices.SortFunc(act, species.Compare)
	act = slices.CompactFunc(act, func(a, b species.Species) bool {
		return species.Compare(a, b) == 0
	})
	return &Masked{base: materialize(v), active: act}
}

// materialize deep-copies any View into a concrete Composition.
func materialize(v View) *Composition {
	if c, ok := v.(*Composition); ok {
		return c.Clone()
	}
	c := New()
	for sp, y := range v.All() {
		c.insert(sp)
		i := c.index(sp)
		c.ys[i] = y
	}
	return c
}

// activeIndex returns sp's position in the active set, or -1.
func (m *Masked) activeIndex(sp species.Species) int {
	i, found := slices.BinarySearchFunc(m.active, sp, species.Compare)
	if !found {
		return -1
	}
	return i
}

// baseValue reads sp's molar abundance from the base, zero when absent.
func (m *Masked) baseValue(sp species.Species) float64 {
	if i := m.base.index(sp); i >= 0 {
		return m.base.ys[i]
	}
	return 0
}

// Size returns the number of active species.
func (m *Masked) Size() int { return len(m.active) }

// Contains reports whether sp is in the active set.
func (m *Masked) Contains(sp species.Species) bool {
	return m.activeIndex(sp) >= 0
}

// ContainsSymbol reports whether the symbol names an active species.
func (m *Masked) ContainsSymbol(symbol string) (bool, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return false, fmt.Errorf("ContainsSymbol(%q): %w", symbol, err)
	}
	return m.Contains(sp), nil
}

// RegisteredSpecies returns the active species in ascending order.
func (m *Masked) RegisteredSpecies() []species.Species {
	return slices.Clone(m.active)
}

// RegisteredSymbols returns the active symbols in ascending species order.
func (m *Masked) RegisteredSymbols() []string {
	out := make([]string, len(m.active))
	for i, sp := range m.active {
		out[i] = sp.Symbol()
	}
	return out
}

// MolarAbundance returns sp's base abundance, zero when the base never
// registered it; it fails with ErrNotRegistered outside the active set.
func (m *Masked) MolarAbundance(sp species.Species) (float64, error) {
	if m.activeIndex(sp) < 0 {
		return 0, fmt.Errorf("MolarAbundance(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	return m.baseValue(sp), nil
}

// MolarAbundanceOf is the symbol-resolving variant of MolarAbundance.
func (m *Masked) MolarAbundanceOf(symbol string) (float64, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("MolarAbundanceOf(%q): %w", symbol, err)
	}
	return m.MolarAbundance(sp)
}

// MassFraction returns sp's mass fraction relative to the FULL base
// mixture (no renormalization over the active set).
func (m *Masked) MassFraction(sp species.Species) (float64, error) {
	if m.activeIndex(sp) < 0 {
		return 0, fmt.Errorf("MassFraction(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	if i := m.base.index(sp); i >= 0 {
		return m.base.massFractionVector()[i], nil
	}
	return 0, nil
}

// MassFractionOf is the symbol-resolving variant of MassFraction.
func (m *Masked) MassFractionOf(symbol string) (float64, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("MassFractionOf(%q): %w", symbol, err)
	}
	return m.MassFraction(sp)
}

// NumberFraction returns sp's number fraction relative to the full base
// mixture.
func (m *Masked) NumberFraction(sp species.Species) (float64, error) {
	if m.activeIndex(sp) < 0 {
		return 0, fmt.Errorf("NumberFraction(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	if i := m.base.index(sp); i >= 0 {
		return m.base.numberFractionVector()[i], nil
	}
	return 0, nil
}

// NumberFractionOf is the symbol-resolving variant of NumberFraction.
func (m *Masked) NumberFractionOf(symbol string) (float64, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("NumberFractionOf(%q): %w", symbol, err)
	}
	return m.NumberFraction(sp)
}

// MassFractions returns the base-relative mass fraction of every active
// species, zero for species the base never registered.
func (m *Masked) MassFractions() map[species.Species]float64 {
	out := make(map[species.Species]float64, len(m.active))
	for _, sp := range m.active {
		x, _ := m.MassFraction(sp)
		out[sp] = x
	}
	return out
}

// NumberFractions returns the base-relative number fraction of every
// active species.
func (m *Masked) NumberFractions() map[species.Species]float64 {
	out := make(map[species.Species]float64, len(m.active))
	for _, sp := range m.active {
		n, _ := m.NumberFraction(sp)
		out[sp] = n
	}
	return out
}

// MeanParticleMass returns the active portion of the base's mean particle
// mass: Σ n_i*A_i over active species, with n_i the base-relative number
// fraction.
func (m *Masked) MeanParticleMass() float64 {
	mu := 0.0
	for _, sp := range m.active {
		if i := m.base.index(sp); i >= 0 {
			mu += m.base.numberFractionVector()[i] * sp.Mass()
		}
	}
	return mu
}

// ElectronAbundance returns Σ Z_i*y_i over the active species.
func (m *Masked) ElectronAbundance() float64 {
	ye := 0.0
	for _, sp := range m.active {
		ye += float64(sp.Z()) * m.baseValue(sp)
	}
	return ye
}

// MassFractionVector returns the base-relative mass fractions in active
// order.
func (m *Masked) MassFractionVector() []float64 {
	out := make([]float64, len(m.active))
	for i, sp := range m.active {
		out[i], _ = m.MassFraction(sp)
	}
	return out
}

// NumberFractionVector returns the base-relative number fractions in
// active order.
func (m *Masked) NumberFractionVector() []float64 {
	out := make([]float64, len(m.active))
	for i, sp := range m.active {
		out[i], _ = m.NumberFraction(sp)
	}
	return out
}

// MolarAbundanceVector returns the base abundances in active order.
func (m *Masked) MolarAbundanceVector() []float64 {
	out := make([]float64, len(m.active))
	for i, sp := range m.active {
		out[i] = m.baseValue(sp)
	}
	return out
}

// SpeciesIndex returns sp's position in the active ordering.
func (m *Masked) SpeciesIndex(sp species.Species) (int, error) {
	i := m.activeIndex(sp)
	if i < 0 {
		return 0, fmt.Errorf("SpeciesIndex(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	return i, nil
}

// SpeciesIndexOf is the symbol-resolving variant of SpeciesIndex.
func (m *Masked) SpeciesIndexOf(symbol string) (int, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("SpeciesIndexOf(%q): %w", symbol, err)
	}
	return m.SpeciesIndex(sp)
}

// SpeciesAtIndex returns the active species at the given index.
func (m *Masked) SpeciesAtIndex(index int) (species.Species, error) {
	if index < 0 || index >= len(m.active) {
		return species.Species{}, fmt.Errorf(
			"SpeciesAtIndex(%d): size %d: %w", index, len(m.active), ErrIndexOutOfRange)
	}
	return m.active[index], nil
}

// All iterates the (species, base abundance) pairs in active order.
func (m *Masked) All() iter.Seq2[species.Species, float64] {
	return func(yield func(species.Species, float64) bool) {
		for _, sp := range m.active {
			if !yield(sp, m.baseValue(sp)) {
				return
			}
		}
	}
}

// CloneView returns an independent copy of the masked view.
func (m *Masked) CloneView() View {
	return &Masked{base: m.base.Clone(), active: slices.Clone(m.active)}
}

// Unmask returns a mutable composition holding the active species with
// their base abundances, detached from the mask.
func (m *Masked) Unmask() *Composition {
	c := NewFromSpecies(m.active...)
	for i, sp := range c.species {
		c.ys[i] = m.baseValue(sp)
	}
	return c
}

// String renders the masked view in active order.
func (m *Masked) String() string {
	return fmt.Sprintf("Masked(%d of %d species)", len(m.active), m.base.Size())
}
