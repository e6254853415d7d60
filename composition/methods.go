// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Membership queries, molar-abundance getters and setters (scalar,
//       batch, symbol-resolving), iteration and string rendering.
// Contracts:
//   - Setters validate fully before mutating: a batch either lands whole
//     or leaves the composition untouched.
//   - NaN passes the negativity check (NaN < 0 is false) and is storable;
//     it propagates through derived quantities as IEEE-754 dictates.

package composition

import (
	"fmt"
	"iter"
	"strings"

	"github.com/nucmix/nucmix/species"
)

// Size returns the number of registered species.
func (c *Composition) Size() int { return len(c.species) }

// Contains reports whether sp is registered.
func (c *Composition) Contains(sp species.Species) bool {
	return c.index(sp) >= 0
}

// ContainsSymbol reports whether the symbol names a registered species.
// Unknown symbols fail with species.ErrUnknownSpecies.
func (c *Composition) ContainsSymbol(symbol string) (bool, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return false, fmt.Errorf("ContainsSymbol(%q): %w", symbol, err)
	}
	return c.Contains(sp), nil
}

// RegisteredSpecies returns the registered species in ascending order.
func (c *Composition) RegisteredSpecies() []species.Species {
	out := make([]species.Species, len(c.species))
	copy(out, c.species)
	return out
}

// RegisteredSymbols returns the registered symbols in ascending species
// order.
func (c *Composition) RegisteredSymbols() []string {
	out := make([]string, len(c.species))
	for i, sp := range c.species {
		out[i] = sp.Symbol()
	}
	return out
}

// MolarAbundance returns the stored molar abundance of sp.
func (c *Composition) MolarAbundance(sp species.Species) (float64, error) {
	i := c.index(sp)
	if i < 0 {
		return 0, fmt.Errorf("MolarAbundance(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	return c.ys[i], nil
}

// MolarAbundanceOf is the symbol-resolving variant of MolarAbundance.
func (c *Composition) MolarAbundanceOf(symbol string) (float64, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("MolarAbundanceOf(%q): %w", symbol, err)
	}
	return c.MolarAbundance(sp)
}

// SetMolarAbundance assigns sp's molar abundance. It fails with
// ErrNotRegistered for unregistered species and ErrNegativeAbundance for
// y < 0; on failure the composition is unchanged.
func (c *Composition) SetMolarAbundance(sp species.Species, y float64) error {
	i := c.index(sp)
	if i < 0 {
		return fmt.Errorf("SetMolarAbundance(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	if y < 0 {
		return fmt.Errorf("SetMolarAbundance(%s, %g): %w", sp.Symbol(), y, ErrNegativeAbundance)
	}
	c.ys[i] = y
	c.cache.clear()
	return nil
}

// SetMolarAbundanceBySymbol is the symbol-resolving variant of
// SetMolarAbundance.
func (c *Composition) SetMolarAbundanceBySymbol(symbol string, y float64) error {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return fmt.Errorf("SetMolarAbundanceBySymbol(%q): %w", symbol, err)
	}
	return c.SetMolarAbundance(sp, y)
}

// SetMolarAbundances assigns abundances to many species at once,
// all-or-nothing: the whole batch is validated before any element is
// stored. It fails with ErrLengthMismatch when the slices disagree in
// length, and with the scalar setter's sentinels on any invalid element.
func (c *Composition) SetMolarAbundances(sps []species.Species, ys []float64) error {
	if len(sps) != len(ys) {
		return fmt.Errorf("SetMolarAbundances: %d species vs %d abundances: %w",
			len(sps), len(ys), ErrLengthMismatch)
	}
	idx := make([]int, len(sps))
	for k, sp := range sps {
		i := c.index(sp)
		if i < 0 {
			return fmt.Errorf("SetMolarAbundances(%s): %w", sp.Symbol(), ErrNotRegistered)
		}
		if ys[k] < 0 {
			return fmt.Errorf("SetMolarAbundances(%s, %g): %w", sp.Symbol(), ys[k], ErrNegativeAbundance)
		}
		idx[k] = i
	}
	for k, i := range idx {
		c.ys[i] = ys[k]
	}
	if len(idx) > 0 {
		c.cache.clear()
	}
	return nil
}

// SetMolarAbundancesBySymbol is the symbol-resolving variant of
// SetMolarAbundances, with the same all-or-nothing contract.
func (c *Composition) SetMolarAbundancesBySymbol(symbols []string, ys []float64) error {
	if len(symbols) != len(ys) {
		return fmt.Errorf("SetMolarAbundancesBySymbol: %d symbols vs %d abundances: %w",
			len(symbols), len(ys), ErrLengthMismatch)
	}
	sps := make([]species.Species, len(symbols))
	for k, sym := range symbols {
		sp, err := species.Lookup(sym)
		if err != nil {
			return fmt.Errorf("SetMolarAbundancesBySymbol(%q): %w", sym, err)
		}
		sps[k] = sp
	}
	return c.SetMolarAbundances(sps, ys)
}

// SetMolarAbundanceVector assigns the full abundance vector in registered
// (ascending species) order. The vector length must equal Size; negative
// elements fail the whole call before anything is stored.
func (c *Composition) SetMolarAbundanceVector(ys []float64) error {
	if len(ys) != len(c.species) {
		return fmt.Errorf("SetMolarAbundanceVector: got %d values for %d species: %w",
			len(ys), len(c.species), ErrLengthMismatch)
	}
	for i, y := range ys {
		if y < 0 {
			return fmt.Errorf("SetMolarAbundanceVector(%s, %g): %w",
				c.species[i].Symbol(), y, ErrNegativeAbundance)
		}
	}
	copy(c.ys, ys)
	if len(ys) > 0 {
		c.cache.clear()
	}
	return nil
}

// All iterates the (species, molar abundance) pairs in ascending species
// order. Mutating the composition during iteration is undefined.
func (c *Composition) All() iter.Seq2[species.Species, float64] {
	return func(yield func(species.Species, float64) bool) {
		for i, sp := range c.species {
			if !yield(sp, c.ys[i]) {
				return
			}
		}
	}
}

// String renders the composition as "Composition(sym=y, ...)" in ascending
// species order, for diagnostics and logging.
func (c *Composition) String() string {
	var b strings.Builder
	b.WriteString("Composition(")
	for i, sp := range c.species {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", sp.Symbol(), c.ys[i])
	}
	b.WriteString(")")
	return b.String()
}
