// SPDX-License-Identifier: MIT
//
// File: methods_vectors.go
// Role: Dense-vector access for solver coupling — aligned fraction and
//       abundance vectors plus species<->index mapping.
// Contract: all vectors follow RegisteredSpecies() order; returned slices
// are fresh copies, safe to mutate.

package composition

import (
	"fmt"
	"slices"

	"github.com/nucmix/nucmix/species"
)

// MassFractionVector returns the mass fractions of all registered species
// in ascending species order.
func (c *Composition) MassFractionVector() []float64 {
	return slices.Clone(c.massFractionVector())
}

// NumberFractionVector returns the number fractions of all registered
// species in ascending species order.
func (c *Composition) NumberFractionVector() []float64 {
	return slices.Clone(c.numberFractionVector())
}

// MolarAbundanceVector returns the molar abundances of all registered
// species in ascending species order.
func (c *Composition) MolarAbundanceVector() []float64 {
	return slices.Clone(c.ys)
}

// SpeciesIndex returns sp's position in the vector representation.
func (c *Composition) SpeciesIndex(sp species.Species) (int, error) {
	i := c.index(sp)
	if i < 0 {
		return 0, fmt.Errorf("SpeciesIndex(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	return i, nil
}

// SpeciesIndexOf is the symbol-resolving variant of SpeciesIndex.
func (c *Composition) SpeciesIndexOf(symbol string) (int, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("SpeciesIndexOf(%q): %w", symbol, err)
	}
	return c.SpeciesIndex(sp)
}

// SpeciesAtIndex returns the species stored at the given vector index.
func (c *Composition) SpeciesAtIndex(index int) (species.Species, error) {
	if index < 0 || index >= len(c.species) {
		return species.Species{}, fmt.Errorf(
			"SpeciesAtIndex(%d): size %d: %w", index, len(c.species), ErrIndexOutOfRange)
	}
	return c.species[index], nil
}
