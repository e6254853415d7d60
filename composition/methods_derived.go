// SPDX-License-Identifier: MIT
//
// File: methods_derived.go
// Role: Lazily computed derived quantities — mass and number fractions,
//       mean particle mass, electron abundance, mean atomic number and the
//       canonical (X, Y, Z) split.
// Contracts:
//   - Zero-total compositions degrade to zeros, never to NaN or panic:
//     all fractions are 0, MeanParticleMass is 0.
//   - Canonical() cross-checks X+Y+Z against 1 at canonicalTolerance and
//     fails with ErrInvalidComposition on disagreement.

package composition

import (
	"fmt"
	"math"

	"github.com/nucmix/nucmix/species"
)

// canonicalTolerance bounds |X+Y+Z - 1| in Canonical().
const canonicalTolerance = 1e-16

// massFractionVector returns (and memoizes) the mass-fraction vector in
// registered order. The returned slice is the cache itself; callers must
// not hand it out without copying.
func (c *Composition) massFractionVector() []float64 {
	if c.cache.massFractions != nil {
		return c.cache.massFractions
	}
	out := make([]float64, len(c.species))
	massSum, _ := c.totals()
	if massSum != 0 {
		for i, sp := range c.species {
			out[i] = c.ys[i] * sp.Mass() / massSum
		}
	}
	c.cache.massFractions = out
	return out
}

// numberFractionVector returns (and memoizes) the number-fraction vector
// in registered order. Same aliasing caveat as massFractionVector.
func (c *Composition) numberFractionVector() []float64 {
	if c.cache.numberFractions != nil {
		return c.cache.numberFractions
	}
	out := make([]float64, len(c.species))
	_, moleSum := c.totals()
	if moleSum != 0 {
		for i := range c.ys {
			out[i] = c.ys[i] / moleSum
		}
	}
	c.cache.numberFractions = out
	return out
}

// MassFraction returns X_i = y_i*A_i / Σ_j y_j*A_j, or 0 when the total
// mass is zero.
func (c *Composition) MassFraction(sp species.Species) (float64, error) {
	i := c.index(sp)
	if i < 0 {
		return 0, fmt.Errorf("MassFraction(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	return c.massFractionVector()[i], nil
}

// MassFractionOf is the symbol-resolving variant of MassFraction.
func (c *Composition) MassFractionOf(symbol string) (float64, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("MassFractionOf(%q): %w", symbol, err)
	}
	return c.MassFraction(sp)
}

// NumberFraction returns n_i = y_i / Σ_j y_j, or 0 when the total moles
// are zero.
func (c *Composition) NumberFraction(sp species.Species) (float64, error) {
	i := c.index(sp)
	if i < 0 {
		return 0, fmt.Errorf("NumberFraction(%s): %w", sp.Symbol(), ErrNotRegistered)
	}
	return c.numberFractionVector()[i], nil
}

// NumberFractionOf is the symbol-resolving variant of NumberFraction.
func (c *Composition) NumberFractionOf(symbol string) (float64, error) {
	sp, err := species.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("NumberFractionOf(%q): %w", symbol, err)
	}
	return c.NumberFraction(sp)
}

// MassFractions returns the mass fraction of every registered species.
func (c *Composition) MassFractions() map[species.Species]float64 {
	xs := c.massFractionVector()
	out := make(map[species.Species]float64, len(c.species))
	for i, sp := range c.species {
		out[sp] = xs[i]
	}
	return out
}

// NumberFractions returns the number fraction of every registered species.
func (c *Composition) NumberFractions() map[species.Species]float64 {
	ns := c.numberFractionVector()
	out := make(map[species.Species]float64, len(c.species))
	for i, sp := range c.species {
		out[sp] = ns[i]
	}
	return out
}

// MeanParticleMass returns Σ y_i*A_i / Σ y_i in u, or 0 when Σ y_i is 0.
func (c *Composition) MeanParticleMass() float64 {
	if c.cache.meanMass != nil {
		return *c.cache.meanMass
	}
	massSum, moleSum := c.totals()
	mu := 0.0
	if moleSum != 0 {
		mu = massSum / moleSum
	}
	c.cache.meanMass = &mu
	return mu
}

// ElectronAbundance returns Y_e = Σ Z_i*y_i, the electron mole fraction
// under full ionization.
func (c *Composition) ElectronAbundance() float64 {
	if c.cache.ye != nil {
		return *c.cache.ye
	}
	ye := 0.0
	for i, sp := range c.species {
		ye += float64(sp.Z()) * c.ys[i]
	}
	c.cache.ye = &ye
	return ye
}

// MeanAtomicNumber returns Σ Z_i*y_i / Σ y_i, or 0 when Σ y_i is 0.
func (c *Composition) MeanAtomicNumber() float64 {
	_, moleSum := c.totals()
	if moleSum == 0 {
		return 0
	}
	return c.ElectronAbundance() / moleSum
}

// Canonical splits the total mass fraction into the astrophysical
// (X, Y, Z) triple: X over H-1..H-7, Y over He-3..He-10, Z the rest.
// The directly summed Z must agree with 1-(X+Y) within canonicalTolerance,
// otherwise the call fails with ErrInvalidComposition; an empty or
// zero-mass composition always fails, since its split sums to 0.
func (c *Composition) Canonical() (CanonicalComposition, error) {
	if c.cache.canonical != nil {
		return *c.cache.canonical, nil
	}
	xs := c.massFractionVector()
	var cc CanonicalComposition
	for i, sp := range c.species {
		switch {
		case isCanonicalH(sp):
			cc.X += xs[i]
		case isCanonicalHe(sp):
			cc.Y += xs[i]
		default:
			cc.Z += xs[i]
		}
	}
	if math.Abs(1-(cc.X+cc.Y)-cc.Z) > canonicalTolerance {
		return CanonicalComposition{}, fmt.Errorf(
			"Canonical(): X+Y+Z = %g: %w", cc.X+cc.Y+cc.Z, ErrInvalidComposition)
	}
	c.cache.canonical = &cc
	return cc, nil
}
