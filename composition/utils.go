// SPDX-License-Identifier: MIT
//
// File: utils.go
// Role: Construction and combination helpers that live outside the core
//       container — mass-fraction builders, mixing, subsetting, equality.

package composition

import (
	"fmt"
	"math"

	"github.com/nucmix/nucmix/species"
)

// massFractionSumTolerance bounds |Σ X_i - 1| in the mass-fraction
// builders.
const massFractionSumTolerance = 1e-10

// FromMassFractions builds a composition from mass fractions: y_i = X_i/A_i.
// The fractions must pair one-to-one with the species, be non-negative and
// sum to 1 within massFractionSumTolerance; any violation fails the whole
// call and nothing is built. A species listed more than once accumulates
// its fractions, matching how the sum check counts them.
func FromMassFractions(sps []species.Species, xs []float64) (*Composition, error) {
	if len(sps) != len(xs) {
		return nil, fmt.Errorf("FromMassFractions: %d species vs %d fractions: %w",
			len(sps), len(xs), ErrLengthMismatch)
	}
	sum := 0.0
	for k, x := range xs {
		if x < 0 {
			return nil, fmt.Errorf("FromMassFractions(%s, %g): %w",
				sps[k].Symbol(), x, ErrNegativeAbundance)
		}
		sum += x
	}
	if math.Abs(sum-1) > massFractionSumTolerance {
		return nil, fmt.Errorf("FromMassFractions: fractions sum to %g: %w",
			sum, ErrInvalidComposition)
	}
	c := NewFromSpecies(sps...)
	for k, sp := range sps {
		i := c.index(sp)
		c.ys[i] += xs[k] / sp.Mass()
	}
	return c, nil
}

// FromMassFractionSymbols is the symbol-resolving variant of
// FromMassFractions.
func FromMassFractionSymbols(symbols []string, xs []float64) (*Composition, error) {
	if len(symbols) != len(xs) {
		return nil, fmt.Errorf("FromMassFractionSymbols: %d symbols vs %d fractions: %w",
			len(symbols), len(xs), ErrLengthMismatch)
	}
	sps := make([]species.Species, len(symbols))
	for k, sym := range symbols {
		sp, err := species.Lookup(sym)
		if err != nil {
			return nil, fmt.Errorf("FromMassFractionSymbols(%q): %w", sym, err)
		}
		sps[k] = sp
	}
	return FromMassFractions(sps, xs)
}

// Mix blends two views in mass-fraction space over the union of their
// species: X_i = f*Xa_i + (1-f)*Xb_i, converted back to molar abundances.
// The result is normalized per unit mass (Σ y_i*A_i = 1) whenever both
// inputs carry positive mass. The blend fraction must lie in [0, 1].
func Mix(a, b View, f float64) (*Composition, error) {
	if f < 0 || f > 1 || math.IsNaN(f) {
		return nil, fmt.Errorf("Mix(f=%g): fraction outside [0,1]: %w",
			f, ErrInvalidComposition)
	}
	c := New()
	blend := func(v View, w float64) {
		sps := v.RegisteredSpecies()
		xs := v.MassFractionVector()
		for i, sp := range sps {
			c.insert(sp)
			c.ys[c.index(sp)] += w * xs[i]
		}
	}
	blend(a, f)
	blend(b, 1-f)
	for i, sp := range c.species {
		c.ys[i] /= sp.Mass()
	}
	return c, nil
}

// Subset extracts the named species with their abundances into a fresh
// mutable composition. Every requested species must be registered in v;
// a miss fails the whole call with ErrNotRegistered.
func Subset(v View, sps ...species.Species) (*Composition, error) {
	c := New()
	for _, sp := range sps {
		y, err := v.MolarAbundance(sp)
		if err != nil {
			return nil, fmt.Errorf("Subset(%s): %w", sp.Symbol(), ErrNotRegistered)
		}
		c.insert(sp)
		c.ys[c.index(sp)] = y
	}
	return c, nil
}

// SubsetSymbols is the symbol-resolving variant of Subset.
func SubsetSymbols(v View, symbols ...string) (*Composition, error) {
	sps := make([]species.Species, len(symbols))
	for k, sym := range symbols {
		sp, err := species.Lookup(sym)
		if err != nil {
			return nil, fmt.Errorf("SubsetSymbols(%q): %w", sym, err)
		}
		sps[k] = sp
	}
	return Subset(v, sps...)
}

// Equal reports whether two views register the same species with
// numerically equal abundances. Negative and positive zero compare equal;
// NaN compares equal to NaN regardless of payload.
func Equal(a, b View) bool {
	if a.Size() != b.Size() {
		return false
	}
	sa, sb := a.RegisteredSpecies(), b.RegisteredSpecies()
	ya, yb := a.MolarAbundanceVector(), b.MolarAbundanceVector()
	for i := range sa {
		if species.Compare(sa[i], sb[i]) != 0 {
			return false
		}
		if ya[i] != yb[i] && !(math.IsNaN(ya[i]) && math.IsNaN(yb[i])) {
			return false
		}
	}
	return true
}
