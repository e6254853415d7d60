// SPDX-License-Identifier: MIT
//
// File: composition.go
// Role: The Composition container itself — storage layout, derived-value
//       cache, constructors and species registration.
// Layout:
//   - species and ys are parallel slices kept sorted by species.Compare;
//     ys[i] is the molar abundance of species[i]. Sorted storage gives
//     O(log n) lookup and a deterministic iteration order for free.
//   - cache holds lazily computed derived quantities. Every successful
//     mutation calls cache.clear(); read paths populate on first demand.

package composition

import (
	"fmt"
	"slices"

	"github.com/nucmix/nucmix/species"
)

// Composition is a mutable chemical mixture: a set of registered species,
// each with a non-negative molar abundance (mol/g). Molar abundance is the
// sole stored state; every other quantity (mass fraction, number fraction,
// mean particle mass, electron abundance, content hash) is derived on
// demand and memoized until the next mutation.
//
// The zero value is an empty composition ready for use. Composition is not
// safe for concurrent mutation; concurrent reads are safe only after the
// caches have been populated (see doc.go).
type Composition struct {
	species []species.Species // sorted ascending by species.Compare
	ys      []float64         // ys[i] pairs with species[i]
	cache   derivedCache
}

// derivedCache memoizes quantities derived from the abundance vector.
// A nil field means "not computed yet". clear resets all fields; it is the
// only invalidation path and every successful mutation must call it.
type derivedCache struct {
	massFractions   []float64
	numberFractions []float64
	meanMass        *float64
	ye              *float64
	canonical       *CanonicalComposition
	hash            *uint64
}

func (c *derivedCache) clear() {
	c.massFractions = nil
	c.numberFractions = nil
	c.meanMass = nil
	c.ye = nil
	c.canonical = nil
	c.hash = nil
}

// New returns an empty composition.
func New() *Composition {
	return &Composition{}
}

// NewFromSpecies returns a composition with the given species registered
// and every abundance zero. Duplicates collapse to a single entry.
func NewFromSpecies(sps ...species.Species) *Composition {
	c := New()
	c.RegisterSpecies(sps...)
	return c
}

// NewFromSymbols resolves each symbol against the catalog and returns a
// composition with the resolved species registered at zero abundance.
// Resolution is all-or-nothing: one unknown symbol fails the whole call
// with species.ErrUnknownSpecies and nothing is registered.
func NewFromSymbols(symbols ...string) (*Composition, error) {
	c := New()
	if err := c.RegisterSymbols(symbols...); err != nil {
		return nil, err
	}
	return c, nil
}

// RegisterSpecies adds the given species at zero abundance. Registering an
// already registered species is a no-op that preserves its abundance.
// The derived cache is cleared only when the species set actually grows.
func (c *Composition) RegisterSpecies(sps ...species.Species) {
	changed := false
	for _, sp := range sps {
		if c.insert(sp) {
			changed = true
		}
	}
	if changed {
		c.cache.clear()
	}
}

// RegisterSymbols resolves the symbols against the catalog and registers
// the resolved species at zero abundance, all-or-nothing.
func (c *Composition) RegisterSymbols(symbols ...string) error {
	resolved := make([]species.Species, len(symbols))
	for i, sym := range symbols {
		sp, err := species.Lookup(sym)
		if err != nil {
			return fmt.Errorf("RegisterSymbols(%q): %w", sym, err)
		}
		resolved[i] = sp
	}
	c.RegisterSpecies(resolved...)
	return nil
}

// insert places sp into the sorted storage, reporting whether the species
// set grew. Existing entries keep their abundance.
func (c *Composition) insert(sp species.Species) bool {
	i, found := slices.BinarySearchFunc(c.species, sp, species.Compare)
	if found {
		return false
	}
	c.species = slices.Insert(c.species, i, sp)
	c.ys = slices.Insert(c.ys, i, 0.0)
	return true
}

// index returns sp's position in the sorted storage, or -1 when absent.
func (c *Composition) index(sp species.Species) int {
	i, found := slices.BinarySearchFunc(c.species, sp, species.Compare)
	if !found {
		return -1
	}
	return i
}

// totals returns Σ y_i*A_i and Σ y_i over all registered species.
func (c *Composition) totals() (massSum, moleSum float64) {
	for i, sp := range c.species {
		massSum += c.ys[i] * sp.Mass()
		moleSum += c.ys[i]
	}
	return massSum, moleSum
}

// Clone returns an independent deep copy sharing no storage with c.
// The derived cache is not copied; the clone recomputes on demand.
func (c *Composition) Clone() *Composition {
	return &Composition{
		species: slices.Clone(c.species),
		ys:      slices.Clone(c.ys),
	}
}

// CloneView returns Clone as a View.
func (c *Composition) CloneView() View {
	return c.Clone()
}
