// SPDX-License-Identifier: MIT

package composition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucmix/nucmix/composition"
	"github.com/nucmix/nucmix/species"
)

func TestFromMassFractions_RoundTrip(t *testing.T) {
	h1 := species.MustLookup("H-1")
	he4 := species.MustLookup("He-4")

	c, err := composition.FromMassFractions(
		[]species.Species{h1, he4}, []float64{0.75, 0.25})
	require.NoError(t, err)

	xH, err := c.MassFraction(h1)
	require.NoError(t, err)
	require.InDelta(t, 0.75, xH, 1e-12)

	xHe, err := c.MassFraction(he4)
	require.NoError(t, err)
	require.InDelta(t, 0.25, xHe, 1e-12)

	yH, err := c.MolarAbundance(h1)
	require.NoError(t, err)
	require.Equal(t, 0.75/h1.Mass(), yH, "y = X/A by construction")
}

func TestFromMassFractions_Validation(t *testing.T) {
	h1 := species.MustLookup("H-1")
	he4 := species.MustLookup("He-4")

	t.Run("length mismatch", func(t *testing.T) {
		_, err := composition.FromMassFractions(
			[]species.Species{h1, he4}, []float64{1.0})
		require.ErrorIs(t, err, composition.ErrLengthMismatch)
	})

	t.Run("negative fraction", func(t *testing.T) {
		_, err := composition.FromMassFractions(
			[]species.Species{h1, he4}, []float64{1.25, -0.25})
		require.ErrorIs(t, err, composition.ErrNegativeAbundance)
	})

	t.Run("sum away from one", func(t *testing.T) {
		_, err := composition.FromMassFractions(
			[]species.Species{h1, he4}, []float64{0.75, 0.2})
		require.ErrorIs(t, err, composition.ErrInvalidComposition)
	})

	t.Run("sum within tolerance passes", func(t *testing.T) {
		_, err := composition.FromMassFractions(
			[]species.Species{h1, he4}, []float64{0.75, 0.25 + 1e-11})
		require.NoError(t, err)
	})

	t.Run("duplicate species accumulate", func(t *testing.T) {
		c, err := composition.FromMassFractions(
			[]species.Species{h1, h1}, []float64{0.5, 0.5})
		require.NoError(t, err)
		require.Equal(t, 1, c.Size())

		y, err := c.MolarAbundance(h1)
		require.NoError(t, err)
		require.Equal(t, 0.5/h1.Mass()+0.5/h1.Mass(), y,
			"each listed fraction contributes, none overwrites")

		x, err := c.MassFraction(h1)
		require.NoError(t, err)
		require.Equal(t, 1.0, x)
	})
}

func TestFromMassFractionSymbols(t *testing.T) {
	c, err := composition.FromMassFractionSymbols(
		[]string{"H-1", "He-4"}, []float64{0.7, 0.3})
	require.NoError(t, err)
	require.Equal(t, 2, c.Size())

	_, err = composition.FromMassFractionSymbols(
		[]string{"H-1", "Nope-1"}, []float64{0.7, 0.3})
	require.ErrorIs(t, err, species.ErrUnknownSpecies)
}

func TestMix(t *testing.T) {
	h1 := species.MustLookup("H-1")
	he4 := species.MustLookup("He-4")
	c12 := species.MustLookup("C-12")

	a := composition.NewFromSpecies(h1, he4)
	require.NoError(t, a.SetMolarAbundance(h1, 1.0))
	require.NoError(t, a.SetMolarAbundance(he4, 0.5))

	b := composition.NewFromSpecies(he4, c12)
	require.NoError(t, b.SetMolarAbundance(he4, 0.25))
	require.NoError(t, b.SetMolarAbundance(c12, 2.0))

	t.Run("union with mass-fraction blend", func(t *testing.T) {
		m, err := composition.Mix(a, b, 0.5)
		require.NoError(t, err)
		require.Equal(t, []string{"H-1", "He-4", "C-12"}, m.RegisteredSymbols())

		xaHe, _ := a.MassFraction(he4)
		xbHe, _ := b.MassFraction(he4)
		got, _ := m.MassFraction(he4)
		require.InDelta(t, 0.5*xaHe+0.5*xbHe, got, 1e-12)
	})

	t.Run("endpoints reproduce the inputs", func(t *testing.T) {
		m, err := composition.Mix(a, b, 1.0)
		require.NoError(t, err)

		want, _ := a.MassFraction(h1)
		got, _ := m.MassFraction(h1)
		require.InDelta(t, want, got, 1e-12)

		yC, _ := m.MolarAbundance(c12)
		require.Equal(t, 0.0, yC, "f=1 keeps b's species at zero weight")
	})

	t.Run("result is normalized per unit mass", func(t *testing.T) {
		m, err := composition.Mix(a, b, 0.25)
		require.NoError(t, err)
		sum := 0.0
		for sp, y := range m.All() {
			sum += y * sp.Mass()
		}
		require.InDelta(t, 1.0, sum, 1e-12)
	})

	t.Run("fraction outside range", func(t *testing.T) {
		_, err := composition.Mix(a, b, 1.5)
		require.ErrorIs(t, err, composition.ErrInvalidComposition)
		_, err = composition.Mix(a, b, math.NaN())
		require.ErrorIs(t, err, composition.ErrInvalidComposition)
	})
}

func TestSubset(t *testing.T) {
	h1 := species.MustLookup("H-1")
	he4 := species.MustLookup("He-4")
	c12 := species.MustLookup("C-12")

	base := composition.NewFromSpecies(h1, he4)
	require.NoError(t, base.SetMolarAbundance(h1, 0.7))

	sub, err := composition.Subset(base, h1)
	require.NoError(t, err)
	require.Equal(t, 1, sub.Size())
	y, err := sub.MolarAbundance(h1)
	require.NoError(t, err)
	require.Equal(t, 0.7, y)

	_, err = composition.Subset(base, c12)
	require.ErrorIs(t, err, composition.ErrNotRegistered)

	t.Run("by symbol", func(t *testing.T) {
		sub, err := composition.SubsetSymbols(base, "H-1", "He-4")
		require.NoError(t, err)
		require.Equal(t, 2, sub.Size())

		_, err = composition.SubsetSymbols(base, "Bogus-0")
		require.ErrorIs(t, err, species.ErrUnknownSpecies)
	})
}

func TestEqual(t *testing.T) {
	h1 := species.MustLookup("H-1")
	he4 := species.MustLookup("He-4")

	mk := func(yH float64) *composition.Composition {
		c := composition.NewFromSpecies(h1, he4)
		require.NoError(t, c.SetMolarAbundance(h1, yH))
		return c
	}

	require.True(t, composition.Equal(mk(0.7), mk(0.7)))
	require.False(t, composition.Equal(mk(0.7), mk(0.8)))
	require.False(t, composition.Equal(mk(0.7), composition.NewFromSpecies(h1)))

	t.Run("NaN equals NaN", func(t *testing.T) {
		require.True(t, composition.Equal(mk(math.NaN()), mk(math.NaN())))
	})

	t.Run("signed zeros equal", func(t *testing.T) {
		require.True(t, composition.Equal(mk(0.0), mk(math.Copysign(0, -1))))
	})

	t.Run("masked view against its unmasked copy", func(t *testing.T) {
		base := mk(0.7)
		m := composition.NewMasked(base, h1, he4)
		require.True(t, composition.Equal(m, m.Unmask()))
	})
}
