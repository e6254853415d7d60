// SPDX-License-Identifier: MIT

package composition_test

import (
	"fmt"

	"github.com/nucmix/nucmix/composition"
	"github.com/nucmix/nucmix/species"
)

// ExampleComposition builds a two-isotope mixture and reads its derived
// quantities.
func ExampleComposition() {
	c, _ := composition.NewFromSymbols("H-1", "He-4")
	_ = c.SetMolarAbundanceBySymbol("H-1", 0.6)
	_ = c.SetMolarAbundanceBySymbol("He-4", 0.4)

	xH, _ := c.MassFractionOf("H-1")
	xHe, _ := c.MassFractionOf("He-4")
	fmt.Printf("X(H-1)  = %.4f\n", xH)
	fmt.Printf("X(He-4) = %.4f\n", xHe)
	fmt.Printf("mu      = %.4f u\n", c.MeanParticleMass())
	fmt.Printf("Ye      = %.2f\n", c.ElectronAbundance())

	// Output:
	// X(H-1)  = 0.2741
	// X(He-4) = 0.7259
	// mu      = 2.2057 u
	// Ye      = 1.40
}

// ExampleComposition_Hash shows that the content hash ignores registration
// history.
func ExampleComposition_Hash() {
	forward, _ := composition.NewFromSymbols("H-1", "He-4", "C-12")
	reversed, _ := composition.NewFromSymbols("C-12", "He-4", "H-1")
	for _, c := range []*composition.Composition{forward, reversed} {
		_ = c.SetMolarAbundanceBySymbol("H-1", 0.7)
		_ = c.SetMolarAbundanceBySymbol("He-4", 0.07)
	}

	fmt.Println("equal digests:", forward.Hash() == reversed.Hash())

	// Output:
	// equal digests: true
}

// ExampleNewMasked restricts a composition to a burning network's species.
func ExampleNewMasked() {
	base, _ := composition.NewFromSymbols("H-1", "He-4", "C-12", "O-16")
	_ = base.SetMolarAbundanceVector([]float64{0.7, 0.07, 2.4e-4, 4.9e-4})

	m := composition.NewMasked(base,
		species.MustLookup("H-1"), species.MustLookup("He-4"))

	fmt.Println("visible:", m.RegisteredSymbols())
	_, err := m.MolarAbundanceOf("C-12")
	fmt.Println("C-12 visible:", err == nil)

	// Output:
	// visible: [H-1 He-4]
	// C-12 visible: false
}
