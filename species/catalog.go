// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: Embedded nuclide table and symbol lookup (the species oracle).
// Concurrency:
//   - The table is parsed once under sync.Once and never mutated afterwards,
//     so all exported functions are safe for concurrent use.

package species

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// catalogEntry mirrors one YAML record of the embedded table.
type catalogEntry struct {
	Name       string  `yaml:"name"`
	El         string  `yaml:"el"`
	Z          int     `yaml:"z"`
	A          int     `yaml:"a"`
	Mass       float64 `yaml:"mass"`
	HalfLife   float64 `yaml:"halfLife"`
	SpinParity string  `yaml:"spinParity"`
	DecayModes string  `yaml:"decayModes"`
}

type catalogFile struct {
	Nuclides []catalogEntry `yaml:"nuclides"`
}

var (
	catalogOnce sync.Once
	bySymbol    map[string]Species
	inMassOrder []Species
)

// loadCatalog decodes the embedded table. The table is compiled into the
// binary, so a decode failure is a build defect, not a runtime condition;
// it panics rather than returning an error.
func loadCatalog() {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		panic(fmt.Sprintf("species: embedded catalog is malformed: %v", err))
	}

	bySymbol = make(map[string]Species, len(file.Nuclides))
	inMassOrder = make([]Species, 0, len(file.Nuclides))
	for _, e := range file.Nuclides {
		if e.Name == "" || e.Z < 0 || e.A < e.Z || e.Mass <= 0 {
			panic(fmt.Sprintf("species: embedded catalog entry %q is invalid", e.Name))
		}
		if _, dup := bySymbol[e.Name]; dup {
			panic(fmt.Sprintf("species: embedded catalog entry %q is duplicated", e.Name))
		}
		spin, known := parseSpinParity(e.SpinParity)
		sp := Species{
			symbol:     e.Name,
			element:    e.El,
			z:          e.Z,
			n:          e.A - e.Z,
			a:          e.A,
			mass:       e.Mass,
			halfLife:   e.HalfLife,
			spinParity: e.SpinParity,
			decayModes: e.DecayModes,
			spin:       spin,
			spinKnown:  known,
		}
		bySymbol[e.Name] = sp
		inMassOrder = append(inMassOrder, sp)
	}
	slices.SortFunc(inMassOrder, Compare)
}

// Lookup resolves a nuclide symbol (e.g. "He-4") against the catalog.
// It returns ErrUnknownSpecies when the symbol is not tabulated.
func Lookup(symbol string) (Species, error) {
	catalogOnce.Do(loadCatalog)
	sp, ok := bySymbol[symbol]
	if !ok {
		return Species{}, fmt.Errorf("Lookup(%q): %w", symbol, ErrUnknownSpecies)
	}
	return sp, nil
}

// MustLookup resolves a symbol and panics if it is not tabulated.
// Intended for compile-time-known symbols in tests and setup code.
func MustLookup(symbol string) Species {
	sp, err := Lookup(symbol)
	if err != nil {
		panic(err)
	}
	return sp
}

// Contains reports whether the catalog tabulates the given symbol.
func Contains(symbol string) bool {
	catalogOnce.Do(loadCatalog)
	_, ok := bySymbol[symbol]
	return ok
}

// All returns every tabulated nuclide in ascending Compare order.
// The returned slice is a fresh copy and may be modified by the caller.
func All() []Species {
	catalogOnce.Do(loadCatalog)
	return slices.Clone(inMassOrder)
}

// Count returns the number of nuclides in the catalog.
func Count() int {
	catalogOnce.Do(loadCatalog)
	return len(inMassOrder)
}
