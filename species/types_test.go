// SPDX-License-Identifier: MIT
// White-box tests for the Species total order and the spin-parity parser.
// They live inside the package so they can fabricate Species values that
// the catalog would never issue (e.g. exact mass ties).

package species

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare_OrdersByMass(t *testing.T) {
	light := Species{symbol: "X-1", mass: 1.0}
	heavy := Species{symbol: "X-2", mass: 2.0}

	require.Negative(t, Compare(light, heavy))
	require.Positive(t, Compare(heavy, light))
	require.Zero(t, Compare(light, light))
	require.True(t, Less(light, heavy))
	require.False(t, Less(heavy, light))
}

func TestCompare_TieBreaksBySymbol(t *testing.T) {
	// Two distinct nuclides with coincident tabulated masses must not
	// collide under the ordering used for sorted storage.
	a := Species{symbol: "A-10", mass: 10.0}
	b := Species{symbol: "B-10", mass: 10.0}

	require.Negative(t, Compare(a, b))
	require.Positive(t, Compare(b, a))
	require.NotZero(t, Compare(a, b))
}

func TestParseSpinParity(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0+", 0, true},
		{"1+", 1, true},
		{"1/2+", 0.5, true},
		{"3/2-", 1.5, true},
		{"(3/2)-", 1.5, true},
		{"5/2+", 2.5, true},
		{"1/2+#", 0.5, true},
		{"2-#", 2, true},
		{"7/2-*", 3.5, true},
		{"5/2+,7/2-", 2.5, true},
		{"/2-", 0.5, true},
		{"+", 0, true},
		{"-", 0, true},
		{"", 0, false},
		{"()", 0, false},
		{"high", 0, false},
	}
	for _, tc := range cases {
		spin, ok := parseSpinParity(tc.in)
		require.Equal(t, tc.ok, ok, "parseSpinParity(%q) ok", tc.in)
		if tc.ok {
			require.Equal(t, tc.want, spin, "parseSpinParity(%q) spin", tc.in)
		}
	}
}
