// SPDX-License-Identifier: MIT

package species

import (
	"strconv"
	"strings"
)

// parseSpinParity extracts a numeric spin from an evaluation spin-parity
// assignment such as "1/2+", "(3/2)-", "0+" or "5/2+,7/2-".
//
// The evaluation notation decorates uncertain assignments with parentheses,
// asterisks and hash marks; those are stripped before parsing. When several
// candidate assignments are listed, the first one is used. A bare parity
// ("+" or "-") parses as spin 0. Anything that still fails to parse yields
// ok == false rather than a NaN, so Species values stay free of NaN fields
// and remain usable as map keys.
func parseSpinParity(jpi string) (spin float64, ok bool) {
	s := jpi
	if s == "" {
		return 0, false
	}

	// Strip uncertainty decorations.
	s = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '*', '#':
			return -1
		}
		return r
	}, s)

	// A bare parity assignment carries spin 0.
	if s == "+" || s == "-" {
		return 0, true
	}

	// Keep only the first candidate of a multi-assignment list.
	if comma := strings.IndexByte(s, ','); comma >= 0 {
		s = s[:comma]
	}

	// Drop the trailing parity sign.
	if len(s) > 0 {
		if last := s[len(s)-1]; last == '+' || last == '-' {
			s = s[:len(s)-1]
		}
	}
	if s == "" {
		return 0, false
	}

	// Half-integer spins are written as fractions; "/2" means "1/2".
	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		if slash == 0 {
			s = "1" + s
			slash = 1
		}
		den := s[slash+1:]
		if den == "" {
			return 0, false
		}
		num, errN := strconv.ParseFloat(s[:slash], 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return num / d, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
