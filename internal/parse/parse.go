// Package parse converts user-facing quantity strings with unit suffixes
// into SI base values.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-lc/synth/core"
)

var (
	// ErrFrequency reports an unparseable frequency string.
	ErrFrequency = fmt.Errorf("parse: invalid frequency: %w", core.ErrValidation)
	// ErrImpedance reports an unparseable impedance string.
	ErrImpedance = fmt.Errorf("parse: invalid impedance: %w", core.ErrValidation)
)

// frequency suffixes, longest first so "hz" does not shadow "khz"
var freqSuffixes = []struct {
	suffix string
	mult   float64
}{
	{"ghz", 1e9},
	{"mhz", 1e6},
	{"khz", 1e3},
	{"hz", 1},
}

// Frequency parses a frequency string such as "14.2MHz", "500kHz" or
// "7000000". A bare number is taken as Hz.
func Frequency(s string) (float64, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	for _, u := range freqSuffixes {
		if strings.HasSuffix(lower, u.suffix) {
			num := strings.TrimSpace(s[:len(s)-len(u.suffix)])
			v, err := strconv.ParseFloat(num, 64)
			if err != nil || !isFinite(v*u.mult) {
				return 0, fmt.Errorf("%q: %w", s, ErrFrequency)
			}
			return v * u.mult, nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, fmt.Errorf("%q: %w", s, ErrFrequency)
	}
	return v, nil
}

// impedance suffixes after omega normalization, longest first
var impSuffixes = []struct {
	suffix string
	mult   float64
}{
	{"mohm", 1e6},
	{"kohm", 1e3},
	{"ohm", 1},
}

// Impedance parses an impedance string such as "50ohm", "1kohm", "50Ω" or
// a bare number in ohms. Case is ignored, so "mohm" reads as megaohms.
func Impedance(s string) (float64, error) {
	norm := strings.TrimSpace(s)
	norm = strings.ReplaceAll(norm, "Ω", "ohm")
	norm = strings.ReplaceAll(norm, "ω", "ohm")
	norm = strings.ToLower(norm)
	norm = strings.ReplaceAll(norm, "omega", "ohm")

	for _, u := range impSuffixes {
		if strings.HasSuffix(norm, u.suffix) {
			num := strings.TrimSpace(norm[:len(norm)-len(u.suffix)])
			v, err := strconv.ParseFloat(num, 64)
			if err != nil || !isFinite(v*u.mult) {
				return 0, fmt.Errorf("%q: %w", s, ErrImpedance)
			}
			return v * u.mult, nil
		}
	}

	v, err := strconv.ParseFloat(norm, 64)
	if err != nil || !isFinite(v) {
		return 0, fmt.Errorf("%q: %w", s, ErrImpedance)
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
