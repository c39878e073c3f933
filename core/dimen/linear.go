package dimen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/boxes/core"
)

// Linear is a length composed of an absolute part and a part relative to
// the size of an enclosing area (the base).
type Linear struct {
	Abs Dimen   // absolute part
	Rel float64 // ratio of the base, 1.0 = 100%
}

// Abs creates a purely absolute linear length.
func Abs(d Dimen) Linear {
	return Linear{Abs: d}
}

// Relative creates a purely relative linear length.
func Relative(ratio float64) Linear {
	return Linear{Rel: ratio}
}

// IsZero is true for linear lengths which resolve to zero for every base.
func (l Linear) IsZero() bool {
	return l.Abs == 0 && l.Rel == 0
}

// IsRelative is true if the resolved value depends on the base.
func (l Linear) IsRelative() bool {
	return l.Rel != 0
}

// Resolve computes the length of l relative to base.
// An infinite base with a non-zero relative part resolves to Infinity.
func (l Linear) Resolve(base Dimen) Dimen {
	if l.Rel == 0 {
		return l.Abs
	}
	return base.Scale(l.Rel).Plus(l.Abs)
}

func (l Linear) String() string {
	switch {
	case l.Rel == 0:
		return l.Abs.String()
	case l.Abs == 0:
		return fmt.Sprintf("%g%%", l.Rel*100)
	}
	return fmt.Sprintf("%g%%+%v", l.Rel*100, l.Abs)
}

// ParseLinear parses linear lengths like "12pt", "50%" or "50%+1cm".
func ParseLinear(s string) (Linear, error) {
	var l Linear
	s = strings.TrimSpace(s)
	if s == "" {
		return l, core.Error(core.EINVALID, "empty linear length")
	}
	for _, term := range strings.Split(s, "+") {
		d, ispcnt, err := ParseDimen(strings.TrimSpace(term))
		if err != nil {
			return Linear{}, err
		}
		if ispcnt {
			l.Rel += float64(d) / 100
		} else {
			l.Abs += d
		}
	}
	return l, nil
}

// --- Fractions -------------------------------------------------------------

// Fraction is a share of the space left over after fixed-size and
// content-sized items have been placed.
type Fraction float64

// IsZero is true for a zero share.
func (f Fraction) IsZero() bool {
	return f == 0
}

// Resolve computes the length for f, given the sum of all fractions
// competing for space and the remaining length to distribute.
func (f Fraction) Resolve(total Fraction, remaining Dimen) Dimen {
	ratio := float64(f) / float64(total)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || !remaining.IsFinite() {
		return Zero
	}
	return remaining.Scale(ratio)
}

func (f Fraction) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64) + "fr"
}

// ParseFraction parses fractions like "1fr" or "2.5fr".
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "fr") {
		return 0, core.Error(core.EINVALID, "fraction expected, got %q", s)
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "fr"), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, core.WrapError(err, core.EINVALID, "invalid fraction %q", s)
	}
	return Fraction(f), nil
}
