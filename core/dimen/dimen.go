// Package dimen implements dimensions and units.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/npillmayer/boxes/core"
)

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels"
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension. Regions which are open-ended
// along an axis carry Infinity as their extent.
const Infinity Dimen = 1<<31 - 1

// Some common paper sizes
var DINA4 = Size{210 * MM, 297 * MM}
var DINA5 = Size{148 * MM, 210 * MM}
var USLetter = Size{216 * MM, 279 * MM}
var USLegal = Size{216 * MM, 357 * MM}

// Stringer implementation.
func (d Dimen) String() string {
	if d == Infinity {
		return "∞"
	}
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// IsFinite is false for Infinity only.
func (d Dimen) IsFinite() bool {
	return d < Infinity
}

// Minus subtracts e from d. Infinity stays infinite.
func (d Dimen) Minus(e Dimen) Dimen {
	if !d.IsFinite() {
		return Infinity
	}
	return d - e
}

// Plus adds e to d, saturating at Infinity.
func (d Dimen) Plus(e Dimen) Dimen {
	if !d.IsFinite() || !e.IsFinite() {
		return Infinity
	}
	s := int64(d) + int64(e)
	if s >= int64(Infinity) {
		return Infinity
	}
	return Dimen(s)
}

// Scale multiplies d by a factor, saturating at Infinity.
func (d Dimen) Scale(f float64) Dimen {
	if !d.IsFinite() {
		if f == 0 {
			return Zero
		}
		return Infinity
	}
	s := float64(d) * f
	if s >= float64(Infinity) {
		return Infinity
	}
	if s >= 0 {
		return Dimen(s + 0.5)
	}
	return Dimen(s - 0.5)
}

// Fits is true if an extent of `other` fits into d.
func (d Dimen) Fits(other Dimen) bool {
	return d >= other
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(%|[a-zA-Z]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true.
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, core.Error(core.EINVALID, "format error parsing dimension: %q", s)
	}
	scale := SP
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX":
			scale = BP
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "sp", "SP", "":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, core.Error(core.EINVALID, "format error parsing dimension: %q", s)
		}
	}
	n, err := strconv.Atoi(d[1])
	if err != nil {
		return 0, false, core.WrapError(err, core.EINVALID, "format error parsing dimension: %q", s)
	}
	v := int64(n) * int64(scale)
	if v >= int64(Infinity) || v <= -int64(Infinity) {
		return 0, false, core.Error(core.EINVALID, "dimension out of range: %q", s)
	}
	return Dimen(v), ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
