/*
Package text holds the interface layout uses to ask for the extent of text.

Layout does not shape or break text. Paragraphs enter the layout tree as
opaque text runs, and a Measurer tells how much space a run needs.
Implementations live in sub-packages:

  - monospace measures text set in a fixed-pitch font, counting grapheme
    clusters and honouring East Asian wide characters.
  - facemetrics measures text with the advances of a font face.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.text'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.text")
}

// Measurer measures the extent of a run of text.
type Measurer interface {
	// Measure returns the width and height of s, set on a single line.
	Measure(s string) (w, h dimen.Dimen)
}

// MeasurerFunc is an adapter to use ordinary functions as Measurers.
type MeasurerFunc func(s string) (dimen.Dimen, dimen.Dimen)

// Measure is part of interface Measurer.
func (f MeasurerFunc) Measure(s string) (dimen.Dimen, dimen.Dimen) {
	return f(s)
}

// Fixed returns a Measurer for runs of constant size, regardless of content.
// It is intended as a stand-in where text extent is of no interest.
func Fixed(w, h dimen.Dimen) Measurer {
	tracer().Debugf("fixed-size text measurer %v×%v", w, h)
	return MeasurerFunc(func(string) (dimen.Dimen, dimen.Dimen) {
		return w, h
	})
}
