package monospace

import (
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/text"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Measurer measures text in cells of a fixed em size.
type Measurer struct {
	em      dimen.Dimen
	context *uax11.Context
}

// New creates a measurer for monospace text. em is the width of a single
// cell. context determines how ambiguous East Asian widths are treated; if it
// is nil, a Latin context is used.
func New(em dimen.Dimen, context *uax11.Context) *Measurer {
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	return &Measurer{em: em, context: context}
}

// Cells returns the number of cells s occupies.
func (ms *Measurer) Cells(s string) int {
	gstr := grapheme.StringFromString(s)
	cells := 0
	for i := 0; i < gstr.Len(); i++ {
		cells += uax11.Width([]byte(gstr.Nth(i)), ms.context)
	}
	return cells
}

// Measure is part of interface text.Measurer.
func (ms *Measurer) Measure(s string) (dimen.Dimen, dimen.Dimen) {
	if s == "" {
		return 0, 0
	}
	cells := ms.Cells(s)
	w := ms.em.Scale(float64(cells))
	tracer().Debugf("monospace measure %q = %d cells = %v", s, cells, w)
	return w, ms.em
}

var _ text.Measurer = &Measurer{}
