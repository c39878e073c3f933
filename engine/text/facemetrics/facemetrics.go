/*
Package facemetrics measures text with the metrics of a font face.

Advances are taken from a golang.org/x/image/font.Face. One pixel of the
face is mapped to one big point, so faces should be created at 72 DPI for
their size to be interpreted in points.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package facemetrics

import (
	"sync"

	"github.com/npillmayer/boxes/core"
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/text"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'boxes.text'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.text")
}

// Measurer measures text with a font face.
//
// font.Face implementations are generally not safe for concurrent use, so
// Measure serializes access to the face.
type Measurer struct {
	sync.Mutex
	face font.Face
}

// New creates a measurer for a face.
func New(face font.Face) *Measurer {
	return &Measurer{face: face}
}

// Measure is part of interface text.Measurer. The width is the sum of glyph
// advances including kerning, the height is the line height of the face.
func (m *Measurer) Measure(s string) (dimen.Dimen, dimen.Dimen) {
	m.Lock()
	defer m.Unlock()
	adv := font.MeasureString(m.face, s)
	h := m.face.Metrics().Height
	tracer().Debugf("face measure %q = %s × %s px", s, adv, h)
	return FromFixed(adv), FromFixed(h)
}

var _ text.Measurer = &Measurer{}

// FromFixed converts a 26.6 fixed point pixel value to a dimension,
// with 1 px = 1 bp.
func FromFixed(x fixed.Int26_6) dimen.Dimen {
	return dimen.Dimen(int64(x) * int64(dimen.BP) / 64)
}

// --- Fallback face ---------------------------------------------------------

var fallbackFontLoading sync.Once

// fallbackFont is the font to use if no other font is available.
// We use Go Sans.
var fallbackFont *sfnt.Font
var fallbackErr error

// FallbackFace returns a face of Go Sans at size pt. It is always present.
func FallbackFace(size float64) (font.Face, error) {
	fallbackFontLoading.Do(func() {
		fallbackFont, fallbackErr = opentype.Parse(goregular.TTF)
	})
	if fallbackErr != nil {
		return nil, core.WrapError(fallbackErr, core.EINTERNAL, "cannot load fallback font")
	}
	if size <= 0 {
		return nil, core.Error(core.EINVALID, "font size must be positive, is %g", size)
	}
	face, err := opentype.NewFace(fallbackFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create face of size %g", size)
	}
	return face, nil
}
