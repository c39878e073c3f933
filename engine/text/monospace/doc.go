/*
Package monospace measures text set in a fixed-pitch font.

Text is split into grapheme clusters, and each cluster takes one or two
cells, depending on its East Asian width property (UAX #11). A cell is one
em wide; a line is one em high.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.text'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.text")
}
