/*
Package frame deals with typesetting frames.

Typesetting may be understood as the process of placing boxes within
larger boxes. The layouters in package layout consume a sequence of regions
and produce one frame per region they needed. A frame is a fixed-size
rectangle holding an ordered list of positioned items: nested frames or
primitive marks (shapes, opaque text runs, file embeddings).

Frames are plain values. Whoever receives a frame owns it; a parent layouter
either nests a child frame as a group or merges the child's items into its
own frame, transferring positions but not the child frame itself.

Every frame produced by a layouter travels together with Constraints,
which record which aspects of the region size the layout actually depended
on. Callers may re-use a frame whenever a new region satisfies them.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.frame")
}
