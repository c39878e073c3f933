/*
Package layout arranges content nodes into frames.

Overview

Layout consumes a sequence of regions (pages, columns, or the area a parent
container grants) and produces one frame per region it needed. Two
layouters do the heavy lifting:

  - FlowNode stacks spacing and block-level nodes vertically, breaking to
    the next region whenever the current one is exhausted.
  - GridNode sizes columns once (auto, linear or fractional tracks) and then
    lays out rows progressively, letting auto rows span several regions.

Nodes are laid out recursively: a layouter calls Layout for each of its
children with derived sub-regions and consumes the result synchronously.
Every frame returned carries frame.Constraints, so callers (see CachedNode)
may skip re-layout when a new region sequence satisfies them.

Nesting depth is guarded by Context.MaxDepth, which is configurable through
key `layout.max-depth`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.layout")
}
