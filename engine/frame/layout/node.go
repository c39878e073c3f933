package layout

import (
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/frame"
)

// Node is anything which can be laid out into a sequence of regions.
//
// Layout must return at least one frame for every region it consumed; the
// frames are owned by the caller. PlacementHint tells enclosing layouters
// how a node wants to be positioned, without them having to inspect the
// concrete node type.
type Node interface {
	Layout(ctx *Context, regions Regions) ([]frame.Constrained, error)
	PlacementHint() PlacementHint
}

// PlacementHint is the positioning preference a node announces to its parent.
type PlacementHint struct {
	OutOfFlow bool                    // node is placed absolutely and takes no space
	Align     dimen.Axes[frame.Align] // preferred alignment
	Aligned   dimen.Axes[bool]        // which axes of Align are set
}

// NoHint is the hint of nodes without placement preferences.
var NoHint = PlacementHint{}

// alignOr returns the hinted alignment for an axis, or a default.
func (h PlacementHint) alignOr(axis dimen.Axis, dflt frame.Align) frame.Align {
	if h.Aligned.Get(axis) {
		return h.Align.Get(axis)
	}
	return dflt
}

// measure lays out a node and returns just the size of its first frame.
// Measuring passes use it to avoid holding on to frames they throw away.
func measure(ctx *Context, node Node, regions Regions) (dimen.Size, error) {
	c, err := first(ctx, node, regions)
	if err != nil {
		return dimen.Size{}, err
	}
	return c.Frame.Size, nil
}

// heights lays out a node and returns the heights of all its frames.
func heights(ctx *Context, node Node, regions Regions) ([]dimen.Dimen, error) {
	frames, err := Layout(ctx, node, regions)
	if err != nil {
		return nil, err
	}
	hs := make([]dimen.Dimen, len(frames))
	for i, f := range frames {
		hs[i] = f.Frame.Size.H
	}
	return hs, nil
}
