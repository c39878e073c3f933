package layout

import (
	"sync"

	"github.com/npillmayer/boxes/engine/frame"
	"golang.org/x/text/unicode/bidi"
)

// CachedNode wraps a node and remembers the frames of its last layout.
//
// If a later layout call brings regions which satisfy the constraints of
// every remembered frame, the frames are returned without laying out the
// wrapped node again. Frames are only re-used for the text direction they
// were laid out with. CachedNode is safe for concurrent use.
type CachedNode struct {
	Child Node
	mx    sync.Mutex
	last  []frame.Constrained
	dir   bidi.Direction // text direction of last
	hits  int
}

// Cached wraps a node with a layout cache.
func Cached(child Node) *CachedNode {
	return &CachedNode{Child: child}
}

// PlacementHint is part of interface Node.
func (c *CachedNode) PlacementHint() PlacementHint {
	return c.Child.PlacementHint()
}

// Layout is part of interface Node.
func (c *CachedNode) Layout(ctx *Context, regions Regions) ([]frame.Constrained, error) {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.last != nil && c.dir == ctx.Dir && c.valid(regions) {
		c.hits++
		tracer().Debugf("layout cache hit for %d frames", len(c.last))
		return copyFrames(c.last), nil
	}
	frames, err := Layout(ctx, c.Child, regions)
	if err != nil {
		c.last = nil
		return nil, err
	}
	c.last = copyFrames(frames)
	c.dir = ctx.Dir
	return frames, nil
}

// Hits returns how often the cache has been used instead of laying out.
func (c *CachedNode) Hits() int {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.hits
}

// Invalidate drops the remembered frames.
func (c *CachedNode) Invalidate() {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.last = nil
}

// valid checks each remembered frame against the corresponding region.
func (c *CachedNode) valid(regions Regions) bool {
	rs := regions.Iter(len(c.last))
	if len(rs) < len(c.last) {
		return false
	}
	for i, f := range c.last {
		if !f.Constraints.Check(rs[i].Size, rs[i].Base, regions.Expand) {
			return false
		}
	}
	return true
}

// copyFrames copies the item slices of frames, so callers modifying
// returned frames (e.g., by Resize or Translate) do not alter the cache.
func copyFrames(frames []frame.Constrained) []frame.Constrained {
	c := make([]frame.Constrained, len(frames))
	for i, f := range frames {
		c[i] = f
		c[i].Frame.Items = append([]frame.Positioned(nil), f.Frame.Items...)
	}
	return c
}

var _ Node = &CachedNode{}
