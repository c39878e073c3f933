package layout

import (
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/frame"
)

// PlacedNode places its child at an offset relative to the base of the
// region, ignoring space already used by siblings.
//
// If OutOfFlow is set, a flow parent will lay the node out exactly once and
// not advance its offset; the child then expands to the region's base area.
type PlacedNode struct {
	Child     Node
	Dx, Dy    dimen.Linear // offset, relative lengths resolve against base
	OutOfFlow bool
}

// PlacementHint is part of interface Node.
func (p *PlacedNode) PlacementHint() PlacementHint {
	return PlacementHint{OutOfFlow: p.OutOfFlow}
}

// Layout is part of interface Node.
func (p *PlacedNode) Layout(ctx *Context, regions Regions) ([]frame.Constrained, error) {
	// for absolute placement the used part of the region does not matter,
	// so the pod is the base area
	outOfFlow := dimen.Splat(p.OutOfFlow)
	expand := dimen.And(regions.Base.IsFinite(), dimen.Or(regions.Expand, outOfFlow))
	pod := One(regions.Base, regions.Base, expand)
	frames, err := Layout(ctx, p.Child, pod)
	if err != nil || len(frames) == 0 {
		return frames, err
	}
	f := &frames[0].Frame
	f.Translate(dimen.Point{
		X: p.Dx.Resolve(regions.Base.W),
		Y: p.Dy.Resolve(regions.Base.H),
	})
	// without expansion we must not take up any space in the parent
	target := regions.Current.Select(regions.Expand, dimen.Size{})
	f.Resize(target, dimen.Axes[frame.Align]{X: frame.Left, Y: frame.Top}, ctx.Dir)
	cts := frame.NewConstraints(regions.Expand)
	cts.Base = dimen.SomeSize(regions.Base)
	cts.Exact = regions.Current.Filter(dimen.Or(regions.Expand, outOfFlow))
	frames[0].Constraints = cts
	return frames, nil
}

var _ Node = &PlacedNode{}

// AlignNode aligns its child within the available space.
type AlignNode struct {
	Child   Node
	Align   dimen.Axes[frame.Align]
	Aligned dimen.Axes[bool] // axes on which Align is in effect
}

// PlacementHint is part of interface Node.
func (a *AlignNode) PlacementHint() PlacementHint {
	return PlacementHint{Align: a.Align, Aligned: a.Aligned}
}

// Layout is part of interface Node.
func (a *AlignNode) Layout(ctx *Context, regions Regions) ([]frame.Constrained, error) {
	// the child only needs to expand along axes without alignment
	pod := regions
	pod.Expand = dimen.And(regions.Expand, dimen.MapAxes(a.Aligned, func(b bool) bool { return !b }))
	frames, err := Layout(ctx, a.Child, pod)
	if err != nil {
		return nil, err
	}
	aligns := dimen.Axes[frame.Align]{
		X: a.PlacementHint().alignOr(dimen.X, frame.Start),
		Y: a.PlacementHint().alignOr(dimen.Y, frame.Top),
	}
	for i, r := range regions.Iter(len(frames)) {
		c := &frames[i]
		target := r.Size.Select(regions.Expand, c.Frame.Size)
		c.Frame.Resize(target, aligns, ctx.Dir)
		c.Constraints.Expand = regions.Expand
		c.Constraints.Base = r.Base.Filter(dimen.IsSome(c.Constraints.Base))
		c.Constraints.Exact = r.Size.Filter(dimen.Or(regions.Expand, dimen.IsSome(c.Constraints.Exact)))
	}
	return frames, nil
}

var _ Node = &AlignNode{}

// Aligned wraps a node with horizontal and vertical alignment.
func Aligned(child Node, x, y frame.Align) *AlignNode {
	return &AlignNode{
		Child:   child,
		Align:   dimen.Axes[frame.Align]{X: x, Y: y},
		Aligned: dimen.Splat(true),
	}
}
