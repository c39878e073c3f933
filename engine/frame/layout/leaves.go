package layout

import (
	"image/color"

	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/frame"
	"github.com/npillmayer/boxes/engine/text"
)

// BoxNode is a rectangle of a given size, optionally filled.
//
// On axes where the region asks for expansion the box takes the full
// extent of the region; otherwise its size resolves against the region's
// base. A box does not break across regions.
type BoxNode struct {
	Width, Height dimen.Linear
	Fill          color.Color // nil for an invisible box
}

// Box creates a box of fixed size.
func Box(w, h dimen.Dimen) *BoxNode {
	return &BoxNode{Width: dimen.Abs(w), Height: dimen.Abs(h)}
}

// PlacementHint is part of interface Node.
func (b *BoxNode) PlacementHint() PlacementHint {
	return NoHint
}

// Layout is part of interface Node.
func (b *BoxNode) Layout(ctx *Context, regions Regions) ([]frame.Constrained, error) {
	size := dimen.Size{
		W: b.Width.Resolve(regions.Base.W),
		H: b.Height.Resolve(regions.Base.H),
	}
	expand := dimen.And(regions.Expand, regions.Current.IsFinite())
	size = regions.Current.Select(expand, size)
	f := frame.New(size)
	if b.Fill != nil {
		f.Push(dimen.Origin, frame.Shape{Size: size, Fill: b.Fill})
	}
	cts := frame.NewConstraints(regions.Expand)
	cts.Exact = regions.Current.Filter(expand)
	cts.SetBaseIfRelative(regions.Base, dimen.Axes[dimen.Linear]{X: b.Width, Y: b.Height})
	return []frame.Constrained{f.Constrain(cts)}, nil
}

var _ Node = &BoxNode{}

// TextNode is a paragraph of already shaped text, treated as a single
// opaque run. Line breaking is not done by layout.
type TextNode struct {
	Text     string
	Measurer text.Measurer
}

// PlacementHint is part of interface Node.
func (t *TextNode) PlacementHint() PlacementHint {
	return NoHint
}

// Layout is part of interface Node.
func (t *TextNode) Layout(ctx *Context, regions Regions) ([]frame.Constrained, error) {
	var w, h dimen.Dimen
	if t.Measurer != nil {
		w, h = t.Measurer.Measure(t.Text)
	}
	size := dimen.Size{W: w, H: h}
	expand := dimen.And(regions.Expand, regions.Current.IsFinite())
	outer := regions.Current.Select(expand, size)
	f := frame.New(outer)
	f.Push(dimen.Origin, frame.TextRun{Text: t.Text, Width: w, Height: h})
	cts := frame.NewConstraints(regions.Expand)
	cts.Exact = regions.Current.Filter(expand)
	return []frame.Constrained{f.Constrain(cts)}, nil
}

var _ Node = &TextNode{}

// EmbedNode carries a file to be embedded into the output document.
// It occupies no space.
type EmbedNode struct {
	Embed frame.Embed
}

// PlacementHint is part of interface Node.
func (e *EmbedNode) PlacementHint() PlacementHint {
	return NoHint
}

// Layout is part of interface Node.
func (e *EmbedNode) Layout(ctx *Context, regions Regions) ([]frame.Constrained, error) {
	f := frame.New(dimen.Size{})
	f.Push(dimen.Origin, e.Embed)
	tracer().Debugf("embed %q (%s, %v)", e.Embed.Path, e.Embed.MIME, e.Embed.Relationship)
	return []frame.Constrained{f.Constrain(frame.NewConstraints(regions.Expand))}, nil
}

var _ Node = &EmbedNode{}
