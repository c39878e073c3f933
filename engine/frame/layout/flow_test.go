package layout

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

func filled(w, h dimen.Dimen) *BoxNode {
	return &BoxNode{Width: dimen.Abs(w * dimen.BP), Height: dimen.Abs(h * dimen.BP), Fill: color.Black}
}

func TestFlowSpacingAndNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	flow := Flow(
		Space(LinearSpacing(dimen.Abs(10*dimen.PT))),
		Block(&BoxNode{Width: dimen.Abs(20 * dimen.BP), Height: dimen.Abs(50 * dimen.PT)}),
	)
	regions := One(dimen.Size{W: 100 * dimen.BP, H: 100 * dimen.PT}, dimen.Size{W: 100 * dimen.BP, H: 100 * dimen.PT},
		dimen.Splat(false))
	frames, err := Layout(nil, flow, regions)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	f := frames[0].Frame
	assert.Equal(t, 60*dimen.PT, f.Size.H)
	assert.Equal(t, 20*dimen.BP, f.Size.W)
	require.Len(t, f.Items, 1)
	assert.Equal(t, dimen.Point{X: 0, Y: 10 * dimen.PT}, f.Items[0].Pos)
	assert.Equal(t, dimen.SomeSize(regions.Current), frames[0].Constraints.Exact)
}

func TestFlowZeroSpacingIsNoOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	regions := Repeat(sz(100, 100), dimen.Axes[bool]{X: true, Y: false})
	plain := Flow(Block(filled(20, 30)), Block(filled(40, 50)))
	spaced := Flow(
		Space(LinearSpacing(dimen.Linear{})),
		Block(filled(20, 30)),
		Space(LinearSpacing(dimen.Linear{})),
		Block(filled(40, 50)),
		Space(LinearSpacing(dimen.Linear{})),
	)
	f1, err := Layout(nil, plain, regions)
	require.NoError(t, err)
	f2, err := Layout(nil, spaced, regions)
	require.NoError(t, err)
	assert.Equal(t, frame.Sizes(f1), frame.Sizes(f2))
	assert.Empty(t, cmp.Diff(f1[0].Frame, f2[0].Frame))
}

func TestFlowSpacingIsClamped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	flow := Flow(Block(filled(10, 80)), Space(LinearSpacing(dimen.Abs(50*dimen.BP))))
	frames, err := Layout(nil, flow, One(sz(100, 100), sz(100, 100), dimen.Splat(false)))
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, 100*dimen.BP, frames[0].Frame.Size.H)
}

func TestFlowNegativeSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	flow := Flow(Block(filled(10, 20)), Space(LinearSpacing(dimen.Abs(-15*dimen.BP))), Block(filled(10, 30)))
	frames, err := Layout(nil, flow, One(sz(100, 100), sz(100, 100), dimen.Splat(false)))
	require.NoError(t, err)
	f := frames[0].Frame
	assert.Equal(t, 50*dimen.BP, f.Size.H)
	require.Len(t, f.Items, 2)
	assert.Equal(t, dimen.Point{Y: 20 * dimen.BP}, f.Items[1].Pos, "negative spacing does not pull content up")
}

func TestFlowFractionalSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	flow := Flow(
		Block(filled(10, 10)),
		Space(FractionalSpacing(1)),
		Block(filled(10, 10)),
		Space(FractionalSpacing(3)),
	)
	frames, err := Layout(nil, flow, One(sz(100, 100), sz(100, 100), dimen.Splat(false)))
	require.NoError(t, err)
	require.Len(t, frames, 1)
	f := frames[0].Frame
	assert.Equal(t, 100*dimen.BP, f.Size.H, "fractional spacing fills the region")
	require.Len(t, f.Items, 2)
	// 80bp remaining, 1/4 of it before the second box
	assert.Equal(t, 30*dimen.BP, f.Items[1].Pos.Y)
}

func TestFlowFractionalSpacingInfinite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	flow := Flow(Block(filled(10, 10)), Space(FractionalSpacing(1)), Block(filled(10, 10)))
	size := dimen.Size{W: 100 * dimen.BP, H: dimen.Infinity}
	frames, err := Layout(nil, flow, One(size, size, dimen.Splat(false)))
	require.NoError(t, err)
	f := frames[0].Frame
	assert.Equal(t, 20*dimen.BP, f.Size.H)
	assert.Equal(t, 10*dimen.BP, f.Items[1].Pos.Y)
}

func TestFlowPagination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	flow := Flow(Block(filled(10, 60)), Block(filled(10, 60)), Block(filled(10, 60)))
	frames, err := Layout(nil, flow, Repeat(sz(100, 100), dimen.Splat(false)))
	require.NoError(t, err)
	// a node is never split: the second box overflows the first region,
	// which then is full
	require.Len(t, frames, 2)
	assert.Equal(t, []dimen.Size{sz(10, 120), sz(10, 60)}, frame.Sizes(frames))
	assert.Len(t, frames[0].Frame.Items, 2)
	assert.Len(t, frames[1].Frame.Items, 1)
}

func TestFlowLastRegionNeverFull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	flow := Flow(Block(filled(10, 100)), Block(filled(10, 60)))
	frames, err := Layout(nil, flow, One(sz(100, 100), sz(100, 100), dimen.Splat(false)))
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, 160*dimen.BP, frames[0].Frame.Size.H)
}

func TestFlowOutOfFlow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	placed := &PlacedNode{
		Child:     filled(10, 10),
		Dx:        dimen.Abs(5 * dimen.BP),
		Dy:        dimen.Abs(5 * dimen.BP),
		OutOfFlow: true,
	}
	flow := Flow(Block(filled(20, 20)), Block(placed), Block(filled(20, 20)))
	frames, err := Layout(nil, flow, One(sz(100, 100), sz(100, 100), dimen.Splat(false)))
	require.NoError(t, err)
	require.Len(t, frames, 1)
	f := frames[0].Frame
	assert.Equal(t, sz(20, 40), f.Size, "placed node takes no space")
	require.Len(t, f.Items, 3)
	assert.Equal(t, dimen.Point{Y: 20 * dimen.BP}, f.Items[1].Pos)
	assert.Equal(t, dimen.Point{Y: 20 * dimen.BP}, f.Items[2].Pos)
	g := f.Items[1].Item.(frame.Group)
	assert.Equal(t, dimen.Size{}, g.Frame.Size)
	require.Len(t, g.Frame.Items, 1)
	// out of flow, the child expands to the region's base
	assert.Equal(t, sz(100, 100), g.Frame.Items[0].Item.(frame.Shape).Size)
	assert.Equal(t, dimen.Point{X: 5 * dimen.BP, Y: 5 * dimen.BP}, g.Frame.Items[0].Pos)
}

func TestFlowAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	expand := dimen.Axes[bool]{X: true, Y: false}
	flow := Flow(Block(Aligned(filled(20, 20), frame.End, frame.Top)), Block(filled(20, 20)))
	frames, err := Layout(nil, flow, One(sz(100, 100), sz(100, 100), expand))
	require.NoError(t, err)
	var xs []dimen.Dimen
	frames[0].Frame.Walk(func(pos dimen.Point, item frame.Item) {
		if item.ItemType() == frame.ShapeItem {
			xs = append(xs, pos.X)
		}
	})
	assert.Equal(t, []dimen.Dimen{80 * dimen.BP, 0}, xs)
	//
	rtl := NewContext(nil)
	rtl.Dir = bidi.RightToLeft
	flow = Flow(Block(Aligned(filled(20, 20), frame.Start, frame.Top)))
	frames, err = Layout(rtl, flow, One(sz(100, 100), sz(100, 100), expand))
	require.NoError(t, err)
	xs = nil
	frames[0].Frame.Walk(func(pos dimen.Point, item frame.Item) {
		if item.ItemType() == frame.ShapeItem {
			xs = append(xs, pos.X)
		}
	})
	assert.Equal(t, []dimen.Dimen{80 * dimen.BP}, xs)
}

func TestFlowVerticalRuler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.layout")
	defer teardown()
	//
	// once a node is bottom-aligned, all following nodes are, too
	flow := Flow(
		Block(filled(10, 10)),
		Block(Aligned(filled(10, 10), frame.Start, frame.Bottom)),
		Block(filled(10, 10)),
	)
	frames, err := Layout(nil, flow, One(sz(100, 100), sz(100, 100), dimen.Splat(true)))
	require.NoError(t, err)
	f := frames[0].Frame
	require.Len(t, f.Items, 3)
	assert.Equal(t, dimen.Zero, f.Items[0].Pos.Y)
	assert.Equal(t, 80*dimen.BP, f.Items[1].Pos.Y)
	assert.Equal(t, 90*dimen.BP, f.Items[2].Pos.Y)
}
