package frame

import (
	"image/color"
	"testing"

	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/bidi"
)

func TestFramePushAndMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.frame")
	defer teardown()
	//
	child := New(dimen.Size{W: 20 * dimen.BP, H: 10 * dimen.BP})
	child.Push(dimen.Point{X: 5 * dimen.BP}, Shape{Size: dimen.Size{W: 10 * dimen.BP, H: 10 * dimen.BP}, Fill: color.Black})
	//
	parent := New(dimen.Size{W: 100 * dimen.BP, H: 100 * dimen.BP})
	parent.PushFrame(dimen.Point{X: 10 * dimen.BP, Y: 10 * dimen.BP}, child)
	parent.Merge(dimen.Point{Y: 50 * dimen.BP}, child)
	//
	assert.Len(t, parent.Items, 2)
	assert.Equal(t, GroupItem, parent.Items[0].Item.ItemType())
	assert.Equal(t, ShapeItem, parent.Items[1].Item.ItemType())
	assert.Equal(t, dimen.Point{X: 5 * dimen.BP, Y: 50 * dimen.BP}, parent.Items[1].Pos)
	//
	var positions []dimen.Point
	parent.Walk(func(pos dimen.Point, item Item) {
		if item.ItemType() == ShapeItem {
			positions = append(positions, pos)
		}
	})
	assert.Equal(t, []dimen.Point{
		{X: 15 * dimen.BP, Y: 10 * dimen.BP},
		{X: 5 * dimen.BP, Y: 50 * dimen.BP},
	}, positions)
	t.Logf("\n%s", parent.DebugString())
}

func TestFrameResize(t *testing.T) {
	f := New(dimen.Size{W: 20 * dimen.BP, H: 10 * dimen.BP})
	f.Push(dimen.Origin, TextRun{Text: "x", Width: 20 * dimen.BP, Height: 10 * dimen.BP})
	target := dimen.Size{W: 100 * dimen.BP, H: 50 * dimen.BP}
	f.Resize(target, dimen.Axes[Align]{X: Center, Y: Bottom}, bidi.LeftToRight)
	assert.Equal(t, target, f.Size)
	assert.Equal(t, dimen.Point{X: 40 * dimen.BP, Y: 40 * dimen.BP}, f.Items[0].Pos)
}

func TestAlignResolve(t *testing.T) {
	free := 100 * dimen.BP
	assert.Equal(t, dimen.Zero, Start.Resolve(free, bidi.LeftToRight))
	assert.Equal(t, free, Start.Resolve(free, bidi.RightToLeft))
	assert.Equal(t, free, End.Resolve(free, bidi.LeftToRight))
	assert.Equal(t, 50*dimen.BP, Center.Resolve(free, bidi.RightToLeft))
	assert.Equal(t, free, Right.Resolve(free, bidi.RightToLeft))
	assert.Equal(t, dimen.Zero, Left.Resolve(free, bidi.RightToLeft))
	assert.Equal(t, Bottom, MaxAlign(Center, Bottom))
	assert.Equal(t, Center, MaxAlign(Center, Top))
}
