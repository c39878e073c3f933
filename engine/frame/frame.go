package frame

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/boxes/core/dimen"
	"golang.org/x/text/unicode/bidi"
)

// Frame is the result of laying out content into one region: a fixed-size
// rectangle with an ordered list of positioned items.
//
// Items do not have to stay within the bounds of the frame, although layout
// tries not to produce overflowing frames.
type Frame struct {
	Size  dimen.Size
	Items []Positioned
}

// Positioned is an item together with its offset from the top-left corner of
// the enclosing frame.
type Positioned struct {
	Pos  dimen.Point
	Item Item
}

// New creates an empty frame of a given size.
func New(size dimen.Size) Frame {
	return Frame{Size: size}
}

// Push appends an item at a position.
func (f *Frame) Push(pos dimen.Point, item Item) {
	f.Items = append(f.Items, Positioned{Pos: pos, Item: item})
}

// PushFrame nests a frame as a group at a position.
func (f *Frame) PushFrame(pos dimen.Point, sub Frame) {
	f.Push(pos, Group{Frame: sub})
}

// Merge moves the items of another frame into f, shifted by pos.
// The other frame itself is not retained.
func (f *Frame) Merge(pos dimen.Point, other Frame) {
	if pos == dimen.Origin {
		f.Items = append(f.Items, other.Items...)
		return
	}
	for _, it := range other.Items {
		f.Items = append(f.Items, Positioned{Pos: pos.Add(it.Pos), Item: it.Item})
	}
}

// Translate shifts all items of f by a vector.
func (f *Frame) Translate(by dimen.Point) {
	if by == dimen.Origin {
		return
	}
	for i := range f.Items {
		f.Items[i].Pos = f.Items[i].Pos.Add(by)
	}
}

// Resize changes the size of f and re-positions its contents according to
// alignment within the new size.
func (f *Frame) Resize(target dimen.Size, aligns dimen.Axes[Align], dir bidi.Direction) {
	if target == f.Size {
		return
	}
	offset := dimen.Point{
		X: aligns.X.Resolve(target.W.Minus(f.Size.W), dir),
		Y: aligns.Y.Resolve(target.H.Minus(f.Size.H), bidi.LeftToRight),
	}
	tracer().Debugf("resize frame %v to %v, shift content by (%v,%v)", f.Size, target, offset.X, offset.Y)
	f.Size = target
	f.Translate(offset)
}

// Constrain bundles a frame with its constraints.
func (f Frame) Constrain(cts Constraints) Constrained {
	return Constrained{Frame: f, Constraints: cts}
}

// Walk calls visit for every item of f and, recursively, of nested groups.
// Positions passed to visit are absolute with respect to f.
func (f Frame) Walk(visit func(pos dimen.Point, item Item)) {
	f.walk(dimen.Origin, visit)
}

func (f Frame) walk(at dimen.Point, visit func(dimen.Point, Item)) {
	for _, it := range f.Items {
		pos := at.Add(it.Pos)
		visit(pos, it.Item)
		if g, ok := it.Item.(Group); ok {
			g.Frame.walk(pos, visit)
		}
	}
}

// DebugString returns a textual representation of a frame tree.
// Intended for debugging.
func (f Frame) DebugString() string {
	var b strings.Builder
	f.debug(&b, 0)
	return b.String()
}

func (f Frame) debug(b *strings.Builder, indent int) {
	fmt.Fprintf(b, "%sframe %v\n", strings.Repeat("  ", indent), f.Size)
	for _, it := range f.Items {
		fmt.Fprintf(b, "%s  @(%v,%v) %v\n", strings.Repeat("  ", indent), it.Pos.X, it.Pos.Y,
			it.Item.ItemType())
		if g, ok := it.Item.(Group); ok {
			g.Frame.debug(b, indent+2)
		}
	}
}

// --- Items -----------------------------------------------------------------

// ItemType tells the kinds of items apart.
type ItemType uint8

// Kinds of frame items.
const (
	GroupItem ItemType = iota
	ShapeItem
	TextItem
	EmbedItem
)

func (t ItemType) String() string {
	switch t {
	case GroupItem:
		return "group"
	case ShapeItem:
		return "shape"
	case TextItem:
		return "text"
	case EmbedItem:
		return "embed"
	}
	return "?"
}

// Item is an element of a frame.
type Item interface {
	ItemType() ItemType
}

// Group is a nested frame.
type Group struct {
	Frame Frame
}

// ItemType is part of interface Item.
func (g Group) ItemType() ItemType { return GroupItem }

// Shape is a filled rectangle.
type Shape struct {
	Size dimen.Size
	Fill color.Color
}

// ItemType is part of interface Item.
func (s Shape) ItemType() ItemType { return ShapeItem }

// TextRun is an opaque run of already shaped text.
type TextRun struct {
	Text   string
	Width  dimen.Dimen
	Height dimen.Dimen
}

// ItemType is part of interface Item.
func (t TextRun) ItemType() ItemType { return TextItem }

// Relationship of an embedded file with the document.
type Relationship uint8

// Relationships for embedded files. Only relevant for archival output formats.
const (
	NoRelationship Relationship = iota
	SourceRelationship
	DataRelationship
	AlternativeRelationship
	SupplementRelationship
)

func (r Relationship) String() string {
	switch r {
	case SourceRelationship:
		return "source"
	case DataRelationship:
		return "data"
	case AlternativeRelationship:
		return "alternative"
	case SupplementRelationship:
		return "supplement"
	}
	return "unspecified"
}

// Embed is a file to be embedded into the output document. It has no extent;
// layout just carries the payload along to the output encoder.
type Embed struct {
	Path         string
	Data         []byte
	MIME         string
	Description  string
	Relationship Relationship
}

// ItemType is part of interface Item.
func (e Embed) ItemType() ItemType { return EmbedItem }

var _ Item = Group{}
var _ Item = Shape{}
var _ Item = TextRun{}
var _ Item = Embed{}
