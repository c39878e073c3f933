package layout

import (
	"image/color"

	"github.com/npillmayer/boxes/core"
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/frame"
)

// Page describes the geometry of the pages a document is set on.
type Page struct {
	dimen.Size             // paper size
	Margins    Margins     // space between paper edges and content area
	Background color.Color // nil for no background
}

// Margins are the four margins of a page.
type Margins struct {
	Top, Right, Bottom, Left dimen.Linear
}

// NewPage creates a page of a given paper size with uniform margins.
func NewPage(papersize dimen.Size, margin dimen.Linear) Page {
	return Page{
		Size:    papersize,
		Margins: Margins{Top: margin, Right: margin, Bottom: margin, Left: margin},
	}
}

// content returns the origin and size of the content area. Relative margins
// resolve against the paper width (horizontal) or height (vertical).
func (p Page) content() (dimen.Point, dimen.Size) {
	l := p.Margins.Left.Resolve(p.W)
	r := p.Margins.Right.Resolve(p.W)
	t := p.Margins.Top.Resolve(p.H)
	b := p.Margins.Bottom.Resolve(p.H)
	return dimen.Point{X: l, Y: t}, dimen.Size{W: p.W.Minus(l).Minus(r), H: p.H.Minus(t).Minus(b)}
}

// Regions returns the open-ended sequence of content areas of pages of
// this geometry. Content expands to the full content area.
func (p Page) Regions() Regions {
	_, area := p.content()
	return Repeat(area, dimen.Splat(true))
}

// Paginate lays out a node onto as many pages as it needs and returns one
// frame per page, each with the paper size of p.
func Paginate(ctx *Context, node Node, p Page) ([]frame.Frame, error) {
	origin, area := p.content()
	if !area.IsFinite().X || !area.IsFinite().Y || area.W <= 0 || area.H <= 0 {
		return nil, core.Error(core.EINVALID, "page %v has no content area left by margins", p.Size)
	}
	frames, err := Layout(ctx, node, p.Regions())
	if err != nil {
		return nil, err
	}
	pages := make([]frame.Frame, len(frames))
	for i, c := range frames {
		page := frame.New(p.Size)
		if p.Background != nil {
			page.Push(dimen.Origin, frame.Shape{Size: p.Size, Fill: p.Background})
		}
		page.PushFrame(origin, c.Frame)
		pages[i] = page
	}
	tracer().Infof("paginated content onto %d pages of %v", len(pages), p.Size)
	return pages, nil
}
