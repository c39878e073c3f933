package layout

import (
	"fmt"

	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/frame"
	"golang.org/x/text/unicode/bidi"
)

// Spacing is vertical space between the children of a flow.
type Spacing struct {
	Linear dimen.Linear   // used if not fractional
	Fr     dimen.Fraction // used if fractional
	IsFr   bool
}

// LinearSpacing creates spacing of a fixed or base-relative amount.
func LinearSpacing(l dimen.Linear) Spacing {
	return Spacing{Linear: l}
}

// FractionalSpacing creates spacing taking a share of the leftover space.
func FractionalSpacing(fr dimen.Fraction) Spacing {
	return Spacing{Fr: fr, IsFr: true}
}

func (s Spacing) String() string {
	if s.IsFr {
		return s.Fr.String()
	}
	return s.Linear.String()
}

// FlowChild is either spacing or a block-level node.
type FlowChild struct {
	Spacing Spacing
	Node    Node // nil for spacing
}

// Space wraps spacing as a flow child.
func Space(s Spacing) FlowChild {
	return FlowChild{Spacing: s}
}

// Block wraps a node as a flow child.
func Block(n Node) FlowChild {
	return FlowChild{Node: n}
}

// FlowNode is a vertical flow of paragraphs and other block-level nodes.
//
// It is responsible for laying out the top-level content flow of pages as
// well as the contents of containers.
type FlowNode struct {
	Children []FlowChild
}

// Flow creates a flow node from children.
func Flow(children ...FlowChild) *FlowNode {
	return &FlowNode{Children: children}
}

// PlacementHint is part of interface Node.
func (flow *FlowNode) PlacementHint() PlacementHint {
	return NoHint
}

// Layout is part of interface Node.
func (flow *FlowNode) Layout(ctx *Context, regions Regions) ([]frame.Constrained, error) {
	return newFlowLayouter(ctx, flow, regions).layout()
}

var _ Node = &FlowNode{}

// --- Flow layouter ---------------------------------------------------------

type flowItemKind uint8

const (
	flowAbsolute flowItemKind = iota
	flowFractional
	flowFrame
	flowPlaced
)

// flowItem is a prepared item of a flow, waiting to be positioned when
// its region gets finished.
type flowItem struct {
	kind   flowItemKind
	amount dimen.Dimen
	fr     dimen.Fraction
	frame  frame.Frame
	aligns dimen.Axes[frame.Align]
}

// flowLayouter holds the state of a flow layout run. It lives for exactly
// one call of FlowNode.Layout.
type flowLayouter struct {
	ctx      *Context
	children []FlowChild
	expand   dimen.Axes[bool]    // whether the flow should expand to fill the region
	regions  Regions             // regions to lay out children into
	full     dimen.Size          // size of the current region before subtracting
	used     dimen.Size          // size used by the frames of the current region
	fr       dimen.Fraction      // sum of fractional spacing in the current region
	items    []flowItem          // spacing and laid out nodes of the current region
	finished []frame.Constrained // frames of finished regions
}

func newFlowLayouter(ctx *Context, flow *FlowNode, regions Regions) *flowLayouter {
	l := &flowLayouter{
		ctx:      ctx,
		children: flow.Children,
		expand:   regions.Expand,
		full:     regions.Current,
		regions:  regions,
	}
	// children must not pre-expand into space we do not know the size of yet
	l.regions.Expand.Y = false
	return l
}

func (l *flowLayouter) layout() ([]frame.Constrained, error) {
	for _, child := range l.children {
		switch {
		case child.Node == nil && !child.Spacing.IsFr:
			l.layoutAbsolute(child.Spacing.Linear)
		case child.Node == nil:
			l.items = append(l.items, flowItem{kind: flowFractional, fr: child.Spacing.Fr})
			l.fr += child.Spacing.Fr
		default:
			if l.regions.IsFull() {
				l.finishRegion()
			}
			if err := l.layoutNode(child.Node); err != nil {
				return nil, err
			}
		}
	}
	l.finishRegion()
	return l.finished, nil
}

// layoutAbsolute resolves linear spacing, limiting it to the remaining space.
func (l *flowLayouter) layoutAbsolute(amount dimen.Linear) {
	resolved := amount.Resolve(l.full.H)
	limited := dimen.Max(dimen.Zero, dimen.Min(resolved, l.regions.Current.H))
	l.regions.Current.H = l.regions.Current.H.Minus(limited)
	l.used.H = l.used.H.Plus(limited)
	l.items = append(l.items, flowItem{kind: flowAbsolute, amount: limited})
}

func (l *flowLayouter) layoutNode(node Node) error {
	hint := node.PlacementHint()
	if hint.OutOfFlow {
		placed, err := first(l.ctx, node, l.regions)
		if err != nil {
			return err
		}
		l.items = append(l.items, flowItem{kind: flowPlaced, frame: placed.Frame})
		return nil
	}
	aligns := dimen.Axes[frame.Align]{
		X: hint.alignOr(dimen.X, frame.Start),
		Y: hint.alignOr(dimen.Y, frame.Top),
	}
	frames, err := Layout(l.ctx, node, l.regions)
	if err != nil {
		return err
	}
	for i, c := range frames {
		size := c.Frame.Size
		l.used.H = l.used.H.Plus(size.H)
		l.used.W = dimen.Max(l.used.W, size.W)
		l.regions.Current.H = l.regions.Current.H.Minus(size.H)
		l.items = append(l.items, flowItem{kind: flowFrame, frame: c.Frame, aligns: aligns})
		if i+1 < len(frames) {
			l.finishRegion()
		}
	}
	return nil
}

// finishRegion positions the items of the current region and advances to
// the next region.
func (l *flowLayouter) finishRegion() {
	size := l.full.Select(l.expand, l.used)
	remaining := l.full.H.Minus(l.used.H)
	if l.fr > 0 && l.full.H.IsFinite() {
		l.used.H = l.full.H
		size.H = l.full.H
	}
	output := frame.New(size)
	offset := dimen.Zero
	ruler := frame.Top
	for _, item := range l.items {
		switch item.kind {
		case flowAbsolute:
			offset = offset.Plus(item.amount)
		case flowFractional:
			offset = offset.Plus(item.fr.Resolve(l.fr, remaining))
		case flowFrame:
			ruler = frame.MaxAlign(ruler, item.aligns.Y)
			x := item.aligns.X.Resolve(size.W.Minus(item.frame.Size.W), l.ctx.Dir)
			y := offset.Plus(ruler.Resolve(size.H.Minus(l.used.H), bidi.LeftToRight))
			output.PushFrame(dimen.Point{X: x, Y: y}, item.frame)
			offset = offset.Plus(item.frame.Size.H)
		case flowPlaced:
			output.PushFrame(dimen.Point{Y: offset}, item.frame)
		}
	}
	cts := frame.NewConstraints(l.expand)
	cts.Exact = dimen.SomeSize(l.full)
	cts.Base = dimen.SomeSize(l.regions.Base)
	tracer().Debugf("flow finishes region #%d: %s", len(l.finished), l.describe(size))
	l.finished = append(l.finished, output.Constrain(cts))
	//
	l.regions.Next()
	l.full = l.regions.Current
	l.used = dimen.Size{}
	l.fr = 0
	l.items = l.items[:0]
}

func (l *flowLayouter) describe(size dimen.Size) string {
	return fmt.Sprintf("size=%v, %d items, fr=%v", size, len(l.items), l.fr)
}
