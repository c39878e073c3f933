package layout

import (
	"github.com/npillmayer/boxes/core"
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/boxes/engine/frame"
	"golang.org/x/sync/errgroup"
)

// GridNode arranges its children in a grid.
//
// Children are assigned to content cells in row-major order. Gutter tracks
// are interleaved between content tracks and never hold content.
type GridNode struct {
	Columns      []TrackSizing // sizing of content columns
	Rows         []TrackSizing // sizing of content rows
	ColumnGutter []TrackSizing // sizing of gutters between columns
	RowGutter    []TrackSizing // sizing of gutters between rows
	Children     []Node
}

// PlacementHint is part of interface Node.
func (grid *GridNode) PlacementHint() PlacementHint {
	return NoHint
}

// Layout is part of interface Node.
func (grid *GridNode) Layout(ctx *Context, regions Regions) ([]frame.Constrained, error) {
	l := newGridLayouter(ctx, grid, regions)
	if err := l.measureColumns(); err != nil {
		return nil, err
	}
	return l.layout()
}

var _ Node = &GridNode{}

// --- Grid layouter ---------------------------------------------------------

// gridRow is a row of the current region. Auto and linear rows are finished
// when they are pushed; fractional rows wait for the region to be finished.
type gridRow struct {
	frame frame.Frame
	fr    dimen.Fraction
	y     int
	isFr  bool
}

// gridLayouter holds the state of a grid layout run. It lives for exactly
// one call of GridNode.Layout.
type gridLayouter struct {
	ctx      *Context
	children []Node
	expand   dimen.Axes[bool] // whether the grid should expand to fill the region
	cols     []TrackSizing    // column tracks including gutter tracks
	rows     []TrackSizing    // row tracks including gutter tracks
	regions  Regions          // regions to lay out children into
	rcols    []dimen.Dimen    // resolved column widths
	full     dimen.Dimen      // full height of the current region
	used     dimen.Size       // used size of the current region; width is fixed after measuring columns
	fr       dimen.Fraction   // sum of fractional rows in the current region
	lrows    []gridRow        // rows of the current region
	colCts   frame.Constraints
	cts      frame.Constraints // constraints of the current region
	finished []frame.Constrained
}

func newGridLayouter(ctx *Context, grid *GridNode, regions Regions) *gridLayouter {
	c := len(grid.Columns)
	if c < 1 {
		c = 1
	}
	r := len(grid.Rows)
	if needed := (len(grid.Children) + c - 1) / c; needed > r {
		r = needed
	}
	auto, zero := AutoTrack(), Fixed(dimen.Linear{})
	cols := make([]TrackSizing, 0, 2*c)
	for x := 0; x < c; x++ {
		cols = append(cols, trackOr(grid.Columns, x, auto))
		cols = append(cols, trackOr(grid.ColumnGutter, x, zero))
	}
	rows := make([]TrackSizing, 0, 2*r)
	for y := 0; y < r; y++ {
		rows = append(rows, trackOr(grid.Rows, y, auto))
		rows = append(rows, trackOr(grid.RowGutter, y, zero))
	}
	// remove superfluous trailing gutters
	cols = cols[:len(cols)-1]
	if len(rows) > 0 {
		rows = rows[:len(rows)-1]
	}
	// Regions are used for auto row measurement. Columns are sized by then,
	// so cells may expand horizontally.
	expand := regions.Expand
	regions.Expand = dimen.Axes[bool]{X: true, Y: false}
	tracer().Debugf("grid of %d×%d content cells for %d children", c, r, len(grid.Children))
	return &gridLayouter{
		ctx:      ctx,
		children: grid.Children,
		expand:   expand,
		cols:     cols,
		rows:     rows,
		regions:  regions,
		rcols:    make([]dimen.Dimen, len(cols)),
		full:     regions.Current.H,
		colCts:   frame.NewConstraints(expand),
		cts:      frame.NewConstraints(expand),
	}
}

// trackOr returns track #i, repeating the last track if there are too few,
// or a default if tracks is empty.
func trackOr(tracks []TrackSizing, i int, dflt TrackSizing) TrackSizing {
	if i < len(tracks) {
		return tracks[i]
	}
	if len(tracks) > 0 {
		return tracks[len(tracks)-1]
	}
	return dflt
}

// cell returns the node in column x and row y, or nil for gutter cells and
// empty cells.
func (l *gridLayouter) cell(x, y int) Node {
	core.Assert(x < len(l.cols), "grid column %d out of range [0…%d)", x, len(l.cols))
	core.Assert(y < len(l.rows), "grid row %d out of range [0…%d)", y, len(l.rows))
	// even columns and rows hold content, odd ones are gutter
	if x%2 == 0 && y%2 == 0 {
		c := 1 + len(l.cols)/2
		if i := (y/2)*c + x/2; i < len(l.children) {
			return l.children[i]
		}
	}
	return nil
}

// columnCase tells how column sizing depends on the width of the region.
type columnCase uint8

const (
	purelyLinear columnCase = iota // only determined by linear sizes
	fitting                        // would be affected by a smaller region
	exact                          // is affected by the region width
	overflowing                    // would be affected by a larger region
)

// measureColumns determines the widths of all columns.
func (l *gridLayouter) measureColumns() error {
	colcase := purelyLinear
	linear := dimen.Zero  // sum of resolved linear columns
	var fr dimen.Fraction // sum of fractional columns
	for x, col := range l.cols {
		switch col.Kind {
		case TrackAuto:
			colcase = fitting
		case TrackLinear:
			l.rcols[x] = col.Linear.Resolve(l.regions.Base.W)
			linear = linear.Plus(l.rcols[x])
		case TrackFractional:
			colcase = fitting
			fr += col.Fr
		}
	}
	available := l.regions.Current.W.Minus(linear)
	if available >= 0 {
		auto, count, err := l.measureAutoColumns(available)
		if err != nil {
			return err
		}
		// distribute remaining space to fractional columns, or shrink auto columns
		if remaining := available.Minus(auto); remaining >= 0 {
			if fr > 0 {
				l.growFractionalColumns(remaining, fr)
				colcase = exact
			}
		} else {
			l.shrinkAutoColumns(available, count)
			colcase = exact
		}
	} else if colcase == fitting {
		colcase = overflowing
	}
	l.used.W = dimen.Zero
	for _, w := range l.rcols {
		l.used.W = l.used.W.Plus(w)
	}
	switch colcase {
	case fitting:
		l.colCts.Min.X = dimen.Some(l.used.W)
	case exact:
		l.colCts.Exact.X = dimen.Some(l.regions.Current.W)
	case overflowing:
		l.colCts.Max.X = dimen.Some(linear)
	}
	l.cts = l.regionConstraints()
	tracer().Debugf("grid columns resolved to %v (total %v)", l.rcols, l.used.W)
	return nil
}

// regionConstraints creates constraints for a fresh region. The width
// constraint of column measuring holds for every region.
func (l *gridLayouter) regionConstraints() frame.Constraints {
	cts := frame.NewConstraints(l.expand)
	cts.Min.X, cts.Max.X, cts.Exact.X = l.colCts.Min.X, l.colCts.Max.X, l.colCts.Exact.X
	return cts
}

// autoProbe is a cell of an auto column to measure.
type autoProbe struct {
	x, y int
	node Node
	pod  Regions
}

// measureAutoColumns lays out all cells of auto columns and returns the
// total width of auto columns and their number.
func (l *gridLayouter) measureAutoColumns(available dimen.Dimen) (dimen.Dimen, int, error) {
	var probes []autoProbe
	for x, col := range l.cols {
		if !col.IsAuto() {
			continue
		}
		for y := range l.rows {
			node := l.cell(x, y)
			if node == nil {
				continue
			}
			size := dimen.Size{W: available, H: l.regions.Base.H}
			pod := One(size, l.regions.Base, dimen.Splat(false))
			// for linear rows the correct base is known already; for
			// fractional rows we could only guess
			if l.rows[y].Kind == TrackLinear {
				pod.Base.H = l.rows[y].Linear.Resolve(l.regions.Base.H)
			}
			probes = append(probes, autoProbe{x: x, y: y, node: node, pod: pod})
		}
	}
	widths, err := l.runProbes(probes)
	if err != nil {
		return 0, 0, err
	}
	auto, count := dimen.Zero, 0
	for x, col := range l.cols {
		if !col.IsAuto() {
			continue
		}
		resolved := dimen.Zero
		for i, p := range probes {
			if p.x == x {
				resolved = dimen.Max(resolved, widths[i])
			}
		}
		l.rcols[x] = resolved
		auto = auto.Plus(resolved)
		count++
	}
	return auto, count, nil
}

// runProbes measures the widths of probe cells. Cells do not depend on each
// other, so they may be measured concurrently; results are indexed by probe.
func (l *gridLayouter) runProbes(probes []autoProbe) ([]dimen.Dimen, error) {
	widths := make([]dimen.Dimen, len(probes))
	if !l.ctx.Parallel || len(probes) < 2 {
		for i, p := range probes {
			size, err := measure(l.ctx, p.node, p.pod)
			if err != nil {
				return nil, err
			}
			widths[i] = size.W
		}
		return widths, nil
	}
	var g errgroup.Group
	for i, p := range probes {
		i, p := i, p
		g.Go(func() error {
			size, err := measure(l.ctx, p.node, p.pod)
			if err != nil {
				return err
			}
			widths[i] = size.W
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return widths, nil
}

// growFractionalColumns distributes remaining space to fractional columns.
func (l *gridLayouter) growFractionalColumns(remaining dimen.Dimen, fr dimen.Fraction) {
	for x, col := range l.cols {
		if col.Kind == TrackFractional {
			l.rcols[x] = col.Fr.Resolve(fr, remaining)
		}
	}
}

// shrinkAutoColumns redistributes space to auto columns so that each gets
// a fair share. This is a single pass: columns over the fair share receive
// an equal part of what the smaller columns leave, the last of them also
// receiving the remainder of the division.
func (l *gridLayouter) shrinkAutoColumns(available dimen.Dimen, count int) {
	if count == 0 {
		return
	}
	fair := available / dimen.Dimen(count)
	overlarge := 0
	redistribute := available
	for x, col := range l.cols {
		if col.IsAuto() {
			if l.rcols[x] > fair {
				overlarge++
			} else {
				redistribute -= l.rcols[x]
			}
		}
	}
	if overlarge == 0 {
		return
	}
	share := redistribute / dimen.Dimen(overlarge)
	rest := redistribute - share*dimen.Dimen(overlarge)
	last := -1
	for x, col := range l.cols {
		if col.IsAuto() && l.rcols[x] > fair {
			l.rcols[x] = share
			last = x
		}
	}
	l.rcols[last] += rest // integer division remainder
}

// layout lays out the grid row by row.
func (l *gridLayouter) layout() ([]frame.Constrained, error) {
	for y, row := range l.rows {
		// skip to next region if the current one is full, but only for
		// content rows
		if y%2 == 0 && l.regions.IsFull() {
			if err := l.finishRegion(); err != nil {
				return nil, err
			}
		}
		var err error
		switch row.Kind {
		case TrackAuto:
			err = l.layoutAutoRow(y)
		case TrackLinear:
			err = l.layoutLinearRow(row.Linear, y)
		case TrackFractional:
			l.cts.Exact.Y = dimen.Some(l.full)
			l.lrows = append(l.lrows, gridRow{fr: row.Fr, y: y, isFr: true})
			l.fr += row.Fr
		}
		if err != nil {
			return nil, err
		}
	}
	if err := l.finishRegion(); err != nil {
		return nil, err
	}
	return l.finished, nil
}

// cellRegions derives the regions for a cell in column x from rs.
func (l *gridLayouter) cellRegions(rs Regions, x int) Regions {
	pod := rs.MapWidths(l.rcols[x])
	if !l.cols[x].IsAuto() {
		pod.Base.W = l.rcols[x]
	}
	return pod
}

// layoutAutoRow lays out a row with automatic height. Such a row may break
// across multiple regions.
func (l *gridLayouter) layoutAutoRow(y int) error {
	var resolved []dimen.Dimen
	// for each region, find the maximum height any cell requires
	for x := range l.rcols {
		node := l.cell(x, y)
		if node == nil {
			continue
		}
		hs, err := heights(l.ctx, node, l.cellRegions(l.regions, x))
		if err != nil {
			return err
		}
		for i, h := range hs {
			if i < len(resolved) {
				resolved[i] = dimen.Max(resolved[i], h)
			} else {
				resolved = append(resolved, h)
			}
		}
	}
	switch len(resolved) {
	case 0:
		return nil
	case 1:
		f, err := l.layoutSingleRow(resolved[0], y)
		if err != nil {
			return err
		}
		l.pushRow(f)
		return nil
	}
	// expand all but the last region if the space is not eaten up by fr rows
	if l.fr == 0 {
		regions := l.regions.Iter(len(resolved) - 1)
		for i := range regions {
			resolved[i] = dimen.Max(resolved[i], regions[i].Size.H)
		}
	}
	frames, err := l.layoutMultiRow(resolved, y)
	if err != nil {
		return err
	}
	for i, f := range frames {
		l.pushRow(f)
		if i+1 < len(frames) {
			l.cts.Exact.Y = dimen.Some(l.full)
			if err := l.finishRegion(); err != nil {
				return err
			}
		}
	}
	return nil
}

// layoutLinearRow lays out a row with linear height. Such a row cannot break
// across multiple regions, but it may force a region break.
func (l *gridLayouter) layoutLinearRow(v dimen.Linear, y int) error {
	resolved := v.Resolve(l.regions.Base.H)
	f, err := l.layoutSingleRow(resolved, y)
	if err != nil {
		return err
	}
	// skip to a fitting region
	height := f.Size.H
	for !l.regions.Current.H.Fits(height) && !l.regions.InLast() {
		l.cts.Max.Y = dimen.Some(l.used.H.Plus(height))
		if err := l.finishRegion(); err != nil {
			return err
		}
		// gutter must not skip multiple regions and is not pushed
		if y%2 == 1 {
			return nil
		}
	}
	l.pushRow(f)
	return nil
}

// layoutSingleRow lays out a row with a fixed height and returns its frame.
func (l *gridLayouter) layoutSingleRow(height dimen.Dimen, y int) (frame.Frame, error) {
	output := frame.New(dimen.Size{W: l.used.W, H: height})
	pos := dimen.Origin
	for x, rcol := range l.rcols {
		if node := l.cell(x, y); node != nil {
			size := dimen.Size{W: rcol, H: height}
			// the base is the region's base for auto tracks and the cell
			// size for linear and fractional tracks
			base := size
			if l.cols[x].IsAuto() {
				base.W = l.regions.Base.W
			}
			if l.rows[y].IsAuto() {
				base.H = l.regions.Base.H
			}
			c, err := first(l.ctx, node, One(size, base, dimen.Splat(true)))
			if err != nil {
				return frame.Frame{}, err
			}
			output.PushFrame(pos, c.Frame)
		}
		pos.X += rcol
	}
	return output, nil
}

// layoutMultiRow lays out a row spanning multiple regions.
func (l *gridLayouter) layoutMultiRow(heights []dimen.Dimen, y int) ([]frame.Frame, error) {
	outputs := make([]frame.Frame, len(heights))
	backlog := make([]dimen.Size, len(heights)-1)
	for i, h := range heights {
		outputs[i] = frame.New(dimen.Size{W: l.used.W, H: h})
		if i > 0 {
			backlog[i-1] = dimen.Size{W: l.used.W, H: h}
		}
	}
	pod := One(dimen.Size{W: l.used.W, H: heights[0]}, l.regions.Base, dimen.Splat(true))
	pod.Backlog = backlog
	pos := dimen.Origin
	for x, rcol := range l.rcols {
		if node := l.cell(x, y); node != nil {
			frames, err := Layout(l.ctx, node, l.cellRegions(pod, x))
			if err != nil {
				return nil, err
			}
			for i := 0; i < len(outputs) && i < len(frames); i++ {
				outputs[i].PushFrame(pos, frames[i].Frame)
			}
		}
		pos.X += rcol
	}
	return outputs, nil
}

// pushRow pushes a finished row frame into the current region.
func (l *gridLayouter) pushRow(f frame.Frame) {
	l.regions.Current.H = l.regions.Current.H.Minus(f.Size.H)
	l.used.H = l.used.H.Plus(f.Size.H)
	l.lrows = append(l.lrows, gridRow{frame: f})
}

// finishRegion lays out fractional rows, places all rows of the current
// region and advances to the next region.
func (l *gridLayouter) finishRegion() error {
	size := l.used
	if l.fr > 0 && l.full.IsFinite() {
		size.H = l.full
		l.cts.Exact.Y = dimen.Some(l.full)
	} else {
		l.cts.Min.Y = dimen.Some(dimen.Min(size.H, l.full))
	}
	output := frame.New(size)
	pos := dimen.Origin
	for _, row := range l.lrows {
		f := row.frame
		if row.isFr {
			remaining := l.full.Minus(l.used.H)
			var err error
			if f, err = l.layoutSingleRow(row.fr.Resolve(l.fr, remaining), row.y); err != nil {
				return err
			}
		}
		output.Merge(pos, f)
		pos.Y += f.Size.H
	}
	l.cts.Base = dimen.SomeSize(l.regions.Base)
	tracer().Debugf("grid finishes region #%d: size=%v, %d rows", len(l.finished), size, len(l.lrows))
	l.finished = append(l.finished, output.Constrain(l.cts))
	//
	l.regions.Next()
	l.full = l.regions.Current.H
	l.used.H = dimen.Zero
	l.fr = 0
	l.lrows = nil
	l.cts = l.regionConstraints()
	return nil
}
