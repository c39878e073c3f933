package frame

import (
	"github.com/npillmayer/boxes/core/dimen"
	"golang.org/x/text/unicode/bidi"
)

// Align is an alignment along one axis.
//
// Start and End are relative to the text direction on the horizontal axis;
// on the vertical axis Start means top and End means bottom.
// Left and Right are absolute and only meaningful horizontally.
type Align uint8

// Alignments.
const (
	Start Align = iota
	Center
	End
	Left
	Right
)

// Aliases for vertical alignment.
const (
	Top    = Start
	Bottom = End
)

func (a Align) String() string {
	switch a {
	case Start:
		return "start"
	case Center:
		return "center"
	case End:
		return "end"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "?"
}

// Resolve returns the offset of an item within free space, given a text
// direction. Negative free space is handled the same as positive space, i.e.
// centered and end-aligned items will stick out on the start side.
func (a Align) Resolve(free dimen.Dimen, dir bidi.Direction) dimen.Dimen {
	if !free.IsFinite() {
		return dimen.Zero
	}
	switch a {
	case Center:
		return free / 2
	case Left:
		return dimen.Zero
	case Right:
		return free
	case Start:
		if dir == bidi.RightToLeft {
			return free
		}
		return dimen.Zero
	case End:
		if dir == bidi.RightToLeft {
			return dimen.Zero
		}
		return free
	}
	return dimen.Zero
}

// Rank orders alignments from start to end: Start/Left < Center < End/Right.
// Flow layout uses it to find the dominant vertical alignment of a region.
func (a Align) Rank() int {
	switch a {
	case Center:
		return 1
	case End, Right:
		return 2
	}
	return 0
}

// MaxAlign returns the alignment of higher rank.
func MaxAlign(a, b Align) Align {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
