package frame

import (
	"fmt"

	"github.com/npillmayer/boxes/core/dimen"
)

// Constraints describe which aspects of a region's size the layout of a
// frame depended on. A frame may be re-used for a new region, without
// laying out its content again, if the new region satisfies the constraints.
//
// For every axis:
//
//   - Min:   the region extent must be at least this value
//   - Max:   the region extent must be at most this value
//   - Exact: the region extent must equal this value
//   - Base:  the base used for relative lengths must equal this value
//
// Unset values do not restrict re-use.
type Constraints struct {
	Min    dimen.Axes[dimen.Opt]
	Max    dimen.Axes[dimen.Opt]
	Exact  dimen.Axes[dimen.Opt]
	Base   dimen.Axes[dimen.Opt]
	Expand dimen.Axes[bool]
}

// NewConstraints creates unrestricting constraints for a given expansion mode.
func NewConstraints(expand dimen.Axes[bool]) Constraints {
	return Constraints{Expand: expand}
}

// Check returns true if a region of size current with a base size base and
// expansion mode expand satisfies cts.
func (cts Constraints) Check(current, base dimen.Size, expand dimen.Axes[bool]) bool {
	if cts.Expand != expand {
		return false
	}
	for _, axis := range []dimen.Axis{dimen.X, dimen.Y} {
		c, b := current.Get(axis), base.Get(axis)
		if m, ok := cts.Min.Get(axis).Get(); ok && !c.Fits(m) {
			return false
		}
		if m, ok := cts.Max.Get(axis).Get(); ok && !m.Fits(c) {
			return false
		}
		if e, ok := cts.Exact.Get(axis).Get(); ok && e != c {
			return false
		}
		if e, ok := cts.Base.Get(axis).Get(); ok && e != b {
			return false
		}
	}
	return true
}

// SetBaseIfRelative sets the base constraint on every axis where a linear
// length with a relative part has been resolved against base.
func (cts *Constraints) SetBaseIfRelative(base dimen.Size, lengths dimen.Axes[dimen.Linear]) {
	if lengths.X.IsRelative() {
		cts.Base.X = dimen.Some(base.W)
	}
	if lengths.Y.IsRelative() {
		cts.Base.Y = dimen.Some(base.H)
	}
}

func (cts Constraints) String() string {
	return fmt.Sprintf("cts{min=%v max=%v exact=%v base=%v expand=%v}",
		cts.Min, cts.Max, cts.Exact, cts.Base, cts.Expand)
}

// Constrained is a frame together with the constraints under which it is
// valid.
type Constrained struct {
	Frame       Frame
	Constraints Constraints
}

// Sizes extracts the sizes of a sequence of constrained frames.
func Sizes(frames []Constrained) []dimen.Size {
	sizes := make([]dimen.Size, len(frames))
	for i, f := range frames {
		sizes[i] = f.Frame.Size
	}
	return sizes
}
