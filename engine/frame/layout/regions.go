package layout

import (
	"fmt"

	"github.com/npillmayer/boxes/core/dimen"
)

// Regions is a sequence of areas to lay out content into.
//
// Current is the space still available in the active region. Layouters
// subtract from it as they place content. Base is the size relative lengths
// resolve against. Backlog holds the sizes of regions to come; if it is
// exhausted and Last is set, the sequence continues with Last forever.
//
// Regions is handled as a value: each layouter owns its copy. Methods with
// pointer receivers never modify a backlog shared with another copy.
type Regions struct {
	Current dimen.Size
	Base    dimen.Size
	Backlog []dimen.Size
	Last    *dimen.Size
	Expand  dimen.Axes[bool]
}

// One creates a sequence consisting of a single region.
func One(size, base dimen.Size, expand dimen.Axes[bool]) Regions {
	return Regions{
		Current: size,
		Base:    base,
		Expand:  expand,
	}
}

// Repeat creates an open-ended sequence of regions of the same size.
func Repeat(size dimen.Size, expand dimen.Axes[bool]) Regions {
	last := size
	return Regions{
		Current: size,
		Base:    size,
		Last:    &last,
		Expand:  expand,
	}
}

// Sequence creates a finite sequence of regions.
func Sequence(first dimen.Size, backlog []dimen.Size, expand dimen.Axes[bool]) Regions {
	bl := make([]dimen.Size, len(backlog))
	copy(bl, backlog)
	return Regions{
		Current: first,
		Base:    first,
		Backlog: bl,
		Expand:  expand,
	}
}

// InLast is true if there is no region after the current one.
func (r Regions) InLast() bool {
	return len(r.Backlog) == 0 && (r.Last == nil || r.Current == *r.Last)
}

// IsFull is true if the current region has no vertical space left and
// there are further regions to move to.
func (r Regions) IsFull() bool {
	return r.Current.H <= 0 && !r.InLast()
}

// Next advances to the next region. Current and Base are reset to its size.
// If there is no further region, Next does nothing.
func (r *Regions) Next() {
	var size dimen.Size
	switch {
	case len(r.Backlog) > 0:
		size = r.Backlog[0]
		r.Backlog = r.Backlog[1:]
	case r.Last != nil:
		size = *r.Last
	default:
		return
	}
	r.Current = size
	r.Base = size
}

// Region is one step of a region sequence.
type Region struct {
	Size dimen.Size
	Base dimen.Size
}

// Iter returns the first n regions of the sequence, starting with the current
// one. Finite sequences may return fewer than n regions.
func (r Regions) Iter(n int) []Region {
	if n <= 0 {
		return nil
	}
	list := make([]Region, 0, n)
	list = append(list, Region{Size: r.Current, Base: r.Base})
	for _, size := range r.Backlog {
		if len(list) == n {
			return list
		}
		list = append(list, Region{Size: size, Base: size})
	}
	for r.Last != nil && len(list) < n {
		list = append(list, Region{Size: *r.Last, Base: *r.Last})
	}
	return list
}

// MapWidths returns a copy of r where the width of every region is set to w.
// The base is not changed.
func (r Regions) MapWidths(w dimen.Dimen) Regions {
	c := r
	c.Current.W = w
	if len(r.Backlog) > 0 {
		c.Backlog = make([]dimen.Size, len(r.Backlog))
		for i, size := range r.Backlog {
			c.Backlog[i] = dimen.Size{W: w, H: size.H}
		}
	}
	if r.Last != nil {
		last := dimen.Size{W: w, H: r.Last.H}
		c.Last = &last
	}
	return c
}

func (r Regions) String() string {
	last := "none"
	if r.Last != nil {
		last = r.Last.String() + "…"
	}
	return fmt.Sprintf("regions{current=%v base=%v backlog=%v last=%s expand=%v}",
		r.Current, r.Base, r.Backlog, last, r.Expand)
}
