package dimen

import "fmt"

// Axis selects one of the two layout axes.
type Axis uint8

// Horizontal and vertical axis.
const (
	X Axis = iota
	Y
)

// Axes holds a pair of values, one per axis.
type Axes[T any] struct {
	X, Y T
}

// Splat creates a pair with the same value on both axes.
func Splat[T any](v T) Axes[T] {
	return Axes[T]{X: v, Y: v}
}

// Get returns the value for an axis.
func (a Axes[T]) Get(axis Axis) T {
	if axis == X {
		return a.X
	}
	return a.Y
}

// Set sets the value for an axis.
func (a *Axes[T]) Set(axis Axis, v T) {
	if axis == X {
		a.X = v
	} else {
		a.Y = v
	}
}

// MapAxes applies f to both values of a pair.
func MapAxes[T, U any](a Axes[T], f func(T) U) Axes[U] {
	return Axes[U]{X: f(a.X), Y: f(a.Y)}
}

func (a Axes[T]) String() string {
	return fmt.Sprintf("(%v, %v)", a.X, a.Y)
}

// And combines two flag pairs axis by axis.
func And(a, b Axes[bool]) Axes[bool] {
	return Axes[bool]{X: a.X && b.X, Y: a.Y && b.Y}
}

// Or combines two flag pairs axis by axis.
func Or(a, b Axes[bool]) Axes[bool] {
	return Axes[bool]{X: a.X || b.X, Y: a.Y || b.Y}
}

// Point is a point on a page.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Add returns p shifted by vector, leaving p untouched.
func (p Point) Add(vector Point) Point {
	return Point{p.X + vector.X, p.Y + vector.Y}
}

// Size is the extent of a rectangular area.
type Size struct {
	W, H Dimen
}

func (s Size) String() string {
	return fmt.Sprintf("%v×%v", s.W, s.H)
}

// Get returns the extent along an axis.
func (s Size) Get(axis Axis) Dimen {
	if axis == X {
		return s.W
	}
	return s.H
}

// IsFinite reports per axis whether s is bounded.
func (s Size) IsFinite() Axes[bool] {
	return Axes[bool]{X: s.W.IsFinite(), Y: s.H.IsFinite()}
}

// Fits is true if other fits into s on both axes.
func (s Size) Fits(other Size) bool {
	return s.W.Fits(other.W) && s.H.Fits(other.H)
}

// Select returns, per axis, the extent of s where flags are set and the
// extent of other where they are not.
func (s Size) Select(flags Axes[bool], other Size) Size {
	r := other
	if flags.X {
		r.W = s.W
	}
	if flags.Y {
		r.H = s.H
	}
	return r
}

// Rect is a rectangle (on a page).
type Rect struct {
	TopL, BotR Point
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// --- Optional dimensions ---------------------------------------------------

// Opt is an optional dimension. The zero value is unset.
type Opt struct {
	d   Dimen
	set bool
}

// Some creates a set optional dimension.
func Some(d Dimen) Opt {
	return Opt{d: d, set: true}
}

// None creates an unset optional dimension.
func None() Opt {
	return Opt{}
}

// IsNone is true for unset dimensions.
func (o Opt) IsNone() bool {
	return !o.set
}

// Unwrap returns the dimension value. Unset dimensions unwrap to Zero.
func (o Opt) Unwrap() Dimen {
	return o.d
}

// Get returns the dimension and whether it is set.
func (o Opt) Get() (Dimen, bool) {
	return o.d, o.set
}

func (o Opt) String() string {
	if !o.set {
		return "none"
	}
	return o.d.String()
}

// SomeSize turns a size into a pair of set optional dimensions.
func SomeSize(s Size) Axes[Opt] {
	return Axes[Opt]{X: Some(s.W), Y: Some(s.H)}
}

// Filter turns s into optional dimensions, set only on axes where flags are set.
func (s Size) Filter(flags Axes[bool]) Axes[Opt] {
	var r Axes[Opt]
	if flags.X {
		r.X = Some(s.W)
	}
	if flags.Y {
		r.Y = Some(s.H)
	}
	return r
}

// IsSome reports per axis whether an optional dimension is set.
func IsSome(a Axes[Opt]) Axes[bool] {
	return Axes[bool]{X: !a.X.IsNone(), Y: !a.Y.IsNone()}
}
