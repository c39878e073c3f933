package frame

import (
	"testing"

	"github.com/npillmayer/boxes/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestConstraintsCheck(t *testing.T) {
	noExpand := dimen.Splat(false)
	size := dimen.Size{W: 100 * dimen.BP, H: 200 * dimen.BP}
	//
	cts := NewConstraints(noExpand)
	assert.True(t, cts.Check(size, size, noExpand), "empty constraints accept everything")
	assert.False(t, cts.Check(size, size, dimen.Splat(true)), "expansion must match")
	//
	cts.Min.X = dimen.Some(80 * dimen.BP)
	assert.True(t, cts.Check(size, size, noExpand))
	assert.False(t, cts.Check(dimen.Size{W: 79 * dimen.BP, H: 200 * dimen.BP}, size, noExpand))
	//
	cts = NewConstraints(noExpand)
	cts.Max.Y = dimen.Some(150 * dimen.BP)
	assert.False(t, cts.Check(size, size, noExpand))
	assert.True(t, cts.Check(dimen.Size{W: 100 * dimen.BP, H: 150 * dimen.BP}, size, noExpand))
	//
	cts = NewConstraints(noExpand)
	cts.Exact = dimen.SomeSize(size)
	cts.Base.X = dimen.Some(size.W)
	assert.True(t, cts.Check(size, size, noExpand))
	assert.False(t, cts.Check(size, dimen.Size{W: 90 * dimen.BP, H: 200 * dimen.BP}, noExpand))
	assert.False(t, cts.Check(dimen.Size{W: 100 * dimen.BP, H: 201 * dimen.BP}, size, noExpand))
}

func TestSetBaseIfRelative(t *testing.T) {
	cts := NewConstraints(dimen.Splat(false))
	base := dimen.Size{W: 100 * dimen.BP, H: 200 * dimen.BP}
	cts.SetBaseIfRelative(base, dimen.Axes[dimen.Linear]{X: dimen.Relative(0.5), Y: dimen.Abs(dimen.BP)})
	assert.Equal(t, dimen.Some(100*dimen.BP), cts.Base.X)
	assert.True(t, cts.Base.Y.IsNone())
}
