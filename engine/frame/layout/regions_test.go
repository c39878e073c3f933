package layout

import (
	"testing"

	"github.com/npillmayer/boxes/core/dimen"
	"github.com/stretchr/testify/assert"
)

func sz(w, h dimen.Dimen) dimen.Size {
	return dimen.Size{W: w * dimen.BP, H: h * dimen.BP}
}

func TestRegionsOne(t *testing.T) {
	r := One(sz(100, 100), sz(100, 200), dimen.Splat(false))
	assert.True(t, r.InLast())
	assert.False(t, r.IsFull())
	r.Current.H = 0
	assert.False(t, r.IsFull(), "last region must never be full")
	r.Next()
	assert.Equal(t, dimen.Zero, r.Current.H, "Next without further regions is a no-op")
	assert.Equal(t, sz(100, 200), r.Base)
}

func TestRegionsSequence(t *testing.T) {
	backlog := []dimen.Size{sz(100, 50), sz(100, 30)}
	r := Sequence(sz(100, 100), backlog, dimen.Splat(false))
	backlog[0] = sz(1, 1)
	assert.False(t, r.InLast())
	r.Current.H = 0
	assert.True(t, r.IsFull())
	r.Next()
	assert.Equal(t, sz(100, 50), r.Current, "backlog must not be aliased")
	assert.Equal(t, sz(100, 50), r.Base)
	r.Next()
	assert.Equal(t, sz(100, 30), r.Current)
	assert.True(t, r.InLast())
	assert.Len(t, r.Iter(5), 1)
}

func TestRegionsRepeat(t *testing.T) {
	r := Repeat(sz(100, 100), dimen.Splat(true))
	assert.True(t, r.InLast(), "untouched repeating region equals last")
	r.Current.H -= 10 * dimen.BP
	assert.False(t, r.InLast())
	r.Current.H = -5
	assert.True(t, r.IsFull())
	r.Next()
	assert.Equal(t, sz(100, 100), r.Current)
	regions := r.Iter(3)
	assert.Len(t, regions, 3)
	for _, reg := range regions {
		assert.Equal(t, sz(100, 100), reg.Size)
	}
}

func TestRegionsMapWidths(t *testing.T) {
	r := Sequence(sz(100, 100), []dimen.Size{sz(100, 50)}, dimen.Splat(false))
	last := sz(100, 70)
	r.Last = &last
	m := r.MapWidths(30 * dimen.BP)
	assert.Equal(t, sz(30, 100), m.Current)
	assert.Equal(t, sz(100, 100), m.Base)
	assert.Equal(t, sz(30, 50), m.Backlog[0])
	assert.Equal(t, sz(30, 70), *m.Last)
	// receiver untouched
	assert.Equal(t, sz(100, 50), r.Backlog[0])
	assert.Equal(t, sz(100, 70), *r.Last)
}
