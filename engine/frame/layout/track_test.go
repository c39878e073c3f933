package layout

import (
	"testing"

	"github.com/npillmayer/boxes/core"
	"github.com/npillmayer/boxes/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTracks(t *testing.T) {
	tracks, err := ParseTracks("auto 2fr 20% 12pt 50%+1bp")
	require.NoError(t, err)
	require.Len(t, tracks, 5)
	assert.True(t, tracks[0].IsAuto())
	assert.Equal(t, Fr(2), tracks[1])
	assert.Equal(t, Fixed(dimen.Relative(0.2)), tracks[2])
	assert.Equal(t, Fixed(dimen.Abs(12*dimen.PT)), tracks[3])
	assert.Equal(t, Fixed(dimen.Linear{Abs: dimen.BP, Rel: 0.5}), tracks[4])
	//
	_, err = ParseTracks("auto 1furlong")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Panics(t, func() { MustParseTracks("x") })
}

func TestGridCellLookup(t *testing.T) {
	grid := &GridNode{
		Columns:  MustParseTracks("auto auto"),
		Children: []Node{Box(1, 1), Box(2, 2), Box(3, 3)},
	}
	l := newGridLayouter(NewContext(nil), grid, One(sz(10, 10), sz(10, 10), dimen.Splat(false)))
	// 3 columns and 3 rows including gutters
	assert.Len(t, l.cols, 3)
	assert.Len(t, l.rows, 3)
	assert.Same(t, grid.Children[0], l.cell(0, 0))
	assert.Same(t, grid.Children[1], l.cell(2, 0))
	assert.Same(t, grid.Children[2], l.cell(0, 2))
	assert.Nil(t, l.cell(1, 0), "gutter")
	assert.Nil(t, l.cell(2, 2), "no child left")
	assert.Panics(t, func() { l.cell(3, 0) })
}

func TestParseTrackOutOfRange(t *testing.T) {
	_, err := ParseTrack("2000cm")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ParseTrack("NaNfr")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
