package monospace

import (
	"testing"

	"github.com/npillmayer/boxes/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
)

func TestMeasureLatin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.text")
	defer teardown()
	//
	ms := New(20*dimen.BP, nil)
	w, h := ms.Measure("AB")
	assert.Equal(t, 40*dimen.BP, w)
	assert.Equal(t, 20*dimen.BP, h)
}

func TestMeasureEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.text")
	defer teardown()
	//
	w, h := New(10*dimen.BP, nil).Measure("")
	assert.Equal(t, dimen.Zero, w)
	assert.Equal(t, dimen.Zero, h)
}

func TestMeasureWide(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.text")
	defer teardown()
	//
	ms := New(10*dimen.BP, uax11.LatinContext)
	// CJK ideographs take two cells each
	assert.Equal(t, 4, ms.Cells("世界"))
	w, _ := ms.Measure("a世")
	assert.Equal(t, 30*dimen.BP, w)
}
