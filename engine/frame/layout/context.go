package layout

import (
	"strconv"
	"strings"

	"github.com/npillmayer/boxes/core"
	"github.com/npillmayer/boxes/engine/frame"
	"github.com/npillmayer/schuko"
	"golang.org/x/text/unicode/bidi"
)

// DefaultMaxDepth is the nesting limit for layout if none is configured.
const DefaultMaxDepth = 256

// Configuration keys.
const (
	ConfMaxDepth  = "layout.max-depth" // nesting limit, integer > 0
	ConfDirection = "layout.direction" // "ltr" or "rtl"
	ConfParallel  = "layout.parallel"  // "true" to measure grid cells concurrently
)

// Context carries settings and bookkeeping for a single layout run.
//
// Contexts are handed down the node tree by value-copy: every nesting level
// works on its own copy, so sibling layout calls never share mutable state.
type Context struct {
	Dir      bidi.Direction // text direction, used to resolve start/end alignment
	MaxDepth int            // maximum nesting depth of nodes
	Parallel bool           // measure auto grid columns concurrently
	depth    int
}

// NewContext creates a layout context from a configuration. conf may be nil,
// in which case defaults apply.
func NewContext(conf schuko.Configuration) *Context {
	ctx := &Context{
		Dir:      bidi.LeftToRight,
		MaxDepth: DefaultMaxDepth,
	}
	if conf == nil {
		return ctx
	}
	if v := conf.GetString(ConfMaxDepth); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ctx.MaxDepth = n
		} else {
			tracer().Errorf("ignoring invalid configuration %s = %q", ConfMaxDepth, v)
		}
	}
	switch strings.ToLower(conf.GetString(ConfDirection)) {
	case "rtl":
		ctx.Dir = bidi.RightToLeft
	case "", "ltr":
	default:
		tracer().Errorf("ignoring invalid configuration %s = %q", ConfDirection, conf.GetString(ConfDirection))
	}
	if v, err := strconv.ParseBool(conf.GetString(ConfParallel)); err == nil {
		ctx.Parallel = v
	}
	tracer().Debugf("layout context: dir=%v, max-depth=%d, parallel=%v", ctx.Dir, ctx.MaxDepth, ctx.Parallel)
	return ctx
}

// Depth returns the current nesting depth.
func (ctx *Context) Depth() int {
	return ctx.depth
}

// Layout lays out a node into a sequence of regions. It is the entry point
// for clients as well as for layouters laying out their children.
//
// Layout returns one constrained frame per region the node needed. An error
// is returned if the nesting of nodes exceeds the configured limit.
func Layout(ctx *Context, node Node, regions Regions) ([]frame.Constrained, error) {
	if ctx == nil {
		ctx = NewContext(nil)
	}
	if node == nil {
		return nil, nil
	}
	if ctx.depth >= ctx.MaxDepth {
		return nil, core.Error(core.ELIMIT, "layout nesting exceeds maximum depth of %d", ctx.MaxDepth)
	}
	nested := *ctx
	nested.depth++
	return node.Layout(&nested, regions)
}

// first lays out a node and returns only the first resulting frame.
// Nodes returning no frames at all yield an empty frame.
func first(ctx *Context, node Node, regions Regions) (frame.Constrained, error) {
	frames, err := Layout(ctx, node, regions)
	if err != nil || len(frames) == 0 {
		return frame.Constrained{}, err
	}
	return frames[0], nil
}
