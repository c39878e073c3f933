package layout

import (
	"strings"

	"github.com/npillmayer/boxes/core"
	"github.com/npillmayer/boxes/core/dimen"
)

// TrackKind is the sizing policy of a grid track.
type TrackKind uint8

// Sizing policies for grid tracks.
const (
	TrackAuto       TrackKind = iota // fit the track to its content
	TrackLinear                      // absolute and/or relative to the grid's base
	TrackFractional                  // a share of the space left over
)

// TrackSizing defines how to size a grid column or row.
type TrackSizing struct {
	Kind   TrackKind
	Linear dimen.Linear
	Fr     dimen.Fraction
}

// AutoTrack creates a content-sized track.
func AutoTrack() TrackSizing {
	return TrackSizing{Kind: TrackAuto}
}

// Fixed creates a track of linear size.
func Fixed(l dimen.Linear) TrackSizing {
	return TrackSizing{Kind: TrackLinear, Linear: l}
}

// Fr creates a fractional track.
func Fr(f dimen.Fraction) TrackSizing {
	return TrackSizing{Kind: TrackFractional, Fr: f}
}

// IsAuto is true for content-sized tracks.
func (t TrackSizing) IsAuto() bool {
	return t.Kind == TrackAuto
}

func (t TrackSizing) String() string {
	switch t.Kind {
	case TrackLinear:
		return t.Linear.String()
	case TrackFractional:
		return t.Fr.String()
	}
	return "auto"
}

// ParseTrack parses a track definition: "auto", a fraction ("1fr") or
// a linear length ("12pt", "20%", "50%+1cm").
func ParseTrack(s string) (TrackSizing, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "auto":
		return AutoTrack(), nil
	case strings.HasSuffix(s, "fr"):
		f, err := dimen.ParseFraction(s)
		if err != nil {
			return TrackSizing{}, err
		}
		return Fr(f), nil
	}
	l, err := dimen.ParseLinear(s)
	if err != nil {
		return TrackSizing{}, core.WrapError(err, core.EINVALID, "invalid grid track %q", s)
	}
	return Fixed(l), nil
}

// ParseTracks parses a whitespace-separated list of track definitions.
func ParseTracks(s string) ([]TrackSizing, error) {
	var tracks []TrackSizing
	for _, field := range strings.Fields(s) {
		t, err := ParseTrack(field)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// MustParseTracks is like ParseTracks, but panics on error.
func MustParseTracks(s string) []TrackSizing {
	tracks, err := ParseTracks(s)
	if err != nil {
		panic(err)
	}
	return tracks
}
