package imaging

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// backgroundMatcher decides whether a pixel belongs to the scan background.
//
// With a zero tolerance a pixel matches only when its RGBA value equals the
// reference exactly. A positive tolerance compares colours by CIE76 distance
// in Lab space, where lightness runs 0-1: 0.02 absorbs typical JPEG noise in
// a white border, 0.1 already merges light greys into the background.
type backgroundMatcher struct {
	ref       color.RGBA
	refLab    colorful.Color
	tolerance float64
	seen      map[color.RGBA]bool
}

func newBackgroundMatcher(ref color.RGBA, tolerance float64) *backgroundMatcher {
	m := &backgroundMatcher{ref: ref, tolerance: tolerance}
	if tolerance > 0 {
		if c, ok := colorful.MakeColor(ref); ok {
			m.refLab = c
			m.seen = make(map[color.RGBA]bool)
		} else {
			// Fully transparent reference: fall back to exact matching.
			m.tolerance = 0
		}
	}
	return m
}

// matches reports whether c is background. Distances are memoized per
// distinct colour since scans rarely hold more than a few thousand.
func (m *backgroundMatcher) matches(c color.RGBA) bool {
	if c == m.ref {
		return true
	}
	if m.tolerance <= 0 {
		return false
	}
	if hit, ok := m.seen[c]; ok {
		return hit
	}
	hit := false
	if cc, ok := colorful.MakeColor(c); ok {
		hit = m.refLab.DistanceCIE76(cc) <= m.tolerance
	}
	m.seen[c] = hit
	return hit
}
