package page

import "github.com/SnowyRenard/manga-koukan/internal/imaging"

// Split turns a spread into its two halves when enabled is true and the
// page is wider than it is tall. Both halves keep the original Index,
// Source and Position and are tagged Left and Right. Otherwise the page is
// returned on its own, unchanged.
//
// The returned slice lists the left half first; final order is decided by
// Sort.
func Split(p *Page, enabled bool) []*Page {
	if !enabled {
		return []*Page{p}
	}
	left, right, ok := imaging.SplitSpread(p.Image)
	if !ok {
		return []*Page{p}
	}

	l, r := *p, *p
	l.Image, l.Half, l.Modified = left, Left, true
	r.Image, r.Half, r.Modified = right, Right, true
	return []*Page{&l, &r}
}
