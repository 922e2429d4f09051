package page

import (
	"cmp"
	"image"
	"slices"
	"strconv"
)

// Half tags a page produced by splitting a spread. The numeric values encode
// the sort precedence.
type Half uint8

const (
	None  Half = iota // Not split.
	Right             // Right-hand half of a spread.
	Left              // Left-hand half of a spread.
)

func (h Half) String() string {
	switch h {
	case None:
		return "none"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "half(" + strconv.Itoa(int(h)) + ")"
	}
}

// Page is one image unit on its way into the archive. The Image buffer is
// owned by the Page; nothing else holds a reference to it.
type Page struct {
	Image image.Image

	// Index is the sequence number parsed from Source. Set once by New.
	Index uint64
	Half  Half

	// Source is the path the page was decoded from and SourceFormat the
	// codec name it was decoded with ("png", "jpeg", ...).
	Source       string
	SourceFormat string

	// Position is the source file's place in discovery order.
	Position int

	// Modified is set once any transform replaces Image, which rules out
	// copying the source file verbatim.
	Modified bool
}

// New creates a Page for an image decoded from path.
func New(path string, img image.Image, sourceFormat string, position int) *Page {
	return &Page{
		Image:        img,
		Index:        SequenceIndex(path),
		Source:       path,
		SourceFormat: sourceFormat,
		Position:     position,
	}
}

// SequenceIndex concatenates every ASCII digit in path, left to right, and
// parses the result as a base-10 number. Paths without digits, or whose
// digits overflow a uint64, yield 0.
//
// The whole path is considered, not only the base name, so digits in
// directory names take part too.
func SequenceIndex(path string) uint64 {
	digits := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		if c := path[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	n, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Compare orders a and b by Index, then Half, then Position. It returns a
// negative number when a sorts first, positive when b does, and 0 when the
// two are order-equivalent.
func Compare(a, b *Page) int {
	if c := cmp.Compare(a.Index, b.Index); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Half, b.Half); c != 0 {
		return c
	}
	return cmp.Compare(a.Position, b.Position)
}

// Sort orders pages in place. The sort is stable, so order-equivalent pages
// keep their relative order.
func Sort(pages []*Page) {
	slices.SortStableFunc(pages, Compare)
}
