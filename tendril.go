package tendril

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default element color.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Direction is the scroll travel direction between two evaluations.
type Direction int

const (
	// DirectionForward is downward scroll (scroll offset increasing).
	DirectionForward Direction = 1
	// DirectionBackward is upward scroll (scroll offset decreasing).
	DirectionBackward Direction = -1
)

// Position selects how an element participates in document layout.
type Position uint8

const (
	PositionStatic   Position = iota // normal vertical flow (default)
	PositionRelative                 // flow position, offset by Top/Left
	PositionAbsolute                 // anchored at Top/Left within the parent, out of flow
	PositionFixed                    // anchored at Top/Left within the viewport, out of flow
)

// Display selects the flow behavior of an element among its siblings.
type Display uint8

const (
	DisplayBlock  Display = iota // occupies its own row (default)
	DisplayInline                // flows horizontally next to inline siblings
	DisplayNone                  // removed from layout and rendering
)

// Style is an element's inline style record: the mutable positioning state
// that pinning writes and teardown restores. Width 0 means auto.
type Style struct {
	Position Position
	Top      float64
	Left     float64
	Width    float64
}

// clamp limits v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
