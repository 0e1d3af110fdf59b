package tendril

import "math"

// Document owns an element tree laid out in vertical block flow behind a
// scrollable viewport. The scroll offset is a plain scalar fed by the host
// (mouse wheel, a test, a replay script); the document itself never listens
// for input.
//
// Layout is lazy: mutations mark the document dirty and the next geometry
// query reflows. Visual channels (opacity, translate, scale) deliberately
// bypass the dirty flag — animating them must not trigger reflow.
type Document struct {
	root      *Element
	viewportW float64
	viewportH float64
	scrollY   float64

	dirty         bool
	contentHeight float64
}

// NewDocument creates a document with an empty root container and the given
// viewport size.
func NewDocument(viewportW, viewportH float64) *Document {
	return &Document{
		root:      NewBox("root", 0, 0),
		viewportW: viewportW,
		viewportH: viewportH,
		dirty:     true,
	}
}

// Root returns the document's root container element.
func (d *Document) Root() *Element {
	return d.root
}

// ViewportWidth returns the viewport width in pixels.
func (d *Document) ViewportWidth() float64 { return d.viewportW }

// ViewportHeight returns the viewport height in pixels.
func (d *Document) ViewportHeight() float64 { return d.viewportH }

// ScrollY returns the current scroll offset.
func (d *Document) ScrollY() float64 { return d.scrollY }

// SetScrollY sets the scroll offset, clamped to the scrollable range.
func (d *Document) SetScrollY(y float64) {
	d.scrollY = clamp(y, 0, d.MaxScroll())
}

// MaxScroll returns the maximum scroll offset (content below the viewport).
func (d *Document) MaxScroll() float64 {
	return math.Max(0, d.ContentHeight()-d.viewportH)
}

// Resize changes the viewport size and schedules a reflow. The scroll offset
// is re-clamped to the new scrollable range.
func (d *Document) Resize(w, h float64) {
	d.viewportW = w
	d.viewportH = h
	d.dirty = true
	d.SetScrollY(d.scrollY)
}

// MarkDirty schedules a reflow before the next geometry query. Call after
// mutating layout inputs (tree shape, box sizes, margins, inline styles).
func (d *Document) MarkDirty() {
	d.dirty = true
}

// ContentHeight returns the total flowed height of the document.
func (d *Document) ContentHeight() float64 {
	d.reflowIfDirty()
	return d.contentHeight
}

// BoundingRect returns the element's viewport-relative rect: the document
// position minus the scroll offset. Fixed elements report their viewport
// anchor directly, independent of scrolling.
func (d *Document) BoundingRect(el *Element) Rect {
	d.reflowIfDirty()
	if el.Style.Position == PositionFixed {
		return Rect{X: el.Style.Left, Y: el.Style.Top, Width: el.layoutW, Height: el.layoutH}
	}
	return Rect{X: el.layoutX, Y: el.layoutY - d.scrollY, Width: el.layoutW, Height: el.layoutH}
}

// DocumentRect returns the element's document-space rect (unaffected by
// scrolling). Fixed elements report their viewport anchor.
func (d *Document) DocumentRect(el *Element) Rect {
	d.reflowIfDirty()
	return Rect{X: el.layoutX, Y: el.layoutY, Width: el.layoutW, Height: el.layoutH}
}

// Find returns the first element with the given name in depth-first order,
// or nil if no element matches.
func (d *Document) Find(name string) *Element {
	return findByName(d.root, name)
}

func findByName(e *Element, name string) *Element {
	if e.Name == name {
		return e
	}
	for _, child := range e.children {
		if found := findByName(child, name); found != nil {
			return found
		}
	}
	return nil
}

// --- Layout ---

func (d *Document) reflowIfDirty() {
	if !d.dirty {
		return
	}
	d.dirty = false
	d.contentHeight = d.layoutElement(d.root, 0, 0, d.viewportW)
}

// layoutElement positions e at (x, y) with availW of horizontal space and
// returns the height of e's box. Flow children stack vertically; inline runs
// advance horizontally and wrap; absolute and fixed children are anchored
// after the flow pass and consume no space.
func (d *Document) layoutElement(e *Element, x, y, availW float64) float64 {
	if e.Style.Position == PositionRelative {
		x += e.Style.Left
		y += e.Style.Top
	}

	w := availW
	switch {
	case e.Style.Width > 0:
		w = e.Style.Width
	case e.Width > 0:
		w = e.Width
	case e.Display == DisplayInline:
		w = e.measuredWidth()
	}

	e.layoutX = x
	e.layoutY = y
	e.layoutW = w

	flowH := d.layoutFlow(e, x, y, w)

	h := e.Height
	if h == 0 {
		if flowH > 0 {
			h = flowH
		} else {
			h = e.measuredHeight()
		}
	}
	e.layoutH = h

	// Out-of-flow children anchor against the finished box.
	for _, child := range e.children {
		if child.Display == DisplayNone {
			continue
		}
		switch child.Style.Position {
		case PositionAbsolute:
			aw := w
			if child.Style.Width > 0 {
				aw = child.Style.Width
			} else if child.Width > 0 {
				aw = child.Width
			}
			d.layoutOutOfFlow(child, x+child.Style.Left, y+child.Style.Top, aw)
		case PositionFixed:
			aw := w
			if child.Style.Width > 0 {
				aw = child.Style.Width
			} else if child.Width > 0 {
				aw = child.Width
			}
			d.layoutOutOfFlow(child, child.Style.Left, child.Style.Top, aw)
		}
	}

	return h
}

// layoutOutOfFlow lays out an absolute or fixed element without the relative
// offset handling (Top/Left already applied by the caller as the anchor).
func (d *Document) layoutOutOfFlow(e *Element, x, y, w float64) {
	e.layoutX = x
	e.layoutY = y
	e.layoutW = w

	flowH := d.layoutFlow(e, x, y, w)
	h := e.Height
	if h == 0 {
		if flowH > 0 {
			h = flowH
		} else {
			h = e.measuredHeight()
		}
	}
	e.layoutH = h
}

// layoutFlow stacks e's in-flow children inside the content box starting at
// (x, y) and returns the consumed height.
func (d *Document) layoutFlow(e *Element, x, y, availW float64) float64 {
	cursorY := y
	rowX := x
	rowH := 0.0
	inRow := false

	flushRow := func() {
		if inRow {
			cursorY += rowH
			rowX = x
			rowH = 0
			inRow = false
		}
	}

	for _, child := range e.children {
		if child.Display == DisplayNone {
			continue
		}
		if child.Style.Position == PositionAbsolute || child.Style.Position == PositionFixed {
			continue
		}

		if child.Display == DisplayInline {
			cw := child.Style.Width
			if cw == 0 {
				cw = child.measuredWidth()
			}
			if inRow && rowX+cw > x+availW {
				cursorY += rowH
				rowX = x
				rowH = 0
			}
			h := d.layoutElement(child, rowX, cursorY, cw)
			rowX += cw
			if h > rowH {
				rowH = h
			}
			inRow = true
			continue
		}

		flushRow()
		cursorY += child.MarginTop
		h := d.layoutElement(child, x+child.MarginLeft, cursorY, availW-child.MarginLeft-child.MarginRight)
		cursorY += h + child.MarginBottom
	}
	flushRow()

	return cursorY - y
}
