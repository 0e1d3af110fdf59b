package tendril

// Debug markers: thin bars inserted at a trigger's resolved start and end
// scroll offsets. They live in document space at the right edge of the
// viewport, so scrolling past a marker is exactly crossing that bound.

var (
	markerStartColor = Color{R: 0.1, G: 0.8, B: 0.3, A: 1}
	markerEndColor   = Color{R: 0.9, G: 0.2, B: 0.2, A: 1}
)

const (
	markerWidth  = 48.0
	markerHeight = 2.0
)

// markerPair is the optional pair of debug elements for one trigger.
type markerPair struct {
	start *Element
	end   *Element
}

func newMarkerPair(doc *Document, name string) *markerPair {
	mk := func(suffix string, col Color) *Element {
		m := NewBox(name+"-marker-"+suffix, markerWidth, markerHeight)
		m.Style.Position = PositionAbsolute
		m.Color = col
		doc.Root().AddChild(m)
		return m
	}
	doc.MarkDirty()
	return &markerPair{
		start: mk("start", markerStartColor),
		end:   mk("end", markerEndColor),
	}
}

// reposition pins the markers at the resolved scroll offsets. Safe on a nil
// receiver so triggers without markers call it unconditionally.
func (m *markerPair) reposition(doc *Document, b *scrollBounds) {
	if m == nil {
		return
	}
	left := doc.ViewportWidth() - markerWidth
	m.start.Style.Top = b.start
	m.start.Style.Left = left
	m.end.Style.Top = b.end
	m.end.Style.Left = left
	doc.MarkDirty()
}

// remove disposes both markers. Safe on a nil receiver.
func (m *markerPair) remove(doc *Document) {
	if m == nil {
		return
	}
	m.start.Dispose()
	m.end.Dispose()
	doc.MarkDirty()
}
