package tendril

// scrollBounds holds the resolved pixel bounds for one trigger. start > end
// is tolerated: progress is defined as 1 when start == end, so degenerate
// ranges never divide by zero.
type scrollBounds struct {
	start    float64
	end      float64
	pinStart float64
	pinEnd   float64
	pinTop   float64
	pinLeft  float64
	pinWidth float64
}

// recomputeBounds resolves the trigger's start/end specs against current
// geometry and, when pinning, the pin anchor and spacer span. Called once at
// observe time and again on every refresh/resize. Idempotent for unchanged
// geometry: the pinned element is measured against its restored baseline
// styles each time, so repeated calls converge on the same bounds.
func (t *Trigger) recomputeBounds() {
	doc := t.ctx.doc
	scrollY := doc.ScrollY()
	viewportH := doc.ViewportHeight()

	var rect Rect
	if t.spacer != nil {
		rect = t.spacer.measureNatural(doc)
	} else {
		rect = doc.BoundingRect(t.el)
	}

	start := resolveStart(t.cfg.Trigger.Start, rect, scrollY, viewportH)
	end := resolveEnd(t.cfg.Trigger.End, rect, scrollY, viewportH, start)
	t.bounds.start = start
	t.bounds.end = end

	if t.spacer != nil {
		elemFrac, viewFrac := startFractions(t.cfg.Trigger.Start)
		t.bounds.pinTop = viewFrac*viewportH - elemFrac*rect.Height
		t.bounds.pinLeft = rect.X
		t.bounds.pinWidth = rect.Width
		t.bounds.pinStart = start
		t.bounds.pinEnd = end
		t.spacer.apply(doc, end-start)
	}
}
