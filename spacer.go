package tendril

// styleSnapshot captures the inline style and box state mutated by pinning,
// so teardown can restore the element exactly as it was observed.
type styleSnapshot struct {
	style        Style
	display      Display
	marginTop    float64
	marginRight  float64
	marginBottom float64
	marginLeft   float64
}

func takeSnapshot(el *Element) styleSnapshot {
	return styleSnapshot{
		style:        el.Style,
		display:      el.Display,
		marginTop:    el.MarginTop,
		marginRight:  el.MarginRight,
		marginBottom: el.MarginBottom,
		marginLeft:   el.MarginLeft,
	}
}

func (s styleSnapshot) restore(el *Element) {
	el.Style = s.style
	el.Display = s.display
	el.MarginTop = s.marginTop
	el.MarginRight = s.marginRight
	el.MarginBottom = s.marginBottom
	el.MarginLeft = s.marginLeft
}

// pinSpacer reserves layout space for an element that pinning takes out of
// flow. The spacer replaces the element in the tree and the element becomes
// the spacer's only child, absolutely positioned at its top-left corner, so
// the visual position stays continuous before pinning engages.
type pinSpacer struct {
	el        *Element
	spacer    *Element
	saved     styleSnapshot
	boxW      float64 // natural box measured at creation / last resize
	boxH      float64
	destroyed bool
}

// newPinSpacer inserts a spacer for el. Returns nil (with a warning) when el
// has no parent: pinning is then disabled for the element's lifetime, but the
// trigger otherwise proceeds.
func newPinSpacer(doc *Document, el *Element) *pinSpacer {
	parent := el.Parent
	if parent == nil {
		warnf("pin requested for %q but it is not attached to the document; pinning disabled", el.Name)
		return nil
	}

	rect := doc.BoundingRect(el)
	p := &pinSpacer{
		el:    el,
		saved: takeSnapshot(el),
		boxW:  rect.Width,
		boxH:  rect.Height,
	}

	// The spacer carries the element's box metrics and flow role, so document
	// flow is unchanged by the swap.
	sp := NewBox(el.Name+"-pin-spacer", el.Width, rect.Height)
	sp.Display = el.Display
	sp.Style.Position = PositionRelative
	sp.MarginTop = el.MarginTop
	sp.MarginRight = el.MarginRight
	sp.MarginBottom = el.MarginBottom
	sp.MarginLeft = el.MarginLeft
	p.spacer = sp

	parent.ReplaceChild(el, sp)
	sp.AddChild(el)
	p.applyAbsolute()
	doc.MarkDirty()
	return p
}

// applyAbsolute parks the element at the spacer's top-left with its natural
// width and no margins.
func (p *pinSpacer) applyAbsolute() {
	p.el.Style.Position = PositionAbsolute
	p.el.Style.Top = 0
	p.el.Style.Left = 0
	p.el.Style.Width = p.boxW
	p.el.MarginTop = 0
	p.el.MarginRight = 0
	p.el.MarginBottom = 0
	p.el.MarginLeft = 0
}

// measureNatural restores the element's baseline styles and measures its
// natural bounding rect. Measuring while absolutely positioned reports the
// spacer-derived box, not the element's own, so restoration is a precondition
// here, not an optimization. The element is left in the restored state; call
// apply to re-park it.
func (p *pinSpacer) measureNatural(doc *Document) Rect {
	p.saved.restore(p.el)
	// The spacer already carries the margin copy in flow; the element's own
	// must stay zero during measurement or the margins apply twice.
	p.el.MarginTop = 0
	p.el.MarginRight = 0
	p.el.MarginBottom = 0
	p.el.MarginLeft = 0
	doc.MarkDirty()
	rect := doc.BoundingRect(p.el)
	p.boxW = rect.Width
	p.boxH = rect.Height
	return rect
}

// apply sizes the spacer to span scroll pixels plus the element's natural
// height and re-parks the element absolutely. Pairs with measureNatural.
func (p *pinSpacer) apply(doc *Document, spanPx float64) {
	if p.destroyed {
		return
	}
	p.spacer.Height = spanPx + p.boxH
	p.applyAbsolute()
	doc.MarkDirty()
}

// resize is the measure/apply pair in one call: restore, measure, size the
// spacer to spanPx plus the natural height, re-park the element.
func (p *pinSpacer) resize(doc *Document, spanPx float64) {
	if p.destroyed {
		return
	}
	p.measureNatural(doc)
	p.apply(doc, spanPx)
}

// destroy restores the element's original styles and swaps it back in place
// of the spacer. Idempotent: abnormal teardown paths may call it twice.
func (p *pinSpacer) destroy(doc *Document) {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.saved.restore(p.el)
	if p.spacer.Parent != nil {
		p.spacer.Parent.ReplaceChild(p.spacer, p.el)
	}
	doc.MarkDirty()
}
