package tendril

import "testing"

func TestRecomputeBoundsIsIdempotent(t *testing.T) {
	doc, target := newScrollFixture()
	ctx := NewContext(doc)
	tr := ctx.Observe(target, Config{
		Trigger: TriggerConfig{Start: "top top", End: "+=200", Pin: true},
	})

	first := tr.bounds
	tr.recomputeBounds()
	tr.recomputeBounds()
	if tr.bounds != first {
		t.Errorf("bounds drifted: %+v vs %+v", tr.bounds, first)
	}
}

func TestRecomputeBoundsIgnoresScrollOffset(t *testing.T) {
	doc, target := newScrollFixture()
	ctx := NewContext(doc)
	tr := ctx.Observe(target, Config{
		Trigger: TriggerConfig{Start: "top top", End: "+=200"},
	})

	first := tr.bounds
	doc.SetScrollY(250)
	tr.recomputeBounds()
	if tr.bounds != first {
		t.Errorf("bounds depend on scroll offset: %+v vs %+v", tr.bounds, first)
	}
}

func TestRecomputeBoundsPinFields(t *testing.T) {
	doc, target := newScrollFixture()
	ctx := NewContext(doc)
	tr := ctx.Observe(target, Config{
		Trigger: TriggerConfig{Start: "top 25%", End: "+=200", Pin: true},
	})

	// "top 25%": start = 100 - 0.25*600 = -50, anchor at 25% of the viewport.
	b := tr.bounds
	if !approxEqual(b.start, -50, epsilon) || !approxEqual(b.end, 150, epsilon) {
		t.Errorf("start/end = %f/%f, want -50/150", b.start, b.end)
	}
	if b.pinStart != b.start || b.pinEnd != b.end {
		t.Errorf("pin range %f..%f != trigger range", b.pinStart, b.pinEnd)
	}
	if !approxEqual(b.pinTop, 150, epsilon) {
		t.Errorf("pinTop = %f, want 150", b.pinTop)
	}
	if !approxEqual(b.pinWidth, 400, epsilon) {
		t.Errorf("pinWidth = %f, want 400", b.pinWidth)
	}
	if !approxEqual(b.pinLeft, 0, epsilon) {
		t.Errorf("pinLeft = %f, want 0", b.pinLeft)
	}
}

func TestRecomputeBoundsDefaultSpecs(t *testing.T) {
	doc, target := newScrollFixture()
	ctx := NewContext(doc)
	tr := ctx.Observe(target, Config{})

	// Defaults "top bottom" / "bottom top": enters when the element top meets
	// the viewport bottom, leaves when its bottom meets the viewport top.
	if !approxEqual(tr.Start(), -500, epsilon) {
		t.Errorf("default start = %f, want -500", tr.Start())
	}
	if !approxEqual(tr.End(), 300, epsilon) {
		t.Errorf("default end = %f, want 300", tr.End())
	}
}

func TestPinnedBoundsMatchUnpinnedForMarginedElement(t *testing.T) {
	build := func(pin bool) *Trigger {
		doc := NewDocument(800, 600)
		doc.Root().AddChild(NewBox("filler", 0, 100))
		target := NewBox("target", 400, 200)
		target.MarginTop = 50
		doc.Root().AddChild(target)
		doc.Root().AddChild(NewBox("tail", 0, 3000))
		ctx := NewContext(doc)
		return ctx.Observe(target, Config{
			Trigger: TriggerConfig{Start: "top top", End: "+=200", Pin: pin},
		})
	}

	pinned := build(true)
	plain := build(false)
	if !approxEqual(pinned.Start(), plain.Start(), epsilon) {
		t.Errorf("pinned start = %f, unpinned start = %f (margin double-counted)",
			pinned.Start(), plain.Start())
	}
	if !approxEqual(pinned.Start(), 150, epsilon) {
		t.Errorf("start = %f, want 150 (100 flow + 50 margin)", pinned.Start())
	}
	if !approxEqual(pinned.End(), plain.End(), epsilon) {
		t.Errorf("pinned end = %f, unpinned end = %f", pinned.End(), plain.End())
	}

	// Recompute goes through measureNatural again; the bounds must hold.
	pinned.recomputeBounds()
	if !approxEqual(pinned.Start(), 150, epsilon) {
		t.Errorf("start after recompute = %f, want 150", pinned.Start())
	}
}

func TestRecomputeBoundsPercentRelativeEnd(t *testing.T) {
	doc, target := newScrollFixture()
	ctx := NewContext(doc)
	tr := ctx.Observe(target, Config{
		Trigger: TriggerConfig{Start: "top top", End: "+=150%"},
	})

	// 150% of the 600px viewport past the 100px start.
	if !approxEqual(tr.End(), 1000, epsilon) {
		t.Errorf("end = %f, want 1000", tr.End())
	}
}
