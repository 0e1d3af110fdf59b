package tendril

import "testing"

func TestBlockFlowStacksWithMargins(t *testing.T) {
	doc := NewDocument(800, 600)
	a := NewBox("a", 0, 100)
	b := NewBox("b", 0, 200)
	b.MarginTop = 20
	b.MarginBottom = 30
	doc.Root().AddChild(a)
	doc.Root().AddChild(b)

	ra := doc.DocumentRect(a)
	rb := doc.DocumentRect(b)
	if !approxEqual(ra.Y, 0, epsilon) || !approxEqual(ra.Height, 100, epsilon) {
		t.Errorf("a rect = %+v", ra)
	}
	if !approxEqual(rb.Y, 120, epsilon) {
		t.Errorf("b.Y = %f, want 120", rb.Y)
	}
	if !approxEqual(doc.ContentHeight(), 350, epsilon) {
		t.Errorf("content height = %f, want 350", doc.ContentHeight())
	}
}

func TestBlockFillsAvailableWidth(t *testing.T) {
	doc := NewDocument(800, 600)
	full := NewBox("full", 0, 100)
	fixed := NewBox("fixed", 300, 100)
	doc.Root().AddChild(full)
	doc.Root().AddChild(fixed)

	if w := doc.DocumentRect(full).Width; !approxEqual(w, 800, epsilon) {
		t.Errorf("auto width = %f, want 800", w)
	}
	if w := doc.DocumentRect(fixed).Width; !approxEqual(w, 300, epsilon) {
		t.Errorf("explicit width = %f, want 300", w)
	}
}

func TestBoundingRectFollowsScroll(t *testing.T) {
	doc := NewDocument(800, 600)
	filler := NewBox("filler", 0, 1000)
	box := NewBox("box", 0, 200)
	doc.Root().AddChild(filler)
	doc.Root().AddChild(box)
	doc.Root().AddChild(NewBox("tail", 0, 2000))

	if y := doc.BoundingRect(box).Y; !approxEqual(y, 1000, epsilon) {
		t.Errorf("unscrolled top = %f, want 1000", y)
	}
	doc.SetScrollY(400)
	if y := doc.BoundingRect(box).Y; !approxEqual(y, 600, epsilon) {
		t.Errorf("scrolled top = %f, want 600", y)
	}
}

func TestFixedElementIgnoresScroll(t *testing.T) {
	doc := NewDocument(800, 600)
	doc.Root().AddChild(NewBox("filler", 0, 3000))
	pinned := NewBox("pinned", 200, 50)
	pinned.Style.Position = PositionFixed
	pinned.Style.Top = 80
	pinned.Style.Left = 40
	doc.Root().AddChild(pinned)

	doc.SetScrollY(500)
	r := doc.BoundingRect(pinned)
	if !approxEqual(r.Y, 80, epsilon) || !approxEqual(r.X, 40, epsilon) {
		t.Errorf("fixed rect = %+v, want anchored at (40,80)", r)
	}
}

func TestAbsoluteAnchorsToParentAndSkipsFlow(t *testing.T) {
	doc := NewDocument(800, 600)
	section := NewBox("section", 0, 400)
	doc.Root().AddChild(NewBox("filler", 0, 100))
	doc.Root().AddChild(section)

	abs := NewBox("abs", 120, 30)
	abs.Style.Position = PositionAbsolute
	abs.Style.Top = 50
	abs.Style.Left = 10
	section.AddChild(abs)
	flow := NewBox("flow", 0, 60)
	section.AddChild(flow)

	ra := doc.DocumentRect(abs)
	if !approxEqual(ra.Y, 150, epsilon) || !approxEqual(ra.X, 10, epsilon) {
		t.Errorf("abs rect = %+v, want (10,150)", ra)
	}
	// The in-flow sibling starts at the section top: abs consumed no space.
	if y := doc.DocumentRect(flow).Y; !approxEqual(y, 100, epsilon) {
		t.Errorf("flow sibling Y = %f, want 100", y)
	}
}

func TestRelativeOffsetsWithoutAffectingFlow(t *testing.T) {
	doc := NewDocument(800, 600)
	a := NewBox("a", 0, 100)
	a.Style.Position = PositionRelative
	a.Style.Top = 25
	b := NewBox("b", 0, 100)
	doc.Root().AddChild(a)
	doc.Root().AddChild(b)

	if y := doc.DocumentRect(a).Y; !approxEqual(y, 25, epsilon) {
		t.Errorf("relative a.Y = %f, want 25", y)
	}
	if y := doc.DocumentRect(b).Y; !approxEqual(y, 100, epsilon) {
		t.Errorf("b.Y = %f, want flow position 100", y)
	}
}

func TestInlineRunWrapsAtAvailableWidth(t *testing.T) {
	doc := NewDocument(100, 600)
	para := NewBox("para", 0, 0)
	doc.Root().AddChild(para)
	for i := 0; i < 3; i++ {
		w := NewBox("w", 40, 10)
		w.Display = DisplayInline
		para.AddChild(w)
	}

	first := doc.DocumentRect(para.ChildAt(0))
	second := doc.DocumentRect(para.ChildAt(1))
	third := doc.DocumentRect(para.ChildAt(2))
	if !approxEqual(first.X, 0, epsilon) || !approxEqual(first.Y, 0, epsilon) {
		t.Errorf("first inline rect = %+v, want (0,0)", first)
	}
	if !approxEqual(second.X, 40, epsilon) || !approxEqual(second.Y, 0, epsilon) {
		t.Errorf("second inline rect = %+v, want (40,0)", second)
	}
	if !approxEqual(third.X, 0, epsilon) || !approxEqual(third.Y, 10, epsilon) {
		t.Errorf("third inline rect = %+v, want wrapped to (0,10)", third)
	}
	if !approxEqual(doc.DocumentRect(para).Height, 20, epsilon) {
		t.Errorf("para height = %f, want 20", doc.DocumentRect(para).Height)
	}
}

func TestDisplayNoneRemovedFromLayout(t *testing.T) {
	doc := NewDocument(800, 600)
	hidden := NewBox("hidden", 0, 500)
	hidden.Display = DisplayNone
	after := NewBox("after", 0, 100)
	doc.Root().AddChild(hidden)
	doc.Root().AddChild(after)

	if y := doc.DocumentRect(after).Y; !approxEqual(y, 0, epsilon) {
		t.Errorf("after.Y = %f, want 0", y)
	}
}

func TestScrollClampsToContentRange(t *testing.T) {
	doc := NewDocument(800, 600)
	doc.Root().AddChild(NewBox("content", 0, 1000))

	doc.SetScrollY(-50)
	if doc.ScrollY() != 0 {
		t.Errorf("scroll below zero = %f", doc.ScrollY())
	}
	doc.SetScrollY(99999)
	if !approxEqual(doc.ScrollY(), 400, epsilon) {
		t.Errorf("scroll = %f, want clamped to 400", doc.ScrollY())
	}
}

func TestResizeReclampsScroll(t *testing.T) {
	doc := NewDocument(800, 600)
	doc.Root().AddChild(NewBox("content", 0, 1000))
	doc.SetScrollY(400)

	doc.Resize(800, 900)
	if !approxEqual(doc.ScrollY(), 100, epsilon) {
		t.Errorf("scroll after resize = %f, want 100", doc.ScrollY())
	}
}

func TestFindDepthFirst(t *testing.T) {
	doc := NewDocument(800, 600)
	section := NewBox("section", 0, 100)
	inner := NewBox("needle", 0, 10)
	section.AddChild(inner)
	doc.Root().AddChild(section)

	if doc.Find("needle") != inner {
		t.Error("Find did not locate nested element")
	}
	if doc.Find("absent") != nil {
		t.Error("Find invented an element")
	}
}
