package tendril

// elementIDCounter is a plain counter (no atomic — tendril is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the fundamental document node. A single flat struct is used for
// all elements to avoid interface dispatch on the hot path.
//
// Layout inputs (Width, Height, margins, Display, Style) feed the document's
// flow pass. Visual channels (Opacity, TranslateX/Y, Scale, Rotation, Color)
// are animation targets: they affect rendering only, never layout, so tweens
// run without triggering reflow.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout inputs. Width 0 means "fill the parent" for block elements and
	// "measured from Text" for inline ones. Height 0 means "sum of children".
	Width, Height float64
	MarginTop     float64
	MarginRight   float64
	MarginBottom  float64
	MarginLeft    float64
	Display       Display

	// Style is the inline positioning record. Pinning mutates it; spacer
	// teardown restores the snapshot taken at creation.
	Style Style

	// Visual channels driven by animations.
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64
	Rotation   float64
	Color      Color

	// Text content, if any. Split into child spans by SplitText.
	Text string

	// Computed document-space rect, updated during reflow.
	layoutX, layoutY float64
	layoutW, layoutH float64

	// Internal
	disposed bool
}

// elementDefaults sets the common default field values shared by all constructors.
func elementDefaults(e *Element) {
	e.ID = nextElementID()
	e.Opacity = 1
	e.Scale = 1
	e.Color = ColorWhite
}

// NewBox creates a block element with the given name and box size.
// Width 0 fills the parent; Height 0 wraps the children.
func NewBox(name string, width, height float64) *Element {
	e := &Element{Name: name, Width: width, Height: height}
	elementDefaults(e)
	return e
}

// NewText creates an element carrying text content. Text elements measure
// themselves with a fixed-advance metric when no explicit Width is set.
func NewText(name, text string) *Element {
	e := &Element{Name: name, Text: text}
	elementDefaults(e)
	return e
}

// Fixed-advance text metrics. Rendering is host-defined; layout only needs a
// stable box so trigger geometry is deterministic.
const (
	glyphAdvance = 8
	lineHeight   = 16
)

// measuredWidth returns the element's natural width when Width is 0.
func (e *Element) measuredWidth() float64 {
	if e.Width > 0 {
		return e.Width
	}
	if e.Text != "" {
		return float64(len(e.Text)) * glyphAdvance
	}
	return 0
}

// measuredHeight returns the element's natural height when Height is 0.
// Children are accounted for separately during reflow.
func (e *Element) measuredHeight() float64 {
	if e.Height > 0 {
		return e.Height
	}
	if e.Text != "" {
		return lineHeight
	}
	return 0
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("tendril: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("tendril: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (e *Element) AddChildAt(child *Element, index int) {
	if child == nil {
		panic("tendril: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("tendril: adding child would create a cycle")
	}
	if index < 0 || index > len(e.children) {
		panic("tendril: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("tendril: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// ReplaceChild swaps newChild into oldChild's position among the children.
// oldChild is detached; newChild is reparented. Panics if oldChild.Parent != e.
func (e *Element) ReplaceChild(oldChild, newChild *Element) {
	if newChild == nil {
		panic("tendril: cannot add nil child")
	}
	if oldChild.Parent != e {
		panic("tendril: child's parent is not this element")
	}
	if newChild.Parent != nil {
		newChild.Parent.removeChildByPtr(newChild)
	}
	for i, c := range e.children {
		if c == oldChild {
			e.children[i] = newChild
			break
		}
	}
	oldChild.Parent = nil
	newChild.Parent = e
}

// ChildIndex returns the index of child among e's children, or -1.
func (e *Element) ChildIndex(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// RemoveChildren detaches all children from this element.
// Children are NOT disposed.
func (e *Element) RemoveChildren() {
	for _, child := range e.children {
		child.Parent = nil
	}
	e.children = e.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.Text = ""
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
