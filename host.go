package tendril

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Host adapts a Document and Context to ebiten.Game: the mouse wheel scrolls
// the document, window resizes recompute trigger bounds, and every tick runs
// one dispatch frame. Elements render as tinted rectangles with their visual
// channels applied — enough for demos and debugging; embed the Host and
// override Draw for richer content.
type Host struct {
	doc *Document
	ctx *Context

	// WheelSpeed is pixels of scroll per wheel unit. Default 40.
	WheelSpeed float64
	// ClearColor fills the screen before elements draw.
	ClearColor Color

	white  *ebiten.Image
	width  int
	height int
}

// NewHost creates a host for the given document and context.
func NewHost(doc *Document, ctx *Context) *Host {
	return &Host{
		doc:        doc,
		ctx:        ctx,
		WheelSpeed: 40,
		ClearColor: Color{R: 0.08, G: 0.08, B: 0.1, A: 1},
		width:      int(doc.ViewportWidth()),
		height:     int(doc.ViewportHeight()),
	}
}

// Update consumes wheel input and runs one dispatch frame.
func (h *Host) Update() error {
	if _, wy := ebiten.Wheel(); wy != 0 {
		h.ctx.OnScroll(h.doc.ScrollY() - wy*h.WheelSpeed)
	}
	h.ctx.Frame(1000 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the element tree viewport-relative: each element is a
// rectangle tinted with its Color, scaled and offset by its visual channels,
// with opacity inherited down the tree.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.white == nil {
		h.white = ebiten.NewImage(1, 1)
		h.white.Fill(color.White)
	}
	screen.Fill(rgba(h.ClearColor))
	root := h.doc.Root()
	for _, child := range root.Children() {
		h.drawElement(screen, child, 1.0)
	}
}

func (h *Host) drawElement(screen *ebiten.Image, el *Element, parentAlpha float64) {
	if el.IsDisposed() || el.Display == DisplayNone {
		return
	}
	alpha := parentAlpha * el.Opacity
	rect := h.doc.BoundingRect(el)

	if alpha > 0 && el.Color.A > 0 && rect.Width > 0 && rect.Height > 0 {
		w := rect.Width * el.Scale
		ht := rect.Height * el.Scale
		x := rect.X + el.TranslateX + (rect.Width-w)/2
		y := rect.Y + el.TranslateY + (rect.Height-ht)/2

		// Cull rectangles entirely outside the viewport.
		if y < h.doc.ViewportHeight() && y+ht > 0 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w, ht)
			if el.Rotation != 0 {
				op.GeoM.Translate(-w/2, -ht/2)
				op.GeoM.Rotate(el.Rotation)
				op.GeoM.Translate(w/2, ht/2)
			}
			op.GeoM.Translate(x, y)
			op.ColorScale.Scale(
				float32(el.Color.R), float32(el.Color.G), float32(el.Color.B),
				float32(el.Color.A*alpha))
			screen.DrawImage(h.white, op)
		}
	}

	for _, child := range el.Children() {
		h.drawElement(screen, child, alpha)
	}
}

// Layout reports the render size and forwards window resizes to the context.
func (h *Host) Layout(w, ht int) (int, int) {
	if w != h.width || ht != h.height {
		h.width, h.height = w, ht
		h.ctx.Resize(float64(w), float64(ht))
	}
	return w, ht
}

// rgba converts a Color to the stdlib 8-bit form, premultiplying alpha.
func rgba(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// Run opens a window and runs the host's game loop until it exits.
func Run(h *Host, cfg RunConfig) error {
	w, ht := cfg.Width, cfg.Height
	if w <= 0 {
		w = 800
	}
	if ht <= 0 {
		ht = 600
	}
	ebiten.SetWindowSize(w, ht)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(h)
}
