package tendril

// Reveal presets: named entrance effects for the declarative layer. Applying
// a preset offsets the element away from its authored state immediately and
// returns params that animate it back, so the element lands exactly where
// the caller placed it.

// presetDistance is how far offset presets displace the element, in pixels.
const presetDistance = 32.0

// presetParams applies the named preset to el and returns the animation
// params that restore the authored state. Unknown names are logged and fall
// back to a plain fade. Duration, Delay, and Ease are left zero for the
// caller to fill (zero means the animation defaults).
func presetParams(el *Element, name string) AnimationParams {
	f := func(v float64) *float64 { return &v }

	var p AnimationParams
	switch name {
	case "fade":
		p.Opacity = f(el.Opacity)
		el.Opacity = 0
	case "fade-up":
		p.Opacity = f(el.Opacity)
		p.Y = f(el.TranslateY)
		el.Opacity = 0
		el.TranslateY += presetDistance
	case "fade-down":
		p.Opacity = f(el.Opacity)
		p.Y = f(el.TranslateY)
		el.Opacity = 0
		el.TranslateY -= presetDistance
	case "slide-left":
		p.X = f(el.TranslateX)
		el.TranslateX += presetDistance
	case "slide-right":
		p.X = f(el.TranslateX)
		el.TranslateX -= presetDistance
	case "zoom-in":
		p.Opacity = f(el.Opacity)
		p.Scale = f(el.Scale)
		el.Opacity = 0
		el.Scale *= 0.6
	case "zoom-out":
		p.Opacity = f(el.Opacity)
		p.Scale = f(el.Scale)
		el.Opacity = 0
		el.Scale *= 1.4
	default:
		warnf("unknown preset %q, using fade", name)
		p.Opacity = f(el.Opacity)
		el.Opacity = 0
	}
	return p
}
