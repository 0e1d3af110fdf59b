package tendril

import (
	"strconv"
	"strings"
)

// Trigger position specs are tiny strings resolved against geometry at
// recompute time:
//
//	"top bottom"    element top meets viewport bottom
//	"center center" element center meets viewport center
//	"20% 80%"       20% down the element meets 80% down the viewport
//	"+=300" "-=25%" offset from the resolved start (end specs only)
//
// Malformed specs never fail; resolution falls back to the defaults below.
const (
	defaultStartSpec = "top bottom"
	defaultEndSpec   = "bottom top"
)

// parseEdge converts an edge token to a fraction of the box it refers to:
// "top" 0, "center" 0.5, "bottom" 1, "N%" N/100.
func parseEdge(tok string) (float64, bool) {
	switch tok {
	case "top":
		return 0, true
	case "center":
		return 0.5, true
	case "bottom":
		return 1, true
	}
	if p, ok := strings.CutSuffix(tok, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return v / 100, true
	}
	return 0, false
}

// resolvePosition computes the absolute scroll offset at which the named
// element edge aligns with the named viewport edge. rect is the element's
// viewport-relative bounding rect at the current scrollY. Pure function.
func resolvePosition(spec string, rect Rect, scrollY, viewportH float64) (float64, bool) {
	fields := strings.Fields(spec)
	if len(fields) != 2 {
		return 0, false
	}
	elemFrac, ok := parseEdge(fields[0])
	if !ok {
		return 0, false
	}
	viewFrac, ok := parseEdge(fields[1])
	if !ok {
		return 0, false
	}
	elemOffset := rect.Y + scrollY + elemFrac*rect.Height
	viewOffset := viewFrac * viewportH
	return elemOffset - viewOffset, true
}

// resolveRelative handles "+=N", "-=N", "+=N%", "-=N%" specs, offsetting from
// base. Percentages are of the viewport height.
func resolveRelative(spec string, base, viewportH float64) (float64, bool) {
	var sign float64
	var rest string
	switch {
	case strings.HasPrefix(spec, "+="):
		sign, rest = 1, spec[2:]
	case strings.HasPrefix(spec, "-="):
		sign, rest = -1, spec[2:]
	default:
		return 0, false
	}
	if p, ok := strings.CutSuffix(rest, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return base + sign*v/100*viewportH, true
	}
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false
	}
	return base + sign*v, true
}

// startFractions returns the element/viewport edge fractions of a start spec,
// falling back to the default "top bottom" (0, 1) for empty, malformed, or
// relative specs. Pinning derives its viewport anchor from these.
func startFractions(spec string) (elemFrac, viewFrac float64) {
	fields := strings.Fields(spec)
	if len(fields) == 2 {
		ef, ok1 := parseEdge(fields[0])
		vf, ok2 := parseEdge(fields[1])
		if ok1 && ok2 {
			return ef, vf
		}
	}
	return 0, 1
}

// resolveStart resolves a start spec, falling back to "top bottom" when the
// spec is empty or malformed.
func resolveStart(spec string, rect Rect, scrollY, viewportH float64) float64 {
	if spec != "" {
		if v, ok := resolveRelative(spec, 0, viewportH); ok {
			// Relative start offsets from the default position.
			base, _ := resolvePosition(defaultStartSpec, rect, scrollY, viewportH)
			return base + v
		}
		if v, ok := resolvePosition(spec, rect, scrollY, viewportH); ok {
			return v
		}
	}
	v, _ := resolvePosition(defaultStartSpec, rect, scrollY, viewportH)
	return v
}

// resolveEnd resolves an end spec against the already-resolved start,
// falling back to "bottom top" when the spec is empty or malformed.
func resolveEnd(spec string, rect Rect, scrollY, viewportH, start float64) float64 {
	if spec != "" {
		if v, ok := resolveRelative(spec, start, viewportH); ok {
			return v
		}
		if v, ok := resolvePosition(spec, rect, scrollY, viewportH); ok {
			return v
		}
	}
	v, _ := resolvePosition(defaultEndSpec, rect, scrollY, viewportH)
	return v
}
