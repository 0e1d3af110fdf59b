package tendril

import "strings"

// TriggerConfig declares the scroll-trigger portion of a Config: where the
// active range starts and ends, whether the element pins or scrubs, and the
// transition callbacks.
type TriggerConfig struct {
	// Start and End are trigger position specs (see geometry.go). Empty or
	// malformed specs fall back to "top bottom" / "bottom top".
	Start string
	End   string

	// Pin keeps the element visually fixed while the scroll offset is inside
	// [start, end]; a spacer preserves its layout footprint.
	Pin bool

	// Scrub binds the animation playhead to scroll progress instead of
	// playing it on crossings.
	Scrub bool

	// Markers inserts debug elements at the resolved start/end coordinates.
	Markers bool

	// ToggleActions is four space-separated action names for the
	// enter/enterBack/leave/leaveBack transitions, e.g. "play none reverse
	// pause". Blank or missing slots default to play; unknown names are
	// silent no-ops. Actions fire on crossings even while scrubbing; the
	// scrub seek then overrides the playhead every frame.
	ToggleActions string

	// Transition callbacks. Each fires exactly once per crossing.
	OnEnter     func(el *Element, dir Direction)
	OnLeave     func(el *Element, dir Direction)
	OnEnterBack func(el *Element, dir Direction)
	OnLeaveBack func(el *Element, dir Direction)
}

// Config is the declarative configuration for one observed element. The
// caller's value is copied at observe time and never mutated; Animation,
// Preset, and Steps are resolved into a single Animator once, at
// registration, so evaluation never re-branches on config shape.
type Config struct {
	// Name registers the resolved Animator in the context's named registry
	// for Play/Pause/Seek control calls. Empty means unregistered.
	Name string

	Trigger TriggerConfig

	// Animation animates the observed element itself. When Preset is also
	// set, only Duration, Delay, and Ease are taken from here.
	Animation *AnimationParams

	// Preset names a reveal preset (see presets.go) instead of explicit
	// animation params.
	Preset string

	// Steps builds a Timeline over elements resolved by name. Takes
	// precedence over Animation and Preset.
	Steps []TimelineStep
}

// --- Toggle actions ---

// toggleAction is one discrete transport command from a toggle-actions slot.
type toggleAction uint8

const (
	actionPlay toggleAction = iota
	actionPause
	actionResume
	actionReverse
	actionRestart
	actionReset
	actionComplete
	actionNone
)

// Slot indices into a parsed toggle-actions list.
const (
	slotEnter = iota
	slotEnterBack
	slotLeave
	slotLeaveBack
)

func actionByName(name string) toggleAction {
	switch name {
	case "play":
		return actionPlay
	case "pause":
		return actionPause
	case "resume":
		return actionResume
	case "reverse":
		return actionReverse
	case "restart":
		return actionRestart
	case "reset":
		return actionReset
	case "complete":
		return actionComplete
	default:
		return actionNone
	}
}

// parseToggleActions parses the four-slot action string. Missing slots
// default to play; unknown names become no-ops.
func parseToggleActions(s string) [4]toggleAction {
	out := [4]toggleAction{actionPlay, actionPlay, actionPlay, actionPlay}
	for i, name := range strings.Fields(s) {
		if i >= 4 {
			break
		}
		out[i] = actionByName(name)
	}
	return out
}

// applyAction runs one transport command on an animator. resume keeps the
// playhead and plays forward, same as play at this surface.
func applyAction(a Animator, act toggleAction) {
	if a == nil {
		return
	}
	switch act {
	case actionPlay, actionResume:
		a.Play()
	case actionPause:
		a.Pause()
	case actionReverse:
		a.Reverse()
	case actionRestart:
		a.Restart()
	case actionReset:
		a.Seek(0)
		a.Pause()
	case actionComplete:
		a.Seek(a.Duration())
		a.Pause()
	case actionNone:
	}
}

// --- Scroll state ---

// pinPhase tracks which side of the pin range the element is parked on, so
// pin style writes happen only when the phase changes.
type pinPhase uint8

const (
	pinInitial pinPhase = iota
	pinAbove
	pinActive
	pinBelow
)

// scrollState is the per-trigger mutable record carried between evaluations.
type scrollState struct {
	active    bool
	progress  float64
	dir       Direction
	lastY     float64
	pinned    bool
	phase     pinPhase
	evaluated bool
}

// Trigger is one element under scroll control: its config snapshot, resolved
// animator, pixel bounds, spacer, and evaluation state. Created by
// Context.Observe, destroyed by Kill or Context.Destroy.
type Trigger struct {
	ctx        *Context
	el         *Element
	cfg        Config
	actions    [4]toggleAction
	hasActions bool
	anim       Animator
	bounds     scrollBounds
	state      scrollState
	spacer     *pinSpacer
	markers    *markerPair
	killed     bool
}

// Element returns the observed element.
func (t *Trigger) Element() *Element { return t.el }

// Animation returns the resolved animator, or nil when the trigger only
// fires callbacks.
func (t *Trigger) Animation() Animator { return t.anim }

// IsActive reports whether the scroll offset was inside [start, end] at the
// last evaluation.
func (t *Trigger) IsActive() bool { return t.state.active }

// Progress returns the scroll progress fraction from the last evaluation.
func (t *Trigger) Progress() float64 { return t.state.progress }

// ScrollDirection returns the travel direction from the last evaluation.
func (t *Trigger) ScrollDirection() Direction { return t.state.dir }

// IsPinned reports whether the element is currently fixed to the viewport.
func (t *Trigger) IsPinned() bool { return t.state.pinned }

// Start returns the resolved start scroll offset.
func (t *Trigger) Start() float64 { return t.bounds.start }

// End returns the resolved end scroll offset.
func (t *Trigger) End() float64 { return t.bounds.end }

// Kill tears the trigger down: spacer destroyed and styles restored, markers
// removed, registry entries erased. Frame passes already in flight skip
// killed triggers silently.
func (t *Trigger) Kill() {
	if t.killed {
		return
	}
	t.ctx.kill(t)
}

// evaluate advances the state machine for the captured scroll offset y.
// Called once per dispatched frame pass.
func (t *Trigger) evaluate(y float64) {
	st := &t.state

	// Direction: ties keep the previous direction; the first evaluation
	// defaults to forward (set at observe time).
	dir := st.dir
	if y > st.lastY {
		dir = DirectionForward
	} else if y < st.lastY {
		dir = DirectionBackward
	}

	active := y >= t.bounds.start && y <= t.bounds.end
	progress := 1.0
	if t.bounds.start != t.bounds.end {
		progress = clamp((y-t.bounds.start)/(t.bounds.end-t.bounds.start), 0, 1)
	}

	wasActive := st.active
	prevDir := st.dir

	// At most one transition fires per evaluation. The first evaluation has
	// wasActive == false, so a trigger already inside its range at observe
	// time fires an initial enter and nothing else.
	switch {
	case active && !wasActive:
		t.fire(t.cfg.Trigger.OnEnter, dir)
		if t.hasActions {
			applyAction(t.anim, t.actions[slotEnter])
		} else if !t.cfg.Trigger.Scrub && t.anim != nil {
			t.anim.Play()
		}
	case !active && wasActive && dir == DirectionForward:
		t.fire(t.cfg.Trigger.OnLeave, dir)
		if t.hasActions {
			applyAction(t.anim, t.actions[slotLeave])
		}
	case !active && wasActive && dir == DirectionBackward:
		t.fire(t.cfg.Trigger.OnLeaveBack, dir)
		if t.hasActions {
			applyAction(t.anim, t.actions[slotLeaveBack])
		}
	case active && wasActive && dir == DirectionBackward && prevDir == DirectionForward:
		// Direction reversal while still active, not every active frame.
		t.fire(t.cfg.Trigger.OnEnterBack, dir)
		if t.hasActions {
			applyAction(t.anim, t.actions[slotEnterBack])
		}
	}

	if t.cfg.Trigger.Scrub && t.anim != nil {
		t.anim.Seek(t.anim.Duration() * progress)
	}

	if t.spacer != nil {
		t.applyPin(y)
	}

	st.active = active
	st.progress = progress
	st.dir = dir
	st.lastY = y
	st.evaluated = true
}

func (t *Trigger) fire(cb func(*Element, Direction), dir Direction) {
	if cb != nil {
		cb(t.el, dir)
	}
}

// applyPin parks the element for the pin phase the scroll offset is in:
// fixed at the precomputed viewport anchor inside [pinStart, pinEnd],
// absolute at the spacer top above it, absolute at the full span below it.
// Styles are written only when the phase changes.
func (t *Trigger) applyPin(y float64) {
	b := &t.bounds
	var phase pinPhase
	switch {
	case y < b.pinStart:
		phase = pinAbove
	case y > b.pinEnd:
		phase = pinBelow
	default:
		phase = pinActive
	}
	if phase == t.state.phase {
		return
	}

	el := t.el
	switch phase {
	case pinActive:
		el.Style.Position = PositionFixed
		el.Style.Top = b.pinTop
		el.Style.Left = b.pinLeft
		el.Style.Width = b.pinWidth
	case pinAbove:
		el.Style.Position = PositionAbsolute
		el.Style.Top = 0
		el.Style.Left = 0
		el.Style.Width = b.pinWidth
	case pinBelow:
		el.Style.Position = PositionAbsolute
		el.Style.Top = b.pinEnd - b.pinStart
		el.Style.Left = 0
		el.Style.Width = b.pinWidth
	}
	t.ctx.doc.MarkDirty()
	t.state.phase = phase
	t.state.pinned = phase == pinActive
}
