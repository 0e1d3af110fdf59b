package tendril

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator is the handle surface shared by Animation and Timeline: transport
// controls plus a millisecond seek. Scroll triggers drive an Animator either
// discretely (toggle actions) or continuously (scrub seeking).
type Animator interface {
	Play()
	Pause()
	Restart()
	Reverse()
	Seek(ms float64)
	Duration() float64
	Progress() float64
	Update(dtMs float64)
	Done() bool
}

// AnimationParams describes the target values of one animation in declarative
// form. Nil channel pointers are left untouched. Duration and Delay are in
// milliseconds; Ease names an easing curve (see easeByName).
type AnimationParams struct {
	Opacity  *float64 `yaml:"opacity"`
	X        *float64 `yaml:"x"`
	Y        *float64 `yaml:"y"`
	Scale    *float64 `yaml:"scale"`
	Rotation *float64 `yaml:"rotation"`
	Duration float64  `yaml:"duration"`
	Delay    float64  `yaml:"delay"`
	Ease     string   `yaml:"ease"`
}

const defaultDurationMs = 1000

// easeByName maps a declarative easing name to a gween ease function.
// Unknown or empty names fall back to out-quad.
func easeByName(name string) ease.TweenFunc {
	switch name {
	case "linear":
		return ease.Linear
	case "in-quad":
		return ease.InQuad
	case "out-quad", "":
		return ease.OutQuad
	case "in-out-quad":
		return ease.InOutQuad
	case "in-cubic":
		return ease.InCubic
	case "out-cubic":
		return ease.OutCubic
	case "in-out-cubic":
		return ease.InOutCubic
	case "in-sine":
		return ease.InSine
	case "out-sine":
		return ease.OutSine
	case "in-out-sine":
		return ease.InOutSine
	case "out-back":
		return ease.OutBack
	case "out-elastic":
		return ease.OutElastic
	case "out-bounce":
		return ease.OutBounce
	default:
		return ease.OutQuad
	}
}

const maxTracks = 8

// track binds one gween tween to one element field.
type track struct {
	field *float64
	tween *gween.Tween
}

// Animation animates up to 8 float64 channels on one Element. It wraps gween
// tweens with a transport (play/pause/reverse/restart) and a millisecond
// timebase so it can be seek-driven by scrubbing. If the target element is
// disposed, the animation stops and applies nothing further.
type Animation struct {
	target   *Element
	tracks   [maxTracks]track
	count    int
	trackDur float64 // ms, shared by all tracks
	delay    float64 // ms before the tracks start
	elapsed  float64 // ms into [0, Duration]
	rate     float64 // +1 forward, -1 backward
	playing  bool
}

// NewAnimation builds an animation from the element's current channel values
// to the targets named in params. Channels with nil targets are skipped.
func NewAnimation(target *Element, params AnimationParams) *Animation {
	dur := params.Duration
	if dur <= 0 {
		dur = defaultDurationMs
	}
	fn := easeByName(params.Ease)

	a := &Animation{target: target, trackDur: dur, delay: params.Delay, rate: 1}
	a.addTrack(&target.Opacity, params.Opacity, fn)
	a.addTrack(&target.TranslateX, params.X, fn)
	a.addTrack(&target.TranslateY, params.Y, fn)
	a.addTrack(&target.Scale, params.Scale, fn)
	a.addTrack(&target.Rotation, params.Rotation, fn)
	return a
}

func (a *Animation) addTrack(field, to *float64, fn ease.TweenFunc) {
	if to == nil || a.count == maxTracks {
		return
	}
	a.tracks[a.count] = track{
		field: field,
		tween: gween.New(float32(*field), float32(*to), float32(a.trackDur), fn),
	}
	a.count++
}

// Target returns the element this animation drives.
func (a *Animation) Target() *Element {
	return a.target
}

// Duration returns the total duration in milliseconds, including the delay.
func (a *Animation) Duration() float64 {
	return a.delay + a.trackDur
}

// Progress returns the playhead position as a fraction of Duration.
func (a *Animation) Progress() float64 {
	d := a.Duration()
	if d == 0 {
		return 1
	}
	return a.elapsed / d
}

// Play starts or resumes forward playback from the current playhead.
func (a *Animation) Play() {
	a.rate = 1
	a.playing = true
}

// Pause freezes the playhead in place.
func (a *Animation) Pause() {
	a.playing = false
}

// Restart rewinds to the beginning and plays forward.
func (a *Animation) Restart() {
	a.rate = 1
	a.elapsed = 0
	a.apply()
	a.playing = true
}

// Reverse plays backward from the current playhead.
func (a *Animation) Reverse() {
	a.rate = -1
	a.playing = true
}

// Seek moves the playhead to the given millisecond position and applies the
// track values immediately, regardless of play state.
func (a *Animation) Seek(ms float64) {
	a.elapsed = clamp(ms, 0, a.Duration())
	a.apply()
}

// Update advances the playhead by dtMs when playing. The playhead clamps at
// either end and playback stops there.
func (a *Animation) Update(dtMs float64) {
	if !a.playing {
		return
	}
	a.elapsed = clamp(a.elapsed+a.rate*dtMs, 0, a.Duration())
	a.apply()
	if (a.rate > 0 && a.elapsed >= a.Duration()) || (a.rate < 0 && a.elapsed <= 0) {
		a.playing = false
	}
}

// Done reports whether playback has stopped at the end of travel for the
// current direction.
func (a *Animation) Done() bool {
	if a.playing {
		return false
	}
	if a.rate < 0 {
		return a.elapsed <= 0
	}
	return a.elapsed >= a.Duration()
}

// apply writes track values for the current playhead to the target fields.
func (a *Animation) apply() {
	if a.target != nil && a.target.IsDisposed() {
		a.playing = false
		return
	}
	t := float32(clamp(a.elapsed-a.delay, 0, a.trackDur))
	for i := 0; i < a.count; i++ {
		val, _ := a.tracks[i].tween.Set(t)
		*a.tracks[i].field = float64(val)
	}
}
