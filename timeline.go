package tendril

// TimelineStep declares one step of a multi-element timeline: an animation on
// Target starting Offset milliseconds after the timeline origin.
type TimelineStep struct {
	Target string          `yaml:"target"`
	Offset float64         `yaml:"offset"`
	Params AnimationParams `yaml:"params"`
}

type timelineEntry struct {
	anim   *Animation
	offset float64
}

// Timeline sequences several Animations on a shared playhead. Each step is
// offset from the timeline origin; seeking distributes local times to every
// step, so a Timeline can be scrubbed exactly like a single Animation.
type Timeline struct {
	entries []timelineEntry
	elapsed float64
	rate    float64
	playing bool
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{rate: 1}
}

// Add appends an animation step for target starting at offsetMs and returns
// the timeline for chaining.
func (t *Timeline) Add(target *Element, params AnimationParams, offsetMs float64) *Timeline {
	t.entries = append(t.entries, timelineEntry{
		anim:   NewAnimation(target, params),
		offset: offsetMs,
	})
	return t
}

// Duration returns the total timeline duration in milliseconds: the latest
// step end.
func (t *Timeline) Duration() float64 {
	var d float64
	for _, e := range t.entries {
		if end := e.offset + e.anim.Duration(); end > d {
			d = end
		}
	}
	return d
}

// Progress returns the playhead position as a fraction of Duration.
func (t *Timeline) Progress() float64 {
	d := t.Duration()
	if d == 0 {
		return 1
	}
	return t.elapsed / d
}

// Play starts or resumes forward playback from the current playhead.
func (t *Timeline) Play() {
	t.rate = 1
	t.playing = true
}

// Pause freezes the playhead in place.
func (t *Timeline) Pause() {
	t.playing = false
}

// Restart rewinds to the beginning and plays forward.
func (t *Timeline) Restart() {
	t.rate = 1
	t.elapsed = 0
	t.applyAll()
	t.playing = true
}

// Reverse plays backward from the current playhead.
func (t *Timeline) Reverse() {
	t.rate = -1
	t.playing = true
}

// Seek moves the shared playhead and applies every step at its local time.
func (t *Timeline) Seek(ms float64) {
	t.elapsed = clamp(ms, 0, t.Duration())
	t.applyAll()
}

// Update advances the playhead by dtMs when playing. The playhead clamps at
// either end and playback stops there.
func (t *Timeline) Update(dtMs float64) {
	if !t.playing {
		return
	}
	t.elapsed = clamp(t.elapsed+t.rate*dtMs, 0, t.Duration())
	t.applyAll()
	if (t.rate > 0 && t.elapsed >= t.Duration()) || (t.rate < 0 && t.elapsed <= 0) {
		t.playing = false
	}
}

// Done reports whether playback has stopped at the end of travel for the
// current direction.
func (t *Timeline) Done() bool {
	if t.playing {
		return false
	}
	if t.rate < 0 {
		return t.elapsed <= 0
	}
	return t.elapsed >= t.Duration()
}

func (t *Timeline) applyAll() {
	for _, e := range t.entries {
		e.anim.Seek(t.elapsed - e.offset)
	}
}
