package tendril

import "time"

// Context owns the trigger registry, the named animator registry, and the
// frame dispatch loop for one document. Callers create a Context per
// document (or per test); there is no process-wide state.
//
// Scroll and resize notifications only set pending flags; all work happens
// inside Frame, the single per-frame entry point. Multiple notifications
// between frames coalesce into one pass, and every trigger in a pass is
// evaluated against the same captured scroll offset.
type Context struct {
	doc      *Document
	triggers []*Trigger
	anims    map[string]Animator

	pendingEval   bool
	pendingResize bool

	snapshotBuf []*Trigger // reused defensive copy for frame passes

	debug bool
	stats frameStats
}

// NewContext creates a context for the given document.
func NewContext(doc *Document) *Context {
	return &Context{
		doc:   doc,
		anims: make(map[string]Animator),
	}
}

// Document returns the document this context dispatches for.
func (c *Context) Document() *Document {
	return c.doc
}

// SetDebug enables per-frame dispatch stats on stderr.
func (c *Context) SetDebug(enabled bool) {
	c.debug = enabled
}

// Triggers returns the live trigger list. The returned slice MUST NOT be
// mutated.
func (c *Context) Triggers() []*Trigger {
	return c.triggers
}

// Observe registers el under cfg and returns its trigger. The config value
// is copied; the caller's struct is never mutated. A nil or disposed element
// is logged and skipped (nil is returned), it never aborts other triggers.
func (c *Context) Observe(el *Element, cfg Config) *Trigger {
	if el == nil || el.IsDisposed() {
		warnf("observe: element is nil or disposed, skipping")
		return nil
	}

	t := &Trigger{ctx: c, el: el, cfg: cfg}
	t.state.dir = DirectionForward

	if cfg.Trigger.ToggleActions != "" {
		t.actions = parseToggleActions(cfg.Trigger.ToggleActions)
		t.hasActions = true
	}
	if cfg.Trigger.Pin {
		t.spacer = newPinSpacer(c.doc, el)
	}
	t.anim = c.resolveAnimator(el, &t.cfg)
	if cfg.Name != "" && t.anim != nil {
		c.anims[cfg.Name] = t.anim
	}

	t.recomputeBounds()
	if cfg.Trigger.Markers {
		t.markers = newMarkerPair(c.doc, el.Name)
		t.markers.reposition(c.doc, &t.bounds)
	}

	c.triggers = append(c.triggers, t)
	c.pendingEval = true
	return t
}

// ObserveSelector observes the first element with the given name. A selector
// that matches nothing is logged and skipped; nil is returned.
func (c *Context) ObserveSelector(name string, cfg Config) *Trigger {
	el := c.doc.Find(name)
	if el == nil {
		warnf("observe: no element named %q, skipping", name)
		return nil
	}
	return c.Observe(el, cfg)
}

// resolveAnimator collapses the config's animation shape (timeline steps,
// explicit params, or preset name) into one Animator at registration time.
func (c *Context) resolveAnimator(el *Element, cfg *Config) Animator {
	switch {
	case len(cfg.Steps) > 0:
		tl := NewTimeline()
		added := 0
		for _, step := range cfg.Steps {
			target := el
			if step.Target != "" {
				found := c.doc.Find(step.Target)
				if found == nil {
					warnf("timeline step: no element named %q, skipping step", step.Target)
					continue
				}
				target = found
			}
			tl.Add(target, step.Params, step.Offset)
			added++
		}
		if added == 0 {
			return nil
		}
		return tl
	case cfg.Preset != "":
		params := presetParams(el, cfg.Preset)
		if cfg.Animation != nil {
			params.Duration = cfg.Animation.Duration
			params.Delay = cfg.Animation.Delay
			params.Ease = cfg.Animation.Ease
		}
		return NewAnimation(el, params)
	case cfg.Animation != nil:
		return NewAnimation(el, *cfg.Animation)
	default:
		return nil
	}
}

// OnScroll records a new scroll offset and schedules an evaluate pass.
// Repeated calls before the next Frame coalesce into a single pass.
func (c *Context) OnScroll(y float64) {
	c.doc.SetScrollY(y)
	c.pendingEval = true
}

// Resize updates the viewport and schedules a full bounds recompute ahead of
// the next evaluate pass.
func (c *Context) Resize(w, h float64) {
	c.doc.Resize(w, h)
	c.pendingResize = true
	c.pendingEval = true
}

// Refresh forces an immediate bounds recompute for every trigger and
// schedules an evaluate pass.
func (c *Context) Refresh() {
	c.refreshBounds()
	c.pendingEval = true
}

func (c *Context) refreshBounds() {
	snap := append(c.snapshotBuf[:0], c.triggers...)
	c.snapshotBuf = snap
	for _, t := range snap {
		if t.killed {
			continue
		}
		t.recomputeBounds()
		t.markers.reposition(c.doc, &t.bounds)
		if c.debug {
			c.stats.recomputed++
		}
	}
}

// Frame runs one dispatch frame: pending recompute first, then at most one
// evaluate pass over a snapshot of the registry against a single captured
// scroll offset, then transport playback advanced by dtMs. Triggers killed
// mid-pass are skipped silently.
func (c *Context) Frame(dtMs float64) {
	var t0 time.Time
	if c.debug {
		c.stats = frameStats{}
		t0 = time.Now()
	}

	if c.pendingResize {
		c.pendingResize = false
		c.refreshBounds()
	}

	snap := append(c.snapshotBuf[:0], c.triggers...)
	c.snapshotBuf = snap

	if c.pendingEval {
		c.pendingEval = false
		y := c.doc.ScrollY()
		for _, t := range snap {
			if t.killed {
				continue
			}
			t.evaluate(y)
			if c.debug {
				c.stats.evaluated++
			}
		}
	}

	// Scrubbed animators are seek-driven; advancing them here would fight
	// the scrub position.
	for _, t := range snap {
		if t.killed || t.anim == nil || t.cfg.Trigger.Scrub {
			continue
		}
		t.anim.Update(dtMs)
	}

	if c.debug {
		c.stats.frameTime = time.Since(t0)
		c.debugLog()
	}
}

// kill tears one trigger down. Called via Trigger.Kill.
func (c *Context) kill(t *Trigger) {
	t.killed = true
	if t.spacer != nil {
		t.spacer.destroy(c.doc)
	}
	t.markers.remove(c.doc)
	if t.cfg.Name != "" {
		delete(c.anims, t.cfg.Name)
	}
	for i, cur := range c.triggers {
		if cur == t {
			copy(c.triggers[i:], c.triggers[i+1:])
			c.triggers[len(c.triggers)-1] = nil
			c.triggers = c.triggers[:len(c.triggers)-1]
			break
		}
	}
}

// Destroy tears down every trigger and clears the named registry.
func (c *Context) Destroy() {
	snap := append([]*Trigger(nil), c.triggers...)
	for _, t := range snap {
		t.Kill()
	}
	clear(c.anims)
}

// --- Named controls ---

// lookup returns the named animator, or nil with a warning.
func (c *Context) lookup(name string) Animator {
	a, ok := c.anims[name]
	if !ok {
		warnf("no animation named %q", name)
		return nil
	}
	return a
}

// RegisterAnimation adds a free-standing animator to the named registry.
func (c *Context) RegisterAnimation(name string, a Animator) {
	c.anims[name] = a
}

// Play starts the named animation.
func (c *Context) Play(name string) {
	if a := c.lookup(name); a != nil {
		a.Play()
	}
}

// Pause pauses the named animation.
func (c *Context) Pause(name string) {
	if a := c.lookup(name); a != nil {
		a.Pause()
	}
}

// Restart rewinds and plays the named animation.
func (c *Context) Restart(name string) {
	if a := c.lookup(name); a != nil {
		a.Restart()
	}
}

// Reverse plays the named animation backward.
func (c *Context) Reverse(name string) {
	if a := c.lookup(name); a != nil {
		a.Reverse()
	}
}

// Seek moves the named animation's playhead to ms.
func (c *Context) Seek(name string, ms float64) {
	if a := c.lookup(name); a != nil {
		a.Seek(ms)
	}
}
