package tendril

import "testing"

func TestTimelineDurationIsLatestStepEnd(t *testing.T) {
	a := NewBox("a", 10, 10)
	b := NewBox("b", 10, 10)
	tl := NewTimeline().
		Add(a, AnimationParams{Opacity: f64(1), Duration: 300}, 0).
		Add(b, AnimationParams{Opacity: f64(1), Duration: 300}, 500)

	if !approxEqual(tl.Duration(), 800, epsilon) {
		t.Errorf("duration = %f, want 800", tl.Duration())
	}
}

func TestTimelineSeekDistributesLocalTimes(t *testing.T) {
	a := NewBox("a", 10, 10)
	a.Opacity = 0
	b := NewBox("b", 10, 10)
	b.Opacity = 0
	tl := NewTimeline().
		Add(a, AnimationParams{Opacity: f64(1), Duration: 400, Ease: "linear"}, 0).
		Add(b, AnimationParams{Opacity: f64(1), Duration: 400, Ease: "linear"}, 400)

	tl.Seek(400)
	if !approxEqual(a.Opacity, 1, tweenEpsilon) {
		t.Errorf("a.Opacity = %f, want 1 (step finished)", a.Opacity)
	}
	if !approxEqual(b.Opacity, 0, tweenEpsilon) {
		t.Errorf("b.Opacity = %f, want 0 (step not started)", b.Opacity)
	}

	tl.Seek(600)
	if !approxEqual(b.Opacity, 0.5, tweenEpsilon) {
		t.Errorf("b.Opacity = %f, want 0.5", b.Opacity)
	}
}

func TestTimelineSeekBackwardRewindsSteps(t *testing.T) {
	a := NewBox("a", 10, 10)
	a.Opacity = 0
	tl := NewTimeline().
		Add(a, AnimationParams{Opacity: f64(1), Duration: 400, Ease: "linear"}, 0)

	tl.Seek(400)
	tl.Seek(100)
	if !approxEqual(a.Opacity, 0.25, tweenEpsilon) {
		t.Errorf("a.Opacity after rewind = %f, want 0.25", a.Opacity)
	}
}

func TestTimelinePlaysThroughSteps(t *testing.T) {
	a := NewBox("a", 10, 10)
	a.Opacity = 0
	b := NewBox("b", 10, 10)
	b.TranslateY = 32
	tl := NewTimeline().
		Add(a, AnimationParams{Opacity: f64(1), Duration: 200, Ease: "linear"}, 0).
		Add(b, AnimationParams{Y: f64(0), Duration: 200, Ease: "linear"}, 200)

	tl.Play()
	for i := 0; i < 40; i++ {
		tl.Update(16.0)
	}

	if !approxEqual(a.Opacity, 1, tweenEpsilon) || !approxEqual(b.TranslateY, 0, tweenEpsilon) {
		t.Errorf("end state a=%f b=%f, want 1 and 0", a.Opacity, b.TranslateY)
	}
	if !tl.Done() {
		t.Error("timeline should be done")
	}
}

func TestTimelineReverseAndRestart(t *testing.T) {
	a := NewBox("a", 10, 10)
	a.Opacity = 0
	tl := NewTimeline().
		Add(a, AnimationParams{Opacity: f64(1), Duration: 200, Ease: "linear"}, 0)

	tl.Seek(200)
	tl.Reverse()
	for i := 0; i < 20; i++ {
		tl.Update(16.0)
	}
	if !approxEqual(a.Opacity, 0, tweenEpsilon) {
		t.Errorf("opacity after reverse = %f, want 0", a.Opacity)
	}

	tl.Restart()
	if tl.Done() {
		t.Error("restarted timeline should be playing")
	}
	if !approxEqual(tl.Progress(), 0, epsilon) {
		t.Errorf("progress after restart = %f, want 0", tl.Progress())
	}
}

func TestEmptyTimelineIsTriviallyDone(t *testing.T) {
	tl := NewTimeline()
	if tl.Duration() != 0 {
		t.Errorf("duration = %f, want 0", tl.Duration())
	}
	if !approxEqual(tl.Progress(), 1, epsilon) {
		t.Errorf("progress = %f, want 1", tl.Progress())
	}
	tl.Update(16.0)
}
