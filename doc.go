// Package tendril is a declarative scroll-driven animation layer for
// [Ebitengine], built on [gween] tweens.
//
// Tendril lets you describe scroll-triggered reveals, pinned sections, and
// multi-step timelines as plain configuration instead of imperative tween
// calls. A [Document] holds elements in vertical flow behind a scrollable
// viewport; a [Context] watches elements and fires transitions, scrubs
// playheads, and pins elements as the scroll offset crosses their trigger
// bounds.
//
// # Quick start
//
//	doc := tendril.NewDocument(800, 600)
//	hero := tendril.NewBox("hero", 0, 400)
//	doc.Root().AddChild(hero)
//
//	ctx := tendril.NewContext(doc)
//	ctx.Observe(hero, tendril.Config{
//		Preset: "fade-up",
//		Trigger: tendril.TriggerConfig{
//			Start:         "top 80%",
//			ToggleActions: "play none none reverse",
//		},
//	})
//
//	tendril.Run(tendril.NewHost(doc, ctx), tendril.RunConfig{
//		Title: "My Page", Width: 800, Height: 600,
//	})
//
// For full control, implement [ebiten.Game] yourself: feed scroll offsets
// with [Context.OnScroll] and call [Context.Frame] once per tick.
//
// # Trigger specs
//
// Start and end positions are small strings resolved against geometry:
// "top bottom" (element top meets viewport bottom), "center center",
// "20% 80%", and relative end offsets like "+=300" or "+=150%". Malformed
// specs fall back to the defaults rather than failing.
//
// # Pinning and scrubbing
//
// Pin keeps an element visually fixed while the scroll offset is inside its
// trigger range; a spacer element preserves its layout footprint and the
// original styles are restored at teardown. Scrub binds an animation's
// playhead directly to scroll progress instead of playing it on crossings.
//
// # Scenes from YAML
//
// [LoadSceneConfig] parses a declarative scene file and
// [Context.ApplyScene] observes every trigger in it, skipping entries whose
// target cannot be found.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tendril
