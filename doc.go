// Package replay records gestures applied to scene entities as timed
// tracks and replays them deterministically against a timeline.
//
// # Overview
//
// A user drags, rotates or scales entities with pointer tools while a
// timeline clock runs. Each gesture becomes an event on the entity's
// track: a start frame, a length and the values sampled at every frame
// the gesture was active. Moving the clock, by playing or scrubbing,
// rebuilds every entity from its track, so the state at a frame depends
// only on that frame.
//
// # Packages
//
// This package holds the scene model (Entity, Scene, State) and the
// logger shared by the sub-packages:
//
//   - track: event store with per-entity tracks, typed sample payloads
//     and time queries
//   - timeline: the clock (range, playback, stepping, change observers)
//   - tool: select, translate, rotate, scale and scrub gestures
//   - engine: the recorder, the replayer and the Engine tying them to a
//     scene and a clock
//   - preview: software rendering of a scene and its tracks via gg
//
// # Quick Start
//
//	scene := replay.NewScene()
//	box := scene.Add("box", replay.DefaultState(), gg.RGB(0.2, 0.4, 0.8))
//
//	eng := engine.New(scene, engine.WithRange(0, 100))
//	_ = eng.SetActiveTool(tool.KindTranslate)
//	eng.Clock().Play()
//
//	_ = eng.PointerDown(box.ID(), tool.Input{})
//	for range 10 {
//	    _ = eng.PointerMove(tool.Input{Delta: gg.V2(5, 0)})
//	    eng.Frame()
//	}
//	_ = eng.PointerUp()
//
//	eng.Clock().SetCurrentTime(4) // box moves back to where it was at frame 4
//
// # Concurrency
//
// Scene, the track store, the clock and the engine are owned by one
// goroutine. Scene.Snapshot and track.Store.Snapshot return copies that
// may be handed to other goroutines, for example a renderer.
//
// # Logging
//
// Nothing is logged until SetLogger installs a logger.
package replay
