// Package engine records gestures into tracks and replays them along the
// timeline.
//
// # Components
//
//   - Recorder: opens an event when a recordable gesture begins, appends
//     a sample at the current time on every update, and seals it when the
//     gesture ends.
//   - Replayer: on every clock change rebuilds each tracked entity's
//     position, orientation and scale from the store.
//   - Engine: owns the scene, store, clock, tools, recorder and replayer
//     and runs them in frame order.
//
// # Basic Usage
//
//	scene := replay.NewScene()
//	box := scene.Add("box", replay.DefaultState(), gg.RGB(1, 0, 0))
//
//	eng := engine.New(scene, engine.WithRange(0, 100))
//	_ = eng.SetActiveTool(tool.KindTranslate)
//	eng.Clock().Play()
//
//	_ = eng.PointerDown(box.ID(), tool.Input{Absolute: gg.Pt(0, 0)})
//	for i := 0; i < 10; i++ {
//	    _ = eng.PointerMove(tool.Input{Delta: gg.V2(5, 0)})
//	    eng.Frame()
//	}
//	_ = eng.PointerUp()
//
//	eng.Clock().Pause()
//	eng.Clock().SetCurrentTime(4) // box is back where it was at frame 4
//
// # Recording limits
//
// Recording stops one frame before the end of the range. A gesture that
// reaches it is aborted, keeping the samples recorded so far; a gesture
// aborted before its first sample leaves no event behind.
//
// Engine and its components are not safe for concurrent use. Hosts with a
// separate render goroutine pass it Scene.Snapshot and Store.Snapshot.
package engine
