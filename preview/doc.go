// Package preview rasterizes a replay session to images.
//
// A Renderer draws two regions onto one gg.Context: the stage, showing
// every entity as a box placed by its current transform, and the timeline
// strip beneath it, showing one row per track with an event bar per
// recorded event and the playhead at the current time.
//
// The renderer only reads immutable snapshots (replay.Scene.Snapshot,
// track.Store.Snapshot, timeline.Clock.State), so frames can be produced
// on another goroutine than the one driving the engine:
//
//	r, err := preview.New(640, 480)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	r.Draw(scene.Snapshot(), store.Snapshot(), clock.State())
//	_ = r.SavePNG("frame.png")
package preview
