// Package tool implements the gesture tools that drive recording.
//
// Each tool is a two-state machine (idle, active) with the same protocol:
//
//	Begin(entity, input)  idle -> active, captures the origin value
//	Update(input)         active only, returns the value to record
//	Finish()              active -> idle, gesture completed
//	Abort()               active -> idle, in-progress change discarded
//
// Translate, Rotate and Scale produce a track.Sample on every update and
// apply it to the entity immediately. Select changes the scene selection
// and Scrub moves the clock; neither records anything.
//
// Tools are created through a registry keyed by [Kind], following the
// database/sql driver pattern. The built-in tools register themselves in
// init:
//
//	t, err := tool.New(tool.KindTranslate, tool.Env{Scene: scene, Clock: clock})
package tool
