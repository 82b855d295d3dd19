package track

import "github.com/gogpu/gg"

// Sample is a single value recorded at one instant of a gesture.
// The concrete type determines which event type may store it.
type Sample interface {
	EventType() EventType
}

// PositionSample is an absolute position recorded by a translate gesture.
type PositionSample gg.Point

// EventType returns Translate.
func (PositionSample) EventType() EventType { return Translate }

// AngleSample is an absolute orientation in radians recorded by a rotate gesture.
type AngleSample float64

// EventType returns Rotate.
func (AngleSample) EventType() EventType { return Rotate }

// ScaleSample is an absolute scale factor recorded by a scale gesture.
type ScaleSample gg.Vec2

// EventType returns Scale.
func (ScaleSample) EventType() EventType { return Scale }
