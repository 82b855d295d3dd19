package track

import "errors"

var (
	// ErrInvalidEntity is returned when an operation names an entity that
	// has no track and cannot get one.
	ErrInvalidEntity = errors.New("track: invalid entity")

	// ErrUnknownEventType is returned for event types outside the declared
	// set. During Clear it marks a payload that could not be released.
	ErrUnknownEventType = errors.New("track: unknown event type")

	// ErrPayloadMismatch is reported by Clear when an event holds a payload
	// that does not belong to its type.
	ErrPayloadMismatch = errors.New("track: payload does not match event type")

	// ErrSampleOutOfRange is returned when a sample is older than the
	// event it is appended to.
	ErrSampleOutOfRange = errors.New("track: sample time before event start")

	// ErrSampleTypeMismatch is returned when a sample kind cannot be stored
	// by the event's payload.
	ErrSampleTypeMismatch = errors.New("track: sample type does not match event")

	// ErrEventSealed is returned when appending to a closed event.
	ErrEventSealed = errors.New("track: event is sealed")

	// ErrInvalidHandle is returned for zero handles and handles whose event
	// was discarded or cleared.
	ErrInvalidHandle = errors.New("track: invalid event handle")
)
