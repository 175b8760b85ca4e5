package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CONTENT_SAVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// TypeSaveStatus is the event code published by the persistence
// orchestrator whenever a save starts or settles.
const TypeSaveStatus = "SAVE_STATUS"

// TopicSaveStatus is the in-process pub/sub topic carrying SaveStatus
// projections for websocket fan-out and tests.
const TopicSaveStatus = "content.save_status"

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSaveStatusEvent wraps a save-status projection for the bus.
func NewSaveStatusEvent(data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       TypeSaveStatus,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
