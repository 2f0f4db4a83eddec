package events

import "time"

const (
	TopicLandingEvents = "landing.events"

	TypeLandingUpdated = "LANDING_UPDATED"
	TypeContentChanged = "CONTENT_CHANGED"
)

// Event is the contract every published system event satisfies.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

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

// NewLandingUpdated records a publish: which collections the envelope
// replaced and who submitted it.
func NewLandingUpdated(collections []string, actor string) Event {
	return BaseEvent{
		Type: TypeLandingUpdated,
		Data: map[string]interface{}{
			"collections": collections,
			"actor":       actor,
		},
		OccurredAt: time.Now(),
	}
}

// NewContentChanged records a create/update/delete on a content pool entity.
func NewContentChanged(entity string, id uint, action string) Event {
	return BaseEvent{
		Type: TypeContentChanged,
		Data: map[string]interface{}{
			"entity": entity,
			"id":     id,
			"action": action,
		},
		OccurredAt: time.Now(),
	}
}
