package model

type EventType string

const (
	EventHello       EventType = "hello"
	EventPortalEnter EventType = "portal_enter"
	EventResume      EventType = "resume"
	EventExit        EventType = "exit"
	EventMode        EventType = "mode"
)

// Event is pushed to every connected client. Hello carries the client id and
// the current snapshot.
type Event struct {
	Type   EventType `json:"type"`
	Portal string    `json:"portal,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	Client string    `json:"client,omitempty"`
	State  *Snapshot `json:"state,omitempty"`
}
