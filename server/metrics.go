package server

import "sync/atomic"

// Metrics counts bridge traffic. All fields are updated atomically.
type Metrics struct {
	Clients          int64
	ClientsTotal     int64
	MessagesIn       int64
	MessagesOut      int64
	EventsDropped    int64
	CommandsAccepted int64
	CommandsRejected int64
	CommandsDropped  int64
}

func (m *Metrics) clientJoined() {
	atomic.AddInt64(&m.Clients, 1)
	atomic.AddInt64(&m.ClientsTotal, 1)
}
func (m *Metrics) clientLeft()        { atomic.AddInt64(&m.Clients, -1) }
func (m *Metrics) incIn()             { atomic.AddInt64(&m.MessagesIn, 1) }
func (m *Metrics) incOut()            { atomic.AddInt64(&m.MessagesOut, 1) }
func (m *Metrics) incEventsDropped()  { atomic.AddInt64(&m.EventsDropped, 1) }
func (m *Metrics) incAccepted()       { atomic.AddInt64(&m.CommandsAccepted, 1) }
func (m *Metrics) incRejected()       { atomic.AddInt64(&m.CommandsRejected, 1) }
func (m *Metrics) incCommandDropped() { atomic.AddInt64(&m.CommandsDropped, 1) }

// Snapshot returns a copy for the HTTP endpoint.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"clients":           atomic.LoadInt64(&m.Clients),
		"clients_total":     atomic.LoadInt64(&m.ClientsTotal),
		"messages_in":       atomic.LoadInt64(&m.MessagesIn),
		"messages_out":      atomic.LoadInt64(&m.MessagesOut),
		"events_dropped":    atomic.LoadInt64(&m.EventsDropped),
		"commands_accepted": atomic.LoadInt64(&m.CommandsAccepted),
		"commands_rejected": atomic.LoadInt64(&m.CommandsRejected),
		"commands_dropped":  atomic.LoadInt64(&m.CommandsDropped),
	}
}
