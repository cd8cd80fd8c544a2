// Package model holds the JSON messages exchanged with bridge clients.
package model

// Snapshot is the engine and host state as seen by bridge clients.
type Snapshot struct {
	Mode     string  `json:"mode"`  // title or game
	State    string  `json:"state"` // engine state name
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Facing   string  `json:"facing"`
	Moving   bool    `json:"moving"`
	Nearby   string  `json:"nearby,omitempty"`
	Cooldown string  `json:"cooldown,omitempty"`
	Overlay  string  `json:"overlay,omitempty"`
}

type PortalInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Col   int    `json:"col"`
	Row   int    `json:"row"`
	Color string `json:"color"`
}

// Page is a portal page flattened to paragraphs.
type Page struct {
	Portal     string   `json:"portal"`
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}
