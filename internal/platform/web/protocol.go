package web

import (
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

// Message types exchanged over the websocket.
const (
	TypeStart    = "start"
	TypeCommand  = "command"
	TypeSnapshot = "snapshot"
	TypeEvent    = "event"
	TypeError    = "error"
)

// ClientMessage is a request from the browser.
//
//	{"type":"start","mode":"story","stage":"heart"}
//	{"type":"command","action":"move_up"}
type ClientMessage struct {
	Type   string `json:"type"`
	Mode   string `json:"mode,omitempty"`
	Stage  string `json:"stage,omitempty"`
	Action string `json:"action,omitempty"`
}

// ServerMessage is pushed to the browser. Exactly one payload field is set,
// matching Type.
type ServerMessage struct {
	Type     string        `json:"type"`
	Snapshot *sim.Snapshot `json:"snapshot,omitempty"`
	Event    sim.Event     `json:"event,omitempty"`
	Error    string        `json:"error,omitempty"`
}

func snapshotMessage(s sim.Snapshot) ServerMessage {
	return ServerMessage{Type: TypeSnapshot, Snapshot: &s}
}

func eventMessage(e sim.Event) ServerMessage {
	return ServerMessage{Type: TypeEvent, Event: e}
}

func errorMessage(err error) ServerMessage {
	return ServerMessage{Type: TypeError, Error: err.Error()}
}
