package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	sendBuffer     = 256
)

var (
	errNoGame     = errors.New("no game started")
	errBadMessage = errors.New("malformed message")
)

// inbound is one decoded client frame, or the reason it could not be decoded.
type inbound struct {
	msg ClientMessage
	err error
}

// session is one websocket client. The run goroutine owns the game; the
// read and write pumps talk to it over channels.
type session struct {
	conn   *websocket.Conn
	config Config
	logger *log.Logger

	inbox chan inbound
	send  chan []byte
	quit  chan struct{}

	game   *keiraku.Game
	input  core.InputFrame
	events []sim.Event
	dirty  bool
	frames int
}

func newSession(conn *websocket.Conn, cfg Config, logger *log.Logger) *session {
	return &session{
		conn:   conn,
		config: cfg,
		logger: logger,
		inbox:  make(chan inbound, 16),
		send:   make(chan []byte, sendBuffer),
		quit:   make(chan struct{}),
		input:  core.NewInputFrame(),
	}
}

// readPump decodes client frames until the connection fails, then stops
// the run goroutine.
func (s *session) readPump() {
	defer func() {
		close(s.quit)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("read failed", "error", err)
			}
			return
		}

		var in inbound
		if err := json.Unmarshal(data, &in.msg); err != nil {
			in.err = fmt.Errorf("%w: %v", errBadMessage, err)
		}
		select {
		case s.inbox <- in:
		case <-s.quit:
			return
		}
	}
}

// writePump sends queued frames and keeps the connection alive with pings.
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// run owns the game: it applies commands and advances one frame per tick.
func (s *session) run() {
	frame := time.Second / time.Duration(s.config.TickRate)
	every := s.config.TickRate / s.config.SnapshotRate

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			close(s.send)
			return
		case in := <-s.inbox:
			s.handle(in)
		case <-ticker.C:
			s.tick(every)
		}
	}
}

func (s *session) handle(in inbound) {
	if in.err != nil {
		s.queue(errorMessage(in.err))
		return
	}

	switch in.msg.Type {
	case TypeStart:
		if err := s.start(in.msg.Mode, in.msg.Stage); err != nil {
			s.queue(errorMessage(err))
			return
		}
		s.queue(snapshotMessage(s.game.Simulation().Snapshot()))
	case TypeCommand:
		if s.game == nil {
			s.queue(errorMessage(errNoGame))
			return
		}
		a, ok := core.ParseAction(in.msg.Action)
		if !ok || a == core.ActionQuit || a == core.ActionBack {
			s.queue(errorMessage(fmt.Errorf("unknown action %q", in.msg.Action)))
			return
		}
		s.input.Set(a)
	default:
		s.queue(errorMessage(fmt.Errorf("unknown message type %q", in.msg.Type)))
	}
}

// start begins a fresh run. An empty mode is story and an empty stage is
// the first one.
func (s *session) start(modeName, stageID string) error {
	mode := sim.ModeStory
	if modeName != "" {
		m, ok := sim.ParseMode(modeName)
		if !ok {
			return fmt.Errorf("unknown mode %q", modeName)
		}
		mode = m
	}

	idx := 0
	if stageID != "" {
		i, err := s.config.Catalog.Index(stageID)
		if err != nil {
			return err
		}
		idx = i
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	sink := sim.EventSinkFunc(func(e sim.Event) { s.events = append(s.events, e) })
	g := keiraku.NewWith(mode, s.config.Keiraku, s.config.Catalog, sink)
	g.Reset(core.RuntimeConfig{TickRate: s.config.TickRate, Seed: seed, Stage: idx})
	if err := g.Err(); err != nil {
		return err
	}

	s.game = g
	s.input.Clear()
	s.events = s.events[:0]
	s.frames = 0
	s.logger.Debug("run started", "mode", mode, "stage", g.Simulation().Stage().ID, "seed", seed)
	return nil
}

func (s *session) tick(every int) {
	if s.game == nil {
		return
	}

	if len(s.input.Actions) > 0 {
		s.dirty = true
	}
	s.game.Step(s.input)
	s.input.Clear()
	s.frames++

	for _, e := range s.events {
		s.queue(eventMessage(e))
		s.dirty = true
	}
	s.events = s.events[:0]

	if s.dirty || s.frames%every == 0 {
		s.queue(snapshotMessage(s.game.Simulation().Snapshot()))
		s.dirty = false
	}
}

// queue hands a message to the write pump. A full buffer drops the message;
// the next snapshot supersedes it.
func (s *session) queue(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("encode message", "type", msg.Type, "error", err)
		return
	}
	select {
	case s.send <- data:
	default:
		s.logger.Debug("send buffer full, dropping message", "type", msg.Type)
	}
}
