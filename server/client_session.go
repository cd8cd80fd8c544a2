package server

import (
	"encoding/json"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/model"
)

const (
	writeWait    = 5 * time.Second
	maxFrameSize = 4096
)

// ClientSession is one websocket client. MessagesToSend is closed by the
// bridge loop when the client is unregistered.
type ClientSession struct {
	Id             string
	Conn           *websocket.Conn
	MessagesToSend chan model.Event

	bridge *Bridge
	state  atomic.Int32
	logger log.FieldLogger
}

func newClientSession(b *Bridge, conn *websocket.Conn) *ClientSession {
	id := uuid.NewString()
	cs := &ClientSession{
		Id:             id,
		Conn:           conn,
		MessagesToSend: make(chan model.Event, clientBuffer),
		bridge:         b,
		logger:         b.logger.WithField("client", id),
	}
	cs.setState(CS_NEW)
	conn.SetPingHandler(func(message string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
		if err == websocket.ErrCloseSent {
			return nil
		} else if e, ok := err.(net.Error); ok && e.Timeout() {
			return nil
		}
		return err
	})
	return cs
}

func (cs *ClientSession) State() ClientSessionState {
	return ClientSessionState(cs.state.Load())
}

func (cs *ClientSession) setState(s ClientSessionState) {
	cs.state.Store(int32(s))
}

// HandleWS upgrades the request and serves the client until it disconnects.
func (b *Bridge) HandleWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := b.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied
			b.logger.WithError(err).Warn("websocket upgrade failed")
			return
		}
		cs := newClientSession(b, conn)
		snap := b.Snapshot()
		cs.MessagesToSend <- model.Event{Type: model.EventHello, Client: cs.Id, State: &snap}

		select {
		case b.register <- cs:
		case <-time.After(handoffTimeout):
			cs.logger.Warn("bridge loop not running, closing client")
			conn.Close()
			return
		}

		go cs.LoopChannelWrite()
		cs.LoopChannelRead()

		select {
		case b.unregister <- cs:
		case <-time.After(handoffTimeout):
		}
	}
}

// LoopChannelRead decodes commands until the connection fails. Frames that do
// not decode are skipped.
func (cs *ClientSession) LoopChannelRead() {
	cs.Conn.SetReadLimit(maxFrameSize)
	for {
		_, r, err := cs.Conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				cs.setState(CS_CLOSED)
			} else if cs.State() != CS_CLOSED {
				cs.logger.WithError(err).Debug("read failed")
				cs.setState(CS_ERR)
			}
			return
		}
		cs.bridge.Metrics.incIn()

		var cmd model.Command
		if err := json.NewDecoder(r).Decode(&cmd); err != nil {
			cs.bridge.Metrics.incRejected()
			cs.logger.WithError(err).Warn("cant decode command")
			continue
		}
		cmd.Client = cs.Id
		if err := cs.bridge.Submit(cmd); err != nil {
			cs.logger.WithError(err).WithField("type", cmd.Type).Warn("command refused")
		}
	}
}

// LoopChannelWrite sends queued events until the queue is closed or a write
// fails. It owns closing the connection.
func (cs *ClientSession) LoopChannelWrite() {
	defer cs.Conn.Close()
	for ev := range cs.MessagesToSend {
		cs.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cs.Conn.WriteJSON(ev); err != nil {
			cs.logger.WithError(err).Debug("write failed")
			cs.setState(CS_ERR)
			return
		}
		cs.bridge.Metrics.incOut()
	}
	cs.setState(CS_CLOSED)
	cs.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}
