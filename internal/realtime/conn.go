package realtime

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

const (
	maxFramePayloadBytes   = 16 * 1024
	maxDecodeErrorsPerConn = 3
	writeWait              = 10 * time.Second
)

// peer is one websocket connection. All writes go through outbox and a single
// writer goroutine, so frames reach the client in the order they were queued.
type peer struct {
	id        string
	conn      *websocket.Conn
	outbox    chan Frame
	done      chan struct{}
	closeOnce sync.Once
}

func newPeer(conn *websocket.Conn, outboxSize int) *peer {
	return &peer{
		id:     uuid.NewString(),
		conn:   conn,
		outbox: make(chan Frame, outboxSize),
		done:   make(chan struct{}),
	}
}

// send queues frame without blocking; false means the frame was dropped.
func (p *peer) send(frame Frame) bool {
	select {
	case <-p.done:
		return false
	default:
	}
	select {
	case p.outbox <- frame:
		return true
	default:
		return false
	}
}

func (p *peer) writeLoop(log *zap.Logger) {
	for {
		select {
		case <-p.done:
			return
		case frame := <-p.outbox:
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := websocket.JSON.Send(p.conn, frame); err != nil {
				log.Debug("websocket write failed", zap.String("peer", p.id), zap.Error(err))
				p.close()
				return
			}
		}
	}
}

func (p *peer) close() {
	p.closeOnce.Do(func() {
		close(p.done)
		_ = p.conn.Close()
	})
}

// Handler serves the websocket endpoint. The channel is read-only for
// viewers, so any origin may connect.
func (h *Hub) Handler() http.Handler {
	return websocket.Server{
		Handshake: func(*websocket.Config, *http.Request) error { return nil },
		Handler:   h.serveConn,
	}
}

func (h *Hub) serveConn(conn *websocket.Conn) {
	conn.MaxPayloadBytes = maxFramePayloadBytes
	p := newPeer(conn, h.outboxSize)
	log := h.log.With(zap.String("peer", p.id))

	go p.writeLoop(log)
	defer func() {
		h.leave(p)
		p.close()
		log.Debug("viewer disconnected")
	}()
	log.Debug("viewer connected")

	decodeErrors := 0
	for {
		var frame Frame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			if !isDecodeError(err) {
				return
			}
			decodeErrors++
			p.send(errorFrame("", CodeInvalidArgument, "invalid frame payload"))
			if decodeErrors >= maxDecodeErrorsPerConn {
				return
			}
			continue
		}
		decodeErrors = 0

		switch frame.Type {
		case FrameJoinEvent:
			h.handleJoin(p, frame, log)
		default:
			p.send(errorFrame(frame.RequestID, CodeInvalidArgument, "unsupported frame type"))
		}
	}
}

func isDecodeError(err error) bool {
	if errors.Is(err, io.EOF) {
		return false
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, websocket.ErrFrameTooLarge)
}

func (h *Hub) handleJoin(p *peer, frame Frame, log *zap.Logger) {
	var payload JoinPayload
	if len(frame.Payload) == 0 || json.Unmarshal(frame.Payload, &payload) != nil {
		p.send(errorFrame(frame.RequestID, CodeInvalidArgument, "invalid join payload"))
		return
	}
	if payload.Slug == "" {
		p.send(errorFrame(frame.RequestID, CodeInvalidArgument, "slug is required"))
		return
	}

	h.join(p, payload.Slug)
	log.Debug("viewer joined event", zap.String("slug", payload.Slug))

	joined, err := NewFrame(FrameJoined, frame.RequestID, JoinedPayload{Slug: payload.Slug})
	if err != nil {
		return
	}
	p.send(joined)
}
