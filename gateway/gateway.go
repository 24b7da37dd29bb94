// Package gateway maintains the persistent websocket connection to the
// platform and turns its frames into events.
//
// The connection lifecycle follows the wire contract: the server opens with
// a hello frame carrying the heartbeat cadence, the client identifies with
// its token, and from then on dispatch frames flow in while the client
// heartbeats on schedule. Decoded dispatches are handed to the session's
// hook and, when configured, published to a broker topic for fan-out.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fogfish/opts"
	"github.com/gorilla/websocket"
	"github.com/strigidae/perch/broker"
	"github.com/strigidae/perch/events"
	"github.com/strigidae/perch/pkg/slogx"
	"github.com/tidwall/sjson"
)

const (
	defaultURL     = "wss://gateway.discord.gg/?v=9&encoding=json"
	writeWait      = 10 * time.Second
	maxMessageSize = 1 << 20
)

// Session is one live gateway connection.
type Session struct {
	token   string
	url     string
	intents int
	hook    events.Hook
	topic   broker.Topic
	dialer  *websocket.Dialer

	conn      *websocket.Conn
	writeMu   sync.Mutex
	sequence  atomic.Int64
	ackedAt   atomic.Int64
	sessionID atomic.Value

	cancel context.CancelFunc
	done   chan struct{}
}

var (
	// Token sets the bot token sent in the identify frame.
	Token = opts.ForName[Session, string]("token")
	// URL overrides the gateway endpoint, mainly for tests.
	URL = opts.ForName[Session, string]("url")
	// Intents sets the event-intent bitmask requested at identify.
	Intents = opts.ForName[Session, int]("intents")
	// Hook receives decoded dispatches and read-loop errors.
	Hook = opts.ForName[Session, events.Hook]("hook")
	// Topic additionally publishes every dispatch to a broker topic.
	Topic = opts.ForName[Session, broker.Topic]("topic")
	// Dialer overrides the websocket dialer.
	Dialer = opts.ForName[Session, *websocket.Dialer]("dialer")
)

// Connect dials the gateway, completes the hello/identify handshake, and
// starts the heartbeat and read loops. The session runs until Close is
// called, ctx is cancelled, or the server ends the connection.
func Connect(ctx context.Context, options ...opts.Option[Session]) (*Session, error) {
	s := &Session{
		url:    defaultURL,
		dialer: websocket.DefaultDialer,
		done:   make(chan struct{}),
	}
	if err := opts.Apply(s, options); err != nil {
		return nil, err
	}
	if s.token == "" {
		return nil, fmt.Errorf("gateway: a token is required")
	}

	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: dial: %w", err)
	}
	conn.SetReadLimit(maxMessageSize)
	s.conn = conn

	hello, err := s.readHello()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := s.identify(); err != nil {
		conn.Close()
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.ackedAt.Store(time.Now().UnixMilli())

	go s.heartbeatLoop(runCtx, hello.HeartbeatInterval)
	go s.readLoop(runCtx)

	return s, nil
}

// Close tears the connection down. It is safe to call more than once.
func (s *Session) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	return s.conn.Close()
}

// Done is closed when the read loop exits.
func (s *Session) Done() <-chan struct{} { return s.done }

// Sequence returns the last dispatch sequence seen, used for resuming.
func (s *Session) Sequence() int64 { return s.sequence.Load() }

// SessionID returns the session ID announced by the READY dispatch, empty
// until then.
func (s *Session) SessionID() string {
	id, _ := s.sessionID.Load().(string)
	return id
}

func (s *Session) readHello() (events.Hello, error) {
	_, frame, err := s.conn.ReadMessage()
	if err != nil {
		return events.Hello{}, fmt.Errorf("gateway: reading hello: %w", err)
	}
	event, err := events.FromJSON(frame)
	if err != nil {
		return events.Hello{}, err
	}
	hello, ok := event.(events.Hello)
	if !ok {
		return events.Hello{}, fmt.Errorf("gateway: expected hello, got %T", event)
	}
	return hello, nil
}

func (s *Session) identify() error {
	frame := []byte(`{"op":2,"d":{"properties":{"$os":"linux","$browser":"perch","$device":"perch"}}}`)
	frame, err := sjson.SetBytes(frame, "d.token", s.token)
	if err != nil {
		return err
	}
	frame, err = sjson.SetBytes(frame, "d.intents", s.intents)
	if err != nil {
		return err
	}
	return s.write(frame)
}

func (s *Session) heartbeat() error {
	frame, err := sjson.SetBytes([]byte(`{"op":1}`), "d", s.sequence.Load())
	if err != nil {
		return err
	}
	return s.write(frame)
}

func (s *Session) write(frame []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, frame)
}

func (s *Session) heartbeatLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// two missed acks means the connection is a zombie
			if time.Since(time.UnixMilli(s.ackedAt.Load())) > 2*interval {
				slog.Warn("heartbeat ack overdue, closing connection", slogx.LoggerName("gateway"))
				s.Close()
				return
			}
			if err := s.heartbeat(); err != nil {
				slog.Error("failed to send heartbeat", slogx.Error(err), slogx.LoggerName("gateway"))
				s.Close()
				return
			}
		}
	}
}

func (s *Session) readLoop(ctx context.Context) {
	defer close(s.done)
	defer s.conn.Close()

	for {
		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("gateway read error", slogx.Error(err), slogx.LoggerName("gateway"))
				if s.hook != nil {
					s.hook.OnError(ctx, err)
				}
			}
			return
		}

		event, err := events.FromJSON(frame)
		if err != nil {
			slog.Error("undecodable gateway frame", slogx.Error(err), slogx.ByteString("frame", frame))
			if s.hook != nil {
				s.hook.OnError(ctx, err)
			}
			continue
		}

		switch e := event.(type) {
		case events.Dispatch:
			s.sequence.Store(e.Sequence)
			if e.Name == "READY" {
				s.sessionID.Store(e.Payload.Get("session_id").String())
			}
			if s.hook != nil {
				s.hook.OnDispatch(ctx, e)
			}
			if s.topic != nil {
				if err := s.topic.Publish(ctx, e); err != nil {
					slog.Error("failed to publish dispatch", slogx.Error(err), slogx.Event(e.Name))
				}
			}
		case events.HeartbeatAck:
			s.ackedAt.Store(time.Now().UnixMilli())
		case events.Reconnect:
			slog.Info("server requested reconnect", slogx.LoggerName("gateway"))
			s.Close()
			return
		case events.InvalidSession:
			slog.Warn("session invalidated", slog.Bool("resumable", e.Resumable), slogx.LoggerName("gateway"))
			if s.hook != nil {
				s.hook.OnError(ctx, fmt.Errorf("gateway: session invalidated (resumable=%v)", e.Resumable))
			}
			s.Close()
			return
		case events.Unknown:
			slog.Debug("ignoring unknown opcode", slogx.Stringer("op", e.Op), slogx.LoggerName("gateway"))
		}
	}
}
