package events

import (
	"fmt"
	"time"

	"github.com/strigidae/perch/kind"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Event is the closed union of gateway frames. Only types in this package
// implement it.
type Event interface {
	event()
}

// Hello is the first frame after connecting; it carries the heartbeat
// cadence the client must keep.
type Hello struct {
	HeartbeatInterval time.Duration `json:"heartbeat_interval"`
}

func (Hello) event() {}

// Dispatch is a named platform event. Payload holds the parsed "d" field;
// Sequence is the server-side ordering number used for resuming.
type Dispatch struct {
	Sequence int64        `json:"s"`
	Name     string       `json:"t"`
	Payload  gjson.Result `json:"d"`
}

func (Dispatch) event() {}

// HeartbeatAck confirms a heartbeat was received.
type HeartbeatAck struct{}

func (HeartbeatAck) event() {}

// Reconnect instructs the client to drop the connection and reconnect.
type Reconnect struct{}

func (Reconnect) event() {}

// InvalidSession reports that the current session is no longer valid.
// Resumable tells whether a resume is worth attempting.
type InvalidSession struct {
	Resumable bool `json:"d"`
}

func (InvalidSession) event() {}

// Unknown preserves a frame whose opcode this client does not recognize.
// Op is the pass-through symbol for the raw opcode; Raw is the whole frame.
type Unknown struct {
	Op  kind.Int
	Raw []byte
}

func (Unknown) event() {}

// FromJSON decodes a gateway frame. Control frames map to their concrete
// types; unrecognized opcodes map to Unknown rather than failing, matching
// the try-resolve contract of the symbol engine. Only structurally invalid
// frames (bad JSON, missing "op") return an error.
func FromJSON(data []byte) (Event, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid gateway frame: %s", data)
	}
	frame := gjson.ParseBytes(data)
	op := frame.Get("op")
	if !op.Exists() {
		return nil, fmt.Errorf("gateway frame is missing 'op'")
	}

	switch kind.GatewayOpcode.TryResolve(int(op.Int())) {
	case kind.OpHello:
		ms := frame.Get("d.heartbeat_interval").Int()
		return Hello{HeartbeatInterval: time.Duration(ms) * time.Millisecond}, nil
	case kind.OpDispatch:
		return Dispatch{
			Sequence: frame.Get("s").Int(),
			Name:     frame.Get("t").String(),
			Payload:  frame.Get("d"),
		}, nil
	case kind.OpHeartbeatAck:
		return HeartbeatAck{}, nil
	case kind.OpReconnect:
		return Reconnect{}, nil
	case kind.OpInvalidSession:
		return InvalidSession{Resumable: frame.Get("d").Bool()}, nil
	default:
		raw := make([]byte, len(data))
		copy(raw, data)
		return Unknown{Op: kind.GatewayOpcode.TryResolve(int(op.Int())), Raw: raw}, nil
	}
}

// ToJSON encodes an event back into its frame form. Unknown frames round
// trip byte for byte.
func ToJSON(e Event) ([]byte, error) {
	switch e := e.(type) {
	case Hello:
		frame, err := sjson.SetBytes([]byte(`{"op":10}`), "d.heartbeat_interval", e.HeartbeatInterval.Milliseconds())
		return frame, err
	case Dispatch:
		frame, err := sjson.SetBytes([]byte(`{"op":0}`), "s", e.Sequence)
		if err != nil {
			return nil, err
		}
		frame, err = sjson.SetBytes(frame, "t", e.Name)
		if err != nil {
			return nil, err
		}
		if e.Payload.Exists() {
			return sjson.SetRawBytes(frame, "d", []byte(e.Payload.Raw))
		}
		return frame, nil
	case HeartbeatAck:
		return []byte(`{"op":11}`), nil
	case Reconnect:
		return []byte(`{"op":7}`), nil
	case InvalidSession:
		return sjson.SetBytes([]byte(`{"op":9}`), "d", e.Resumable)
	case Unknown:
		return e.Raw, nil
	default:
		return nil, fmt.Errorf("unknown event type: %T", e)
	}
}
