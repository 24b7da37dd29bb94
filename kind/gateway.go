package kind

import (
	"github.com/strigidae/perch/pkg/stdx"
	"github.com/strigidae/perch/symbol"
)

// GatewayOpcode identifies the frame kinds exchanged over the gateway
// websocket.
var GatewayOpcode = symbol.New("GatewayOpcode", []symbol.Entry[int]{
	symbol.E("dispatch", 0),
	symbol.E("heartbeat", 1),
	symbol.E("identify", 2),
	symbol.E("presence_update", 3),
	symbol.E("voice_state_update", 4),
	symbol.E("resume", 6),
	symbol.E("reconnect", 7),
	symbol.E("request_guild_members", 8),
	symbol.E("invalid_session", 9),
	symbol.E("hello", 10),
	symbol.E("heartbeat_ack", 11),
}, symbol.WithRender[int](symbol.RenderName))

var (
	OpDispatch       = stdx.Must1(GatewayOpcode.Lookup("dispatch"))
	OpHeartbeat      = stdx.Must1(GatewayOpcode.Lookup("heartbeat"))
	OpIdentify       = stdx.Must1(GatewayOpcode.Lookup("identify"))
	OpResume         = stdx.Must1(GatewayOpcode.Lookup("resume"))
	OpReconnect      = stdx.Must1(GatewayOpcode.Lookup("reconnect"))
	OpInvalidSession = stdx.Must1(GatewayOpcode.Lookup("invalid_session"))
	OpHello          = stdx.Must1(GatewayOpcode.Lookup("hello"))
	OpHeartbeatAck   = stdx.Must1(GatewayOpcode.Lookup("heartbeat_ack"))
)
