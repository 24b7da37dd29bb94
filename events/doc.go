// Package events defines the frames the gateway connection exchanges with
// the platform and the hook interface consumers implement to receive them.
//
// Design decisions:
//   - Discriminated decoding: frames are dispatched on their "op" field
//     through the GatewayOpcode symbol set, the same try-resolve path entity
//     models use for their own typed fields
//   - Forward compatibility: a frame with an opcode this client does not
//     know decodes to Unknown carrying the raw bytes, never an error, so a
//     newer server cannot wedge the read loop
//   - Marker interface: Event is implemented only by types in this package;
//     the gateway and broker switch over the concrete types
//
// Key concepts:
//   - Hello/HeartbeatAck/Reconnect/InvalidSession: connection control frames
//   - Dispatch: a named platform event with its JSON payload and sequence
//   - Hook: the consumer-facing callback pair for dispatches and errors
//
// Example usage:
//
//	event, err := events.FromJSON(frame)
//	if err != nil {
//	    return err
//	}
//	switch e := event.(type) {
//	case events.Dispatch:
//	    handle(e.Name, e.Payload)
//	case events.Reconnect:
//	    reconnect()
//	}
package events
