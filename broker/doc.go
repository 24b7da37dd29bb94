// Package broker distributes gateway dispatch events to subscribers.
//
// The gateway's read loop must never block on a consumer, so consumers do
// not hang off the websocket directly: the gateway publishes each dispatch
// into a topic and subscribers drain buffered channels at their own pace.
// Two implementations are provided: Local for in-process fan-out and NATS
// for sharing one gateway connection across processes.
//
// Design decisions:
//   - Context-first: every operation takes a context for cancellation
//   - Slow-subscriber eviction: Local drops subscribers whose buffers stay
//     full past a timeout rather than stalling the publisher
//   - Wire parity: the NATS topic carries the exact frame encoding of
//     events.ToJSON, so remote subscribers decode with events.FromJSON
package broker
