package broker

import (
	"testing"

	"github.com/strigidae/perch/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchFrame(t *testing.T, name string) []byte {
	t.Helper()
	frame, err := events.ToJSON(events.Dispatch{Sequence: 1, Name: name})
	require.NoError(t, err)
	return frame
}

func TestRelayDispatchForwards(t *testing.T) {
	sub := make(chan events.Dispatch, 1)

	assert.True(t, relayDispatch(sub, dispatchFrame(t, "GUILD_CREATE")))

	got := <-sub
	assert.Equal(t, "GUILD_CREATE", got.Name)
}

func TestRelayDispatchDropsWhenBufferFull(t *testing.T) {
	sub := make(chan events.Dispatch, 1)

	assert.True(t, relayDispatch(sub, dispatchFrame(t, "first")))
	// nobody is draining; the second frame must be dropped, not block
	assert.False(t, relayDispatch(sub, dispatchFrame(t, "second")))

	got := <-sub
	assert.Equal(t, "first", got.Name)
}

func TestRelayDispatchIgnoresControlFramesAndGarbage(t *testing.T) {
	sub := make(chan events.Dispatch, 1)

	assert.False(t, relayDispatch(sub, []byte(`{"op":11}`)), "heartbeat ack is not a dispatch")
	assert.False(t, relayDispatch(sub, []byte(`not json`)))
	assert.Empty(t, sub)
}
