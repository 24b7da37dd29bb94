package state

import (
	"testing"

	"github.com/strigidae/perch/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheUsers(t *testing.T) {
	c := NewCache()

	_, ok := c.User(1)
	assert.False(t, ok)

	stored := c.StoreUser(User{ID: 1, Username: "athene", Discriminator: "0001"})
	got, ok := c.User(snowflake.ID(1))
	require.True(t, ok)
	assert.Equal(t, stored, got)
}

func TestCacheChannels(t *testing.T) {
	c := NewCache()

	c.StoreChannel(Channel{ID: 7, Type: 2, GuildID: 3, Name: "voice-lounge"})
	got, ok := c.Channel(7)
	require.True(t, ok)
	assert.Equal(t, "voice-lounge", got.Name)

	c.DropChannel(7)
	_, ok = c.Channel(7)
	assert.False(t, ok)
}
