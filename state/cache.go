// Package state keeps the client's in-memory view of entities referenced by
// payloads: users and channels seen on the gateway or embedded in REST
// responses. The cache is a plain lookup table, not a source of truth; a
// miss means the caller works with IDs only.
package state

import (
	"github.com/alphadose/haxmap"
	"github.com/strigidae/perch/pkg/snowflake"
)

// User is the cached shape of a user object.
type User struct {
	ID            snowflake.ID
	Username      string
	Discriminator string
	Avatar        string
	Bot           bool
	PublicFlags   int
}

// Channel is the cached shape of a channel reference: its ID, decoded type
// raw value, and guild.
type Channel struct {
	ID      snowflake.ID
	Type    int
	GuildID snowflake.ID
	Name    string
}

// Cache is safe for concurrent use; both maps are lock-free.
type Cache struct {
	users    *haxmap.Map[uint64, User]
	channels *haxmap.Map[uint64, Channel]
}

func NewCache() *Cache {
	return &Cache{
		users:    haxmap.New[uint64, User](),
		channels: haxmap.New[uint64, Channel](),
	}
}

// StoreUser records a user seen in a payload and returns it.
func (c *Cache) StoreUser(u User) User {
	c.users.Set(uint64(u.ID), u)
	return u
}

// User returns the cached user with the given ID.
func (c *Cache) User(id snowflake.ID) (User, bool) {
	return c.users.Get(uint64(id))
}

// StoreChannel records a channel reference.
func (c *Cache) StoreChannel(ch Channel) Channel {
	c.channels.Set(uint64(ch.ID), ch)
	return ch
}

// Channel returns the cached channel with the given ID.
func (c *Cache) Channel(id snowflake.ID) (Channel, bool) {
	return c.channels.Get(uint64(id))
}

// DropChannel removes a channel, for CHANNEL_DELETE dispatches.
func (c *Cache) DropChannel(id snowflake.ID) {
	c.channels.Del(uint64(id))
}
