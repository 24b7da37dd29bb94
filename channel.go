package perch

import (
	"context"

	"github.com/go-openapi/swag"
	"github.com/strigidae/perch/kind"
	"github.com/strigidae/perch/pkg/snowflake"
	"github.com/strigidae/perch/state"
	"github.com/tidwall/gjson"
)

// Channel is the full wire shape of a channel object. Optional fields the
// payload omitted are nil pointers, so "absent" and "zero" stay apart.
type Channel struct {
	ID      snowflake.ID
	Type    kind.Int
	GuildID snowflake.ID
	Name    string

	Position   *int
	Topic      *string
	NSFW       *bool
	Bitrate    *int
	UserLimit  *int
	RateLimit  *int
	ParentID   snowflake.ID
	LastMsgID  snowflake.ID
	Overwrites []Overwrite
	Thread     *ThreadMetadata
}

// Overwrite is a permission overwrite on a channel, targeting a role or a
// member depending on Type.
type Overwrite struct {
	ID    snowflake.ID
	Type  kind.Int
	Allow uint64
	Deny  uint64
}

// ThreadMetadata is the thread-only portion of a channel object.
type ThreadMetadata struct {
	Archived         bool
	AutoArchiveAfter int
	Locked           bool
	Invitable        *bool
}

// DecodeChannel builds a Channel from an API payload. The type field
// resolves through the channel-type symbol set; unrecognized raw values
// decode to pass-through symbols rather than failing.
func DecodeChannel(data gjson.Result) Channel {
	ch := Channel{
		ID:        snowflake.FromResult(data.Get("id")),
		Type:      kind.ChannelType.TryResolve(int(data.Get("type").Int())),
		GuildID:   snowflake.FromResult(data.Get("guild_id")),
		Name:      data.Get("name").String(),
		ParentID:  snowflake.FromResult(data.Get("parent_id")),
		LastMsgID: snowflake.FromResult(data.Get("last_message_id")),
	}

	if v := data.Get("position"); v.Exists() {
		ch.Position = swag.Int(int(v.Int()))
	}
	if v := data.Get("topic"); v.Type == gjson.String {
		ch.Topic = swag.String(v.String())
	}
	if v := data.Get("nsfw"); v.Exists() {
		ch.NSFW = swag.Bool(v.Bool())
	}
	if v := data.Get("bitrate"); v.Exists() {
		ch.Bitrate = swag.Int(int(v.Int()))
	}
	if v := data.Get("user_limit"); v.Exists() {
		ch.UserLimit = swag.Int(int(v.Int()))
	}
	if v := data.Get("rate_limit_per_user"); v.Exists() {
		ch.RateLimit = swag.Int(int(v.Int()))
	}

	data.Get("permission_overwrites").ForEach(func(_, ow gjson.Result) bool {
		ch.Overwrites = append(ch.Overwrites, Overwrite{
			ID:    snowflake.FromResult(ow.Get("id")),
			Type:  kind.PermissionType.TryResolve(int(ow.Get("type").Int())),
			Allow: ow.Get("allow").Uint(),
			Deny:  ow.Get("deny").Uint(),
		})
		return true
	})

	if meta := data.Get("thread_metadata"); meta.Exists() {
		tm := &ThreadMetadata{
			Archived:         meta.Get("archived").Bool(),
			AutoArchiveAfter: int(meta.Get("auto_archive_duration").Int()),
			Locked:           meta.Get("locked").Bool(),
		}
		if v := meta.Get("invitable"); v.Exists() {
			tm.Invitable = swag.Bool(v.Bool())
		}
		ch.Thread = tm
	}
	return ch
}

// IsThread reports whether the channel is any thread variant.
func (ch Channel) IsThread() bool {
	switch ch.Type.Name() {
	case "news_thread", "public_thread", "private_thread":
		return true
	}
	return false
}

// ref is the cacheable projection of the channel.
func (ch Channel) ref() state.Channel {
	return state.Channel{
		ID:      ch.ID,
		Type:    ch.Type.Value(),
		GuildID: ch.GuildID,
		Name:    ch.Name,
	}
}

// FetchChannel loads a channel by ID and caches its reference.
func (c *Client) FetchChannel(ctx context.Context, channelID snowflake.ID) (Channel, error) {
	data, err := c.rest.Channel(ctx, channelID)
	if err != nil {
		return Channel{}, err
	}
	ch := DecodeChannel(data)
	c.cache.StoreChannel(ch.ref())
	return ch, nil
}

func decodeUser(data gjson.Result) state.User {
	return state.User{
		ID:            snowflake.FromResult(data.Get("id")),
		Username:      data.Get("username").String(),
		Discriminator: data.Get("discriminator").String(),
		Avatar:        data.Get("avatar").String(),
		Bot:           data.Get("bot").Bool(),
		PublicFlags:   int(data.Get("public_flags").Int()),
	}
}
