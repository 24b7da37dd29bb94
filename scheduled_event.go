package perch

import (
	"context"
	"fmt"
	"time"

	"github.com/fogfish/opts"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/strigidae/perch/kind"
	"github.com/strigidae/perch/pkg/snowflake"
	"github.com/strigidae/perch/pkg/stdx"
	"github.com/strigidae/perch/state"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ScheduledEvent is a guild scheduled event. Instances come from
// Client.FetchScheduledEvent or gateway dispatches and stay bound to the
// client that produced them.
type ScheduledEvent struct {
	client *Client

	ID           snowflake.ID
	GuildID      snowflake.ID
	ChannelID    snowflake.ID
	CreatorID    snowflake.ID
	Name         string
	Description  string
	StartTime    strfmt.DateTime
	EndTime      *strfmt.DateTime
	PrivacyLevel kind.Int
	Status       kind.Int
	EntityType   kind.Int
	EntityID     snowflake.ID
	CoverImage   string
	// UserCount is only present when the event was fetched with the
	// subscriber count included.
	UserCount *int

	location string
}

func newScheduledEvent(c *Client, data gjson.Result) *ScheduledEvent {
	ev := &ScheduledEvent{client: c}
	ev.update(data)
	return ev
}

// update overwrites the event from an API payload. Unknown raw values for
// status and entity type come back as pass-through symbols, so a newer API
// never breaks decoding.
func (ev *ScheduledEvent) update(data gjson.Result) {
	ev.ID = snowflake.FromResult(data.Get("id"))
	ev.GuildID = snowflake.FromResult(data.Get("guild_id"))
	ev.ChannelID = snowflake.FromResult(data.Get("channel_id"))
	ev.CreatorID = snowflake.FromResult(data.Get("creator_id"))
	ev.EntityID = snowflake.FromResult(data.Get("entity_id"))
	ev.Name = data.Get("name").String()
	ev.Description = data.Get("description").String()
	ev.CoverImage = data.Get("image").String()

	ev.StartTime = parseTimestamp(data.Get("scheduled_start_time"))
	ev.EndTime = nil
	if end := data.Get("scheduled_end_time"); end.Type == gjson.String {
		t := parseTimestamp(end)
		ev.EndTime = &t
	}

	ev.PrivacyLevel = kind.PrivacyLevel.TryResolve(int(data.Get("privacy_level").Int()))
	ev.Status = kind.EventStatus.TryResolve(int(data.Get("status").Int()))
	ev.EntityType = kind.EventEntityType.TryResolve(int(data.Get("entity_type").Int()))

	ev.UserCount = nil
	if count := data.Get("user_count"); count.Exists() {
		ev.UserCount = swag.Int(int(count.Int()))
	}

	ev.location = data.Get("entity_metadata.location").String()

	if creator := data.Get("creator"); creator.Exists() && ev.client != nil {
		ev.client.cache.StoreUser(decodeUser(creator))
	}
}

// Location returns the external location, which is only set for events with
// the external entity type.
func (ev *ScheduledEvent) Location() string { return ev.location }

// Channel returns the cached voice or stage channel the event runs in, if
// the event has one and the channel has been seen.
func (ev *ScheduledEvent) Channel() (state.Channel, bool) {
	if ev.ChannelID.IsZero() || ev.client == nil {
		return state.Channel{}, false
	}
	return ev.client.cache.Channel(ev.ChannelID)
}

// Creator returns the cached user that created the event.
func (ev *ScheduledEvent) Creator() (state.User, bool) {
	if ev.CreatorID.IsZero() || ev.client == nil {
		return state.User{}, false
	}
	return ev.client.cache.User(ev.CreatorID)
}

// URL is the canonical link to the event.
func (ev *ScheduledEvent) URL() string {
	return fmt.Sprintf("https://discord.com/events/%s/%s", ev.GuildID, ev.ID)
}

// eventEdit accumulates the sparse patch an Edit call sends. Fields that
// were never set stay out of the request body entirely.
type eventEdit struct {
	patch  []byte
	reason string

	entityType kind.Int
	status     kind.Int
	channelID  snowflake.ID
	location   string
	start      *time.Time
	end        *time.Time
	clearEnd   bool
}

func (e *eventEdit) set(path string, value any) error {
	patch, err := sjson.SetBytes(e.patch, path, value)
	if err != nil {
		return err
	}
	e.patch = patch
	return nil
}

// EditName renames the event. Names are 1 to 100 characters.
func EditName(name string) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		if len(name) == 0 || len(name) > 100 {
			return fmt.Errorf("%w: name must be 1-100 characters", ErrInvalidArgument)
		}
		return e.set("name", name)
	})
}

// EditDescription sets the description, up to 1000 characters.
func EditDescription(description string) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		if len(description) == 0 || len(description) > 1000 {
			return fmt.Errorf("%w: description must be 1-1000 characters", ErrInvalidArgument)
		}
		return e.set("description", description)
	})
}

// EditLocation sets the external location, up to 100 characters. It implies
// the external entity type: an event that was not external becomes so, and
// its channel is cleared.
func EditLocation(location string) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		if len(location) == 0 || len(location) > 100 {
			return fmt.Errorf("%w: location must be 1-100 characters", ErrInvalidArgument)
		}
		e.location = location
		return e.set("entity_metadata.location", location)
	})
}

// EditChannel moves the event to another voice or stage channel. Moving an
// external event into a channel switches its entity type to match the
// channel and drops the location.
func EditChannel(channelID snowflake.ID) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		if channelID.IsZero() {
			return fmt.Errorf("%w: channel id must be set", ErrInvalidArgument)
		}
		e.channelID = channelID
		return e.set("channel_id", channelID.String())
	})
}

// EditEntityType changes where the event takes place. Switching to external
// requires a location and an end time (already on the event or set in the
// same call); switching to voice or stage requires a channel.
func EditEntityType(entityType kind.Int) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		if !kind.EventEntityType.Contains(entityType) {
			return fmt.Errorf("%w: %v is not an entity type", ErrInvalidArgument, entityType)
		}
		e.entityType = entityType
		return e.set("entity_type", entityType.Value())
	})
}

// EditStatus transitions the event's lifecycle state. Scheduled events can
// become active or canceled, active events can complete, and completed or
// canceled events cannot change again.
func EditStatus(status kind.Int) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		if !kind.EventStatus.Contains(status) {
			return fmt.Errorf("%w: %v is not an event status", ErrInvalidArgument, status)
		}
		e.status = status
		return e.set("status", status.Value())
	})
}

// EditStart reschedules the start. The time must be in the future.
func EditStart(start time.Time) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		e.start = &start
		return e.set("scheduled_start_time", start.UTC().Format(time.RFC3339))
	})
}

// EditEnd sets the end time, which must follow the start.
func EditEnd(end time.Time) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		e.end = &end
		return e.set("scheduled_end_time", end.UTC().Format(time.RFC3339))
	})
}

// EditClearEnd removes the end time. Not allowed while the entity type is
// external.
func EditClearEnd() opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		e.clearEnd = true
		return e.set("scheduled_end_time", nil)
	})
}

// EditReason attaches an audit-log reason to the request.
func EditReason(reason string) opts.Option[eventEdit] {
	return opts.Type[eventEdit](func(e *eventEdit) error {
		e.reason = reason
		return nil
	})
}

// Edit patches the event with only the fields the given options touch and
// refreshes the model from the response. Validation failures wrap
// ErrInvalidArgument and never reach the API.
func (ev *ScheduledEvent) Edit(ctx context.Context, options ...opts.Option[eventEdit]) error {
	edit := &eventEdit{patch: []byte(`{}`)}
	if err := opts.Apply(edit, options); err != nil {
		return err
	}
	if err := ev.validateEdit(edit); err != nil {
		return err
	}
	data, err := ev.client.rest.EditScheduledEvent(ctx, ev.GuildID, ev.ID, edit.patch, edit.reason)
	if err != nil {
		return err
	}
	ev.update(data)
	return nil
}

// validateEdit checks an accumulated patch against the event's current
// state, applying the same coercions the API expects: a location implies the
// external entity type and no channel, a channel on an external event
// switches the entity type to match the channel.
func (ev *ScheduledEvent) validateEdit(edit *eventEdit) error {
	if edit.location != "" && !edit.channelID.IsZero() {
		return fmt.Errorf("%w: an event has either a location or a channel, not both", ErrInvalidArgument)
	}

	entityType := ev.EntityType
	if edit.entityType != nil {
		entityType = edit.entityType
		if entityType == kind.EntityTypeExternal && edit.location == "" && ev.location == "" {
			return fmt.Errorf("%w: external events require a location", ErrInvalidArgument)
		}
	}

	if edit.location != "" && entityType != kind.EntityTypeExternal {
		entityType = kind.EntityTypeExternal
		stdx.Must0(edit.set("entity_type", entityType.Value()))
		stdx.Must0(edit.set("channel_id", nil))
	}

	hasChannel := !ev.ChannelID.IsZero()
	if !edit.channelID.IsZero() {
		hasChannel = true

		var channelType kind.Int
		if ev.client != nil {
			if cached, ok := ev.client.cache.Channel(edit.channelID); ok {
				channelType = kind.ChannelType.TryResolve(cached.Type)
				if channelType != kind.ChannelVoice && channelType != kind.ChannelStageVoice {
					return fmt.Errorf("%w: events can only run in voice or stage channels, not %s",
						ErrInvalidArgument, channelType)
				}
			}
		}
		if entityType == kind.EntityTypeExternal {
			// The patch has to carry the entity type matching the channel,
			// which requires knowing what kind of channel it is.
			switch channelType {
			case kind.ChannelVoice:
				entityType = kind.EntityTypeVoice
			case kind.ChannelStageVoice:
				entityType = kind.EntityTypeStage
			default:
				return fmt.Errorf("%w: channel %s is not known to be a voice or stage channel",
					ErrInvalidArgument, edit.channelID)
			}
			stdx.Must0(edit.set("entity_type", entityType.Value()))
			stdx.Must0(edit.set("entity_metadata", nil))
		}
	}
	if entityType != kind.EntityTypeExternal && !hasChannel {
		return fmt.Errorf("%w: %s events require a channel", ErrInvalidArgument, entityType.Name())
	}

	now := time.Now()
	if edit.end != nil && edit.end.Before(now) {
		return fmt.Errorf("%w: end time must be in the future", ErrInvalidArgument)
	}

	// Effective times: the edit's value when set, the event's otherwise.
	var end *time.Time
	switch {
	case edit.end != nil:
		end = edit.end
	case !edit.clearEnd && ev.EndTime != nil:
		t := time.Time(*ev.EndTime)
		end = &t
	}
	if entityType == kind.EntityTypeExternal && end == nil {
		return fmt.Errorf("%w: external events require an end time", ErrInvalidArgument)
	}

	start := time.Time(ev.StartTime)
	if edit.start != nil {
		if edit.start.Before(now) {
			return fmt.Errorf("%w: start time must be in the future", ErrInvalidArgument)
		}
		start = *edit.start
	}
	if (edit.start != nil || edit.end != nil) && end != nil && !end.After(start) {
		return fmt.Errorf("%w: end time must follow the start time", ErrInvalidArgument)
	}

	if edit.status != nil {
		if err := ev.validateTransition(edit.status); err != nil {
			return err
		}
	}
	return nil
}

func (ev *ScheduledEvent) validateTransition(next kind.Int) error {
	switch ev.Status {
	case kind.EventScheduled:
		if next == kind.EventActive || next == kind.EventCanceled {
			return nil
		}
	case kind.EventActive:
		if next == kind.EventCompleted {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot transition event from %s to %s",
		ErrInvalidArgument, ev.Status.Name(), next.Name())
}

// Delete removes the event. The reason, if not empty, lands in the guild's
// audit log.
func (ev *ScheduledEvent) Delete(ctx context.Context, reason string) error {
	return ev.client.rest.DeleteScheduledEvent(ctx, ev.GuildID, ev.ID, reason)
}

// usersQuery holds the pagination controls of a Users call.
type usersQuery struct {
	limit      int
	before     snowflake.ID
	after      snowflake.ID
	withMember bool
}

// UsersLimit caps how many users Users collects in total. Zero or absent
// means all of them.
func UsersLimit(limit int) opts.Option[usersQuery] {
	return opts.Type[usersQuery](func(q *usersQuery) error {
		if limit < 0 {
			return fmt.Errorf("%w: limit must not be negative", ErrInvalidArgument)
		}
		q.limit = limit
		return nil
	})
}

// UsersBefore starts paging at the exclusive upper ID cursor, walking
// descending IDs instead of the default ascending order.
func UsersBefore(id snowflake.ID) opts.Option[usersQuery] {
	return opts.Type[usersQuery](func(q *usersQuery) error {
		q.before = id
		return nil
	})
}

// UsersAfter starts paging at the exclusive lower ID cursor.
func UsersAfter(id snowflake.ID) opts.Option[usersQuery] {
	return opts.Type[usersQuery](func(q *usersQuery) error {
		q.after = id
		return nil
	})
}

// UsersWithMember asks the API to include guild member data with each user.
func UsersWithMember() opts.Option[usersQuery] {
	return opts.Type[usersQuery](func(q *usersQuery) error {
		q.withMember = true
		return nil
	})
}

// Users pages through the users subscribed to the event, caching each one.
// Pagination is transparent: without options it walks ascending IDs until
// the API runs out; UsersLimit caps the total, UsersBefore/UsersAfter set
// the starting cursor. The API caps pages at 100 users.
func (ev *ScheduledEvent) Users(ctx context.Context, options ...opts.Option[usersQuery]) ([]state.User, error) {
	const pageMax = 100

	q := &usersQuery{}
	if err := opts.Apply(q, options); err != nil {
		return nil, err
	}

	var users []state.User
	before, after := q.before, q.after
	descending := !q.before.IsZero()
	for {
		size := pageMax
		if q.limit > 0 {
			if remaining := q.limit - len(users); remaining < size {
				size = remaining
			}
		}
		if size <= 0 {
			return users, nil
		}

		page, err := ev.client.rest.ScheduledEventUsers(ctx, ev.GuildID, ev.ID, size, before, after, q.withMember)
		if err != nil {
			return nil, err
		}
		entries := page.Array()
		for _, entry := range entries {
			u := decodeUser(entry.Get("user"))
			ev.client.cache.StoreUser(u)
			users = append(users, u)
			if descending {
				if u.ID < before {
					before = u.ID
				}
			} else if u.ID > after {
				after = u.ID
			}
		}
		if len(entries) < size {
			return users, nil
		}
	}
}

func parseTimestamp(r gjson.Result) strfmt.DateTime {
	if r.Type != gjson.String {
		return strfmt.DateTime{}
	}
	dt, err := strfmt.ParseDateTime(r.String())
	if err != nil {
		return strfmt.DateTime{}
	}
	return dt
}
