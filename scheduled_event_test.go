package perch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/strigidae/perch/kind"
	"github.com/strigidae/perch/pkg/snowflake"
	"github.com/strigidae/perch/rest"
	"github.com/strigidae/perch/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const eventPayload = `{
	"id": "9",
	"guild_id": "1",
	"channel_id": null,
	"creator_id": "42",
	"name": "game night",
	"description": "bring snacks",
	"scheduled_start_time": "2030-01-01T20:00:00Z",
	"scheduled_end_time": "2030-01-01T23:00:00Z",
	"privacy_level": 2,
	"status": 1,
	"entity_type": 3,
	"entity_metadata": {"location": "the park"},
	"user_count": 12,
	"creator": {"id": "42", "username": "alice", "discriminator": "0001"}
}`

func testClientAt(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(
		WithToken("test-token"),
		WithREST(rest.New(rest.Token("test-token"), rest.BaseURL(server.URL))),
	)
}

func TestScheduledEventDecode(t *testing.T) {
	c := New(WithToken("t"))
	ev := newScheduledEvent(c, gjson.Parse(eventPayload))

	assert.Equal(t, snowflake.ID(9), ev.ID)
	assert.Equal(t, snowflake.ID(1), ev.GuildID)
	assert.True(t, ev.ChannelID.IsZero())
	assert.Equal(t, "game night", ev.Name)
	assert.Same(t, kind.EventScheduled, ev.Status)
	assert.Same(t, kind.EntityTypeExternal, ev.EntityType)
	assert.Equal(t, "the park", ev.Location())
	require.NotNil(t, ev.UserCount)
	assert.Equal(t, 12, *ev.UserCount)
	require.NotNil(t, ev.EndTime)
	assert.Equal(t, 2030, time.Time(ev.StartTime).Year())

	creator, ok := ev.Creator()
	require.True(t, ok, "creator should be cached from the payload")
	assert.Equal(t, "alice", creator.Username)

	assert.Equal(t, "https://discord.com/events/1/9", ev.URL())
}

func TestScheduledEventDecodeUnknownRawValues(t *testing.T) {
	c := New(WithToken("t"))
	ev := newScheduledEvent(c, gjson.Parse(`{"id":"9","status":99,"entity_type":88}`))

	assert.False(t, ev.Status.Known())
	assert.Equal(t, 99, ev.Status.Value())
	assert.False(t, kind.EventStatus.Contains(ev.Status))
	assert.Nil(t, ev.UserCount)
	assert.Nil(t, ev.EndTime)
}

func TestFetchScheduledEvent(t *testing.T) {
	var gotPath string
	c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Write([]byte(eventPayload))
	})

	ev, err := c.FetchScheduledEvent(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.Equal(t, "/guilds/1/scheduled-events/9?with_user_count=true", gotPath)
	assert.Equal(t, "game night", ev.Name)
}

func TestScheduledEventEditPatchesSparsely(t *testing.T) {
	var gotBody []byte
	var gotReason string
	c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotReason = r.Header.Get("X-Audit-Log-Reason")
		w.Write([]byte(`{"id":"9","name":"movie night","status":2,"entity_type":3}`))
	})
	ev := newScheduledEvent(c, gjson.Parse(eventPayload))

	err := ev.Edit(context.Background(),
		EditName("movie night"),
		EditStatus(kind.EventActive),
		EditReason("rescheduled"),
	)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, "movie night", body["name"])
	assert.Equal(t, float64(2), body["status"])
	assert.NotContains(t, body, "description", "untouched fields stay out of the patch")
	assert.Equal(t, "rescheduled", gotReason)

	assert.Equal(t, "movie night", ev.Name, "model refreshes from the response")
	assert.Same(t, kind.EventActive, ev.Status)
}

func TestScheduledEventEditValidation(t *testing.T) {
	c := New(WithToken("t"))

	t.Run("name length", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		err := ev.Edit(context.Background(), EditName(""))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("moving an external event needs a known channel type", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		err := ev.Edit(context.Background(), EditChannel(77))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("location and channel are mutually exclusive", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		err := ev.Edit(context.Background(), EditLocation("the park"), EditChannel(77))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("external event cannot clear its end time", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		err := ev.Edit(context.Background(), EditClearEnd())
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("switch to external requires location and end time", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(`{"id":"9","status":1,"entity_type":2,"channel_id":"5"}`))
		err := ev.Edit(context.Background(), EditEntityType(kind.EntityTypeExternal))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("switch to voice requires a channel", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		err := ev.Edit(context.Background(), EditEntityType(kind.EntityTypeVoice))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("cached channel must be voice or stage", func(t *testing.T) {
		c := New(WithToken("t"))
		c.State().StoreChannel(state.Channel{ID: 77, Type: 0, Name: "general"})
		ev := newScheduledEvent(c, gjson.Parse(`{"id":"9","status":1,"entity_type":2,"channel_id":"5"}`))
		err := ev.Edit(context.Background(), EditChannel(77))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("start time in the past", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		err := ev.Edit(context.Background(), EditStart(time.Now().Add(-time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("end before start", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		start := time.Now().Add(48 * time.Hour)
		err := ev.Edit(context.Background(), EditStart(start), EditEnd(start.Add(-time.Minute)))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("start moved past the existing end time", func(t *testing.T) {
		// eventPayload ends 2030-01-01T23:00Z; the new start alone breaks
		// the ordering.
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		err := ev.Edit(context.Background(), EditStart(time.Date(2031, 6, 1, 20, 0, 0, 0, time.UTC)))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown status symbol rejected", func(t *testing.T) {
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))
		err := ev.Edit(context.Background(), EditStatus(kind.EventStatus.TryResolve(99)))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestScheduledEventEditCoercions(t *testing.T) {
	t.Run("location switches the event to external", func(t *testing.T) {
		var gotBody []byte
		c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"id":"9"}`))
		})
		ev := newScheduledEvent(c, gjson.Parse(`{
			"id":"9","status":1,"entity_type":2,"channel_id":"5",
			"scheduled_start_time":"2030-01-01T20:00:00Z","scheduled_end_time":"2030-01-01T23:00:00Z"
		}`))

		require.NoError(t, ev.Edit(context.Background(), EditLocation("city hall")))

		body := gjson.ParseBytes(gotBody)
		assert.Equal(t, int64(3), body.Get("entity_type").Int())
		assert.Equal(t, gjson.Null, body.Get("channel_id").Type, "channel cleared in the same patch")
		assert.Equal(t, "city hall", body.Get("entity_metadata.location").String())
	})

	t.Run("channel switches an external event to the channel's type", func(t *testing.T) {
		var gotBody []byte
		c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"id":"9"}`))
		})
		c.State().StoreChannel(state.Channel{ID: 77, Type: 13, Name: "main stage"})
		ev := newScheduledEvent(c, gjson.Parse(eventPayload))

		require.NoError(t, ev.Edit(context.Background(), EditChannel(77)))

		body := gjson.ParseBytes(gotBody)
		assert.Equal(t, "77", body.Get("channel_id").String())
		assert.Equal(t, int64(1), body.Get("entity_type").Int(), "stage channel implies the stage entity type")
		assert.Equal(t, gjson.Null, body.Get("entity_metadata").Type, "location dropped")
	})
}

func TestScheduledEventStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from int
		to   kind.Int
		ok   bool
	}{
		{"scheduled to active", 1, kind.EventActive, true},
		{"scheduled to canceled", 1, kind.EventCanceled, true},
		{"scheduled to completed", 1, kind.EventCompleted, false},
		{"active to completed", 2, kind.EventCompleted, true},
		{"active to canceled", 2, kind.EventCanceled, false},
		{"completed is terminal", 3, kind.EventActive, false},
		{"canceled is terminal", 4, kind.EventScheduled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":"9"}`))
			})
			ev := newScheduledEvent(c, gjson.Parse(eventPayload))
			ev.Status = kind.EventStatus.TryResolve(tc.from)

			err := ev.Edit(context.Background(), EditStatus(tc.to))
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			}
		})
	}
}

func TestScheduledEventDelete(t *testing.T) {
	var gotMethod, gotPath string
	c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})
	ev := newScheduledEvent(c, gjson.Parse(eventPayload))

	require.NoError(t, ev.Delete(context.Background(), "spam"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/guilds/1/scheduled-events/9", gotPath)
}

func TestScheduledEventUsersPagination(t *testing.T) {
	pages := 0
	c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		pages++
		after := r.URL.Query().Get("after")
		if after == "" {
			// Full first page, so the client asks for another.
			w.Write([]byte(fullUserPage(t, 1, 100)))
			return
		}
		assert.Equal(t, "100", after)
		w.Write([]byte(`[{"user":{"id":"101","username":"zoe"}}]`))
	})
	ev := newScheduledEvent(c, gjson.Parse(eventPayload))

	users, err := ev.Users(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.Len(t, users, 101)
	assert.Equal(t, "zoe", users[100].Username)

	cached, ok := c.State().User(101)
	require.True(t, ok)
	assert.Equal(t, "zoe", cached.Username)
}

func TestScheduledEventUsersLimit(t *testing.T) {
	var gotLimits []string
	c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		gotLimits = append(gotLimits, r.URL.Query().Get("limit"))
		switch r.URL.Query().Get("after") {
		case "":
			w.Write([]byte(fullUserPage(t, 1, 100)))
		default:
			w.Write([]byte(fullUserPage(t, 101, 150)))
		}
	})
	ev := newScheduledEvent(c, gjson.Parse(eventPayload))

	users, err := ev.Users(context.Background(), UsersLimit(150))
	require.NoError(t, err)
	assert.Len(t, users, 150, "collection stops at the limit even if more users exist")
	assert.Equal(t, []string{"100", "50"}, gotLimits, "the final page only asks for the remainder")
}

func TestScheduledEventUsersBeforeCursor(t *testing.T) {
	var gotQueries []string
	c := testClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		gotQueries = append(gotQueries, r.URL.RawQuery)
		switch r.URL.Query().Get("before") {
		case "200":
			w.Write([]byte(fullUserPage(t, 100, 199)))
		default:
			w.Write([]byte(`[]`))
		}
	})
	ev := newScheduledEvent(c, gjson.Parse(eventPayload))

	users, err := ev.Users(context.Background(), UsersBefore(200), UsersWithMember())
	require.NoError(t, err)
	assert.Len(t, users, 100)

	require.Len(t, gotQueries, 2)
	assert.Contains(t, gotQueries[0], "before=200")
	assert.Contains(t, gotQueries[0], "with_member=true")
	assert.Contains(t, gotQueries[1], "before=100", "the cursor advances to the lowest ID seen")
}

func TestScheduledEventUsersRejectsNegativeLimit(t *testing.T) {
	c := New(WithToken("t"))
	ev := newScheduledEvent(c, gjson.Parse(eventPayload))

	_, err := ev.Users(context.Background(), UsersLimit(-1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func fullUserPage(t *testing.T, from, to int) string {
	t.Helper()
	type wireUser struct {
		ID       snowflake.ID `json:"id"`
		Username string       `json:"username"`
	}
	page := make([]map[string]wireUser, 0, to-from+1)
	for id := from; id <= to; id++ {
		page = append(page, map[string]wireUser{
			"user": {ID: snowflake.ID(id), Username: "member"},
		})
	}
	raw, err := json.Marshal(page)
	require.NoError(t, err)
	return string(raw)
}
