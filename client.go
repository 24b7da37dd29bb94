package perch

import (
	"context"
	"errors"

	"github.com/fogfish/opts"
	"github.com/strigidae/perch/broker"
	"github.com/strigidae/perch/events"
	"github.com/strigidae/perch/gateway"
	"github.com/strigidae/perch/pkg/snowflake"
	"github.com/strigidae/perch/rest"
	"github.com/strigidae/perch/state"
)

// ErrInvalidArgument wraps every client-side validation failure, so callers
// can distinguish "the request never left this process" from API errors.
var ErrInvalidArgument = errors.New("invalid argument")

// DispatchTopic is the broker topic gateway dispatches are published to.
const DispatchTopic = "perch.dispatch"

// Client is the entry point of the library. It bundles the REST client,
// the entity cache, and the broker used for gateway fan-out.
type Client struct {
	token   string
	intents int
	rest    *rest.Client
	cache   *state.Cache
	broker  broker.Broker
}

var (
	// WithToken sets the bot token used for REST and gateway auth.
	WithToken = opts.ForName[Client, string]("token")
	// WithIntents sets the gateway event-intent bitmask.
	WithIntents = opts.ForName[Client, int]("intents")
	// WithREST swaps in a preconfigured REST client.
	WithREST = opts.ForName[Client, *rest.Client]("rest")
	// WithBroker swaps the in-process broker for another implementation,
	// such as broker.NATS.
	WithBroker = opts.ForName[Client, broker.Broker]("broker")
)

// New builds a Client. By default dispatches fan out in-process and REST
// requests use the public API endpoint.
func New(options ...opts.Option[Client]) *Client {
	c := &Client{
		cache:  state.NewCache(),
		broker: broker.Local(),
	}
	if err := opts.Apply(c, options); err != nil {
		panic(err)
	}
	if c.rest == nil {
		c.rest = rest.New(rest.Token(c.token))
	}
	return c
}

// State exposes the entity cache.
func (c *Client) State() *state.Cache { return c.cache }

// REST exposes the underlying REST client for routes the typed API does
// not cover.
func (c *Client) REST() *rest.Client { return c.rest }

// Subscribe attaches a hook to the dispatch topic. Events flow once a
// gateway session is connected.
func (c *Client) Subscribe(ctx context.Context, hook events.Hook) (broker.Subscription, error) {
	return c.broker.Topic(ctx, DispatchTopic).Subscribe(ctx, hook)
}

// Connect opens a gateway session. Dispatches update the entity cache,
// reach the given hook (which may be nil), and fan out on the dispatch
// topic.
func (c *Client) Connect(ctx context.Context, hook events.Hook) (*gateway.Session, error) {
	return gateway.Connect(ctx,
		gateway.Token(c.token),
		gateway.Intents(c.intents),
		gateway.Hook(c.cacheHook(hook)),
		gateway.Topic(c.broker.Topic(ctx, DispatchTopic)),
	)
}

// cacheHook wraps a user hook with the cache bookkeeping the client does
// on every dispatch.
func (c *Client) cacheHook(next events.Hook) events.Hook {
	return &stateHook{cache: c.cache, next: next}
}

type stateHook struct {
	cache *state.Cache
	next  events.Hook
}

func (h *stateHook) OnDispatch(ctx context.Context, d events.Dispatch) {
	switch d.Name {
	case "CHANNEL_CREATE", "CHANNEL_UPDATE":
		ch := DecodeChannel(d.Payload)
		h.cache.StoreChannel(ch.ref())
	case "CHANNEL_DELETE":
		h.cache.DropChannel(snowflake.FromResult(d.Payload.Get("id")))
	case "READY":
		if user := d.Payload.Get("user"); user.Exists() {
			h.cache.StoreUser(decodeUser(user))
		}
	}
	if h.next != nil {
		h.next.OnDispatch(ctx, d)
	}
}

func (h *stateHook) OnError(ctx context.Context, err error) {
	if h.next != nil {
		h.next.OnError(ctx, err)
	}
}

// FetchScheduledEvent loads a scheduled event, including its subscriber
// count, and binds it to this client so Edit and Delete work.
func (c *Client) FetchScheduledEvent(ctx context.Context, guildID, eventID snowflake.ID) (*ScheduledEvent, error) {
	data, err := c.rest.ScheduledEvent(ctx, guildID, eventID, true)
	if err != nil {
		return nil, err
	}
	return newScheduledEvent(c, data), nil
}
