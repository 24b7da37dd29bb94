package broker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alphadose/haxmap"
	"github.com/nats-io/nats.go"
	"github.com/strigidae/perch/events"
	"github.com/strigidae/perch/pkg/slogx"
	"github.com/strigidae/perch/pkg/uuidx"
)

type natsBroker struct {
	client *nats.Conn
	topics *haxmap.Map[string, *natsTopic]
}

// NATS returns a broker that relays dispatch events over a NATS connection,
// letting several processes share one gateway session.
func NATS(client *nats.Conn) Broker {
	return &natsBroker{
		client: client,
		topics: haxmap.New[string, *natsTopic](),
	}
}

func (b *natsBroker) Topic(ctx context.Context, id string) Topic {
	top, _ := b.topics.GetOrCompute(id, func() *natsTopic {
		return &natsTopic{
			subject: id,
			client:  b.client,
		}
	})
	return top
}

type natsTopic struct {
	client  *nats.Conn
	subject string
}

func (t *natsTopic) Publish(ctx context.Context, event events.Dispatch) error {
	frame, err := events.ToJSON(event)
	if err != nil {
		return err
	}
	return t.client.Publish(t.subject, frame)
}

func (t *natsTopic) Subscribe(ctx context.Context, hook events.Hook) (Subscription, error) {
	if hook == nil {
		return nil, fmt.Errorf("hook is required")
	}

	sub := make(chan events.Dispatch, 50)
	nsub, err := t.client.Subscribe(t.subject, func(msg *nats.Msg) {
		relayDispatch(sub, msg.Data)

		if msg.Reply != "" {
			if nerr := msg.Ack(); nerr != nil {
				slog.Error("failed to ack message", slogx.Error(nerr), slogx.LoggerName("broker.nats"))
			}
		}
	})
	if err != nil {
		return nil, err
	}
	nsub.SetClosedHandler(func(_ string) { close(sub) })

	go func() {
		for {
			select {
			case event, ok := <-sub:
				if !ok {
					return
				}
				hook.OnDispatch(ctx, event)
			case <-ctx.Done():
				return
			}
		}
	}()

	return &natsSubscription{
		id:  uuidx.NewString(),
		sub: nsub,
	}, nil
}

// relayDispatch decodes a relayed frame and hands the dispatch to the
// forwarding channel without ever blocking the NATS delivery goroutine:
// once the forwarder has stopped draining (its context ended, or it is just
// slow) frames are dropped instead. Control frames and undecodable data are
// discarded. Reports whether the dispatch was forwarded.
func relayDispatch(sub chan<- events.Dispatch, data []byte) bool {
	event, err := events.FromJSON(data)
	if err != nil {
		slog.Error("failed to decode relayed frame", slogx.Error(err), slogx.LoggerName("broker.nats"))
		return false
	}
	dispatch, ok := event.(events.Dispatch)
	if !ok {
		// control frames have no business on a relay subject
		return false
	}

	select {
	case sub <- dispatch:
		return true
	default:
		slog.Warn("dropping relayed dispatch, subscriber is not keeping up",
			slog.String("event", dispatch.Name), slogx.LoggerName("broker.nats"))
		return false
	}
}

type natsSubscription struct {
	id  string
	sub *nats.Subscription
}

func (n *natsSubscription) ID() string {
	return n.id
}

func (n *natsSubscription) Unsubscribe() {
	if err := n.sub.Unsubscribe(); err != nil {
		slog.Error("failed to unsubscribe", slogx.Error(err), slog.String("subscription", n.id))
	}
}
