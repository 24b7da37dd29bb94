package broker

import (
	"context"

	"github.com/strigidae/perch/events"
)

// Broker hands out named topics carrying gateway dispatch events.
type Broker interface {
	Topic(context.Context, string) Topic
}

// Topic is one named dispatch stream. Publish fans an event out to every
// live subscription; Subscribe attaches a hook until its subscription is
// cancelled.
type Topic interface {
	Publish(context.Context, events.Dispatch) error
	Subscribe(context.Context, events.Hook) (Subscription, error)
}

// Subscription manages the lifecycle of one subscriber.
type Subscription interface {
	ID() string
	Unsubscribe()
}
