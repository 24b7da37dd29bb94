package events

import "context"

// Hook receives decoded dispatch events and read-loop errors. Methods may
// be called from the gateway's read goroutine and must not block for long;
// slow consumers should subscribe through a broker topic instead.
type Hook interface {
	OnDispatch(context.Context, Dispatch)
	OnError(context.Context, error)
}

// HookFunc adapts a plain function to Hook, ignoring errors.
type HookFunc func(context.Context, Dispatch)

func (f HookFunc) OnDispatch(ctx context.Context, d Dispatch) { f(ctx, d) }

func (HookFunc) OnError(context.Context, error) {}
