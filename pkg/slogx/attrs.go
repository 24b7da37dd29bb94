// Package slogx carries the small log/slog attribute helpers shared by the
// library's packages, so log field names stay consistent across the REST,
// gateway, and broker layers.
package slogx

import (
	"fmt"
	"log/slog"
)

// KeyLoggerName is the attribute key identifying which component of the
// library emitted a record.
const KeyLoggerName = "logger"

// Error returns a slog.Attr with key "error" and the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// ByteString returns a slog.Attr rendering a byte slice as a string. It is
// used for raw payload excerpts in debug logging.
func ByteString(key string, value []byte) slog.Attr {
	return slog.String(key, string(value))
}

// Stringer returns a slog.Attr with the String() rendering of value.
// Symbols and snowflakes both log through this.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// Event returns a slog.Attr with key "event" naming a gateway dispatch
// event.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// LoggerName returns the component attribute under KeyLoggerName.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
