// Package kind declares every closed symbol set the chat platform's wire
// protocol uses: channel kinds, message kinds, audit-log actions, scheduled
// event states, and so on. The sets are pure data riding on the symbol
// engine; the only behavior here is the pair of audit-log accessors derived
// from an action's raw value.
//
// Entity models decode wire fields through a set's TryResolve so raw values
// introduced server-side after this client was built still decode, as
// unowned symbols that keep their raw value.
package kind
