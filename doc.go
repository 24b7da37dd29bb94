// Package perch is a client library for a chat-platform API. It models the
// platform's entities (channels, users, scheduled events) as typed Go
// values decoded from JSON payloads, whether those payloads arrive over
// REST or the persistent gateway connection.
//
// Every enumerated wire field decodes through a closed symbol set (package
// symbol defines the engine, package kind the concrete sets). Decoding is
// deliberately forgiving: raw values the client does not recognize survive
// as pass-through symbols, so a server rollout never breaks payload
// handling; encoding is exact, a symbol always re-serializes to the raw
// value it decoded from.
//
// The Client ties the pieces together:
//
//	client := perch.New(perch.WithToken(os.Getenv("BOT_TOKEN")))
//
//	event, err := client.FetchScheduledEvent(ctx, guildID, eventID)
//	if err != nil {
//	    return err
//	}
//	err = event.Edit(ctx,
//	    perch.EditName("community call"),
//	    perch.EditStatus(kind.EventActive),
//	    perch.EditReason("kicking off"),
//	)
//
// A gateway session feeds the client's entity cache and can fan dispatches
// out to subscribers through a broker topic:
//
//	session, err := client.Connect(ctx, myHook)
//	defer session.Close()
package perch
