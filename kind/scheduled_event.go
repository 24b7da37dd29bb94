package kind

import (
	"github.com/strigidae/perch/pkg/stdx"
	"github.com/strigidae/perch/symbol"
)

// PrivacyLevel scopes who can see a scheduled event or stage instance.
var PrivacyLevel = symbol.New("PrivacyLevel", []symbol.Entry[int]{
	symbol.E("guild_only", 2),
}, symbol.WithRender[int](symbol.RenderName))

// EventEntityType tells where a scheduled event takes place.
var EventEntityType = symbol.New("EventEntityType", []symbol.Entry[int]{
	symbol.E("stage", 1),
	symbol.E("stage_instance", 1),
	symbol.E("voice", 2),
	symbol.E("external", 3),
}, symbol.WithRender[int](symbol.RenderName))

// EventStatus is a scheduled event's lifecycle state. Completed and
// canceled are terminal.
var EventStatus = symbol.New("EventStatus", []symbol.Entry[int]{
	symbol.E("scheduled", 1),
	symbol.E("active", 2),
	symbol.E("completed", 3),
	symbol.E("canceled", 4),
	symbol.E("cancelled", 4),
}, symbol.WithRender[int](symbol.RenderName))

// Canonical symbols the scheduled-event model compares against.
var (
	EntityTypeStage    = stdx.Must1(EventEntityType.Lookup("stage"))
	EntityTypeVoice    = stdx.Must1(EventEntityType.Lookup("voice"))
	EntityTypeExternal = stdx.Must1(EventEntityType.Lookup("external"))

	EventScheduled = stdx.Must1(EventStatus.Lookup("scheduled"))
	EventActive    = stdx.Must1(EventStatus.Lookup("active"))
	EventCompleted = stdx.Must1(EventStatus.Lookup("completed"))
	EventCanceled  = stdx.Must1(EventStatus.Lookup("canceled"))

	ChannelVoice      = stdx.Must1(ChannelType.Lookup("voice"))
	ChannelStageVoice = stdx.Must1(ChannelType.Lookup("stage_voice"))
)
