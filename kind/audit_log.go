package kind

import (
	"github.com/strigidae/perch/pkg/stdx"
	"github.com/strigidae/perch/symbol"
)

// AuditLogActionCategory buckets audit-log actions into create, delete, and
// update. Some actions (kicks, bans, pins, moves) fit none of the three.
var AuditLogActionCategory = symbol.New("AuditLogActionCategory", []symbol.Entry[int]{
	symbol.E("create", 1),
	symbol.E("delete", 2),
	symbol.E("update", 3),
}, symbol.WithRender[int](symbol.RenderName))

// AuditLogAction identifies what an audit-log entry records. The raw values
// are bucketed by tens per target kind, which AuditLogTarget exploits.
var AuditLogAction = symbol.New("AuditLogAction", []symbol.Entry[int]{
	symbol.E("guild_update", 1),
	symbol.E("channel_create", 10),
	symbol.E("channel_update", 11),
	symbol.E("channel_delete", 12),
	symbol.E("overwrite_create", 13),
	symbol.E("overwrite_update", 14),
	symbol.E("overwrite_delete", 15),
	symbol.E("kick", 20),
	symbol.E("member_prune", 21),
	symbol.E("ban", 22),
	symbol.E("unban", 23),
	symbol.E("member_update", 24),
	symbol.E("member_role_update", 25),
	symbol.E("member_move", 26),
	symbol.E("member_disconnect", 27),
	symbol.E("bot_add", 28),
	symbol.E("role_create", 30),
	symbol.E("role_update", 31),
	symbol.E("role_delete", 32),
	symbol.E("invite_create", 40),
	symbol.E("invite_update", 41),
	symbol.E("invite_delete", 42),
	symbol.E("webhook_create", 50),
	symbol.E("webhook_update", 51),
	symbol.E("webhook_delete", 52),
	symbol.E("emoji_create", 60),
	symbol.E("emoji_update", 61),
	symbol.E("emoji_delete", 62),
	symbol.E("message_delete", 72),
	symbol.E("message_bulk_delete", 73),
	symbol.E("message_pin", 74),
	symbol.E("message_unpin", 75),
	symbol.E("integration_create", 80),
	symbol.E("integration_update", 81),
	symbol.E("integration_delete", 82),
}, symbol.WithRender[int](symbol.RenderName))

var (
	categoryCreate = stdx.Must1(AuditLogActionCategory.Lookup("create"))
	categoryDelete = stdx.Must1(AuditLogActionCategory.Lookup("delete"))
	categoryUpdate = stdx.Must1(AuditLogActionCategory.Lookup("update"))
)

// auditCategories maps every categorizable action to its category by the
// suffix convention of the raw values: *0 creates, *1 updates (except the
// member block), *2 deletes. Spelled out as a table so additions stay
// reviewable against the API docs.
var auditCategories = func() map[Int]Int {
	actionCategory := map[string]Int{
		"guild_update":        categoryUpdate,
		"channel_create":      categoryCreate,
		"channel_update":      categoryUpdate,
		"channel_delete":      categoryDelete,
		"overwrite_create":    categoryCreate,
		"overwrite_update":    categoryUpdate,
		"overwrite_delete":    categoryDelete,
		"member_update":       categoryUpdate,
		"member_role_update":  categoryUpdate,
		"role_create":         categoryCreate,
		"role_update":         categoryUpdate,
		"role_delete":         categoryDelete,
		"invite_create":       categoryCreate,
		"invite_update":       categoryUpdate,
		"invite_delete":       categoryDelete,
		"webhook_create":      categoryCreate,
		"webhook_update":      categoryUpdate,
		"webhook_delete":      categoryDelete,
		"emoji_create":        categoryCreate,
		"emoji_update":        categoryUpdate,
		"emoji_delete":        categoryDelete,
		"message_delete":      categoryDelete,
		"message_bulk_delete": categoryDelete,
		"integration_create":  categoryCreate,
		"integration_update":  categoryUpdate,
		"integration_delete":  categoryDelete,
	}
	table := make(map[Int]Int, len(actionCategory))
	for name, category := range actionCategory {
		table[stdx.Must1(AuditLogAction.Lookup(name))] = category
	}
	return table
}()

// AuditLogCategory returns the create/delete/update category of an action,
// or nil for actions that fit no category (kick, ban, prune, pins, moves,
// bot_add) and for unrecognized actions. The nil result is deliberate; it
// is the caller's signal that the entry needs bespoke handling.
func AuditLogCategory(action Int) Int {
	return auditCategories[action]
}

// AuditLogTarget names the kind of object an action targets, derived from
// the raw value's tens bucket. Unknown buckets yield "".
func AuditLogTarget(action Int) string {
	if action == nil {
		return ""
	}
	v := action.Value()
	switch {
	case v == -1:
		return "all"
	case v < 10:
		return "guild"
	case v < 20:
		return "channel"
	case v < 30:
		return "user"
	case v < 40:
		return "role"
	case v < 50:
		return "invite"
	case v < 60:
		return "webhook"
	case v < 70:
		return "emoji"
	case v < 80:
		return "message"
	case v < 90:
		return "integration"
	default:
		return ""
	}
}
