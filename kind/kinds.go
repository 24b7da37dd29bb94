package kind

import (
	"github.com/strigidae/perch/symbol"
)

// Int and Str name the two symbol shapes this package produces, so model
// code can declare fields without spelling out the generic instantiation.
type (
	Int = *symbol.Symbol[int]
	Str = *symbol.Symbol[string]
)

// ChannelType classifies a channel object.
var ChannelType = symbol.New("ChannelType", []symbol.Entry[int]{
	symbol.E("text", 0),
	symbol.E("private", 1),
	symbol.E("voice", 2),
	symbol.E("group", 3),
	symbol.E("category", 4),
	symbol.E("news", 5),
	symbol.E("store", 6),
	symbol.E("news_thread", 10),
	symbol.E("public_thread", 11),
	symbol.E("private_thread", 12),
	symbol.E("stage_voice", 13),
}, symbol.WithRender[int](symbol.RenderName))

// PermissionType tells whether a permission overwrite targets a member or a
// role.
var PermissionType = symbol.New("PermissionType", []symbol.Entry[int]{
	symbol.E("member", 0),
	symbol.E("role", 1),
}, symbol.WithRender[int](symbol.RenderName))

// ComponentType classifies a message component.
var ComponentType = symbol.New("ComponentType", []symbol.Entry[int]{
	symbol.E("ActionRow", 1),
	symbol.E("Button", 2),
	symbol.E("SelectMenu", 3),
}, symbol.WithRender[int](symbol.RenderName))

// ButtonStyle selects the rendering of a message button. Most styles carry
// several historical names for the same raw value.
var ButtonStyle = symbol.New("ButtonStyle", []symbol.Entry[int]{
	symbol.E("blurple", 1),
	symbol.E("Primary", 1),
	symbol.E("grey", 2),
	symbol.E("gray", 2),
	symbol.E("Secondary", 2),
	symbol.E("green", 3),
	symbol.E("Success", 3),
	symbol.E("red", 4),
	symbol.E("Danger", 4),
	symbol.E("url", 5),
	symbol.E("link", 5),
	symbol.E("grey_url", 5),
	symbol.E("Link_Button", 5),
}, symbol.WithRender[int](symbol.RenderName))

// ButtonColor is the historical alias for ButtonStyle.
var ButtonColor = ButtonStyle

// InteractionCallbackType classifies an interaction response.
var InteractionCallbackType = symbol.New("InteractionCallbackType", []symbol.Entry[int]{
	symbol.E("pong", 1),
	symbol.E("msg_with_source", 4),
	symbol.E("deferred_msg_with_source", 5),
	symbol.E("deferred_update_msg", 6),
	symbol.E("update_msg", 7),
}, symbol.WithRender[int](symbol.RenderName))

// TimestampStyle selects how an inline timestamp renders in message markup.
// Symbols print their raw value so String output can be embedded directly.
var TimestampStyle = symbol.New("TimestampStyle", []symbol.Entry[string]{
	symbol.E("short_time", "t"),
	symbol.E("long_time", "T"),
	symbol.E("short_date", "d"),
	symbol.E("long_date", "D"),
	symbol.E("short", "f"),
	symbol.E("long", "F"),
	symbol.E("relative", "R"),
}, symbol.WithRender[string](symbol.RenderValue))

// MessageType classifies a message object.
var MessageType = symbol.New("MessageType", []symbol.Entry[int]{
	symbol.E("default", 0),
	symbol.E("recipient_add", 1),
	symbol.E("recipient_remove", 2),
	symbol.E("call", 3),
	symbol.E("channel_name_change", 4),
	symbol.E("channel_icon_change", 5),
	symbol.E("pins_add", 6),
	symbol.E("new_member", 7),
	symbol.E("premium_guild_subscription", 8),
	symbol.E("premium_guild_tier_1", 9),
	symbol.E("premium_guild_tier_2", 10),
	symbol.E("premium_guild_tier_3", 11),
	symbol.E("channel_follow_add", 12),
	symbol.E("guild_stream", 13),
	symbol.E("guild_discovery_disqualified", 14),
	symbol.E("guild_discovery_requalified", 15),
	symbol.E("guild_discovery_grace_period_initial_warning", 16),
	symbol.E("guild_discovery_grace_period_final_warning", 17),
	symbol.E("thread_created", 18),
	symbol.E("reply", 19),
	symbol.E("application_command", 20),
	symbol.E("thread_starter_message", 21),
	symbol.E("guild_invite_reminder", 22),
})

// VoiceRegion names a voice server region; the raw value is the region slug
// used on the wire.
var VoiceRegion = symbol.New("VoiceRegion", []symbol.Entry[string]{
	symbol.E("us_west", "us-west"),
	symbol.E("us_east", "us-east"),
	symbol.E("us_south", "us-south"),
	symbol.E("us_central", "us-central"),
	symbol.E("eu_west", "eu-west"),
	symbol.E("eu_central", "eu-central"),
	symbol.E("singapore", "singapore"),
	symbol.E("london", "london"),
	symbol.E("sydney", "sydney"),
	symbol.E("amsterdam", "amsterdam"),
	symbol.E("frankfurt", "frankfurt"),
	symbol.E("brazil", "brazil"),
	symbol.E("hongkong", "hongkong"),
	symbol.E("russia", "russia"),
	symbol.E("japan", "japan"),
	symbol.E("southafrica", "southafrica"),
	symbol.E("south_korea", "south-korea"),
	symbol.E("india", "india"),
	symbol.E("europe", "europe"),
	symbol.E("dubai", "dubai"),
	symbol.E("vip_us_east", "vip-us-east"),
	symbol.E("vip_us_west", "vip-us-west"),
	symbol.E("vip_amsterdam", "vip-amsterdam"),
}, symbol.WithRender[string](symbol.RenderValue))

// SpeakingState reports a voice connection's speaking flags.
var SpeakingState = symbol.New("SpeakingState", []symbol.Entry[int]{
	symbol.E("none", 0),
	symbol.E("voice", 1),
	symbol.E("soundshare", 2),
	symbol.E("priority", 4),
}, symbol.WithRender[int](symbol.RenderName))

// VerificationLevel is a guild's member verification requirement. The upper
// levels kept their joke names as aliases.
var VerificationLevel = symbol.New("VerificationLevel", []symbol.Entry[int]{
	symbol.E("none", 0),
	symbol.E("low", 1),
	symbol.E("medium", 2),
	symbol.E("high", 3),
	symbol.E("table_flip", 3),
	symbol.E("extreme", 4),
	symbol.E("double_table_flip", 4),
	symbol.E("very_high", 4),
}, symbol.WithRender[int](symbol.RenderName))

// ContentFilter is a guild's explicit content filter setting.
var ContentFilter = symbol.New("ContentFilter", []symbol.Entry[int]{
	symbol.E("disabled", 0),
	symbol.E("no_role", 1),
	symbol.E("all_members", 2),
}, symbol.WithRender[int](symbol.RenderName))

// UserContentFilter is a user's own explicit content filter setting.
var UserContentFilter = symbol.New("UserContentFilter", []symbol.Entry[int]{
	symbol.E("disabled", 0),
	symbol.E("friends", 1),
	symbol.E("all_messages", 2),
})

// FriendFlags scopes who may send friend requests.
var FriendFlags = symbol.New("FriendFlags", []symbol.Entry[int]{
	symbol.E("noone", 0),
	symbol.E("mutual_guilds", 1),
	symbol.E("mutual_friends", 2),
	symbol.E("guild_and_friends", 3),
	symbol.E("everyone", 4),
})

// Theme is the client UI theme.
var Theme = symbol.New("Theme", []symbol.Entry[string]{
	symbol.E("light", "light"),
	symbol.E("dark", "dark"),
})

// Status is a user's presence. "do_not_disturb" aliases the wire value
// "dnd"; symbols print their raw value.
var Status = symbol.New("Status", []symbol.Entry[string]{
	symbol.E("online", "online"),
	symbol.E("offline", "offline"),
	symbol.E("idle", "idle"),
	symbol.E("dnd", "dnd"),
	symbol.E("do_not_disturb", "dnd"),
	symbol.E("invisible", "invisible"),
}, symbol.WithRender[string](symbol.RenderValue))

// DefaultAvatar selects a default avatar color.
var DefaultAvatar = symbol.New("DefaultAvatar", []symbol.Entry[int]{
	symbol.E("blurple", 0),
	symbol.E("grey", 1),
	symbol.E("gray", 1),
	symbol.E("green", 2),
	symbol.E("orange", 3),
	symbol.E("red", 4),
}, symbol.WithRender[int](symbol.RenderName))

// RelationshipType classifies a user relationship.
var RelationshipType = symbol.New("RelationshipType", []symbol.Entry[int]{
	symbol.E("friend", 1),
	symbol.E("blocked", 2),
	symbol.E("incoming_request", 3),
	symbol.E("outgoing_request", 4),
})

// NotificationLevel is a guild's default notification setting.
var NotificationLevel = symbol.New("NotificationLevel", []symbol.Entry[int]{
	symbol.E("all_messages", 0),
	symbol.E("only_mentions", 1),
})

// UserFlags are the bit values of a user's account badges.
var UserFlags = symbol.New("UserFlags", []symbol.Entry[int]{
	symbol.E("staff", 1),
	symbol.E("partner", 2),
	symbol.E("hypesquad", 4),
	symbol.E("bug_hunter", 8),
	symbol.E("mfa_sms", 16),
	symbol.E("premium_promo_dismissed", 32),
	symbol.E("hypesquad_bravery", 64),
	symbol.E("hypesquad_brilliance", 128),
	symbol.E("hypesquad_balance", 256),
	symbol.E("early_supporter", 512),
	symbol.E("team_user", 1024),
	symbol.E("system", 4096),
	symbol.E("has_unread_urgent_messages", 8192),
	symbol.E("bug_hunter_level_2", 16384),
	symbol.E("verified_bot", 65536),
	symbol.E("verified_bot_developer", 131072),
})

// ActivityType classifies a presence activity. -1 is the client-side
// "unknown" placeholder the API never sends.
var ActivityType = symbol.New("ActivityType", []symbol.Entry[int]{
	symbol.E("unknown", -1),
	symbol.E("playing", 0),
	symbol.E("streaming", 1),
	symbol.E("listening", 2),
	symbol.E("watching", 3),
	symbol.E("custom", 4),
	symbol.E("competing", 5),
})

// HypeSquadHouse names a hypesquad house.
var HypeSquadHouse = symbol.New("HypeSquadHouse", []symbol.Entry[int]{
	symbol.E("bravery", 1),
	symbol.E("brilliance", 2),
	symbol.E("balance", 3),
})

// PremiumType is a user's subscription tier.
var PremiumType = symbol.New("PremiumType", []symbol.Entry[int]{
	symbol.E("nitro_classic", 1),
	symbol.E("nitro", 2),
})

// TeamMembershipState is a team member's invite state.
var TeamMembershipState = symbol.New("TeamMembershipState", []symbol.Entry[int]{
	symbol.E("invited", 1),
	symbol.E("accepted", 2),
})

// WebhookType classifies a webhook.
var WebhookType = symbol.New("WebhookType", []symbol.Entry[int]{
	symbol.E("incoming", 1),
	symbol.E("channel_follower", 2),
})

// ExpireBehaviour selects what happens to members of an expired integration.
var ExpireBehaviour = symbol.New("ExpireBehaviour", []symbol.Entry[int]{
	symbol.E("remove_role", 0),
	symbol.E("kick", 1),
})

// ExpireBehavior is the American-English alias for ExpireBehaviour.
var ExpireBehavior = ExpireBehaviour

// StickerType is a sticker's image format.
var StickerType = symbol.New("StickerType", []symbol.Entry[int]{
	symbol.E("png", 1),
	symbol.E("apng", 2),
	symbol.E("lottie", 3),
})
