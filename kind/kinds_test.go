package kind

import (
	"testing"

	"github.com/strigidae/perch/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelType(t *testing.T) {
	sym, err := ChannelType.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, "private", sym.Name())
	assert.Equal(t, "private", sym.String())

	var names []string
	for m := range ChannelType.Members() {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{
		"text", "private", "voice", "group", "category", "news", "store",
		"news_thread", "public_thread", "private_thread", "stage_voice",
	}, names)
}

func TestButtonStyleAliases(t *testing.T) {
	grey, err := ButtonStyle.Lookup("grey")
	require.NoError(t, err)
	gray, err := ButtonStyle.Lookup("gray")
	require.NoError(t, err)
	secondary, err := ButtonStyle.Lookup("Secondary")
	require.NoError(t, err)

	assert.Same(t, grey, gray)
	assert.Same(t, grey, secondary)
	assert.Equal(t, 5, ButtonStyle.Len())

	// ButtonColor is the same set, not a copy
	fromColor, err := ButtonColor.Resolve(2)
	require.NoError(t, err)
	assert.Same(t, grey, fromColor)
}

func TestStatusAlias(t *testing.T) {
	dnd, err := Status.Lookup("dnd")
	require.NoError(t, err)
	verbose, err := Status.Lookup("do_not_disturb")
	require.NoError(t, err)

	assert.Same(t, dnd, verbose)
	assert.Equal(t, "dnd", dnd.String())
}

func TestTimestampStyleRendersValue(t *testing.T) {
	relative, err := TimestampStyle.Lookup("relative")
	require.NoError(t, err)
	assert.Equal(t, "R", relative.String())
}

func TestVerificationLevelAliasesCollapse(t *testing.T) {
	assert.Equal(t, 5, VerificationLevel.Len())

	high, err := VerificationLevel.Resolve(4)
	require.NoError(t, err)
	assert.Equal(t, "extreme", high.Name())
}

func TestUnknownValuesPassThrough(t *testing.T) {
	sym := ChannelType.TryResolve(99)
	require.NotNil(t, sym)
	assert.False(t, sym.Known())
	assert.Equal(t, 99, sym.Value())
	assert.False(t, ChannelType.Contains(sym))
}

func TestCrossSetMembership(t *testing.T) {
	msgDefault, err := MessageType.Resolve(0)
	require.NoError(t, err)

	// same raw value, different set
	assert.False(t, ChannelType.Contains(msgDefault))
	assert.True(t, MessageType.Contains(msgDefault))
}

func TestEventStatusSymbols(t *testing.T) {
	assert.True(t, EventStatus.Contains(EventScheduled))
	assert.True(t, EventStatus.Contains(EventCanceled))

	cancelled, err := EventStatus.Lookup("cancelled")
	require.NoError(t, err)
	assert.Same(t, EventCanceled, cancelled)
}

func TestEventEntityTypeNames(t *testing.T) {
	// "stage" is the canonical name for raw value 1; "stage_instance" is the
	// wire vocabulary's spelling and resolves to the same symbol.
	assert.Equal(t, "stage", EntityTypeStage.Name())
	assert.Equal(t, 1, EntityTypeStage.Value())

	instance, err := EventEntityType.Lookup("stage_instance")
	require.NoError(t, err)
	assert.Same(t, EntityTypeStage, instance)
}

func TestSetsAreRegistered(t *testing.T) {
	for _, name := range []string{
		"ChannelType", "MessageType", "AuditLogAction", "EventStatus",
		"GatewayOpcode", "TimestampStyle",
	} {
		c, ok := symbol.SetByName(name)
		require.True(t, ok, name)
		assert.Positive(t, c.Len())
	}
}
