package uuidx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New()
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, id, New())
}

func TestNewString(t *testing.T) {
	parsed, err := uuid.Parse(NewString())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
