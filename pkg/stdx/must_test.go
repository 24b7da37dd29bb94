package stdx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = errors.New("test error")

func TestMust0(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Must0(nil)
		})
	})

	t.Run("with error", func(t *testing.T) {
		assert.PanicsWithError(t, errTest.Error(), func() {
			Must0(errTest)
		})
	})
}

func TestMust1(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		result := Must1("test", nil)
		assert.Equal(t, "test", result)
	})

	t.Run("with error", func(t *testing.T) {
		assert.PanicsWithError(t, errTest.Error(), func() {
			Must1("test", errTest)
		})
	})
}

func TestMust2(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		v1, v2 := Must2("test", 42, nil)
		assert.Equal(t, "test", v1)
		assert.Equal(t, 42, v2)
	})

	t.Run("with error", func(t *testing.T) {
		assert.PanicsWithError(t, errTest.Error(), func() {
			Must2("test", 42, errTest)
		})
	})
}

func TestZero(t *testing.T) {
	assert.Equal(t, 0, Zero[int]())
	assert.Equal(t, "", Zero[string]())
	assert.Nil(t, Zero[[]byte]())
	assert.Nil(t, Zero[*int]())

	type pair struct {
		A int
		B string
	}
	assert.Equal(t, pair{}, Zero[pair]())
}
