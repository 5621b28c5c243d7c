package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, debug := range []bool{false, true} {
		l, err := New(debug)
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.Equal(t, debug, l.Core().Enabled(-1))
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
