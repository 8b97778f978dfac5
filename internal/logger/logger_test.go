package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNamed(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		log, err := NewNamed(env, "service-shareit")
		require.NoError(t, err, env)
		assert.Equal(t, "service-shareit", log.Name())
	}
}
