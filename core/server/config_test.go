package server_test

import (
	"testing"

	"basemedia/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("Address", func(t *testing.T) {
		c := server.Config{Port: "8080"}
		assert.Equal(t, ":8080", c.Address())
	})

	t.Run("Protected", func(t *testing.T) {
		assert.False(t, server.Config{}.Protected())
		assert.True(t, server.Config{ApiKey: "secret"}.Protected())
	})
}
