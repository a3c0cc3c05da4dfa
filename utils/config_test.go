package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactMasksSecrets(t *testing.T) {
	c := &Config{
		Env:               "test",
		SigningKey:        "super-secret",
		DBUsername:        "root",
		DBPassword:        "hunter2",
		RedisPassword:     "redis-secret",
		PaymentGatewayKey: "pk_live_123",
	}

	redacted := c.Redact()

	assert.Equal(t, "****", redacted.SigningKey)
	assert.Equal(t, "****", redacted.DBPassword)
	assert.Equal(t, "****", redacted.RedisPassword)
	assert.Equal(t, "****", redacted.PaymentGatewayKey)

	// Non-sensitive fields pass through, and the original is untouched.
	assert.Equal(t, "test", redacted.Env)
	assert.Equal(t, "root", redacted.DBUsername)
	assert.Equal(t, "hunter2", c.DBPassword)
}
