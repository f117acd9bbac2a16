package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiter_AgotaRafagaPorIP(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	l := NewLoginLimiter(6, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "la ráfaga se agotó")
	assert.True(t, l.Allow("10.0.0.2"), "otra IP tiene su propio bucket")

	now = now.Add(10 * time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "6/min repone un intento cada 10s")
}

func TestLoginLimiter_DescartaInactivos(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	l := NewLoginLimiter(6, 1)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(11 * time.Minute)
	l.Allow("10.0.0.2")

	_, ok := l.limiters["10.0.0.1"]
	assert.False(t, ok)
	assert.Len(t, l.limiters, 1)
}
