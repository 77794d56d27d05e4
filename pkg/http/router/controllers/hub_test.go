package controllers

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubRegisterRemove(t *testing.T) {
	hub := NewHub()

	pipe := func() net.Conn {
		server, client := net.Pipe()
		go func() { _, _ = io.Copy(io.Discard, client) }()
		t.Cleanup(func() { _ = client.Close() })
		return server
	}

	a := hub.Register(pipe(), 1024)
	b := hub.Register(pipe(), 1024)
	assert.NotEqual(t, a.id, b.id)
	assert.Equal(t, int64(1024), a.maxMessageBytes)
	assert.Equal(t, 2, hub.Count())

	hub.Remove(a)
	assert.Equal(t, 1, hub.Count())

	// removing twice is a no-op
	hub.Remove(a)
	assert.Equal(t, 1, hub.Count())

	hub.RemoveAll()
	assert.Equal(t, 0, hub.Count())
}
