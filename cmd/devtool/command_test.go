package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCommand struct {
	name string
	got  []string
	err  error
}

func (c *recordingCommand) Name() string { return c.name }
func (c *recordingCommand) Description() string { return "records " + c.name }
func (c *recordingCommand) Run(_ context.Context, args []string) error {
	c.got = args
	return c.err
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(&SeedCommand{}, &ResetCommand{}, &WaitForDBCommand{})

	cmd, ok := r.Get("seed")
	assert.True(t, ok)
	assert.Equal(t, "seed", cmd.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"reset", "seed", "wait-for-db"}, names)
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Run("passes remaining args", func(t *testing.T) {
		seed := &recordingCommand{name: "seed"}
		r := NewRegistry(seed)

		require.NoError(t, r.Dispatch(context.Background(), []string{"seed", "fixtures.json"}))
		assert.Equal(t, []string{"fixtures.json"}, seed.got)
	})

	t.Run("unknown and missing names", func(t *testing.T) {
		r := NewRegistry(&recordingCommand{name: "seed"})

		assert.ErrorIs(t, r.Dispatch(context.Background(), nil), ErrUnknownCommand)
		assert.ErrorIs(t, r.Dispatch(context.Background(), []string{"drop-everything"}), ErrUnknownCommand)
	})

	t.Run("wraps command failures", func(t *testing.T) {
		r := NewRegistry(&recordingCommand{name: "reset", err: assert.AnError})

		err := r.Dispatch(context.Background(), []string{"reset"})

		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrUnknownCommand)
		assert.Contains(t, err.Error(), "reset failed")
	})
}

func TestRegistry_WriteHelp(t *testing.T) {
	r := NewRegistry(&recordingCommand{name: "seed"}, &recordingCommand{name: "wait-for-db"})

	var buf bytes.Buffer
	r.WriteHelp(&buf)

	out := buf.String()
	assert.Contains(t, out, "Usage: devtool")
	assert.Contains(t, out, "records wait-for-db")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("seed")), bytes.Index(buf.Bytes(), []byte("wait-for-db")))
}
