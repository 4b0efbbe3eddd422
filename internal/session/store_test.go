package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechi99991/cooking-sim/internal/config"
	"github.com/dechi99991/cooking-sim/internal/event"
	"github.com/dechi99991/cooking-sim/internal/game"
)

func newSession() *game.Session {
	return game.NewSession(config.Default(), config.MonthConfig{Number: 4}, game.Options{
		Events: []event.Event{},
	})
}

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	id, err := store.Create(ctx, newSession())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var day int
	err = store.With(ctx, id, func(s *game.Session) error {
		day = s.Day()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, day)

	require.NoError(t, store.Delete(ctx, id))
	err = store.With(ctx, id, func(*game.Session) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, id), ErrNotFound)
}

func TestWithSerializesMutations(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)
	id, err := store.Create(ctx, newSession())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_ = store.With(ctx, id, func(s *game.Session) error {
				s.AdjustMoney(1)
				return nil
			})
		}
	}()
	for i := 0; i < 50; i++ {
		_ = store.With(ctx, id, func(s *game.Session) error {
			s.AdjustMoney(1)
			return nil
		})
	}
	<-done

	var money int
	require.NoError(t, store.With(ctx, id, func(s *game.Session) error {
		money = s.Money()
		return nil
	}))
	assert.Equal(t, config.Default().StartingMoney+100, money)
}

func TestEvictIdle(t *testing.T) {
	ctx := context.Background()
	clock := NewFakeClock(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clock)

	stale, err := store.Create(ctx, newSession())
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	fresh, err := store.Create(ctx, newSession())
	require.NoError(t, err)

	assert.Equal(t, 1, store.EvictIdle(time.Hour))

	err = store.With(ctx, stale, func(*game.Session) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.With(ctx, fresh, func(*game.Session) error { return nil }))
}
