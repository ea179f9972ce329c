package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-blog/config"
)

func unreachable() Options {
	return Options{
		URI:            "mongodb://127.0.0.1:1/?connect=direct",
		DBName:         "portfolio-test",
		ConnectTimeout: 150 * time.Millisecond,
		Retries:        2,
		Backoff:        10 * time.Millisecond,
	}
}

func TestConnectUnreachableReturnsErrConnection(t *testing.T) {
	c := NewConnector(unreachable())

	err := c.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnection))
	assert.Nil(t, c.Database())
}

func TestConnectFailureIsNotCached(t *testing.T) {
	c := NewConnector(unreachable())

	first := c.Connect(context.Background())
	second := c.Connect(context.Background())

	assert.ErrorIs(t, first, ErrConnection)
	assert.ErrorIs(t, second, ErrConnection)
}

func TestConnectHonoursCancelledContextDuringBackoff(t *testing.T) {
	opts := unreachable()
	opts.Retries = 5
	opts.Backoff = time.Second
	c := NewConnector(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := c.Connect(ctx)
	assert.ErrorIs(t, err, ErrConnection)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestWaitingCallerHonoursItsOwnDeadline(t *testing.T) {
	opts := unreachable()
	opts.Retries = 3
	opts.ConnectTimeout = time.Second
	opts.Backoff = 200 * time.Millisecond
	c := NewConnector(opts)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Connect(firstCtx) }()
	require.Eventually(t, func() bool { return len(c.dialing) == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	err := c.Connect(ctx)

	assert.ErrorIs(t, err, ErrConnection)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-done, ErrConnection)
}

func TestPingWithoutServerFails(t *testing.T) {
	c := NewConnector(unreachable())
	assert.ErrorIs(t, c.Ping(context.Background()), ErrConnection)
}

func TestDisconnectWithoutClientIsNoop(t *testing.T) {
	c := NewConnector(unreachable())
	assert.NoError(t, c.Disconnect(context.Background()))
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.MongoConfig{
		URI:            "mongodb://db:27017",
		DBName:         "site",
		ConnectTimeout: time.Second,
		ConnectRetries: 4,
		RetryBackoff:   time.Millisecond,
	})
	assert.Equal(t, Options{
		URI:            "mongodb://db:27017",
		DBName:         "site",
		ConnectTimeout: time.Second,
		Retries:        4,
		Backoff:        time.Millisecond,
	}, opts)
}
