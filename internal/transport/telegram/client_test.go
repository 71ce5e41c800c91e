package telegram

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateReturnsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var stopped atomic.Int32
	c := &Client{
		logger: slog.Default(),
		ctx:    context.Background(),
		signIn: func() error {
			<-release
			return nil
		},
		stop: func() error {
			stopped.Add(1)
			close(release)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.Authenticate(ctx)
		errCh <- err
	}()

	cancel()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("Authenticate did not return after cancellation")
	}
	assert.Equal(t, int32(1), stopped.Load())

	require.NoError(t, c.Close())
	assert.Equal(t, int32(1), stopped.Load())
}

func TestAuthenticateSignInError(t *testing.T) {
	t.Parallel()

	c := &Client{
		logger: slog.Default(),
		ctx:    context.Background(),
		signIn: func() error { return errors.New("dial tcp: connection refused") },
		stop:   func() error { return nil },
	}

	_, err := c.Authenticate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
