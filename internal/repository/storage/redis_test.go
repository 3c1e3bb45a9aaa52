package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-session/testing/suite"
)

func TestNew(t *testing.T) {
	t.Run("Connects", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := New(ctx, st.Addr)

		require.NoError(t, err)
		require.NoError(t, client.Close())
	})

	t.Run("Unreachable address", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		client, err := New(ctx, "127.0.0.1:1")

		require.Error(t, err)
		require.Nil(t, client)
	})
}
