package syncstate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/warp-contracts/syncstate/src/utils/config"
)

func TestNewControllerGivesUpWhenContextIsDone(t *testing.T) {
	conf := config.Default()
	conf.Database.MigrationUser = ""
	conf.Database.ConnectMaxElapsedTime = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	controller, err := NewController(ctx, conf)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, controller)
	require.Less(t, time.Since(start), 10*time.Second)
}
