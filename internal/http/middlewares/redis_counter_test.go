package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRedisCounter_IncrementRunsScriptAtomically(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	var commands [][]string
	client.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd rueidis.Completed) rueidis.RedisResult {
			commands = append(commands, cmd.Commands())
			return mock.Result(mock.RedisInt64(3))
		}).
		Times(1)

	counter := NewRedisCounter(client, "todo_rate_limit:")
	count, err := counter.Increment(context.Background(), "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// INCR and PEXPIRE travel as one script call, never as two commands
	require.Len(t, commands, 1)
	cmd := commands[0]
	assert.Contains(t, []string{"EVALSHA", "EVAL"}, cmd[0])
	assert.Equal(t, []string{"1", "todo_rate_limit:10.0.0.1", "60000"}, cmd[len(cmd)-3:])
}

func TestRedisCounter_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	client.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		Return(mock.ErrorResult(errors.New("connection refused"))).
		AnyTimes()

	_, err := NewRedisCounter(client, "p:").Increment(context.Background(), "client", time.Minute)
	assert.ErrorContains(t, err, "connection refused")
}

func TestRateLimiter_WithRedisCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	var hits int64
	client.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, rueidis.Completed) rueidis.RedisResult {
			hits++
			return mock.Result(mock.RedisInt64(hits))
		}).
		AnyTimes()

	e := newLimitedEcho(NewRedisCounter(client, "p:"), 1)
	assert.Equal(t, 204, serve(e, "10.0.0.1:1234"))
	assert.Equal(t, 429, serve(e, "10.0.0.1:1234"))
}
