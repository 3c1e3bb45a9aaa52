package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

const DefaultCounterKey = "counter:wins"

type CounterRepository interface {
	// Increment adds one win for winner and returns the tally after the change.
	Increment(ctx context.Context, winner entity.Mark) (entity.Tally, error)
	Tally(ctx context.Context) (entity.Tally, error)
}

type memoryCounter struct {
	mu    sync.Mutex
	tally entity.Tally
}

// NewMemoryCounterRepository keeps the tally in process memory.
func NewMemoryCounterRepository() CounterRepository {
	return &memoryCounter{}
}

func (that *memoryCounter) Increment(_ context.Context, winner entity.Mark) (entity.Tally, error) {
	if _, ok := entity.ParseMark(string(winner)); !ok {
		return entity.Tally{}, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, winner)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.tally = that.tally.Add(winner, 1)

	return that.tally, nil
}

func (that *memoryCounter) Tally(_ context.Context) (entity.Tally, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.tally, nil
}

type redisCounter struct {
	client *redis.Client
	key    string
}

// NewRedisCounterRepository keeps the tally in a redis hash under key.
// The hash is cleared on creation, so counts never outlive the process that created them.
func NewRedisCounterRepository(ctx context.Context, client *redis.Client, key string) (CounterRepository, error) {
	if key == "" {
		key = DefaultCounterKey
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("failed to reset counter: %w", err)
	}

	return &redisCounter{
		client: client,
		key:    key,
	}, nil
}

func (that *redisCounter) Increment(ctx context.Context, winner entity.Mark) (entity.Tally, error) {
	if _, ok := entity.ParseMark(string(winner)); !ok {
		return entity.Tally{}, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, winner)
	}

	var values *redis.MapStringStringCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, that.key, string(winner), 1)
		values = pipe.HGetAll(ctx, that.key)

		return nil
	})
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to increment counter: %w", err)
	}

	return parseTally(values.Val())
}

func (that *redisCounter) Tally(ctx context.Context) (entity.Tally, error) {
	values, err := that.client.HGetAll(ctx, that.key).Result()
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get counter: %w", err)
	}

	return parseTally(values)
}

func parseTally(values map[string]string) (entity.Tally, error) {
	var tally entity.Tally

	for _, player := range entity.Players {
		raw, ok := values[string(player)]
		if !ok {
			continue
		}

		count, err := strconv.Atoi(raw)
		if err != nil {
			return entity.Tally{}, fmt.Errorf("failed to parse counter for %s: %w", player, err)
		}

		tally = tally.Add(player, count)
	}

	return tally, nil
}
