package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	resultKeyPrefix = "result:"

	statsXKey   = "stats:x"
	statsOKey   = "stats:o"
	statsTieKey = "stats:tie"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type dbResult struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultRepository - results expire after ttl, zero keeps them forever.
func NewResultRepository(client *redis.Client, ttl time.Duration) ResultRepository {
	return &dbResult{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	statsKey, err := outcomeKey(result.Winner)
	if err != nil {
		return err
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.GameID, resultJSON, that.ttl)
		pipe.Incr(ctx, statsKey)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrResultNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) GetStats(ctx context.Context) (*entity.Stats, error) {
	values, err := that.client.MGet(ctx, statsXKey, statsOKey, statsTieKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	counters := make([]int64, len(values))
	for i, value := range values {
		// missing counters come back as nil
		raw, ok := value.(string)
		if !ok {
			continue
		}

		counters[i], err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stats counter: %w", err)
		}
	}

	return &entity.Stats{
		XWins: counters[0],
		OWins: counters[1],
		Ties:  counters[2],
	}, nil
}

func outcomeKey(winner string) (string, error) {
	switch winner {
	case entity.PlayerX.Label():
		return statsXKey, nil
	case entity.PlayerO.Label():
		return statsOKey, nil
	case entity.PlayerTie:
		return statsTieKey, nil
	default:
		return "", fmt.Errorf("%w: winner %q", apperror.ErrInvalidMark, winner)
	}
}
