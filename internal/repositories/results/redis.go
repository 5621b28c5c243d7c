package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix     = "rps:result:"
	chatResultsPrefix   = "rps:chat:results:"
	chatTallyPrefix     = "rps:chat:tally:"
	chatUserNamesPrefix = "rps:chat:names:"

	// historyLength is the number of round IDs kept per chat
	historyLength = 100

	defaultLimit = 10
)

// ErrResultNotFound is returned when a result is not found
var ErrResultNotFound = errors.New("result not found")

// Config holds configuration for the Redis results repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires recorded rounds, zero keeps them forever
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed results repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

// RecordResult persists a round and bumps the selected user's tally
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}
	result := input.Result
	if result.ID == "" || result.ChatID == "" {
		return errors.New("result ID and chat ID cannot be empty")
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, r.ttl)

	historyKey := chatResultsPrefix + result.ChatID
	pipe.LPush(ctx, historyKey, result.ID)
	pipe.LTrim(ctx, historyKey, 0, historyLength-1)

	if result.UserID != "" && result.Kind != models.RoundKindNoWinner {
		pipe.ZIncrBy(ctx, tallyKey(result.ChatID, result.Kind), 1, result.UserID)
		if result.UserName != "" {
			pipe.HSet(ctx, chatUserNamesPrefix+result.ChatID, result.UserID, result.UserName)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetResult retrieves a recorded round by ID
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.RoundResult, error) {
	if input == nil || input.ResultID == "" {
		return nil, errors.New("input and result ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, resultKeyPrefix+input.ResultID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.RoundResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// GetRecentResults retrieves the most recent rounds of a chat. Expired rounds are skipped.
func (r *redisRepository) GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	ids, err := r.client.LRange(ctx, chatResultsPrefix+input.ChatID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get result IDs: %w", err)
	}

	results := make([]*models.RoundResult, 0, len(ids))
	for _, id := range ids {
		result, err := r.GetResult(ctx, &GetResultInput{ResultID: id})
		if err != nil {
			if errors.Is(err, ErrResultNotFound) {
				continue
			}
			return nil, err
		}
		results = append(results, result)
	}

	return &GetRecentResultsOutput{
		Results: results,
	}, nil
}

// GetLeaderboard retrieves the ranked tally of a round kind in a chat
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("input and chat ID cannot be empty")
	}
	if input.Kind != models.RoundKindWinner && input.Kind != models.RoundKindLoser {
		return nil, fmt.Errorf("unsupported leaderboard kind %q", input.Kind)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, tallyKey(input.ChatID, input.Kind), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	board := &models.Leaderboard{
		ChatID:  input.ChatID,
		Kind:    input.Kind,
		Entries: make([]*models.LeaderboardEntry, 0, len(scores)),
	}
	if len(scores) == 0 {
		return board, nil
	}

	userIDs := make([]string, 0, len(scores))
	for _, z := range scores {
		userIDs = append(userIDs, fmt.Sprint(z.Member))
	}

	names, err := r.client.HMGet(ctx, chatUserNamesPrefix+input.ChatID, userIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user names: %w", err)
	}

	for i, z := range scores {
		entry := &models.LeaderboardEntry{
			UserID: userIDs[i],
			Count:  int(z.Score),
		}
		if name, ok := names[i].(string); ok {
			entry.UserName = name
		}
		board.Entries = append(board.Entries, entry)
	}

	return board, nil
}

func tallyKey(chatID string, kind models.RoundKind) string {
	return fmt.Sprintf("%s%s:%s", chatTallyPrefix, chatID, kind)
}
