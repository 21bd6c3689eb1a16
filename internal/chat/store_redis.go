package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"

	"github.com/kdi-analyzer/server/internal/core/errx"
	logx "github.com/kdi-analyzer/server/pkg/logger"
)

// RedisStore keeps transcripts in a Redis list per session with a TTL that is
// refreshed on every touch, so an abandoned session expires with its transcript
// instead of persisting.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) transcriptKey(sessionID string) string {
	return fmt.Sprintf("transcript:%s:messages", sessionID)
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, message *schema.Message) error {
	b, err := json.Marshal(message)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to marshal message")
		return fmt.Errorf("marshal message: %w", err)
	}
	key := s.transcriptKey(sessionID)

	if err := s.rdb.RPush(ctx, key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push message to redis")
		return errx.WrapRedis(err)
	}
	// extend TTL on touch
	if s.ttl > 0 {
		if ok, err := s.rdb.Expire(ctx, key, s.ttl).Result(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to set expire")
			return errx.WrapRedis(err)
		} else if !ok {
			logx.Warn().Str("key", key).Dur("ttl", s.ttl).Msg("failed to set TTL on transcript key")
		}
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	key := s.transcriptKey(sessionID)

	rows, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []*schema.Message{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load transcript from redis")
		return nil, errx.WrapRedis(err)
	}

	msgs := make([]*schema.Message, 0, len(rows))
	for i, row := range rows {
		var m schema.Message
		if err := json.Unmarshal([]byte(row), &m); err != nil {
			logx.Error().Err(err).Str("sessionID", sessionID).Int("index", i).Msg("failed to unmarshal message")
			return nil, fmt.Errorf("unmarshal message at index %d: %w", i, err)
		}
		msgs = append(msgs, &m)
	}
	return msgs, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	key := s.transcriptKey(sessionID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete transcript from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (s *RedisStore) Len(ctx context.Context, sessionID string) (int, error) {
	key := s.transcriptKey(sessionID)
	n, err := s.rdb.LLen(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to get transcript length from redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ TranscriptStore = (*RedisStore)(nil)
