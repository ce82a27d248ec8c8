package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/pkg/cleanup"
	"github.com/limbo/fitquest/pkg/entity"
)

const contentKeyPrefix = "fitquest:ai-content:"

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

// ContentCache keeps generated dashboard content per user so the LLM is not hit on every page load.
type ContentCache struct {
	client redis.Cmdable
}

func NewContentCache(cfg RedisCfg) *ContentCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Fatal("error while pinging redis for content cache: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &ContentCache{client: client}
}

func NewContentCacheWithClient(client redis.Cmdable) *ContentCache {
	return &ContentCache{client: client}
}

func contentKey(userID uuid.UUID) string {
	return contentKeyPrefix + userID.String()
}

func (cc *ContentCache) Get(ctx context.Context, userID uuid.UUID) (*entity.PersonalizedContent, error) {
	raw, err := cc.client.Get(ctx, contentKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errorvalues.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("reading cached content: %w", err)
	}
	var content entity.PersonalizedContent
	if err = sonic.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("decoding cached content: %w", err)
	}
	return &content, nil
}

func (cc *ContentCache) Set(ctx context.Context, userID uuid.UUID, content *entity.PersonalizedContent, ttl time.Duration) error {
	raw, err := sonic.Marshal(content)
	if err != nil {
		return fmt.Errorf("encoding content for cache: %w", err)
	}
	if err = cc.client.Set(ctx, contentKey(userID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("caching content: %w", err)
	}
	return nil
}

func (cc *ContentCache) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := cc.client.Del(ctx, contentKey(userID)).Err(); err != nil {
		return fmt.Errorf("dropping cached content: %w", err)
	}
	return nil
}

// NoopContentCache is used when no Redis address is configured.
type NoopContentCache struct{}

func (NoopContentCache) Get(context.Context, uuid.UUID) (*entity.PersonalizedContent, error) {
	return nil, errorvalues.ErrCacheMiss
}

func (NoopContentCache) Set(context.Context, uuid.UUID, *entity.PersonalizedContent, time.Duration) error {
	return nil
}

func (NoopContentCache) Delete(context.Context, uuid.UUID) error {
	return nil
}
