package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"

	"github.com/redis/go-redis/v9"
)

const subjectKeyPrefix = "subject"

// NewCache connects to Redis and verifies it with a ping.
func NewCache(ctx context.Context, addr, username, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

// SubjectCache keeps catalog entries as JSON under subject:<website>:<id>.
// A nil client disables caching.
type SubjectCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSubjectCache(client *redis.Client, ttl time.Duration) repository.ISubjectCache {
	return &SubjectCache{client: client, ttl: ttl}
}

func (c *SubjectCache) Get(ctx context.Context, website model.Website, bangumiID string) (model.Subject, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, subjectKey(website, bangumiID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached subject: %w", err)
	}
	var subject model.Subject
	if err := json.Unmarshal(raw, &subject); err != nil {
		return nil, fmt.Errorf("decode cached subject: %w", err)
	}
	return subject, nil
}

func (c *SubjectCache) Set(ctx context.Context, website model.Website, bangumiID string, subject model.Subject) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(subject)
	if err != nil {
		return fmt.Errorf("encode subject: %w", err)
	}
	if err := c.client.Set(ctx, subjectKey(website, bangumiID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache subject: %w", err)
	}
	return nil
}

func subjectKey(website model.Website, bangumiID string) string {
	return fmt.Sprintf("%s:%s:%s", subjectKeyPrefix, website, bangumiID)
}
