package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Skipper-116/devhub-backend/internal/api/metrics"
	"github.com/Skipper-116/devhub-backend/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// ProjectCache is a read-through cache of single-project lookups.
// Key format: project:<id>. Entries are short-lived and invalidated on
// every mutation (update, like, comment, void), so a voided project can
// never be served from a stale entry.
type ProjectCache struct {
	client *redis.Client
}

func NewProjectCache(client *redis.Client) *ProjectCache {
	return &ProjectCache{client: client}
}

// Get returns the cached project, or (nil, nil) on a miss.
func (c *ProjectCache) Get(ctx context.Context, id string) (*domain.Project, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ProjectCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("project cache get: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		// A corrupt entry behaves like a miss; the next Set repairs it.
		metrics.ProjectCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	metrics.ProjectCacheTotal.WithLabelValues("hit").Inc()
	return &p, nil
}

func (c *ProjectCache) Set(ctx context.Context, p *domain.Project) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("project cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(p.ID), raw, cacheTTL).Err()
}

func (c *ProjectCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ProjectCache) key(id string) string {
	return "project:" + id
}
