package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/app"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// RecommendationCache stores course lists in Redis as JSON blobs keyed
// by (domain, level) and falls back to the underlying source on miss.
// Keys: recs:{domain}:{level}
type RecommendationCache struct {
	client *redis.Client
	source app.RecommendationSource
	ttl    time.Duration
	sf     singleflight.Group

	// Misses for distinct keys run concurrently inside sf.Do; rand.Rand
	// is not safe for concurrent use.
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRecommendationCache(client *redis.Client, source app.RecommendationSource, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		source: source,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *RecommendationCache) Recommend(ctx context.Context, learningDomain string, level domain.SkillLevel) []domain.Course {
	key := c.key(learningDomain, level)

	if courses, ok := c.lookup(ctx, key); ok {
		return courses
	}

	result, _, _ := c.sf.Do(key, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if courses, ok := c.lookup(ctx, key); ok {
			return courses, nil
		}

		courses := c.source.Recommend(ctx, learningDomain, level)

		if data, err := json.Marshal(courses); err == nil {
			ttl := c.ttlWithJitter()
			// best-effort write; a cache failure must not fail the request
			_ = c.client.Set(ctx, key, data, ttl).Err()
		}
		return courses, nil
	})
	return result.([]domain.Course)
}

func (c *RecommendationCache) lookup(ctx context.Context, key string) ([]domain.Course, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var courses []domain.Course
	if err := json.Unmarshal(data, &courses); err != nil || len(courses) == 0 {
		return nil, false
	}
	return courses, true
}

func (c *RecommendationCache) key(learningDomain string, level domain.SkillLevel) string {
	return "recs:" + learningDomain + ":" + string(level)
}

func (c *RecommendationCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
