package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/app"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"golang.org/x/sync/singleflight"
)

// RecommendationCache caches course lists per (domain, level) with TTL
// to avoid hammering the generative service.
type RecommendationCache struct {
	source app.RecommendationSource
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedCourses
}

type cachedCourses struct {
	courses   []domain.Course
	expiresAt time.Time
}

func NewRecommendationCache(source app.RecommendationSource, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedCourses),
	}
}

func (c *RecommendationCache) Recommend(ctx context.Context, learningDomain string, level domain.SkillLevel) []domain.Course {
	key := learningDomain + "|" + string(level)
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.courses
	}
	c.mu.RUnlock()

	result, _, _ := c.sf.Do(key, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return entry.courses, nil
		}
		c.mu.RUnlock()

		courses := c.source.Recommend(ctx, learningDomain, level)

		c.mu.Lock()
		c.cache[key] = cachedCourses{
			courses:   courses,
			expiresAt: now.Add(c.ttlWithJitter()),
		}
		c.mu.Unlock()
		return courses, nil
	})
	return result.([]domain.Course)
}

func (c *RecommendationCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
