package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache keeps ranked responses for a short TTL. Scoring is
// deterministic over a snapshot, so serving a seconds-old response is safe.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

type cachedResponse struct {
	Preferences     domain.StudentPreference `json:"preferences"`
	Recommendations []domain.Recommendation  `json:"recommendations"`
	CachedAt        time.Time                `json:"cached_at"`
}

// CacheKey is deterministic in everything that affects the ranking.
func CacheKey(studentID string, prefs domain.StudentPreference, topK int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s|%d",
		studentID,
		prefs.Subject,
		prefs.Mode,
		prefs.Level,
		prefs.PreferredPriceRange,
		prefs.ExperiencePreference,
		topK,
	)
	return fmt.Sprintf("reco:%x", h.Sum64())
}

func (c *RecommendationCache) Get(ctx context.Context, key string) ([]domain.Recommendation, domain.StudentPreference, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.StudentPreference{}, false, nil
		}
		return nil, domain.StudentPreference{}, false, fmt.Errorf("failed to read recommendation cache: %w", err)
	}

	var cached cachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, domain.StudentPreference{}, false, fmt.Errorf("failed to decode cached recommendations: %w", err)
	}

	return cached.Recommendations, cached.Preferences, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, key string, prefs domain.StudentPreference, recs []domain.Recommendation) error {
	data, err := json.Marshal(cachedResponse{
		Preferences:     prefs,
		Recommendations: recs,
		CachedAt:        time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode recommendations for cache: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write recommendation cache: %w", err)
	}

	return nil
}
