package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// ChallengeRepositoryImpl implements domain.ChallengeRepository using
// Redis. The key TTL is set to twice the challenge TTL and acts purely as
// garbage collection: expiry decisions stay with the OTP service, which
// checks IssuedAt lazily so an expired-but-present challenge is still
// reported as expired rather than not-found.
type ChallengeRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewChallengeRepository creates a Redis-backed challenge repository.
// challengeTTL is the logical challenge lifetime.
func NewChallengeRepository(client *redis.Client, challengeTTL time.Duration) *ChallengeRepositoryImpl {
	return &ChallengeRepositoryImpl{
		client: client,
		prefix: "challenge:",
		ttl:    2 * challengeTTL,
	}
}

// Put implements domain.ChallengeRepository
func (r *ChallengeRepositoryImpl) Put(ctx context.Context, challenge *domain.Challenge) error {
	key := r.prefix + challenge.AadhaarNumber
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// Get implements domain.ChallengeRepository
func (r *ChallengeRepositoryImpl) Get(ctx context.Context, aadhaarNumber string) (*domain.Challenge, error) {
	key := r.prefix + aadhaarNumber
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, err
	}

	var challenge domain.Challenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}

// Delete implements domain.ChallengeRepository
func (r *ChallengeRepositoryImpl) Delete(ctx context.Context, aadhaarNumber string) error {
	key := r.prefix + aadhaarNumber
	return r.client.Del(ctx, key).Err()
}
