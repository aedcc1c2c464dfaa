package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

func setupChallengeRepo(t *testing.T) (*ChallengeRepositoryImpl, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewChallengeRepository(client, 10*time.Minute), mr
}

func TestChallengeRepository_PutAndGet(t *testing.T) {
	repo, _ := setupChallengeRepo(t)
	ctx := context.Background()

	issued := time.Now().UTC().Truncate(time.Second)
	challenge := &domain.Challenge{
		AadhaarNumber: "123456789012",
		OTP:           "123456",
		IssuedAt:      issued,
	}

	if err := repo.Put(ctx, challenge); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := repo.Get(ctx, "123456789012")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.OTP != "123456" {
		t.Errorf("expected code 123456, got %s", got.OTP)
	}
	if !got.IssuedAt.Equal(issued) {
		t.Errorf("IssuedAt round trip mismatch: want %v, got %v", issued, got.IssuedAt)
	}
	if got.Verified {
		t.Error("verified flag must round trip as false")
	}
}

func TestChallengeRepository_GetMissing(t *testing.T) {
	repo, _ := setupChallengeRepo(t)

	_, err := repo.Get(context.Background(), "999999999999")
	if !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound, got %v", err)
	}
}

func TestChallengeRepository_PutOverwrites(t *testing.T) {
	repo, _ := setupChallengeRepo(t)
	ctx := context.Background()

	first := &domain.Challenge{AadhaarNumber: "123456789012", OTP: "111111", IssuedAt: time.Now(), Verified: true}
	if err := repo.Put(ctx, first); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	second := &domain.Challenge{AadhaarNumber: "123456789012", OTP: "222222", IssuedAt: time.Now()}
	if err := repo.Put(ctx, second); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := repo.Get(ctx, "123456789012")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.OTP != "222222" || got.Verified {
		t.Errorf("expected fresh unverified challenge, got %+v", got)
	}
}

func TestChallengeRepository_Delete(t *testing.T) {
	repo, _ := setupChallengeRepo(t)
	ctx := context.Background()

	challenge := &domain.Challenge{AadhaarNumber: "123456789012", OTP: "123456", IssuedAt: time.Now()}
	if err := repo.Put(ctx, challenge); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if err := repo.Delete(ctx, "123456789012"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, "123456789012"); !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound after delete, got %v", err)
	}

	// Deleting an absent key is not an error
	if err := repo.Delete(ctx, "999999999999"); err != nil {
		t.Errorf("delete of absent key should be a no-op, got %v", err)
	}
}

func TestChallengeRepository_KeyTTLIsGarbageCollection(t *testing.T) {
	repo, mr := setupChallengeRepo(t)
	ctx := context.Background()

	challenge := &domain.Challenge{AadhaarNumber: "123456789012", OTP: "123456", IssuedAt: time.Now()}
	if err := repo.Put(ctx, challenge); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	// Key TTL is twice the logical challenge lifetime
	ttl := mr.TTL("challenge:123456789012")
	if ttl != 20*time.Minute {
		t.Errorf("expected key TTL 20m, got %v", ttl)
	}

	// Inside the GC window the record stays readable even past the
	// logical lifetime; expiry is the OTP service's call.
	mr.FastForward(15 * time.Minute)
	if _, err := repo.Get(ctx, "123456789012"); err != nil {
		t.Fatalf("record should survive past logical TTL, got %v", err)
	}

	mr.FastForward(6 * time.Minute)
	if _, err := repo.Get(ctx, "123456789012"); !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound after GC window, got %v", err)
	}
}
