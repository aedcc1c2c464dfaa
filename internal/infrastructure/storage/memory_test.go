package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

func TestInMemoryChallengeStore(t *testing.T) {
	store := NewInMemoryChallengeStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "123456789012"); !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound, got %v", err)
	}

	issued := time.Now()
	challenge := &domain.Challenge{AadhaarNumber: "123456789012", OTP: "123456", IssuedAt: issued}
	if err := store.Put(ctx, challenge); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "123456789012")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.OTP != "123456" || !got.IssuedAt.Equal(issued) {
		t.Errorf("unexpected challenge %+v", got)
	}

	// Mutating the returned copy must not affect the stored value
	got.Verified = true
	again, _ := store.Get(ctx, "123456789012")
	if again.Verified {
		t.Error("store must hand out copies, not shared state")
	}

	// Replace-on-write for the same Aadhaar number
	if err := store.Put(ctx, &domain.Challenge{AadhaarNumber: "123456789012", OTP: "654321", IssuedAt: time.Now()}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	replaced, _ := store.Get(ctx, "123456789012")
	if replaced.OTP != "654321" {
		t.Errorf("expected replaced code, got %s", replaced.OTP)
	}

	if err := store.Delete(ctx, "123456789012"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "123456789012"); !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound after delete, got %v", err)
	}

	// Deleting an absent key is not an error
	if err := store.Delete(ctx, "999999999999"); err != nil {
		t.Errorf("delete of absent key should be a no-op, got %v", err)
	}
}

func TestInMemoryRegistrationStore(t *testing.T) {
	store := NewInMemoryRegistrationStore()
	ctx := context.Background()

	total, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected empty store, got %d", total)
	}

	for i := 0; i < 3; i++ {
		reg := &domain.Registration{
			ID:            fmt.Sprintf("UDYAM-TEST0000%d", i),
			AadhaarNumber: fmt.Sprintf("%012d", i),
			Status:        domain.StatusPending,
		}
		if err := store.Append(ctx, reg); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	records, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, rec := range records {
		if rec.ID != fmt.Sprintf("UDYAM-TEST0000%d", i) {
			t.Errorf("insertion order broken at %d: %s", i, rec.ID)
		}
	}

	// Returned slice is a snapshot
	records[0].Status = "MUTATED"
	fresh, _ := store.ListAll(ctx)
	if fresh[0].Status != domain.StatusPending {
		t.Error("ListAll must return a copy")
	}

	total, _ = store.Count(ctx)
	if total != 3 {
		t.Errorf("expected count 3, got %d", total)
	}
}

func TestInMemoryStoresConcurrentAccess(t *testing.T) {
	challenges := NewInMemoryChallengeStore()
	registrations := NewInMemoryRegistrationStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			aadhaar := fmt.Sprintf("%012d", i)
			_ = challenges.Put(ctx, &domain.Challenge{AadhaarNumber: aadhaar, OTP: "123456", IssuedAt: time.Now()})
			_, _ = challenges.Get(ctx, aadhaar)
			_ = registrations.Append(ctx, &domain.Registration{ID: fmt.Sprintf("UDYAM-%09d", i)})
			_, _ = registrations.ListAll(ctx)
		}(i)
	}
	wg.Wait()

	total, _ := registrations.Count(ctx)
	if total != 20 {
		t.Errorf("expected 20 registrations, got %d", total)
	}
}
