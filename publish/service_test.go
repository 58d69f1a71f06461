package publish_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-experiences/blocks"
	"github.com/goliatone/go-experiences/domain"
	"github.com/goliatone/go-experiences/media"
	"github.com/goliatone/go-experiences/publish"
	"github.com/google/uuid"
)

func TestSaveDraftCreatesRecord(t *testing.T) {
	store := publish.NewMemoryStore()
	svc := publish.NewService(store)

	receipt, err := svc.SaveDraft(context.Background(), publish.SaveDraftRequest{
		Input: publish.Input{Blocks: titled("Sunrise Trail Hike"), Category: "outdoors"},
	})
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if receipt.Status != domain.StatusDraft {
		t.Fatalf("receipt status = %q", receipt.Status)
	}

	stored, status, ok := store.Get(receipt.ExperienceID)
	if !ok {
		t.Fatal("draft not persisted")
	}
	if status != domain.StatusDraft {
		t.Fatalf("stored status = %q", status)
	}
	if stored.Title != "Sunrise Trail Hike" || stored.Category != "outdoors" {
		t.Fatalf("stored request = %+v", stored)
	}
}

func TestSaveDraftUpdatesExistingRecord(t *testing.T) {
	store := publish.NewMemoryStore()
	svc := publish.NewService(store)
	ctx := context.Background()

	receipt, err := svc.SaveDraft(ctx, publish.SaveDraftRequest{
		Input: publish.Input{Blocks: titled("Sunrise Trail Hike")},
	})
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	id := receipt.ExperienceID
	_, err = svc.SaveDraft(ctx, publish.SaveDraftRequest{
		ExperienceID: &id,
		Input:        publish.Input{Blocks: titled("Sunset Trail Hike")},
	})
	if err != nil {
		t.Fatalf("second SaveDraft: %v", err)
	}

	stored, _, _ := store.Get(id)
	if stored.Title != "Sunset Trail Hike" {
		t.Fatalf("stored title = %q", stored.Title)
	}
}

func TestSaveDraftRejectsInvalidSequence(t *testing.T) {
	svc := publish.NewService(publish.NewMemoryStore())

	_, err := svc.SaveDraft(context.Background(), publish.SaveDraftRequest{
		Input: publish.Input{Blocks: titled("ab")},
	})
	if !publish.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPublishWithoutIDCreatesThenPublishes(t *testing.T) {
	store := publish.NewMemoryStore()
	svc := publish.NewService(store)

	upload := media.NewResource("cover.jpg", "image/jpeg", []byte{1}, nil)
	seq := append(publishable(),
		blocks.Block{ID: blocks.ImageBlockID, Type: blocks.TypeImage, Data: blocks.ImageData{Upload: upload}, Order: 3},
	)

	receipt, err := svc.Publish(context.Background(), publish.PublishRequest{
		Input: publish.Input{Blocks: seq, IsPublic: true},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if receipt.Status != domain.StatusPublished {
		t.Fatalf("receipt status = %q", receipt.Status)
	}

	stored, status, ok := store.Get(receipt.ExperienceID)
	if !ok || status != domain.StatusPublished {
		t.Fatalf("stored status = %q ok=%v", status, ok)
	}
	if stored.Visibility != domain.VisibilityPublic {
		t.Fatalf("stored visibility = %q", stored.Visibility)
	}
	// Attachments accompany the create; the publish must not duplicate them.
	if n := store.AttachmentCount(receipt.ExperienceID); n != 1 {
		t.Fatalf("attachment count = %d, want 1", n)
	}
}

func TestPublishRejectsIncompleteSequence(t *testing.T) {
	svc := publish.NewService(publish.NewMemoryStore())

	_, err := svc.Publish(context.Background(), publish.PublishRequest{
		Input: publish.Input{Blocks: titled("Sunrise Trail Hike")},
	})
	if !publish.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceRequiresStore(t *testing.T) {
	svc := publish.NewService(nil)

	_, err := svc.SaveDraft(context.Background(), publish.SaveDraftRequest{
		Input: publish.Input{Blocks: titled("Sunrise Trail Hike")},
	})
	if !errors.Is(err, publish.ErrStoreRequired) {
		t.Fatalf("expected ErrStoreRequired, got %v", err)
	}
}

// blockingStore parks the first CreateDraft until released so a second
// submission can overlap it.
type blockingStore struct {
	*publish.MemoryStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) CreateDraft(ctx context.Context, req publish.Request, att publish.Attachments) (uuid.UUID, error) {
	b.once.Do(func() {
		close(b.entered)
		<-b.release
	})
	return b.MemoryStore.CreateDraft(ctx, req, att)
}

func TestOverlappingSaveIsRefused(t *testing.T) {
	store := &blockingStore{
		MemoryStore: publish.NewMemoryStore(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	svc := publish.NewService(store)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.SaveDraft(ctx, publish.SaveDraftRequest{
			Input: publish.Input{Blocks: titled("Sunrise Trail Hike")},
		})
		done <- err
	}()

	select {
	case <-store.entered:
	case <-time.After(time.Second):
		t.Fatal("first save never reached the store")
	}

	_, err := svc.SaveDraft(ctx, publish.SaveDraftRequest{
		Input: publish.Input{Blocks: titled("Sunrise Trail Hike")},
	})
	if !errors.Is(err, publish.ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}

	close(store.release)
	if err := <-done; err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	// The slot frees once the first save completes.
	if _, err := svc.SaveDraft(ctx, publish.SaveDraftRequest{
		Input: publish.Input{Blocks: titled("Sunrise Trail Hike")},
	}); err != nil {
		t.Fatalf("save after completion failed: %v", err)
	}
}
