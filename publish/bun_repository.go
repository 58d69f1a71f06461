package publish

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-experiences/domain"
	"github.com/goliatone/go-experiences/media"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewExperienceRepository creates a repository for Experience rows.
func NewExperienceRepository(db *bun.DB) repository.Repository[*Experience] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Experience]{
		NewRecord:          func() *Experience { return &Experience{} },
		GetID:              func(e *Experience) uuid.UUID { return e.ID },
		SetID:              func(e *Experience, id uuid.UUID) { e.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(e *Experience) string { return e.Slug },
	})
}

// NewAttachmentRepository creates a repository for ExperienceAttachment rows.
func NewAttachmentRepository(db *bun.DB) repository.Repository[*ExperienceAttachment] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ExperienceAttachment]{
		NewRecord: func() *ExperienceAttachment { return &ExperienceAttachment{} },
		GetID:     func(a *ExperienceAttachment) uuid.UUID { return a.ID },
		SetID:     func(a *ExperienceAttachment, id uuid.UUID) { a.ID = id },
	})
}

// BunStore persists experiences through bun with optional read caching.
type BunStore struct {
	db          *bun.DB
	repo        repository.Repository[*Experience]
	attachments repository.Repository[*ExperienceAttachment]
	now         func() time.Time
	id          func() uuid.UUID
}

// NewBunStore constructs a Store backed by bun.
func NewBunStore(db *bun.DB) *BunStore {
	return NewBunStoreWithCache(db, nil, nil)
}

// NewBunStoreWithCache constructs a Store backed by bun with optional
// repository caching.
func NewBunStoreWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunStore {
	return &BunStore{
		db:          db,
		repo:        wrapWithCache(NewExperienceRepository(db), cacheService, keySerializer),
		attachments: wrapWithCache(NewAttachmentRepository(db), cacheService, keySerializer),
		now:         time.Now,
		id:          uuid.New,
	}
}

var _ Store = (*BunStore)(nil)

func (s *BunStore) CreateDraft(ctx context.Context, req Request, att Attachments) (uuid.UUID, error) {
	now := s.now()
	record := &Experience{
		ID:        s.id(),
		Slug:      req.Slug,
		Status:    domain.StatusDraft,
		Payload:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return uuid.Nil, mapRepositoryError(err, "experience", record.Slug)
	}
	if err := s.createAttachments(ctx, created.ID, att); err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (s *BunStore) UpdateDraft(ctx context.Context, id uuid.UUID, req Request, att Attachments) error {
	return s.save(ctx, id, req, att, domain.StatusDraft)
}

func (s *BunStore) Publish(ctx context.Context, id uuid.UUID, req Request, att Attachments) error {
	return s.save(ctx, id, req, att, domain.StatusPublished)
}

func (s *BunStore) save(ctx context.Context, id uuid.UUID, req Request, att Attachments, status domain.Status) error {
	record, err := s.repo.GetByID(ctx, id.String())
	if err != nil {
		return mapRepositoryError(err, "experience", id.String())
	}

	now := s.now()
	record.Slug = req.Slug
	record.Payload = req
	record.Status = status
	record.UpdatedAt = now
	if status == domain.StatusPublished {
		record.PublishedAt = &now
	}

	if _, err := s.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns("slug", "payload", "status", "published_at", "updated_at"),
	); err != nil {
		return mapRepositoryError(err, "experience", id.String())
	}

	return s.createAttachments(ctx, record.ID, att)
}

func (s *BunStore) DeleteAttachment(ctx context.Context, experienceID uuid.UUID, attachmentID string) error {
	id, err := uuid.Parse(attachmentID)
	if err != nil {
		return &NotFoundError{Resource: "attachment", Key: attachmentID}
	}

	record, err := s.attachments.GetByID(ctx, id.String())
	if err != nil {
		return mapRepositoryError(err, "attachment", attachmentID)
	}
	if record.ExperienceID != experienceID {
		return &NotFoundError{Resource: "attachment", Key: attachmentID}
	}
	return s.attachments.Delete(ctx, &ExperienceAttachment{ID: id})
}

func (s *BunStore) createAttachments(ctx context.Context, experienceID uuid.UUID, att Attachments) error {
	uploads := att.Gallery
	if att.FeaturedImage != nil {
		uploads = append([]media.Upload{*att.FeaturedImage}, uploads...)
	}

	for _, upload := range uploads {
		record := &ExperienceAttachment{
			ID:           s.id(),
			ExperienceID: experienceID,
			Field:        upload.Field,
			Name:         upload.Name,
			MimeType:     upload.MimeType,
			Alt:          upload.Alt,
			Data:         upload.Data,
			CreatedAt:    s.now(),
		}
		if _, err := s.attachments.Create(ctx, record); err != nil {
			return mapRepositoryError(err, "attachment", upload.Name)
		}
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
