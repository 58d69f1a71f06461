package publish

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goliatone/go-experiences/domain"
	"github.com/goliatone/go-experiences/internal/logging"
	"github.com/goliatone/go-experiences/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	// ErrSaveInFlight rejects a save or publish while another one is still
	// outstanding, so a double click cannot cause duplicate submissions.
	ErrSaveInFlight = errors.New("experiences: save already in flight")
	// ErrStoreRequired is returned when the service was built without a store.
	ErrStoreRequired = errors.New("experiences: persistence store required")
)

// Service validates, flattens, and persists experience documents. It is the
// only component that talks to the Store.
type Service interface {
	SaveDraft(ctx context.Context, req SaveDraftRequest) (*Receipt, error)
	Publish(ctx context.Context, req PublishRequest) (*Receipt, error)
	DeleteAttachment(ctx context.Context, experienceID uuid.UUID, attachmentID string) error
}

// SaveDraftRequest captures a draft save. A nil ExperienceID creates a new
// draft; otherwise the existing one is updated.
type SaveDraftRequest struct {
	ExperienceID *uuid.UUID
	Input        Input
}

// PublishRequest captures a publish. A nil ExperienceID creates the draft
// first, then publishes it.
type PublishRequest struct {
	ExperienceID *uuid.UUID
	Input        Input
}

// Receipt reports the outcome of a successful save or publish.
type Receipt struct {
	ExperienceID uuid.UUID
	Status       domain.Status
	SavedAt      time.Time
}

// ServiceOption configures the publish service.
type ServiceOption func(*service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the receipt timestamp source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	store  Store
	logger interfaces.Logger
	now    func() time.Time

	mu       sync.Mutex
	inFlight bool
}

// NewService wires a publish service around the given store.
func NewService(store Store, opts ...ServiceOption) Service {
	s := &service{
		store:  store,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SaveDraft(ctx context.Context, req SaveDraftRequest) (*Receipt, error) {
	if s.store == nil {
		return nil, ErrStoreRequired
	}
	if !s.begin() {
		return nil, ErrSaveInFlight
	}
	defer s.end()

	request, attachments, err := BuildRequest(req.Input, GateDraft)
	if err != nil {
		return nil, err
	}

	if req.ExperienceID != nil {
		if err := s.store.UpdateDraft(ctx, *req.ExperienceID, *request, *attachments); err != nil {
			s.logger.Error("publish.draft.update_failed", "experience_id", req.ExperienceID.String(), "error", err)
			return nil, err
		}
		s.logger.Info("publish.draft.updated", "experience_id", req.ExperienceID.String())
		return &Receipt{ExperienceID: *req.ExperienceID, Status: domain.StatusDraft, SavedAt: s.now()}, nil
	}

	id, err := s.store.CreateDraft(ctx, *request, *attachments)
	if err != nil {
		s.logger.Error("publish.draft.create_failed", "error", err)
		return nil, err
	}
	s.logger.Info("publish.draft.created", "experience_id", id.String())
	return &Receipt{ExperienceID: id, Status: domain.StatusDraft, SavedAt: s.now()}, nil
}

func (s *service) Publish(ctx context.Context, req PublishRequest) (*Receipt, error) {
	if s.store == nil {
		return nil, ErrStoreRequired
	}
	if !s.begin() {
		return nil, ErrSaveInFlight
	}
	defer s.end()

	request, attachments, err := BuildRequest(req.Input, GatePublish)
	if err != nil {
		return nil, err
	}

	id := uuid.Nil
	if req.ExperienceID != nil {
		id = *req.ExperienceID
	} else {
		created, err := s.store.CreateDraft(ctx, *request, *attachments)
		if err != nil {
			s.logger.Error("publish.create_failed", "error", err)
			return nil, err
		}
		id = created
		// Attachments were stored with the draft; do not send them twice.
		attachments = &Attachments{}
	}

	if err := s.store.Publish(ctx, id, *request, *attachments); err != nil {
		s.logger.Error("publish.failed", "experience_id", id.String(), "error", err)
		return nil, err
	}

	s.logger.Info("publish.succeeded", "experience_id", id.String())
	return &Receipt{ExperienceID: id, Status: domain.StatusPublished, SavedAt: s.now()}, nil
}

func (s *service) DeleteAttachment(ctx context.Context, experienceID uuid.UUID, attachmentID string) error {
	if s.store == nil {
		return ErrStoreRequired
	}
	return s.store.DeleteAttachment(ctx, experienceID, attachmentID)
}

// begin claims the in-flight slot. The block sequence stays editable during
// a save; only overlapping submissions are refused.
func (s *service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *service) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}
