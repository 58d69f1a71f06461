package publish

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-experiences/domain"
	"github.com/goliatone/go-experiences/media"
	"github.com/google/uuid"
)

// NewMemoryStore constructs an "in memory" store. It backs tests and local
// tooling; production wiring uses the bun-backed store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[uuid.UUID]*memoryRecord),
		now:     time.Now,
		id:      uuid.New,
	}
}

// MemoryStore keeps experiences and their attachments in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*memoryRecord
	now     func() time.Time
	id      func() uuid.UUID
}

type memoryRecord struct {
	request     Request
	status      domain.Status
	attachments map[string]media.Upload
	updatedAt   time.Time
}

func (m *MemoryStore) CreateDraft(_ context.Context, req Request, att Attachments) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.id()
	record := &memoryRecord{
		request:     req,
		status:      domain.StatusDraft,
		attachments: make(map[string]media.Upload),
		updatedAt:   m.now(),
	}
	m.storeAttachments(record, att)
	m.records[id] = record
	return id, nil
}

func (m *MemoryStore) UpdateDraft(_ context.Context, id uuid.UUID, req Request, att Attachments) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return &NotFoundError{Resource: "experience", Key: id.String()}
	}
	record.request = req
	record.updatedAt = m.now()
	m.storeAttachments(record, att)
	return nil
}

func (m *MemoryStore) Publish(_ context.Context, id uuid.UUID, req Request, att Attachments) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return &NotFoundError{Resource: "experience", Key: id.String()}
	}
	record.request = req
	record.status = domain.StatusPublished
	record.updatedAt = m.now()
	m.storeAttachments(record, att)
	return nil
}

func (m *MemoryStore) DeleteAttachment(_ context.Context, experienceID uuid.UUID, attachmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[experienceID]
	if !ok {
		return &NotFoundError{Resource: "experience", Key: experienceID.String()}
	}
	if _, ok := record.attachments[attachmentID]; !ok {
		return &NotFoundError{Resource: "attachment", Key: attachmentID}
	}
	delete(record.attachments, attachmentID)
	return nil
}

// Get returns the stored request and status for assertions in tests.
func (m *MemoryStore) Get(id uuid.UUID) (Request, domain.Status, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return Request{}, "", false
	}
	return record.request, record.status, true
}

// AttachmentCount reports how many binaries are stored for an experience.
func (m *MemoryStore) AttachmentCount(id uuid.UUID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return 0
	}
	return len(record.attachments)
}

func (m *MemoryStore) storeAttachments(record *memoryRecord, att Attachments) {
	if att.FeaturedImage != nil {
		record.attachments[m.id().String()] = *att.FeaturedImage
	}
	for _, upload := range att.Gallery {
		record.attachments[m.id().String()] = upload
	}
}
