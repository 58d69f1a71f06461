package publish

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Store is the persistence collaborator contract. The engine only builds
// the request/attachments pair and hands it over; transport, auth, and
// storage internals live behind this interface.
type Store interface {
	CreateDraft(ctx context.Context, req Request, att Attachments) (uuid.UUID, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, req Request, att Attachments) error
	Publish(ctx context.Context, id uuid.UUID, req Request, att Attachments) error
	DeleteAttachment(ctx context.Context, experienceID uuid.UUID, attachmentID string) error
}

// NotFoundError indicates a missing experience or attachment record.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}
