package publish

import (
	"time"

	"github.com/goliatone/go-experiences/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Experience is the persisted row for one experience document. The flattened
// request is stored as a jsonb payload; commonly filtered columns are lifted
// out of it.
type Experience struct {
	bun.BaseModel `bun:"table:experiences,alias:e"`

	ID          uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	Slug        string        `bun:"slug,notnull" json:"slug"`
	Status      domain.Status `bun:"status,notnull,default:'draft'" json:"status"`
	Payload     Request       `bun:"payload,type:jsonb,notnull" json:"payload"`
	PublishedAt *time.Time    `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt   time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Attachments []*ExperienceAttachment `bun:"rel:has-many,join:id=experience_id" json:"attachments,omitempty"`
}

// ExperienceAttachment stores one extracted binary alongside its request
// slot and alt text.
type ExperienceAttachment struct {
	bun.BaseModel `bun:"table:experience_attachments,alias:ea"`

	ID           uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ExperienceID uuid.UUID `bun:"experience_id,notnull,type:uuid" json:"experience_id"`
	Field        string    `bun:"field,notnull" json:"field"`
	Name         string    `bun:"name" json:"name"`
	MimeType     string    `bun:"mime_type" json:"mime_type,omitempty"`
	Alt          string    `bun:"alt" json:"alt,omitempty"`
	Data         []byte    `bun:"data" json:"-"`
	CreatedAt    time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}
