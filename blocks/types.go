package blocks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type identifies a block variant within an experience document.
type Type string

const (
	TypeTitle      Type = "title"
	TypeDates      Type = "dates"
	TypeLocation   Type = "location"
	TypeImage      Type = "image"
	TypeRichText   Type = "richText"
	TypeHighlights Type = "highlights"
	TypeAgendaDay  Type = "agendaDay"
	TypeTickets    Type = "tickets"
	TypeGallery    Type = "gallery"
	TypeFAQ        Type = "faq"
	TypeCTA        Type = "cta"
	TypeResources  Type = "resources"
	TypeLogistics  Type = "logistics"
)

// Fixed ids for singleton blocks. Core blocks are created when a builder
// session starts and keep these ids for the lifetime of the document.
const (
	TitleBlockID    = "title-default"
	DatesBlockID    = "dates-default"
	LocationBlockID = "location-default"
	RichTextBlockID = "richText-default"
	ImageBlockID    = "image-default"
)

var fixedIDs = map[Type]string{
	TypeTitle:    TitleBlockID,
	TypeDates:    DatesBlockID,
	TypeLocation: LocationBlockID,
	TypeRichText: RichTextBlockID,
	TypeImage:    ImageBlockID,
}

var protectedIDs = map[string]struct{}{
	TitleBlockID:    {},
	DatesBlockID:    {},
	LocationBlockID: {},
	RichTextBlockID: {},
	ImageBlockID:    {},
}

// FixedID returns the well-known id for singleton block types. The second
// return is false for types that may appear any number of times.
func FixedID(t Type) (string, bool) {
	id, ok := fixedIDs[t]
	return id, ok
}

// IsProtectedID reports whether the id belongs to a core block. Core blocks
// are never deleted; Delete silently refuses them.
func IsProtectedID(id string) bool {
	_, ok := protectedIDs[id]
	return ok
}

// Block is the atomic unit of the experience document.
type Block struct {
	ID    string `json:"id"`
	Type  Type   `json:"type"`
	Data  Data   `json:"data"`
	Order int    `json:"order"`
}

// Clone returns a deep copy of the block. Preview resource pointers inside
// the data payload are shared, not duplicated.
func (b Block) Clone() Block {
	cloned := b
	if b.Data != nil {
		cloned.Data = b.Data.Clone()
	}
	return cloned
}

// Sequence is the ordered block list owned by a single document. Mutation
// helpers in this package never modify their input; they return fresh slices
// with Order renumbered to match array position.
type Sequence []Block

// Clone deep-copies the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, b := range s {
		out[i] = b.Clone()
	}
	return out
}

// IndexOf returns the position of the block with the given id, or -1.
func (s Sequence) IndexOf(id string) int {
	for i, b := range s {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Find returns a copy of the block with the given id.
func (s Sequence) Find(id string) (Block, bool) {
	if idx := s.IndexOf(id); idx >= 0 {
		return s[idx].Clone(), true
	}
	return Block{}, false
}

// FirstOfType returns the position of the first block with the given type,
// or -1 when none exists.
func (s Sequence) FirstOfType(t Type) int {
	for i, b := range s {
		if b.Type == t {
			return i
		}
	}
	return -1
}

// IDGenerator produces the random fragment appended to generated block ids.
type IDGenerator func() string

// DefaultIDGenerator derives a short suffix from a fresh UUID.
func DefaultIDGenerator() string {
	return uuid.NewString()[:8]
}

// NewID builds a unique id for a non-singleton block. Singleton types always
// use their fixed id regardless of the supplied clock and generator.
func NewID(t Type, now time.Time, suffix string) string {
	if id, ok := FixedID(t); ok {
		return id
	}
	return NewDerivedID(t, now, suffix)
}

// NewDerivedID always builds a suffixed id, even for singleton types. The
// draft merge uses it so derived blocks never collide with core ids.
func NewDerivedID(t Type, now time.Time, suffix string) string {
	return fmt.Sprintf("%s-%d-%s", t, now.UnixMilli(), suffix)
}
