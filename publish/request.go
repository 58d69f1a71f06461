package publish

import (
	"time"

	"github.com/goliatone/go-experiences/domain"
	"github.com/goliatone/go-experiences/media"
)

// Request is the normalized persistence payload produced by the flatten
// pipeline. It is the complete contract with the persistence collaborator;
// binary attachments travel separately (see Attachments).
type Request struct {
	Title            string            `json:"title"`
	Slug             string            `json:"slug,omitempty"`
	Category         string            `json:"category,omitempty"`
	Description      string            `json:"description,omitempty"`
	DescriptionHTML  string            `json:"description_html,omitempty"`
	ShortDescription string            `json:"short_description,omitempty"`
	StartDate        *time.Time        `json:"start_date,omitempty"`
	EndDate          *time.Time        `json:"end_date,omitempty"`
	Location         string            `json:"location,omitempty"`
	Visibility       domain.Visibility `json:"visibility"`
	FeaturedImageURL string            `json:"featured_image_url,omitempty"`
	GalleryURLs      []string          `json:"gallery_urls,omitempty"`

	Highlights        []string           `json:"highlights,omitempty"`
	Agenda            []AgendaEntry      `json:"agenda,omitempty"`
	Tiers             []Tier             `json:"ticket_tiers,omitempty"`
	ApplicationFields []ApplicationField `json:"application_fields,omitempty"`
	FAQs              []FAQEntry         `json:"faqs,omitempty"`
	Resources         []ResourceEntry    `json:"resources,omitempty"`
	Logistics         *Logistics         `json:"logistics,omitempty"`
}

// AgendaEntry is a single flattened agenda item. DayNumber is 1-based over
// the agenda blocks; DisplayOrder is the item's position within its day.
type AgendaEntry struct {
	DayNumber    int    `json:"day_number"`
	DayTitle     string `json:"day_title"`
	Time         string `json:"time,omitempty"`
	Activity     string `json:"activity"`
	DisplayOrder int    `json:"display_order"`
}

// Tier is the persistence shape for a ticket tier. PriceCents is in integer
// minor currency units.
type Tier struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	PriceCents   int64    `json:"price_cents"`
	Quantity     int      `json:"quantity"`
	Benefits     []string `json:"benefits,omitempty"`
	Popular      bool     `json:"popular"`
	DisplayOrder int      `json:"display_order"`
}

// ApplicationField is one checkout application form question.
type ApplicationField struct {
	Label        string `json:"label"`
	Kind         string `json:"kind,omitempty"`
	Required     bool   `json:"required"`
	DisplayOrder int    `json:"display_order"`
}

// FAQEntry is a flattened question/answer pair.
type FAQEntry struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
}

// ResourceEntry is a flattened attendee resource link.
type ResourceEntry struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"display_order"`
}

// Logistics carries arrival and contact details. The whole struct is omitted
// from the request when every field is empty.
type Logistics struct {
	MeetupInstructions string `json:"meetup_instructions,omitempty"`
	CheckInNotes       string `json:"check_in_notes,omitempty"`
	EmergencyName      string `json:"emergency_name,omitempty"`
	EmergencyPhone     string `json:"emergency_phone,omitempty"`
	AdditionalInfo     string `json:"additional_info,omitempty"`
}

// Attachments groups the binaries extracted from the block sequence, in the
// order they appeared.
type Attachments struct {
	FeaturedImage *media.Upload
	Gallery       []media.Upload
}

// Empty reports whether no binaries were extracted.
func (a *Attachments) Empty() bool {
	return a == nil || (a.FeaturedImage == nil && len(a.Gallery) == 0)
}
