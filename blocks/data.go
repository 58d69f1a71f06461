package blocks

import (
	"time"

	"github.com/goliatone/go-experiences/media"
)

// Data is the tagged payload union for blocks. Exactly one concrete shape
// exists per Type; the sealed marker keeps the set closed so switches over
// variants stay exhaustive.
type Data interface {
	BlockType() Type
	Clone() Data
	sealed()
}

// TitleData carries the experience headline.
type TitleData struct {
	Text string `json:"text"`
}

func (TitleData) BlockType() Type { return TypeTitle }
func (d TitleData) Clone() Data   { return d }
func (TitleData) sealed()         {}

// DatesData carries the experience date range. Nil means unset.
type DatesData struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (DatesData) BlockType() Type { return TypeDates }
func (d DatesData) Clone() Data {
	return DatesData{StartDate: cloneTime(d.StartDate), EndDate: cloneTime(d.EndDate)}
}
func (DatesData) sealed() {}

// LocationData carries the venue or meeting point description.
type LocationData struct {
	Name string `json:"name"`
}

func (LocationData) BlockType() Type { return TypeLocation }
func (d LocationData) Clone() Data   { return d }
func (LocationData) sealed()         {}

// ImageData carries the featured image. Upload holds the locally previewed
// binary until the persistence collaborator stores it.
type ImageData struct {
	URL    string          `json:"url"`
	Alt    string          `json:"alt"`
	Upload *media.Resource `json:"-"`
}

func (ImageData) BlockType() Type { return TypeImage }

// Clone copies the image payload. The preview resource pointer is shared,
// not duplicated; the owning session tracks when it can be released.
func (d ImageData) Clone() Data { return d }
func (ImageData) sealed()       {}

// RichTextData carries markdown body copy.
type RichTextData struct {
	Text string `json:"text"`
}

func (RichTextData) BlockType() Type { return TypeRichText }
func (d RichTextData) Clone() Data   { return d }
func (RichTextData) sealed()         {}

// HighlightsData carries the bullet list shown near the top of the page.
type HighlightsData struct {
	Items []string `json:"items"`
}

func (HighlightsData) BlockType() Type { return TypeHighlights }
func (d HighlightsData) Clone() Data {
	return HighlightsData{Items: append([]string(nil), d.Items...)}
}
func (HighlightsData) sealed() {}

// AgendaItem is a single scheduled activity within an agenda day.
type AgendaItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// AgendaDayData carries one day of the experience agenda. Date stays nil
// until the host assigns it.
type AgendaDayData struct {
	Date  *time.Time   `json:"date"`
	Items []AgendaItem `json:"items"`
}

func (AgendaDayData) BlockType() Type { return TypeAgendaDay }
func (d AgendaDayData) Clone() Data {
	return AgendaDayData{
		Date:  cloneTime(d.Date),
		Items: append([]AgendaItem(nil), d.Items...),
	}
}
func (AgendaDayData) sealed() {}

// TicketTier describes a purchasable tier. Price is in major currency units
// at the block level; the flatten pipeline converts to cents.
type TicketTier struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Benefits    []string `json:"benefits"`
	Popular     bool     `json:"popular"`
}

func (t TicketTier) clone() TicketTier {
	t.Benefits = append([]string(nil), t.Benefits...)
	return t
}

// FormField is a single input on the ticket application form.
type FormField struct {
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

// ApplicationForm collects custom questions asked at checkout.
type ApplicationForm struct {
	Fields []FormField `json:"fields"`
}

// TicketsData carries the tier list and optional application form.
type TicketsData struct {
	Tiers           []TicketTier    `json:"tiers"`
	ApplicationForm ApplicationForm `json:"applicationForm"`
}

func (TicketsData) BlockType() Type { return TypeTickets }
func (d TicketsData) Clone() Data {
	tiers := make([]TicketTier, len(d.Tiers))
	for i, t := range d.Tiers {
		tiers[i] = t.clone()
	}
	return TicketsData{
		Tiers: tiers,
		ApplicationForm: ApplicationForm{
			Fields: append([]FormField(nil), d.ApplicationForm.Fields...),
		},
	}
}
func (TicketsData) sealed() {}

// GalleryImage is one gallery entry. Upload is set only for images the host
// just selected; previously persisted images carry only a URL.
type GalleryImage struct {
	URL    string          `json:"url"`
	Alt    string          `json:"alt"`
	Upload *media.Resource `json:"-"`
}

// GalleryData carries the image gallery.
type GalleryData struct {
	Images []GalleryImage `json:"images"`
}

func (GalleryData) BlockType() Type { return TypeGallery }
func (d GalleryData) Clone() Data {
	return GalleryData{Images: append([]GalleryImage(nil), d.Images...)}
}
func (GalleryData) sealed() {}

// FAQItem is a single question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQData carries the frequently asked questions section.
type FAQData struct {
	Items []FAQItem `json:"items"`
}

func (FAQData) BlockType() Type { return TypeFAQ }
func (d FAQData) Clone() Data {
	return FAQData{Items: append([]FAQItem(nil), d.Items...)}
}
func (FAQData) sealed() {}

// CTAData carries the call-to-action banner.
type CTAData struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

func (CTAData) BlockType() Type { return TypeCTA }
func (d CTAData) Clone() Data   { return d }
func (CTAData) sealed()         {}

// ResourceLink is a downloadable or external resource offered to attendees.
type ResourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ResourcesData carries the attendee resource list.
type ResourcesData struct {
	Items []ResourceLink `json:"items"`
}

func (ResourcesData) BlockType() Type { return TypeResources }
func (d ResourcesData) Clone() Data {
	return ResourcesData{Items: append([]ResourceLink(nil), d.Items...)}
}
func (ResourcesData) sealed() {}

// LogisticsData carries arrival and contact details.
type LogisticsData struct {
	MeetupInstructions string `json:"meetupInstructions"`
	CheckInNotes       string `json:"checkInNotes"`
	EmergencyName      string `json:"emergencyName"`
	EmergencyPhone     string `json:"emergencyPhone"`
	AdditionalInfo     string `json:"additionalInfo"`
}

func (LogisticsData) BlockType() Type { return TypeLogistics }
func (d LogisticsData) Clone() Data   { return d }
func (LogisticsData) sealed()         {}

// DefaultData returns the empty payload for a block type: empty strings,
// empty lists, nil dates. It returns nil for unknown types.
func DefaultData(t Type) Data {
	switch t {
	case TypeTitle:
		return TitleData{}
	case TypeDates:
		return DatesData{}
	case TypeLocation:
		return LocationData{}
	case TypeImage:
		return ImageData{}
	case TypeRichText:
		return RichTextData{}
	case TypeHighlights:
		return HighlightsData{Items: []string{}}
	case TypeAgendaDay:
		return AgendaDayData{Items: []AgendaItem{}}
	case TypeTickets:
		return TicketsData{Tiers: []TicketTier{}, ApplicationForm: ApplicationForm{Fields: []FormField{}}}
	case TypeGallery:
		return GalleryData{Images: []GalleryImage{}}
	case TypeFAQ:
		return FAQData{Items: []FAQItem{}}
	case TypeCTA:
		return CTAData{Style: "primary"}
	case TypeResources:
		return ResourcesData{Items: []ResourceLink{}}
	case TypeLogistics:
		return LogisticsData{}
	default:
		return nil
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
