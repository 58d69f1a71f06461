package blocks

import (
	"time"

	"github.com/goliatone/go-experiences/media"
)

// Patch is a partial update for one data variant. Nil fields are "not
// present" and leave the existing value untouched, mirroring a shallow merge.
// Applying a patch to a block of a different type is a no-op.
type Patch interface {
	apply(Data) (Data, bool)
}

// TitlePatch updates the headline text.
type TitlePatch struct {
	Text *string
}

func (p TitlePatch) apply(d Data) (Data, bool) {
	cur, ok := d.(TitleData)
	if !ok {
		return d, false
	}
	if p.Text != nil {
		cur.Text = *p.Text
	}
	return cur, true
}

// DatesPatch updates either end of the date range. ClearStart/ClearEnd unset
// a previously chosen date.
type DatesPatch struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ClearStart bool
	ClearEnd   bool
}

func (p DatesPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(DatesData)
	if !ok {
		return d, false
	}
	if p.ClearStart {
		cur.StartDate = nil
	} else if p.StartDate != nil {
		cur.StartDate = cloneTime(p.StartDate)
	}
	if p.ClearEnd {
		cur.EndDate = nil
	} else if p.EndDate != nil {
		cur.EndDate = cloneTime(p.EndDate)
	}
	return cur, true
}

// LocationPatch updates the venue description.
type LocationPatch struct {
	Name *string
}

func (p LocationPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(LocationData)
	if !ok {
		return d, false
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	return cur, true
}

// ImagePatch updates the featured image. Upload replaces the previewed
// binary; ClearUpload drops it without supplying a new one.
type ImagePatch struct {
	URL         *string
	Alt         *string
	Upload      *media.Resource
	ClearUpload bool
}

func (p ImagePatch) apply(d Data) (Data, bool) {
	cur, ok := d.(ImageData)
	if !ok {
		return d, false
	}
	if p.URL != nil {
		cur.URL = *p.URL
	}
	if p.Alt != nil {
		cur.Alt = *p.Alt
	}
	if p.ClearUpload {
		cur.Upload = nil
	} else if p.Upload != nil {
		cur.Upload = p.Upload
	}
	return cur, true
}

// RichTextPatch replaces the markdown body.
type RichTextPatch struct {
	Text *string
}

func (p RichTextPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(RichTextData)
	if !ok {
		return d, false
	}
	if p.Text != nil {
		cur.Text = *p.Text
	}
	return cur, true
}

// HighlightsPatch replaces the highlight list.
type HighlightsPatch struct {
	Items *[]string
}

func (p HighlightsPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(HighlightsData)
	if !ok {
		return d, false
	}
	if p.Items != nil {
		cur.Items = append([]string(nil), *p.Items...)
	}
	return cur, true
}

// AgendaDayPatch updates one agenda day. ClearDate unsets the assigned date.
type AgendaDayPatch struct {
	Date      *time.Time
	ClearDate bool
	Items     *[]AgendaItem
}

func (p AgendaDayPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(AgendaDayData)
	if !ok {
		return d, false
	}
	if p.ClearDate {
		cur.Date = nil
	} else if p.Date != nil {
		cur.Date = cloneTime(p.Date)
	}
	if p.Items != nil {
		cur.Items = append([]AgendaItem(nil), *p.Items...)
	}
	return cur, true
}

// TicketsPatch replaces the tier list and/or application form.
type TicketsPatch struct {
	Tiers           *[]TicketTier
	ApplicationForm *ApplicationForm
}

func (p TicketsPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(TicketsData)
	if !ok {
		return d, false
	}
	if p.Tiers != nil {
		tiers := make([]TicketTier, len(*p.Tiers))
		for i, t := range *p.Tiers {
			tiers[i] = t.clone()
		}
		cur.Tiers = tiers
	}
	if p.ApplicationForm != nil {
		cur.ApplicationForm = ApplicationForm{
			Fields: append([]FormField(nil), p.ApplicationForm.Fields...),
		}
	}
	return cur, true
}

// GalleryPatch replaces the gallery image list.
type GalleryPatch struct {
	Images *[]GalleryImage
}

func (p GalleryPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(GalleryData)
	if !ok {
		return d, false
	}
	if p.Images != nil {
		cur.Images = append([]GalleryImage(nil), *p.Images...)
	}
	return cur, true
}

// FAQPatch replaces the question list.
type FAQPatch struct {
	Items *[]FAQItem
}

func (p FAQPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(FAQData)
	if !ok {
		return d, false
	}
	if p.Items != nil {
		cur.Items = append([]FAQItem(nil), *p.Items...)
	}
	return cur, true
}

// CTAPatch updates the call-to-action copy or style.
type CTAPatch struct {
	Text  *string
	Style *string
}

func (p CTAPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(CTAData)
	if !ok {
		return d, false
	}
	if p.Text != nil {
		cur.Text = *p.Text
	}
	if p.Style != nil {
		cur.Style = *p.Style
	}
	return cur, true
}

// ResourcesPatch replaces the resource list.
type ResourcesPatch struct {
	Items *[]ResourceLink
}

func (p ResourcesPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(ResourcesData)
	if !ok {
		return d, false
	}
	if p.Items != nil {
		cur.Items = append([]ResourceLink(nil), *p.Items...)
	}
	return cur, true
}

// LogisticsPatch updates individual logistics fields.
type LogisticsPatch struct {
	MeetupInstructions *string
	CheckInNotes       *string
	EmergencyName      *string
	EmergencyPhone     *string
	AdditionalInfo     *string
}

func (p LogisticsPatch) apply(d Data) (Data, bool) {
	cur, ok := d.(LogisticsData)
	if !ok {
		return d, false
	}
	if p.MeetupInstructions != nil {
		cur.MeetupInstructions = *p.MeetupInstructions
	}
	if p.CheckInNotes != nil {
		cur.CheckInNotes = *p.CheckInNotes
	}
	if p.EmergencyName != nil {
		cur.EmergencyName = *p.EmergencyName
	}
	if p.EmergencyPhone != nil {
		cur.EmergencyPhone = *p.EmergencyPhone
	}
	if p.AdditionalInfo != nil {
		cur.AdditionalInfo = *p.AdditionalInfo
	}
	return cur, true
}

// ReplaceData swaps the entire payload. The draft merge uses it for core
// blocks, which replace rather than merge.
type ReplaceData struct {
	Data Data
}

func (p ReplaceData) apply(d Data) (Data, bool) {
	if p.Data == nil || d == nil || p.Data.BlockType() != d.BlockType() {
		return d, false
	}
	return p.Data.Clone(), true
}
