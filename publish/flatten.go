package publish

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/goliatone/go-experiences/blocks"
	"github.com/goliatone/go-experiences/domain"
	"github.com/goliatone/go-experiences/media"
	"github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const (
	shortDescriptionLimit = 200
	dayTitleLayout        = "January 2, 2006"
	defaultTierName       = "Standard Ticket"
	defaultTierQuantity   = 10
)

// Input carries the block sequence plus the document-level state that
// accompanies it into the flatten pipeline.
type Input struct {
	Blocks   blocks.Sequence
	Category string
	IsPublic bool
}

// BuildRequest validates the sequence for the given gate and flattens it
// into the persistence request plus extracted binary attachments. It is the
// sole producer of the outbound request; on validation failure nothing is
// built.
func BuildRequest(in Input, gate Gate) (*Request, *Attachments, error) {
	if err := Validate(in.Blocks, gate); err != nil {
		return nil, nil, err
	}

	req := &Request{
		Category:   in.Category,
		Visibility: domain.VisibilityFromFlag(in.IsPublic),
	}
	att := &Attachments{}

	agendaDay := 0
	for _, b := range in.Blocks {
		switch data := b.Data.(type) {
		case blocks.TitleData:
			flattenTitle(req, data)
		case blocks.DatesData:
			req.StartDate = data.StartDate
			req.EndDate = data.EndDate
		case blocks.LocationData:
			req.Location = strings.TrimSpace(data.Name)
		case blocks.RichTextData:
			appendDescription(req, data.Text)
		case blocks.HighlightsData:
			req.Highlights = append(req.Highlights, data.Items...)
		case blocks.AgendaDayData:
			agendaDay++
			flattenAgendaDay(req, data, agendaDay)
		case blocks.TicketsData:
			flattenTickets(req, data)
		case blocks.FAQData:
			flattenFAQ(req, data)
		case blocks.ResourcesData:
			flattenResources(req, data)
		case blocks.LogisticsData:
			flattenLogistics(req, data)
		case blocks.ImageData:
			flattenImage(req, att, data)
		case blocks.GalleryData:
			flattenGallery(req, att, data)
		}
	}

	finishDescription(req)
	return req, att, nil
}

func flattenTitle(req *Request, data blocks.TitleData) {
	if req.Title != "" {
		return
	}
	req.Title = strings.TrimSpace(data.Text)
	if normalized, err := slug.Normalize(req.Title); err == nil {
		req.Slug = normalized
	}
}

// appendDescription concatenates rich text bodies with a blank line between
// blocks, skipping empty ones.
func appendDescription(req *Request, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	if req.Description != "" {
		req.Description += "\n\n"
	}
	req.Description += trimmed
}

// finishDescription derives the short description and renders the markdown
// body to HTML once every rich text block has been concatenated.
func finishDescription(req *Request) {
	if req.Description == "" {
		return
	}

	req.ShortDescription = truncateDescription(req.Description, shortDescriptionLimit)

	var buf bytes.Buffer
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	if err := md.Convert([]byte(req.Description), &buf); err == nil {
		req.DescriptionHTML = strings.TrimSpace(buf.String())
	}
}

func truncateDescription(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func flattenAgendaDay(req *Request, data blocks.AgendaDayData, dayNumber int) {
	dayTitle := fmt.Sprintf("Day %d", dayNumber)
	if data.Date != nil {
		dayTitle = data.Date.Format(dayTitleLayout)
	}
	for i, item := range data.Items {
		req.Agenda = append(req.Agenda, AgendaEntry{
			DayNumber:    dayNumber,
			DayTitle:     dayTitle,
			Time:         item.Time,
			Activity:     item.Activity,
			DisplayOrder: i,
		})
	}
}

func flattenTickets(req *Request, data blocks.TicketsData) {
	base := len(req.Tiers)
	for i, tier := range data.Tiers {
		name := strings.TrimSpace(tier.Name)
		if name == "" {
			name = defaultTierName
		}
		quantity := tier.Quantity
		if quantity <= 0 {
			quantity = defaultTierQuantity
		}
		req.Tiers = append(req.Tiers, Tier{
			Name:         name,
			Description:  tier.Description,
			PriceCents:   int64(math.Round(tier.Price * 100)),
			Quantity:     quantity,
			Benefits:     append([]string(nil), tier.Benefits...),
			Popular:      tier.Popular,
			DisplayOrder: base + i,
		})
	}

	base = len(req.ApplicationFields)
	for i, field := range data.ApplicationForm.Fields {
		req.ApplicationFields = append(req.ApplicationFields, ApplicationField{
			Label:        field.Label,
			Kind:         field.Kind,
			Required:     field.Required,
			DisplayOrder: base + i,
		})
	}
}

func flattenFAQ(req *Request, data blocks.FAQData) {
	base := len(req.FAQs)
	for i, item := range data.Items {
		req.FAQs = append(req.FAQs, FAQEntry{
			Question:     item.Question,
			Answer:       item.Answer,
			DisplayOrder: base + i,
		})
	}
}

func flattenResources(req *Request, data blocks.ResourcesData) {
	base := len(req.Resources)
	for i, item := range data.Items {
		req.Resources = append(req.Resources, ResourceEntry{
			Title:        item.Title,
			URL:          item.URL,
			DisplayOrder: base + i,
		})
	}
}

// flattenLogistics copies individual fields and leaves the section off the
// request entirely when every field is empty.
func flattenLogistics(req *Request, data blocks.LogisticsData) {
	logistics := Logistics{
		MeetupInstructions: strings.TrimSpace(data.MeetupInstructions),
		CheckInNotes:       strings.TrimSpace(data.CheckInNotes),
		EmergencyName:      strings.TrimSpace(data.EmergencyName),
		EmergencyPhone:     strings.TrimSpace(data.EmergencyPhone),
		AdditionalInfo:     strings.TrimSpace(data.AdditionalInfo),
	}
	if logistics == (Logistics{}) {
		return
	}
	req.Logistics = &logistics
}

// flattenImage extracts a newly selected featured image binary, or carries
// the already persisted URL through.
func flattenImage(req *Request, att *Attachments, data blocks.ImageData) {
	if upload, ok := media.FromResource("featured_image", data.Alt, data.Upload); ok {
		if att.FeaturedImage == nil {
			att.FeaturedImage = &upload
		}
		return
	}
	if req.FeaturedImageURL == "" {
		req.FeaturedImageURL = data.URL
	}
}

// flattenGallery extracts new gallery binaries in order, carrying persisted
// image URLs in the request itself.
func flattenGallery(req *Request, att *Attachments, data blocks.GalleryData) {
	for _, img := range data.Images {
		if upload, ok := media.FromResource("gallery", img.Alt, img.Upload); ok {
			att.Gallery = append(att.Gallery, upload)
			continue
		}
		if img.URL != "" {
			req.GalleryURLs = append(req.GalleryURLs, img.URL)
		}
	}
}
