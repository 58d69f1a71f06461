package builder_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-experiences/blocks"
	"github.com/goliatone/go-experiences/builder"
)

func sampleDraft() builder.Draft {
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	return builder.Draft{
		Title:       "Sunrise Trail Hike",
		Category:    "outdoors",
		StartDate:   &start,
		EndDate:     &end,
		Location:    "Bear Mountain",
		Description: "Two days on the ridge.",
		Days: []builder.DraftDay{
			{Items: []blocks.AgendaItem{{Time: "06:00", Activity: "Meet at trailhead"}}},
			{Items: []blocks.AgendaItem{{Time: "07:00", Activity: "Summit push"}}},
		},
		Tiers: []blocks.TicketTier{
			{Name: "Standard", Price: 45, Quantity: 20},
		},
		CallToAction: "Join the hike",
		IsPublic:     true,
	}
}

func TestApplyDraftReplacesCoreBlocks(t *testing.T) {
	s := newSession()
	d := sampleDraft()

	if !s.ApplyDraft(d, "tok-1") {
		t.Fatal("draft was not applied")
	}

	seq := s.Blocks()
	title, _ := seq.Find(blocks.TitleBlockID)
	if got := title.Data.(blocks.TitleData).Text; got != d.Title {
		t.Fatalf("title = %q, want %q", got, d.Title)
	}
	dates, _ := seq.Find(blocks.DatesBlockID)
	if data := dates.Data.(blocks.DatesData); data.StartDate == nil || !data.StartDate.Equal(*d.StartDate) {
		t.Fatalf("start date = %v", data.StartDate)
	}
	loc, _ := seq.Find(blocks.LocationBlockID)
	if got := loc.Data.(blocks.LocationData).Name; got != d.Location {
		t.Fatalf("location = %q, want %q", got, d.Location)
	}
}

func TestApplyDraftAppendsDerivedBlocks(t *testing.T) {
	s := newSession()
	d := sampleDraft()
	s.ApplyDraft(d, "tok-1")

	seq := s.Blocks()

	var agendaDays, tickets, ctas, richText int
	for _, b := range seq {
		switch b.Type {
		case blocks.TypeAgendaDay:
			agendaDays++
			data := b.Data.(blocks.AgendaDayData)
			if data.Date != nil {
				t.Fatalf("imported agenda day has a date: %v", data.Date)
			}
		case blocks.TypeTickets:
			tickets++
		case blocks.TypeCTA:
			ctas++
			data := b.Data.(blocks.CTAData)
			if data.Text != d.CallToAction || data.Style != "primary" {
				t.Fatalf("cta block = %+v", data)
			}
		case blocks.TypeRichText:
			richText++
			if got := b.Data.(blocks.RichTextData).Text; got != d.Description {
				t.Fatalf("description = %q", got)
			}
		}
	}
	if agendaDays != 2 {
		t.Fatalf("agenda day blocks = %d, want 2", agendaDays)
	}
	if tickets != 1 || ctas != 1 || richText != 1 {
		t.Fatalf("tickets=%d ctas=%d richText=%d", tickets, ctas, richText)
	}

	for i, b := range seq {
		if b.Order != i {
			t.Fatalf("block %q order %d at index %d", b.ID, b.Order, i)
		}
	}

	if s.Category() != d.Category {
		t.Fatalf("category = %q", s.Category())
	}
	if !s.IsPublic() {
		t.Fatal("visibility flag not applied")
	}
}

func TestApplyDraftUpdatesExistingRichText(t *testing.T) {
	s := newSession(builder.WithEditContext())
	d := sampleDraft()
	s.ApplyDraft(d, "tok-1")

	seq := s.Blocks()
	core, _ := seq.Find(blocks.RichTextBlockID)
	if got := core.Data.(blocks.RichTextData).Text; got != d.Description {
		t.Fatalf("core rich text = %q, want %q", got, d.Description)
	}

	var richText int
	for _, b := range seq {
		if b.Type == blocks.TypeRichText {
			richText++
		}
	}
	if richText != 1 {
		t.Fatalf("rich text blocks = %d, want 1", richText)
	}
}

func TestApplyDraftRefusesReplay(t *testing.T) {
	s := newSession()
	d := sampleDraft()

	if !s.ApplyDraft(d, "tok-1") {
		t.Fatal("first apply refused")
	}
	lenAfterFirst := s.Len()

	if s.ApplyDraft(d, "tok-1") {
		t.Fatal("replayed token was accepted")
	}
	if s.Len() != lenAfterFirst {
		t.Fatalf("replay changed block count: %d, want %d", s.Len(), lenAfterFirst)
	}
}

func TestApplyDraftSkipsEmptySections(t *testing.T) {
	s := newSession()
	d := builder.Draft{Title: "Bare"}
	s.ApplyDraft(d, "tok-1")

	seq := s.Blocks()
	for _, b := range seq {
		switch b.Type {
		case blocks.TypeAgendaDay, blocks.TypeTickets:
			t.Fatalf("empty draft produced a %s block", b.Type)
		}
	}
	// The call to action block is always appended, even with empty copy.
	var ctas int
	for _, b := range seq {
		if b.Type == blocks.TypeCTA {
			ctas++
		}
	}
	if ctas != 1 {
		t.Fatalf("cta blocks = %d, want 1", ctas)
	}
}
