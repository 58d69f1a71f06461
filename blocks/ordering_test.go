package blocks_test

import (
	"testing"

	"github.com/goliatone/go-experiences/blocks"
)

func TestInsertPositionFollowsCanonicalOrder(t *testing.T) {
	// title, dates, location. FAQ ranks after all three, so it lands at
	// the end; tickets also ranks after them in this short document.
	seq := coreSequence()

	if pos := blocks.InsertPosition(blocks.TypeFAQ, seq); pos != 3 {
		t.Fatalf("faq insert position = %d, want 3", pos)
	}
	if pos := blocks.InsertPosition(blocks.TypeTickets, seq); pos != 3 {
		t.Fatalf("tickets insert position = %d, want 3", pos)
	}
}

func TestInsertPositionRelativeToExistingBlocks(t *testing.T) {
	// title, dates, location, faq. Tickets rank below faq, so a new
	// tickets block slots in before it.
	seq := blocks.Add(coreSequence(), blocks.Block{
		ID:   "faq-1",
		Type: blocks.TypeFAQ,
		Data: blocks.DefaultData(blocks.TypeFAQ),
	})

	pos := blocks.InsertPosition(blocks.TypeTickets, seq)
	if pos != 3 {
		t.Fatalf("tickets insert position = %d, want 3", pos)
	}

	out := blocks.Insert(seq, blocks.Block{
		ID:   "tickets-1",
		Type: blocks.TypeTickets,
		Data: blocks.DefaultData(blocks.TypeTickets),
	}, pos)
	if out[3].ID != "tickets-1" || out[4].ID != "faq-1" {
		t.Fatalf("unexpected order after insert: %q, %q", out[3].ID, out[4].ID)
	}
}

func TestInsertPositionIgnoresManualPlacement(t *testing.T) {
	// A user who dragged the faq block to the top keeps it there; the
	// canonical table only decides where the new block goes.
	seq := blocks.Add(coreSequence(), blocks.Block{
		ID:   "faq-1",
		Type: blocks.TypeFAQ,
		Data: blocks.DefaultData(blocks.TypeFAQ),
	})
	seq = blocks.Reorder(seq, 3, 0)

	pos := blocks.InsertPosition(blocks.TypeHighlights, seq)
	out := blocks.Insert(seq, blocks.Block{
		ID:   "hl-1",
		Type: blocks.TypeHighlights,
		Data: blocks.DefaultData(blocks.TypeHighlights),
	}, pos)

	if out[0].ID != "faq-1" {
		t.Fatalf("existing faq block moved from the top: %q", out[0].ID)
	}
	if out.IndexOf("hl-1") != 4 {
		t.Fatalf("highlights inserted at %d, want 4", out.IndexOf("hl-1"))
	}
}

func TestInsertPositionImageGoesFirst(t *testing.T) {
	seq := coreSequence()
	if pos := blocks.InsertPosition(blocks.TypeImage, seq); pos != 0 {
		t.Fatalf("image insert position = %d, want 0", pos)
	}
}

func TestInsertPositionUnknownTypeAppends(t *testing.T) {
	seq := coreSequence()
	if pos := blocks.InsertPosition(blocks.Type("mystery"), seq); pos != len(seq) {
		t.Fatalf("unknown type insert position = %d, want %d", pos, len(seq))
	}
}

func TestRankCoversEveryKnownType(t *testing.T) {
	for _, typ := range []blocks.Type{
		blocks.TypeImage, blocks.TypeTitle, blocks.TypeDates, blocks.TypeLocation,
		blocks.TypeRichText, blocks.TypeTickets, blocks.TypeHighlights,
		blocks.TypeAgendaDay, blocks.TypeLogistics, blocks.TypeGallery,
		blocks.TypeFAQ, blocks.TypeResources, blocks.TypeCTA,
	} {
		if _, ok := blocks.Rank(typ); !ok {
			t.Fatalf("type %q missing from canonical order", typ)
		}
	}
}
