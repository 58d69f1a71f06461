package builder

import (
	"github.com/goliatone/go-experiences/blocks"
)

// ApplyDraft folds an imported draft into the current sequence. Core blocks
// are updated in place; variable-length sections (agenda days, tickets, call
// to action) append derived blocks so nothing the host already customized is
// discarded.
//
// The merge is one-shot: replaying the same token is refused, because
// re-applying a draft against a sequence that already contains its derived
// blocks would append duplicates. It reports whether the draft was applied.
func (s *Session) ApplyDraft(d Draft, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" {
		if _, seen := s.consumedDrafts[token]; seen {
			s.logger.Warn("builder.draft.replayed", "token", token)
			return false
		}
		s.consumedDrafts[token] = struct{}{}
	}

	// Core blocks replace their data wholesale. Absent core blocks are not
	// created here; session initialization owns that.
	s.seq = blocks.Update(s.seq, blocks.TitleBlockID, blocks.ReplaceData{
		Data: blocks.TitleData{Text: d.Title},
	})
	s.seq = blocks.Update(s.seq, blocks.DatesBlockID, blocks.ReplaceData{
		Data: blocks.DatesData{StartDate: d.StartDate, EndDate: d.EndDate},
	})
	s.seq = blocks.Update(s.seq, blocks.LocationBlockID, blocks.ReplaceData{
		Data: blocks.LocationData{Name: d.Location},
	})

	if d.Description != "" {
		s.mergeDescription(d.Description)
	}

	for _, day := range d.Days {
		s.appendBlock(blocks.TypeAgendaDay, blocks.AgendaDayData{
			Items: append([]blocks.AgendaItem(nil), day.Items...),
		})
	}

	if len(d.Tiers) > 0 {
		tiers := make([]blocks.TicketTier, len(d.Tiers))
		copy(tiers, d.Tiers)
		s.appendBlock(blocks.TypeTickets, blocks.TicketsData{
			Tiers:           tiers,
			ApplicationForm: blocks.ApplicationForm{Fields: []blocks.FormField{}},
		})
	}

	s.appendBlock(blocks.TypeCTA, blocks.CTAData{
		Text:  d.CallToAction,
		Style: "primary",
	})

	s.category = d.Category
	s.isPublic = d.IsPublic

	s.logger.Info("builder.draft.applied",
		"agenda_days", len(d.Days),
		"tiers", len(d.Tiers),
	)
	return true
}

// mergeDescription updates the first rich text block in place, or appends a
// new one when the sequence has none.
func (s *Session) mergeDescription(description string) {
	if idx := s.seq.FirstOfType(blocks.TypeRichText); idx >= 0 {
		s.seq = blocks.Update(s.seq, s.seq[idx].ID, blocks.RichTextPatch{Text: &description})
		return
	}
	s.appendBlock(blocks.TypeRichText, blocks.RichTextData{Text: description})
}

// appendBlock appends a derived block with a generated id and the next
// available order. Unlike Add it never consults singleton idempotence, so
// merge-derived rich text coexists with the fixed rich text block.
func (s *Session) appendBlock(t blocks.Type, data blocks.Data) {
	id := blocks.NewDerivedID(t, s.now(), s.id())
	block := blocks.Block{ID: id, Type: t, Data: data, Order: len(s.seq)}
	s.seq = append(s.seq.Clone(), block)
}
