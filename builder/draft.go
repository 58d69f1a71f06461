package builder

import (
	"time"

	"github.com/goliatone/go-experiences/blocks"
)

// Draft is the structured summary produced by an external source, e.g. a
// voice transcription pipeline. The engine is agnostic to how it was made;
// it only requires these fields.
type Draft struct {
	Title        string              `json:"title"`
	Category     string              `json:"category"`
	StartDate    *time.Time          `json:"startDate"`
	EndDate      *time.Time          `json:"endDate"`
	Location     string              `json:"location"`
	Description  string              `json:"description"`
	Days         []DraftDay          `json:"days"`
	Tiers        []blocks.TicketTier `json:"tiers"`
	CallToAction string              `json:"callToAction"`
	IsPublic     bool                `json:"isPublic"`
}

// DraftDay is one day of agenda items in an imported draft. Dates are left
// unassigned; the host picks them after import.
type DraftDay struct {
	Items []blocks.AgendaItem `json:"items"`
}
