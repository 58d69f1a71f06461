package publish

import (
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-experiences/blocks"
)

// Gate selects how strictly the sequence is validated before flattening.
type Gate string

const (
	// GateDraft validates only the title; everything else may stay empty
	// while the host keeps working.
	GateDraft Gate = "draft"
	// GatePublish additionally requires a complete date range and location.
	GatePublish Gate = "publish"
)

// minTextLength is the floor for title and location after trimming.
const minTextLength = 3

// Validate applies the gate's rules to the sequence. It returns ozzo
// validation.Errors keyed by field so callers can surface named conditions;
// no request is built when validation fails.
func Validate(seq blocks.Sequence, gate Gate) error {
	errs := validation.Errors{}

	title := ""
	if idx := seq.FirstOfType(blocks.TypeTitle); idx >= 0 {
		if data, ok := seq[idx].Data.(blocks.TitleData); ok {
			title = strings.TrimSpace(data.Text)
		}
	}
	if utf8.RuneCountInString(title) < minTextLength {
		errs["title"] = validation.NewError(
			"experiences.validate.title_required",
			"title must be at least 3 characters",
		)
	}

	if gate == GatePublish {
		var dates blocks.DatesData
		if idx := seq.FirstOfType(blocks.TypeDates); idx >= 0 {
			dates, _ = seq[idx].Data.(blocks.DatesData)
		}
		if dates.StartDate == nil || dates.EndDate == nil {
			errs["dates"] = validation.NewError(
				"experiences.validate.dates_required",
				"start and end dates are required to publish",
			)
		}

		location := ""
		if idx := seq.FirstOfType(blocks.TypeLocation); idx >= 0 {
			if data, ok := seq[idx].Data.(blocks.LocationData); ok {
				location = strings.TrimSpace(data.Name)
			}
		}
		if utf8.RuneCountInString(location) < minTextLength {
			errs["location"] = validation.NewError(
				"experiences.validate.location_required",
				"location must be at least 3 characters",
			)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsValidationError reports whether the error came from a validation gate.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(validation.Errors)
	return ok
}
