package importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-experiences/builder"
)

// markdownMeta is the frontmatter envelope for markdown draft sources. The
// body below the delimiters becomes the description.
type markdownMeta struct {
	Title        string `yaml:"title"`
	Category     string `yaml:"category"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Location     string `yaml:"location"`
	CallToAction string `yaml:"cta"`
	Visibility   string `yaml:"visibility"`
}

// ParseMarkdown builds a draft from a markdown document with frontmatter.
// Hosts who prepared an outline offline can import it the same way a voice
// derived draft arrives.
func ParseMarkdown(source []byte) (builder.Draft, error) {
	var meta markdownMeta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return builder.Draft{}, fmt.Errorf("importer: parse frontmatter: %w", err)
	}

	draft := builder.Draft{
		Title:        meta.Title,
		Category:     meta.Category,
		Location:     meta.Location,
		Description:  strings.TrimSpace(string(body)),
		CallToAction: meta.CallToAction,
		IsPublic:     strings.EqualFold(strings.TrimSpace(meta.Visibility), "public"),
	}

	if draft.StartDate, err = parseDate(meta.StartDate); err != nil {
		return builder.Draft{}, fmt.Errorf("%w: start_date: %v", ErrDraftInvalid, err)
	}
	if draft.EndDate, err = parseDate(meta.EndDate); err != nil {
		return builder.Draft{}, fmt.Errorf("%w: end_date: %v", ErrDraftInvalid, err)
	}

	return draft, nil
}
