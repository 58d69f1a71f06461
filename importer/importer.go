package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goliatone/go-experiences/blocks"
	"github.com/goliatone/go-experiences/builder"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrDraftInvalid wraps schema violations in an imported draft payload.
var ErrDraftInvalid = errors.New("importer: draft payload invalid")

// dateLayout is the wire format for dates in imported drafts.
const dateLayout = "2006-01-02"

// draftSchema documents and enforces the JSON contract with draft sources.
// The engine is agnostic to how the draft was produced; it only requires
// this shape.
var draftSchema = map[string]any{
	"type":     "object",
	"required": []string{"title"},
	"properties": map[string]any{
		"title":       map[string]any{"type": "string"},
		"category":    map[string]any{"type": "string"},
		"startDate":   map[string]any{"type": "string"},
		"endDate":     map[string]any{"type": "string"},
		"location":    map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"days": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"items": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"activity"},
							"properties": map[string]any{
								"time":     map[string]any{"type": "string"},
								"activity": map[string]any{"type": "string"},
							},
						},
					},
				},
			},
		},
		"tiers": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"price":       map[string]any{"type": "number"},
					"quantity":    map[string]any{"type": "integer"},
					"benefits": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"popular": map[string]any{"type": "boolean"},
				},
			},
		},
		"callToAction": map[string]any{"type": "string"},
		"isPublic":     map[string]any{"type": "boolean"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		encoded, err := json.Marshal(draftSchema)
		if err != nil {
			compileErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("draft.json", bytes.NewReader(encoded)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("draft.json")
	})
	return compiledSchema, compileErr
}

type draftEnvelope struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Days        []struct {
		Items []struct {
			Time     string `json:"time"`
			Activity string `json:"activity"`
		} `json:"items"`
	} `json:"days"`
	Tiers []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Quantity    int      `json:"quantity"`
		Benefits    []string `json:"benefits"`
		Popular     bool     `json:"popular"`
	} `json:"tiers"`
	CallToAction string `json:"callToAction"`
	IsPublic     bool   `json:"isPublic"`
}

// DecodeDraft validates a draft payload against the draft schema and decodes
// it into the structure the merge procedure consumes.
func DecodeDraft(data []byte) (builder.Draft, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return builder.Draft{}, fmt.Errorf("importer: decode draft: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return builder.Draft{}, fmt.Errorf("importer: compile draft schema: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return builder.Draft{}, fmt.Errorf("%w: %v", ErrDraftInvalid, err)
	}

	var envelope draftEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return builder.Draft{}, fmt.Errorf("importer: decode draft: %w", err)
	}
	return envelopeToDraft(envelope)
}

func envelopeToDraft(envelope draftEnvelope) (builder.Draft, error) {
	draft := builder.Draft{
		Title:        envelope.Title,
		Category:     envelope.Category,
		Location:     envelope.Location,
		Description:  envelope.Description,
		CallToAction: envelope.CallToAction,
		IsPublic:     envelope.IsPublic,
	}

	var err error
	if draft.StartDate, err = parseDate(envelope.StartDate); err != nil {
		return builder.Draft{}, fmt.Errorf("%w: startDate: %v", ErrDraftInvalid, err)
	}
	if draft.EndDate, err = parseDate(envelope.EndDate); err != nil {
		return builder.Draft{}, fmt.Errorf("%w: endDate: %v", ErrDraftInvalid, err)
	}

	for _, day := range envelope.Days {
		items := make([]blocks.AgendaItem, 0, len(day.Items))
		for _, item := range day.Items {
			items = append(items, blocks.AgendaItem{Time: item.Time, Activity: item.Activity})
		}
		draft.Days = append(draft.Days, builder.DraftDay{Items: items})
	}

	for _, tier := range envelope.Tiers {
		draft.Tiers = append(draft.Tiers, blocks.TicketTier{
			Name:        tier.Name,
			Description: tier.Description,
			Price:       tier.Price,
			Quantity:    tier.Quantity,
			Benefits:    append([]string(nil), tier.Benefits...),
			Popular:     tier.Popular,
		})
	}

	return draft, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
