package commands

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-experiences/pkg/interfaces"
	"github.com/goliatone/go-experiences/publish"
	"github.com/google/uuid"
)

const (
	saveDraftMessageType = "experiences.draft.save"
	publishMessageType   = "experiences.publish"
)

// SaveExperienceDraftCommand requests a draft save of a flattened experience.
type SaveExperienceDraftCommand struct {
	ExperienceID *uuid.UUID    `json:"experience_id,omitempty"`
	Input        publish.Input `json:"input"`
}

// Type implements command.Message.
func (SaveExperienceDraftCommand) Type() string { return saveDraftMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SaveExperienceDraftCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Input.Blocks) == 0 {
		errs["input"] = validation.NewError("experiences.draft.save.blocks_required", "block sequence is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveExperienceDraftHandler saves drafts via the publish service using the
// shared command handler foundation.
type SaveExperienceDraftHandler struct {
	inner *Handler[SaveExperienceDraftCommand]
}

// NewSaveExperienceDraftHandler constructs a handler wired to the provided publish service.
func NewSaveExperienceDraftHandler(service publish.Service, logger interfaces.Logger, opts ...HandlerOption[SaveExperienceDraftCommand]) *SaveExperienceDraftHandler {
	exec := func(ctx context.Context, msg SaveExperienceDraftCommand) error {
		_, err := service.SaveDraft(ctx, publish.SaveDraftRequest{
			ExperienceID: msg.ExperienceID,
			Input:        msg.Input,
		})
		return err
	}

	handlerOpts := []HandlerOption[SaveExperienceDraftCommand]{
		WithLogger[SaveExperienceDraftCommand](logger),
		WithOperation[SaveExperienceDraftCommand]("experiences.draft.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveExperienceDraftHandler{
		inner: NewHandler[SaveExperienceDraftCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveExperienceDraftCommand].Execute.
func (h *SaveExperienceDraftHandler) Execute(ctx context.Context, msg SaveExperienceDraftCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PublishExperienceCommand requests publication of a flattened experience.
type PublishExperienceCommand struct {
	ExperienceID *uuid.UUID    `json:"experience_id,omitempty"`
	Input        publish.Input `json:"input"`
}

// Type implements command.Message.
func (PublishExperienceCommand) Type() string { return publishMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m PublishExperienceCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Input.Blocks) == 0 {
		errs["input"] = validation.NewError("experiences.publish.blocks_required", "block sequence is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishExperienceHandler publishes experiences via the publish service.
type PublishExperienceHandler struct {
	inner *Handler[PublishExperienceCommand]
}

// NewPublishExperienceHandler constructs a handler wired to the provided publish service.
func NewPublishExperienceHandler(service publish.Service, logger interfaces.Logger, opts ...HandlerOption[PublishExperienceCommand]) *PublishExperienceHandler {
	exec := func(ctx context.Context, msg PublishExperienceCommand) error {
		_, err := service.Publish(ctx, publish.PublishRequest{
			ExperienceID: msg.ExperienceID,
			Input:        msg.Input,
		})
		return err
	}

	handlerOpts := []HandlerOption[PublishExperienceCommand]{
		WithLogger[PublishExperienceCommand](logger),
		WithOperation[PublishExperienceCommand]("experiences.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishExperienceHandler{
		inner: NewHandler[PublishExperienceCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishExperienceCommand].Execute.
func (h *PublishExperienceHandler) Execute(ctx context.Context, msg PublishExperienceCommand) error {
	return h.inner.Execute(ctx, msg)
}
