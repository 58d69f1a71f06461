// Package experiences assembles the experience builder engine: the block
// document session, the draft importer, and the save/publish pipeline.
package experiences

import (
	"context"

	"github.com/goliatone/go-experiences/builder"
	"github.com/goliatone/go-experiences/importer"
	"github.com/goliatone/go-experiences/internal/logging"
	"github.com/goliatone/go-experiences/pkg/interfaces"
	"github.com/goliatone/go-experiences/publish"
	"github.com/google/uuid"
)

// Session exports the builder session for consumers of the experiences package.
type Session = builder.Session

// Draft exports the imported draft shape.
type Draft = builder.Draft

// PublishService exports the save/publish service contract.
type PublishService = publish.Service

// Store exports the persistence collaborator contract.
type Store = publish.Store

// Config wires the engine's collaborators. Store is the only required
// field; everything else defaults to safe no-ops.
type Config struct {
	// Store persists flattened requests and extracted attachments.
	Store publish.Store
	// Logger supplies module-scoped loggers. Nil disables logging.
	Logger interfaces.LoggerProvider
	// Focus receives scroll-and-highlight requests after jump-to-section.
	Focus builder.FocusNotifier
	// EditContext seeds the rich text and featured image core blocks in
	// addition to title, dates, and location.
	EditContext bool
}

// Engine is the top-level entry point binding sessions to the publish
// pipeline.
type Engine struct {
	cfg       Config
	publish   publish.Service
	importLog interfaces.Logger
}

// New assembles an Engine from the supplied configuration.
func New(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		publish: publish.NewService(cfg.Store,
			publish.WithLogger(logging.PublishLogger(cfg.Logger)),
		),
		importLog: logging.ImporterLogger(cfg.Logger),
	}
}

// Publish exposes the underlying publish service, e.g. to wire command
// handlers.
func (e *Engine) Publish() publish.Service {
	return e.publish
}

// NewSession starts a builder session with the engine's collaborators
// attached. Core blocks are created eagerly.
func (e *Engine) NewSession(opts ...builder.Option) *builder.Session {
	base := []builder.Option{
		builder.WithLogger(logging.BuilderLogger(e.cfg.Logger)),
	}
	if e.cfg.Focus != nil {
		base = append(base, builder.WithFocusNotifier(e.cfg.Focus))
	}
	if e.cfg.EditContext {
		base = append(base, builder.WithEditContext())
	}
	return builder.NewSession(append(base, opts...)...)
}

// ImportDraft decodes, validates, and merges an externally produced draft
// payload into the session. The token enforces at-most-once application per
// imported draft.
func (e *Engine) ImportDraft(session *builder.Session, payload []byte, token string) error {
	draft, err := importer.DecodeDraft(payload)
	if err != nil {
		e.importLog.Warn("importer.draft.rejected", "error", err)
		return err
	}
	if !session.ApplyDraft(draft, token) {
		e.importLog.Warn("importer.draft.duplicate", "token", token)
		return nil
	}
	e.importLog.Info("importer.draft.merged", "title", draft.Title)
	return nil
}

// SaveDraft flattens the session and persists it as a draft. On first save
// the assigned id is recorded on the session so later saves update in place.
func (e *Engine) SaveDraft(ctx context.Context, session *builder.Session) (uuid.UUID, error) {
	receipt, err := e.publish.SaveDraft(ctx, publish.SaveDraftRequest{
		ExperienceID: sessionID(session),
		Input:        sessionInput(session),
	})
	if err != nil {
		return uuid.Nil, err
	}
	session.SetExperienceID(receipt.ExperienceID)
	return receipt.ExperienceID, nil
}

// PublishExperience flattens the session under the publish gate and
// persists the result.
func (e *Engine) PublishExperience(ctx context.Context, session *builder.Session) (uuid.UUID, error) {
	receipt, err := e.publish.Publish(ctx, publish.PublishRequest{
		ExperienceID: sessionID(session),
		Input:        sessionInput(session),
	})
	if err != nil {
		return uuid.Nil, err
	}
	session.SetExperienceID(receipt.ExperienceID)
	return receipt.ExperienceID, nil
}

func sessionID(session *builder.Session) *uuid.UUID {
	if id, ok := session.ExperienceID(); ok {
		return &id
	}
	return nil
}

func sessionInput(session *builder.Session) publish.Input {
	return publish.Input{
		Blocks:   session.Blocks(),
		Category: session.Category(),
		IsPublic: session.IsPublic(),
	}
}
