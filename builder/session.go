package builder

import (
	"sync"
	"time"

	"github.com/goliatone/go-experiences/blocks"
	"github.com/goliatone/go-experiences/internal/logging"
	"github.com/goliatone/go-experiences/media"
	"github.com/goliatone/go-experiences/pkg/interfaces"
	"github.com/google/uuid"
)

// FocusNotifier receives one-way requests to scroll to and transiently
// highlight a rendered block. The engine never queries it back.
type FocusNotifier interface {
	Focus(blockID string)
}

// FocusFunc adapts a function to the FocusNotifier contract.
type FocusFunc func(blockID string)

// Focus implements FocusNotifier.
func (f FocusFunc) Focus(blockID string) {
	if f != nil {
		f(blockID)
	}
}

// Session owns the block sequence of one experience document and is its only
// mutator surface. All operations run synchronously within a single user
// interaction turn; the mutex exists so a save in flight can snapshot the
// sequence safely, not to serialize edits.
type Session struct {
	mu             sync.Mutex
	seq            blocks.Sequence
	isPublic       bool
	category       string
	experienceID   *uuid.UUID
	now            func() time.Time
	id             blocks.IDGenerator
	logger         interfaces.Logger
	focus          FocusNotifier
	consumedDrafts map[string]struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the timestamp source used for generated block ids.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the random fragment generator for block ids.
func WithIDGenerator(gen blocks.IDGenerator) Option {
	return func(s *Session) {
		if gen != nil {
			s.id = gen
		}
	}
}

// WithLogger attaches a logger to the session.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFocusNotifier wires the collaborator that scrolls to and highlights
// blocks after jump-to-section.
func WithFocusNotifier(focus FocusNotifier) Option {
	return func(s *Session) {
		if focus != nil {
			s.focus = focus
		}
	}
}

// WithEditContext seeds the rich text and featured image core blocks in
// addition to title, dates, and location. Edit surfaces show all five.
func WithEditContext() Option {
	return func(s *Session) {
		s.seq = seedCoreBlocks(true)
	}
}

// WithExperienceID associates the session with an already persisted draft so
// saves update instead of create.
func WithExperienceID(id uuid.UUID) Option {
	return func(s *Session) {
		clone := id
		s.experienceID = &clone
	}
}

// NewSession starts a builder session. Core blocks are created eagerly with
// their fixed ids and empty payloads.
func NewSession(opts ...Option) *Session {
	s := &Session{
		seq:            seedCoreBlocks(false),
		now:            time.Now,
		id:             blocks.DefaultIDGenerator,
		logger:         logging.NoOp(),
		consumedDrafts: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func seedCoreBlocks(editContext bool) blocks.Sequence {
	seq := blocks.Sequence{}
	core := []blocks.Type{blocks.TypeTitle, blocks.TypeDates, blocks.TypeLocation}
	if editContext {
		core = []blocks.Type{
			blocks.TypeImage,
			blocks.TypeTitle,
			blocks.TypeDates,
			blocks.TypeLocation,
			blocks.TypeRichText,
		}
	}
	for _, t := range core {
		id, _ := blocks.FixedID(t)
		seq = blocks.Add(seq, blocks.Block{ID: id, Type: t, Data: blocks.DefaultData(t)})
	}
	return seq
}

// Blocks returns a deep copy of the current sequence.
func (s *Session) Blocks() blocks.Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Clone()
}

// Len reports the number of blocks.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seq)
}

// IsPublic reports the document-level visibility flag.
func (s *Session) IsPublic() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isPublic
}

// SetPublic flips the document-level visibility flag.
func (s *Session) SetPublic(public bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isPublic = public
}

// Category reports the marketplace category assigned to the experience.
func (s *Session) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// SetCategory assigns the marketplace category. Category is document-level
// state, not a block.
func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
}

// ExperienceID returns the persisted draft id, if any.
func (s *Session) ExperienceID() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.experienceID == nil {
		return uuid.Nil, false
	}
	return *s.experienceID, true
}

// SetExperienceID records the id assigned by the persistence collaborator
// after the first successful save.
func (s *Session) SetExperienceID(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := id
	s.experienceID = &clone
}

// Add creates a block of the given type with default data, appended at the
// end of the sequence. For singleton types whose fixed id already exists it
// returns the existing id and created=false. Unknown types are refused.
func (s *Session) Add(t blocks.Type) (string, bool) {
	data := blocks.DefaultData(t)
	if data == nil {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := blocks.FixedID(t); ok && s.seq.IndexOf(id) >= 0 {
		return id, false
	}

	id := blocks.NewID(t, s.now(), s.id())
	s.seq = blocks.Add(s.seq, blocks.Block{ID: id, Type: t, Data: data})
	s.logger.Debug("builder.block.add", "block_id", id, "block_type", string(t))
	return id, true
}

// Update shallow-merges a patch into the identified block's data. Unknown
// ids are a no-op. Preview binaries replaced by the patch are released once
// no other block references them.
func (s *Session) Update(id string, patch blocks.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.seq.Find(id)
	if !ok {
		return
	}
	s.seq = blocks.Update(s.seq, id, patch)
	s.releaseOrphaned(collectResources(before.Data))
}

// Delete removes the identified block. Core block ids are silently refused.
// Preview binaries owned solely by the removed block are released.
func (s *Session) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.seq.Find(id)
	if !ok || blocks.IsProtectedID(id) {
		return
	}
	s.seq = blocks.Delete(s.seq, id)
	s.releaseOrphaned(collectResources(before.Data))
	s.logger.Debug("builder.block.delete", "block_id", id)
}

// Duplicate clones the identified block's data into a new block appended at
// the end. It returns the new block's id.
func (s *Session) Duplicate(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	block, ok := s.seq.Find(id)
	if !ok {
		return "", false
	}
	newID := blocks.NewID(block.Type, s.now(), s.id())
	if fixed, isFixed := blocks.FixedID(block.Type); isFixed && fixed == newID {
		// Singleton types cannot be duplicated; their fixed id already exists.
		return "", false
	}
	s.seq = blocks.Duplicate(s.seq, id, newID)
	return newID, true
}

// Reorder moves the block at dragIndex to hoverIndex. Invalid indices leave
// the sequence unchanged.
func (s *Session) Reorder(dragIndex, hoverIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = blocks.Reorder(s.seq, dragIndex, hoverIndex)
}

// JumpToSection surfaces the section of the given type. When a block of the
// type already exists its id is highlighted instead of creating a duplicate;
// otherwise a new block is created at its canonical insert position and
// highlighted once rendered. It returns the target block id and whether a
// block was created.
func (s *Session) JumpToSection(t blocks.Type) (string, bool) {
	data := blocks.DefaultData(t)
	if data == nil {
		return "", false
	}

	s.mu.Lock()

	if idx := s.seq.FirstOfType(t); idx >= 0 {
		id := s.seq[idx].ID
		s.mu.Unlock()
		s.notifyFocus(id)
		return id, false
	}

	id := blocks.NewID(t, s.now(), s.id())
	position := blocks.InsertPosition(t, s.seq)
	s.seq = blocks.Insert(s.seq, blocks.Block{ID: id, Type: t, Data: data}, position)
	s.logger.Debug("builder.section.create", "block_id", id, "position", position)
	s.mu.Unlock()

	s.notifyFocus(id)
	return id, true
}

func (s *Session) notifyFocus(id string) {
	if s.focus != nil {
		s.focus.Focus(id)
	}
}

// releaseOrphaned releases every resource in the candidate set that the
// current sequence no longer references.
func (s *Session) releaseOrphaned(candidates []*media.Resource) {
	if len(candidates) == 0 {
		return
	}

	live := make(map[*media.Resource]struct{})
	for _, b := range s.seq {
		for _, r := range collectResources(b.Data) {
			live[r] = struct{}{}
		}
	}

	for _, r := range candidates {
		if r == nil {
			continue
		}
		if _, stillUsed := live[r]; !stillUsed {
			r.Release()
		}
	}
}

// Close releases every preview binary still held by the sequence. Call it
// when the editing session ends without a save.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.seq {
		for _, r := range collectResources(b.Data) {
			r.Release()
		}
	}
}

func collectResources(d blocks.Data) []*media.Resource {
	switch data := d.(type) {
	case blocks.ImageData:
		if data.Upload != nil {
			return []*media.Resource{data.Upload}
		}
	case blocks.GalleryData:
		var out []*media.Resource
		for _, img := range data.Images {
			if img.Upload != nil {
				out = append(out, img.Upload)
			}
		}
		return out
	}
	return nil
}
