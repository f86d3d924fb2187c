// Package ingest drives a document through parse, chunk, review and commit.
package ingest

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/parser"
)

// State is a step of an ingestion run.
type State string

const (
	StateIdle        State = "idle"
	StateConfiguring State = "configuring"
	StateParsing     State = "parsing"
	StateParsed      State = "parsed"
	StateChunking    State = "chunking"
	StateReviewing   State = "reviewing"
	StateCommitting  State = "committing"
)

// Settings are the user choices for a run.
type Settings struct {
	DocumentType        domain.DocumentType   `json:"document_type"`
	Parser              domain.ParserType     `json:"parser"`
	Chunking            domain.ChunkingMethod `json:"chunking"`
	SimilarityThreshold float64               `json:"similarity_threshold"`
}

// Run is the state of one ingestion run. Network calls happen outside the
// lock; the in-flight flag rejects a second command until the first returns.
type Run struct {
	mu        sync.Mutex
	id        string
	state     State
	settings  Settings
	source    parser.Source
	parsed    *domain.ParsedDocument
	chunks    []domain.Chunk
	lastError string
	message   string
	inFlight  bool
	createdAt time.Time
	updatedAt time.Time
}

// Snapshot is a point-in-time copy of a Run safe to hand to callers.
type Snapshot struct {
	ID        string                 `json:"id"`
	State     State                  `json:"state"`
	Settings  Settings               `json:"settings"`
	Filename  string                 `json:"filename,omitempty"`
	Parsed    *domain.ParsedDocument `json:"parsed,omitempty"`
	Chunks    []domain.Chunk         `json:"chunks"`
	LastError string                 `json:"last_error,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Busy      bool                   `json:"busy"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// NewRun creates an idle run.
func NewRun(id string) *Run {
	now := time.Now()
	return &Run{id: id, state: StateIdle, createdAt: now, updatedAt: now}
}

// ID returns the run identifier.
func (r *Run) ID() string { return r.id }

// State returns the current step.
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Snapshot copies the run state, chunks included.
func (r *Run) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		ID:        r.id,
		State:     r.state,
		Settings:  r.settings,
		Filename:  r.source.Filename,
		Chunks:    make([]domain.Chunk, len(r.chunks)),
		LastError: r.lastError,
		Message:   r.message,
		Busy:      r.inFlight,
		CreatedAt: r.createdAt,
		UpdatedAt: r.updatedAt,
	}
	if r.parsed != nil {
		parsed := *r.parsed
		parsed.Metadata = copyMetadata(r.parsed.Metadata)
		snap.Parsed = &parsed
	}
	for i, c := range r.chunks {
		c.Metadata = copyMetadata(c.Metadata)
		snap.Chunks[i] = c
	}
	return snap
}

// Chunks returns a copy of the staged chunks.
func (r *Run) Chunks() []domain.Chunk {
	return r.Snapshot().Chunks
}

// idleSince reports when the run last changed and whether a call is outstanding.
func (r *Run) idleSince() (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updatedAt, r.inFlight
}

// configure replaces the run inputs and drops everything derived from earlier ones.
func (r *Run) configure(settings Settings, src parser.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight {
		return domain.ErrRunBusy
	}
	r.settings = settings
	r.source = src
	r.parsed = nil
	r.chunks = nil
	r.lastError = ""
	r.message = ""
	r.transition(StateConfiguring)
	return nil
}

// Reset returns the run to idle and clears every field.
func (r *Run) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight {
		return domain.ErrRunBusy
	}
	r.clear()
	r.message = ""
	return nil
}

func (r *Run) clear() {
	r.settings = Settings{}
	r.source = parser.Source{}
	r.parsed = nil
	r.chunks = nil
	r.lastError = ""
	r.transition(StateIdle)
}

// startParse moves the run into parsing and returns the inputs for the call.
// Parsing may be re-issued after a failure or to replace an earlier result.
func (r *Run) startParse() (Settings, parser.Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(StateParsing, StateConfiguring, StateParsing, StateParsed, StateChunking, StateReviewing); err != nil {
		return Settings{}, parser.Source{}, err
	}
	return r.settings, r.source, nil
}

// finishParse records the parse outcome. A failed parse stays in parsing.
func (r *Run) finishParse(doc *domain.ParsedDocument, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false
	if err != nil {
		r.lastError = err.Error()
		r.transition(StateParsing)
		return
	}
	r.parsed = doc
	r.chunks = nil
	r.transition(StateParsed)
}

// startChunk moves the run into chunking and returns the parsed document.
func (r *Run) startChunk() (Settings, domain.ParsedDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(StateChunking, StateParsed, StateChunking, StateReviewing); err != nil {
		return Settings{}, domain.ParsedDocument{}, err
	}
	doc := *r.parsed
	doc.Metadata = copyMetadata(r.parsed.Metadata)
	return r.settings, doc, nil
}

// finishChunk stages the chunks for review. A failed chunk call stays in chunking.
func (r *Run) finishChunk(chunks []domain.Chunk, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false
	if err != nil {
		r.lastError = err.Error()
		r.transition(StateChunking)
		return
	}
	r.chunks = chunks
	r.transition(StateReviewing)
}

// startCommit moves the run into committing and returns the staged chunks.
// An empty list fails without leaving reviewing.
func (r *Run) startCommit() ([]domain.Chunk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight {
		return nil, domain.ErrRunBusy
	}
	if r.state != StateReviewing {
		return nil, fmt.Errorf("%w: cannot commit while %s", domain.ErrInvalidTransition, r.state)
	}
	if len(r.chunks) == 0 {
		r.lastError = domain.ErrNothingToCommit.Error()
		r.touch()
		return nil, domain.ErrNothingToCommit
	}
	if err := r.begin(StateCommitting, StateReviewing); err != nil {
		return nil, err
	}
	chunks := make([]domain.Chunk, len(r.chunks))
	copy(chunks, r.chunks)
	return chunks, nil
}

// finishCommit clears the run on success and returns to reviewing on failure.
func (r *Run) finishCommit(message string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false
	if err != nil {
		r.lastError = err.Error()
		r.transition(StateReviewing)
		return
	}
	r.clear()
	r.message = message
}

// BeginEdit marks a staged chunk as being edited.
func (r *Run) BeginEdit(chunkID string) error {
	return r.stage(chunkID, func(c *domain.Chunk) {
		c.Editing = true
	})
}

// SaveEdit replaces a chunk's text and metadata. metadataJSON must be a JSON
// object; otherwise the chunk is left untouched and ErrInvalidMetadata is returned.
func (r *Run) SaveEdit(chunkID, text, metadataJSON string) error {
	var metadata map[string]any
	if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil || metadata == nil {
		invalid := fmt.Errorf("%w: metadata must be a JSON object", domain.ErrInvalidMetadata)
		if err != nil {
			invalid = fmt.Errorf("%w: %v", domain.ErrInvalidMetadata, err)
		}
		r.mu.Lock()
		r.lastError = invalid.Error()
		r.mu.Unlock()
		return invalid
	}
	return r.stage(chunkID, func(c *domain.Chunk) {
		c.Text = text
		c.Metadata = metadata
		c.Editing = false
	})
}

// CancelEdit leaves edit mode without changing the chunk.
func (r *Run) CancelEdit(chunkID string) error {
	return r.stage(chunkID, func(c *domain.Chunk) {
		c.Editing = false
	})
}

// DeleteChunk removes a staged chunk. There is no undo.
func (r *Run) DeleteChunk(chunkID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.canStage(); err != nil {
		return err
	}
	for i := range r.chunks {
		if r.chunks[i].ID == chunkID {
			r.chunks = append(r.chunks[:i], r.chunks[i+1:]...)
			r.lastError = ""
			r.touch()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrChunkNotFound, chunkID)
}

func (r *Run) stage(chunkID string, apply func(c *domain.Chunk)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.canStage(); err != nil {
		return err
	}
	for i := range r.chunks {
		if r.chunks[i].ID == chunkID {
			apply(&r.chunks[i])
			r.lastError = ""
			r.touch()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrChunkNotFound, chunkID)
}

func (r *Run) canStage() error {
	if r.inFlight {
		return domain.ErrRunBusy
	}
	if r.state != StateReviewing {
		return fmt.Errorf("%w: chunks can only be edited while reviewing, run is %s", domain.ErrInvalidTransition, r.state)
	}
	return nil
}

// begin must be called with the lock held.
func (r *Run) begin(next State, from ...State) error {
	if r.inFlight {
		return domain.ErrRunBusy
	}
	allowed := false
	for _, s := range from {
		if r.state == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: cannot move from %s to %s", domain.ErrInvalidTransition, r.state, next)
	}
	r.inFlight = true
	r.lastError = ""
	r.message = ""
	r.transition(next)
	return nil
}

func (r *Run) transition(next State) {
	r.state = next
	r.touch()
}

func (r *Run) touch() {
	r.updatedAt = time.Now()
}

func copyMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
