package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"campusflow-be/internal/entity"
	"campusflow-be/internal/repository/contract"
	"campusflow-be/internal/repository/specification"
	"campusflow-be/internal/repository/unitofwork"
	"campusflow-be/pkg/embedding"
	"campusflow-be/pkg/llm"

	"github.com/google/uuid"
)

// fakeStore is the in-memory backing state shared by the fake repositories.
type fakeStore struct {
	events    map[uuid.UUID]*entity.Event
	documents map[uuid.UUID]*entity.Document
	files     map[uuid.UUID]*entity.StoredFile
	maps      map[uuid.UUID]*entity.IndoorMap
	chunks    map[uuid.UUID]*entity.Chunk
	messages  map[uuid.UUID]*entity.Message
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:    map[uuid.UUID]*entity.Event{},
		documents: map[uuid.UUID]*entity.Document{},
		files:     map[uuid.UUID]*entity.StoredFile{},
		maps:      map[uuid.UUID]*entity.IndoorMap{},
		chunks:    map[uuid.UUID]*entity.Chunk{},
		messages:  map[uuid.UUID]*entity.Message{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.events {
		copied := *v
		c.events[k] = &copied
	}
	for k, v := range s.documents {
		copied := *v
		c.documents[k] = &copied
	}
	for k, v := range s.files {
		copied := *v
		c.files[k] = &copied
	}
	for k, v := range s.maps {
		copied := *v
		c.maps[k] = &copied
	}
	for k, v := range s.chunks {
		copied := *v
		c.chunks[k] = &copied
	}
	for k, v := range s.messages {
		copied := *v
		c.messages[k] = &copied
	}
	return c
}

func (s *fakeStore) messagesForEvent(eventId uuid.UUID) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range s.messages {
		if m.EventId == eventId {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeUowFactory hands out units of work over a single shared store, with
// snapshot-based transactions: Begin clones, Commit swaps the clone in,
// Rollback discards it.
type fakeUowFactory struct {
	mu    sync.Mutex
	store *fakeStore
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{store: newFakeStore()}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{factory: f}
}

type fakeUow struct {
	factory *fakeUowFactory
	staged  *fakeStore
}

func (u *fakeUow) current() *fakeStore {
	if u.staged != nil {
		return u.staged
	}
	return u.factory.store
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.staged != nil {
		return errors.New("transaction already started")
	}
	u.factory.mu.Lock()
	u.staged = u.factory.store.clone()
	u.factory.mu.Unlock()
	return nil
}

func (u *fakeUow) Commit() error {
	if u.staged == nil {
		return errors.New("no transaction to commit")
	}
	u.factory.mu.Lock()
	u.factory.store = u.staged
	u.factory.mu.Unlock()
	u.staged = nil
	return nil
}

func (u *fakeUow) Rollback() error {
	if u.staged == nil {
		return errors.New("no transaction to rollback")
	}
	u.staged = nil
	return nil
}

func (u *fakeUow) EventRepository() contract.EventRepository {
	return &fakeEventRepo{uow: u}
}

func (u *fakeUow) DocumentRepository() contract.DocumentRepository {
	return &fakeDocumentRepo{uow: u}
}

func (u *fakeUow) ChunkRepository() contract.ChunkRepository {
	return &fakeChunkRepo{uow: u}
}

func (u *fakeUow) IndoorMapRepository() contract.IndoorMapRepository {
	return &fakeIndoorMapRepo{uow: u}
}

func (u *fakeUow) StoredFileRepository() contract.StoredFileRepository {
	return &fakeStoredFileRepo{uow: u}
}

func (u *fakeUow) MessageRepository() contract.MessageRepository {
	return &fakeMessageRepo{uow: u}
}

// Event repository

type fakeEventRepo struct {
	uow *fakeUow
}

func (r *fakeEventRepo) Create(ctx context.Context, e *entity.Event) error {
	copied := *e
	r.uow.current().events[e.Id] = &copied
	return nil
}

func (r *fakeEventRepo) Update(ctx context.Context, e *entity.Event) error {
	copied := *e
	r.uow.current().events[e.Id] = &copied
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.uow.current().events, id)
	return nil
}

func (r *fakeEventRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	for _, e := range r.uow.current().events {
		if matchByID(e.Id, specs) {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error) {
	var out []*entity.Event
	for _, e := range r.uow.current().events {
		if matchByID(e.Id, specs) {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Document repository

type fakeDocumentRepo struct {
	uow *fakeUow
}

func matchDocument(d *entity.Document, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if d.Id != sp.ID {
				return false
			}
		case specification.ByEventID:
			if d.EventId != sp.EventID {
				return false
			}
		case specification.Unprocessed:
			if d.ProcessedAt != nil {
				return false
			}
		}
	}
	return true
}

func (r *fakeDocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	copied := *d
	r.uow.current().documents[d.Id] = &copied
	return nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, d *entity.Document) error {
	if _, ok := r.uow.current().documents[d.Id]; !ok {
		return fmt.Errorf("document not found: %s", d.Id)
	}
	copied := *d
	r.uow.current().documents[d.Id] = &copied
	return nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.uow.current().documents, id)
	return nil
}

func (r *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	for _, d := range r.uow.current().documents {
		if matchDocument(d, specs) {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.uow.current().documents {
		if matchDocument(d, specs) {
			copied := *d
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.Before(out[j].UploadedAt) })
	return out, nil
}

func (r *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Chunk repository

type fakeChunkRepo struct {
	uow *fakeUow
}

func matchChunk(c *entity.Chunk, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.ByEventID:
			if c.EventId != sp.EventID {
				return false
			}
		case specification.ByDocumentID:
			if c.DocumentId != sp.DocumentID {
				return false
			}
		case specification.ByKind:
			if c.Kind != sp.Kind {
				return false
			}
		}
	}
	return true
}

func (r *fakeChunkRepo) Create(ctx context.Context, c *entity.Chunk) error {
	copied := *c
	r.uow.current().chunks[c.Id] = &copied
	return nil
}

func (r *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.Chunk) error {
	for _, c := range chunks {
		copied := *c
		r.uow.current().chunks[c.Id] = &copied
	}
	return nil
}

func (r *fakeChunkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.uow.current().chunks, id)
	return nil
}

func (r *fakeChunkRepo) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	store := r.uow.current()
	for id, c := range store.chunks {
		if c.DocumentId == documentId {
			delete(store.chunks, id)
		}
	}
	return nil
}

func (r *fakeChunkRepo) DeleteByEventId(ctx context.Context, eventId uuid.UUID) error {
	store := r.uow.current()
	for id, c := range store.chunks {
		if c.EventId == eventId {
			delete(store.chunks, id)
		}
	}
	return nil
}

func (r *fakeChunkRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chunk, error) {
	for _, c := range r.uow.current().chunks {
		if matchChunk(c, specs) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeChunkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chunk, error) {
	var out []*entity.Chunk
	for _, c := range r.uow.current().chunks {
		if matchChunk(c, specs) {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakeChunkRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func (r *fakeChunkRepo) SearchSimilarWithScore(ctx context.Context, vector []float32, limit int, eventId uuid.UUID, threshold float64) ([]*contract.ScoredChunk, error) {
	var scored []*contract.ScoredChunk
	for _, c := range r.uow.current().chunks {
		if c.EventId != eventId {
			continue
		}
		sim := cosineSimilarity(vector, c.Embedding)
		if sim < threshold {
			continue
		}
		copied := *c
		scored = append(scored, &contract.ScoredChunk{Chunk: &copied, Similarity: sim})
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].Similarity > scored[j].Similarity })
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// Indoor map repository

type fakeIndoorMapRepo struct {
	uow *fakeUow
}

func (r *fakeIndoorMapRepo) Upsert(ctx context.Context, m *entity.IndoorMap) error {
	store := r.uow.current()
	for id, existing := range store.maps {
		if existing.EventId == m.EventId {
			delete(store.maps, id)
		}
	}
	copied := *m
	store.maps[m.Id] = &copied
	return nil
}

func (r *fakeIndoorMapRepo) Update(ctx context.Context, m *entity.IndoorMap) error {
	copied := *m
	r.uow.current().maps[m.Id] = &copied
	return nil
}

func (r *fakeIndoorMapRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.uow.current().maps, id)
	return nil
}

func (r *fakeIndoorMapRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IndoorMap, error) {
	for _, m := range r.uow.current().maps {
		if matchIndoorMap(m, specs) {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeIndoorMapRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IndoorMap, error) {
	var out []*entity.IndoorMap
	for _, m := range r.uow.current().maps {
		if matchIndoorMap(m, specs) {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func matchIndoorMap(m *entity.IndoorMap, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if m.Id != sp.ID {
				return false
			}
		case specification.ByEventID:
			if m.EventId != sp.EventID {
				return false
			}
		}
	}
	return true
}

// Stored file repository

type fakeStoredFileRepo struct {
	uow *fakeUow
}

func (r *fakeStoredFileRepo) Create(ctx context.Context, f *entity.StoredFile) error {
	copied := *f
	r.uow.current().files[f.Id] = &copied
	return nil
}

func (r *fakeStoredFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.uow.current().files, id)
	return nil
}

func (r *fakeStoredFileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoredFile, error) {
	for _, f := range r.uow.current().files {
		if matchByID(f.Id, specs) {
			copied := *f
			return &copied, nil
		}
	}
	return nil, nil
}

// Message repository

type fakeMessageRepo struct {
	uow *fakeUow
}

func matchMessage(m *entity.Message, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if m.Id != sp.ID {
				return false
			}
		case specification.ByEventID:
			if m.EventId != sp.EventID {
				return false
			}
		case specification.FlaggedOnly:
			if !m.Flagged {
				return false
			}
		}
	}
	return true
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	copied := *m
	r.uow.current().messages[m.Id] = &copied
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range r.uow.current().messages {
		if matchMessage(m, specs) {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchByID(id uuid.UUID, specs []specification.Specification) bool {
	for _, s := range specs {
		if sp, ok := s.(specification.ByID); ok && sp.ID != id {
			return false
		}
	}
	return true
}

// Fake AI providers

// fakeEmbeddingProvider returns a deterministic vector per call and can be
// told to fail at the nth call (1-based).
type fakeEmbeddingProvider struct {
	mu     sync.Mutex
	calls  int
	failAt int
	vector []float32
}

func (f *fakeEmbeddingProvider) Generate(ctx context.Context, text, taskType string) (*embedding.EmbeddingResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failAt > 0 && f.calls >= f.failAt {
		return nil, fmt.Errorf("%w: quota exceeded", embedding.ErrEmbeddingFailure)
	}
	vector := f.vector
	if vector == nil {
		vector = []float32{0.1, 0.2, 0.3}
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: vector},
	}, nil
}

// fakeLLMProvider returns scripted outputs.
type fakeLLMProvider struct {
	mu            sync.Mutex
	generateOut   string
	generateErr   error
	describeOut   string
	describeErr   error
	generateCalls int
	lastPrompt    string
}

func (f *fakeLLMProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateCalls++
	f.lastPrompt = prompt
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.generateOut, nil
}

func (f *fakeLLMProvider) DescribeImage(ctx context.Context, imageBytes []byte, mimeType, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.describeErr != nil {
		return "", f.describeErr
	}
	return f.describeOut, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakePublisher records enqueued payloads.
type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}
