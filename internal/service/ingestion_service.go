package service

import (
	"context"
	"fmt"
	"time"

	"campusflow-be/internal/entity"
	"campusflow-be/internal/pkg/logger"
	"campusflow-be/internal/repository/specification"
	"campusflow-be/internal/repository/unitofwork"
	"campusflow-be/pkg/chunker"
	"campusflow-be/pkg/embedding"
	"campusflow-be/pkg/events"
	"campusflow-be/pkg/llm"
	pktNats "campusflow-be/pkg/nats"
	"campusflow-be/pkg/parser"
	"campusflow-be/pkg/rag/prompt"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// indoorMapPrefix marks every map-derived chunk so any of them retrieved
// into the grounded prompt is identifiable as map content.
const indoorMapPrefix = "[INDOOR MAP DESCRIPTION] "

type IIngestionService interface {
	// IngestDocument parses, chunks and embeds a stored document, then
	// atomically replaces its chunks and stamps processing metadata.
	// Returns the number of chunks written.
	IngestDocument(ctx context.Context, documentId uuid.UUID) (int, error)
	// IngestIndoorMap describes the map image with the vision model and
	// indexes the description as chunks.
	IngestIndoorMap(ctx context.Context, mapId uuid.UUID) error
}

type ingestionService struct {
	uowFactory        unitofwork.RepositoryFactory
	splitter          *chunker.Chunker
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	limiter           *rate.Limiter
	eventPublisher    *pktNats.Publisher
	log               logger.ILogger
}

func NewIngestionService(
	uowFactory unitofwork.RepositoryFactory,
	splitter *chunker.Chunker,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	embedRatePerSec float64,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IIngestionService {
	var limiter *rate.Limiter
	if embedRatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(embedRatePerSec), 1)
	}
	return &ingestionService{
		uowFactory:        uowFactory,
		splitter:          splitter,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		limiter:           limiter,
		eventPublisher:    eventPublisher,
		log:               log,
	}
}

// embedChunks generates embeddings sequentially. Any failure aborts the
// whole batch so a partially embedded document never reaches the database.
func (s *ingestionService) embedChunks(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for i, text := range texts {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		res, err := s.embeddingProvider.Generate(ctx, text, embedding.TaskRetrievalDocument)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		vectors = append(vectors, res.Embedding.Values)
	}
	return vectors, nil
}

func (s *ingestionService) IngestDocument(ctx context.Context, documentId uuid.UUID) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return 0, err
	}
	if doc == nil {
		return 0, fmt.Errorf("document not found: %s", documentId)
	}

	file, err := uow.StoredFileRepository().FindOne(ctx, specification.ByID{ID: doc.FileId})
	if err != nil {
		return 0, err
	}
	if file == nil {
		return 0, fmt.Errorf("stored file not found: %s", doc.FileId)
	}

	text, err := parser.Parse(file.Data, doc.Filename)
	if err != nil {
		return 0, err
	}

	texts := s.splitter.Split(text)
	s.log.Info("ingestion", "document split into chunks", map[string]interface{}{
		"document_id": doc.Id.String(),
		"chunks":      len(texts),
	})

	// Embed everything before touching the database. If any chunk fails,
	// the existing corpus stays untouched.
	vectors, err := s.embedChunks(ctx, texts)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	newChunks := make([]*entity.Chunk, len(texts))
	for i := range texts {
		newChunks[i] = &entity.Chunk{
			Id:         uuid.New(),
			EventId:    doc.EventId,
			DocumentId: doc.Id,
			Text:       texts[i],
			Embedding:  vectors[i],
			Position:   i,
			CreatedAt:  now,
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	if err := uow.ChunkRepository().DeleteByDocumentId(ctx, doc.Id); err != nil {
		return 0, err
	}
	if len(newChunks) > 0 {
		if err := uow.ChunkRepository().CreateBulk(ctx, newChunks); err != nil {
			return 0, err
		}
	}

	doc.ProcessedAt = &now
	doc.ChunkCount = len(newChunks)
	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return 0, err
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}

	s.log.Info("ingestion", "document ingested", map[string]interface{}{
		"document_id": doc.Id.String(),
		"chunk_count": len(newChunks),
	})

	if s.eventPublisher != nil {
		evt := events.NewDocumentIngested(doc.EventId.String(), doc.Id.String(), len(newChunks))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("ingestion", "failed to publish ingested event", map[string]interface{}{
				"document_id": doc.Id.String(),
				"error":       err.Error(),
			})
		}
	}

	return len(newChunks), nil
}

func (s *ingestionService) IngestIndoorMap(ctx context.Context, mapId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	indoorMap, err := uow.IndoorMapRepository().FindOne(ctx, specification.ByID{ID: mapId})
	if err != nil {
		return err
	}
	if indoorMap == nil {
		return fmt.Errorf("indoor map not found: %s", mapId)
	}

	file, err := uow.StoredFileRepository().FindOne(ctx, specification.ByID{ID: indoorMap.FileId})
	if err != nil {
		return err
	}
	if file == nil {
		return fmt.Errorf("stored file not found: %s", indoorMap.FileId)
	}

	description, err := s.llmProvider.DescribeImage(ctx, file.Data, file.ContentType, prompt.IndoorMapDescription)
	if err != nil {
		return err
	}

	// Chunk the raw description; the marker goes onto each stored chunk so
	// window boundaries and embeddings follow the description text itself.
	texts := s.splitter.Split(description)

	vectors, err := s.embedChunks(ctx, texts)
	if err != nil {
		return err
	}

	now := time.Now()
	newChunks := make([]*entity.Chunk, len(texts))
	for i := range texts {
		newChunks[i] = &entity.Chunk{
			Id:         uuid.New(),
			EventId:    indoorMap.EventId,
			DocumentId: indoorMap.Id,
			Kind:       entity.ChunkKindIndoorMap,
			Text:       indoorMapPrefix + texts[i],
			Embedding:  vectors[i],
			Position:   i,
			CreatedAt:  now,
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Map chunks hang off the map id, so replacing the map replaces its
	// chunks the same way document re-ingestion does.
	if err := uow.ChunkRepository().DeleteByDocumentId(ctx, indoorMap.Id); err != nil {
		return err
	}
	if len(newChunks) > 0 {
		if err := uow.ChunkRepository().CreateBulk(ctx, newChunks); err != nil {
			return err
		}
	}

	indoorMap.IndexedAt = &now
	if err := uow.IndoorMapRepository().Update(ctx, indoorMap); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Info("ingestion", "indoor map indexed", map[string]interface{}{
		"map_id":      indoorMap.Id.String(),
		"chunk_count": len(newChunks),
	})

	if s.eventPublisher != nil {
		evt := events.NewMapIndexed(indoorMap.EventId.String(), indoorMap.Id.String())
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("ingestion", "failed to publish indexed event", map[string]interface{}{
				"map_id": indoorMap.Id.String(),
				"error":  err.Error(),
			})
		}
	}

	return nil
}
