package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campusflow-be/internal/dto"
	"campusflow-be/internal/entity"
	"campusflow-be/internal/pkg/logger"
	"campusflow-be/internal/repository/specification"
	"campusflow-be/internal/repository/unitofwork"
	"campusflow-be/pkg/parser"

	"github.com/google/uuid"
)

type IDocumentService interface {
	// UploadDocument stores the file and document record, then enqueues
	// ingestion. The upload response returns before chunks exist.
	UploadDocument(ctx context.Context, eventId uuid.UUID, filename, contentType string, data []byte) (*dto.UploadDocumentResponse, error)
	ShowDocument(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error)
	ListDocuments(ctx context.Context, eventId uuid.UUID) ([]dto.DocumentResponse, error)
	// ReprocessPending re-enqueues every document that never finished
	// ingestion (crashed worker, embedding outage).
	ReprocessPending(ctx context.Context) (int, error)
	CountPending(ctx context.Context) (int64, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *documentService) UploadDocument(ctx context.Context, eventId uuid.UUID, filename, contentType string, data []byte) (*dto.UploadDocumentResponse, error) {
	// Reject unsupported formats before writing anything.
	if _, err := parser.FormatFromFilename(filename); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: eventId})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("event not found: %s", eventId)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	file := &entity.StoredFile{
		Id:          uuid.New(),
		EventId:     eventId,
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
		UploadedAt:  time.Now(),
	}
	if err := uow.StoredFileRepository().Create(ctx, file); err != nil {
		return nil, err
	}

	doc := &entity.Document{
		Id:          uuid.New(),
		EventId:     eventId,
		Filename:    filename,
		ContentType: contentType,
		FileId:      file.Id,
		UploadedAt:  time.Now(),
	}
	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.enqueueIngest(ctx, dto.IngestKindDocument, doc.Id); err != nil {
		// The upload itself succeeded; reprocessing will pick this up.
		s.log.Warn("document", "failed to enqueue ingest job", map[string]interface{}{
			"document_id": doc.Id.String(),
			"error":       err.Error(),
		})
	}

	return &dto.UploadDocumentResponse{
		Id:        doc.Id,
		Filename:  doc.Filename,
		Processed: false,
	}, nil
}

func (s *documentService) enqueueIngest(ctx context.Context, kind string, id uuid.UUID) error {
	payload := dto.PublishIngestMessage{Kind: kind, Id: id}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, data)
}

func (s *documentService) ShowDocument(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document not found: %s", id)
	}

	res := toDocumentResponse(doc)
	return &res, nil
}

func (s *documentService) ListDocuments(ctx context.Context, eventId uuid.UUID) ([]dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByEventID{EventID: eventId},
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		res = append(res, toDocumentResponse(doc))
	}
	return res, nil
}

func (s *documentService) ReprocessPending(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pending, err := uow.DocumentRepository().FindAll(ctx,
		specification.Unprocessed{},
		specification.OrderBy{Field: "uploaded_at", Desc: false},
	)
	if err != nil {
		return 0, err
	}

	enqueued := 0
	for _, doc := range pending {
		if err := s.enqueueIngest(ctx, dto.IngestKindDocument, doc.Id); err != nil {
			s.log.Warn("document", "failed to re-enqueue document", map[string]interface{}{
				"document_id": doc.Id.String(),
				"error":       err.Error(),
			})
			continue
		}
		enqueued++
	}

	s.log.Info("document", "reprocess sweep complete", map[string]interface{}{
		"pending":  len(pending),
		"enqueued": enqueued,
	})
	return enqueued, nil
}

func (s *documentService) CountPending(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DocumentRepository().Count(ctx, specification.Unprocessed{})
}

func toDocumentResponse(doc *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		Id:          doc.Id,
		EventId:     doc.EventId,
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		UploadedAt:  doc.UploadedAt,
		ProcessedAt: doc.ProcessedAt,
		ChunkCount:  doc.ChunkCount,
	}
}
