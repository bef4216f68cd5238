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

	"github.com/google/uuid"
)

type IIndoorMapService interface {
	// UploadIndoorMap replaces the event's map (one per event, last write
	// wins) and enqueues vision indexing.
	UploadIndoorMap(ctx context.Context, eventId uuid.UUID, filename, contentType string, data []byte) (*dto.UploadIndoorMapResponse, error)
	ShowIndoorMap(ctx context.Context, eventId uuid.UUID) (*dto.UploadIndoorMapResponse, error)
}

type indoorMapService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewIndoorMapService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IIndoorMapService {
	return &indoorMapService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *indoorMapService) UploadIndoorMap(ctx context.Context, eventId uuid.UUID, filename, contentType string, data []byte) (*dto.UploadIndoorMapResponse, error) {
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

	indoorMap := &entity.IndoorMap{
		Id:          uuid.New(),
		EventId:     eventId,
		FileId:      file.Id,
		ContentType: contentType,
		UploadedAt:  time.Now(),
	}
	if err := uow.IndoorMapRepository().Upsert(ctx, indoorMap); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	payload := dto.PublishIngestMessage{Kind: dto.IngestKindIndoorMap, Id: indoorMap.Id}
	msgData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgData); err != nil {
		s.log.Warn("indoor_map", "failed to enqueue map indexing", map[string]interface{}{
			"map_id": indoorMap.Id.String(),
			"error":  err.Error(),
		})
	}

	return &dto.UploadIndoorMapResponse{
		Id:        indoorMap.Id,
		EventId:   indoorMap.EventId,
		IndexedAt: indoorMap.IndexedAt,
	}, nil
}

func (s *indoorMapService) ShowIndoorMap(ctx context.Context, eventId uuid.UUID) (*dto.UploadIndoorMapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	indoorMap, err := uow.IndoorMapRepository().FindOne(ctx, specification.ByEventID{EventID: eventId})
	if err != nil {
		return nil, err
	}
	if indoorMap == nil {
		return nil, fmt.Errorf("indoor map not found for event: %s", eventId)
	}

	return &dto.UploadIndoorMapResponse{
		Id:        indoorMap.Id,
		EventId:   indoorMap.EventId,
		IndexedAt: indoorMap.IndexedAt,
	}, nil
}
