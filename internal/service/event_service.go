package service

import (
	"context"
	"fmt"
	"time"

	"campusflow-be/internal/dto"
	"campusflow-be/internal/entity"
	"campusflow-be/internal/repository/specification"
	"campusflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	ShowEvent(ctx context.Context, id uuid.UUID) (*dto.ShowEventResponse, error)
	ListEvents(ctx context.Context) ([]dto.ShowEventResponse, error)
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEventService(uowFactory unitofwork.RepositoryFactory) IEventService {
	return &eventService{
		uowFactory: uowFactory,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event := &entity.Event{
		Id:        uuid.New(),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := uow.EventRepository().Create(ctx, event); err != nil {
		return nil, err
	}

	return &dto.CreateEventResponse{Id: event.Id}, nil
}

func (s *eventService) ShowEvent(ctx context.Context, id uuid.UUID) (*dto.ShowEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("event not found: %s", id)
	}

	return &dto.ShowEventResponse{
		Id:        event.Id,
		Name:      event.Name,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]dto.ShowEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	eventsList, err := uow.EventRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]dto.ShowEventResponse, 0, len(eventsList))
	for _, e := range eventsList {
		res = append(res, dto.ShowEventResponse{
			Id:        e.Id,
			Name:      e.Name,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}
	return res, nil
}
