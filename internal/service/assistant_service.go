package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusflow-be/internal/dto"
	"campusflow-be/internal/entity"
	"campusflow-be/internal/pkg/logger"
	"campusflow-be/internal/repository/specification"
	"campusflow-be/internal/repository/unitofwork"
	"campusflow-be/pkg/embedding"
	"campusflow-be/pkg/events"
	"campusflow-be/pkg/llm"
	pktNats "campusflow-be/pkg/nats"
	"campusflow-be/pkg/rag/classify"
	"campusflow-be/pkg/rag/prompt"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// InsufficientInfoAnswer is returned verbatim when no relevant context
// exists, without calling the generation model.
const InsufficientInfoAnswer = "I don't have that information in the event documents."

// ErrRetrievalFailure marks search-side failures, distinct from embedding
// or generation failures.
var ErrRetrievalFailure = errors.New("failed to retrieve context")

type IAssistantService interface {
	// Answer embeds the question, retrieves the event's most similar
	// chunks and generates a grounded answer.
	Answer(ctx context.Context, eventId uuid.UUID, req *dto.AskRequest) (*dto.AskResponse, error)
	// ClassifyMessage asks the model whether an attendee message needs
	// organizer attention, and records the verdict.
	ClassifyMessage(ctx context.Context, eventId uuid.UUID, req *dto.ClassifyMessageRequest) (*dto.ClassifyMessageResponse, error)
	ListFlaggedMessages(ctx context.Context, eventId uuid.UUID) ([]dto.MessageResponse, error)
}

type assistantService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	classifier        *classify.Classifier
	queryCache        *gocache.Cache
	topK              int
	threshold         float64
	eventPublisher    *pktNats.Publisher
	log               logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	classifier *classify.Classifier,
	queryCacheTTL time.Duration,
	topK int,
	threshold float64,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		classifier:        classifier,
		queryCache:        gocache.New(queryCacheTTL, 2*queryCacheTTL),
		topK:              topK,
		threshold:         threshold,
		eventPublisher:    eventPublisher,
		log:               log,
	}
}

// embedQuery caches question embeddings so repeated questions don't burn
// embedding quota.
func (s *assistantService) embedQuery(ctx context.Context, question string) ([]float32, error) {
	if cached, found := s.queryCache.Get(question); found {
		if vector, ok := cached.([]float32); ok {
			return vector, nil
		}
	}

	res, err := s.embeddingProvider.Generate(ctx, question, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, err
	}

	s.queryCache.Set(question, res.Embedding.Values, gocache.DefaultExpiration)
	return res.Embedding.Values, nil
}

func (s *assistantService) Answer(ctx context.Context, eventId uuid.UUID, req *dto.AskRequest) (*dto.AskResponse, error) {
	queryVector, err := s.embedQuery(ctx, req.Question)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	scored, err := uow.ChunkRepository().SearchSimilarWithScore(ctx, queryVector, s.topK, eventId, s.threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrievalFailure, err)
	}

	if len(scored) == 0 {
		s.log.Info("assistant", "no context found for question", map[string]interface{}{
			"event_id": eventId.String(),
		})
		return &dto.AskResponse{
			Answer:  InsufficientInfoAnswer,
			Sources: []dto.SourceReference{},
		}, nil
	}

	blocks := make([]prompt.ContextBlock, len(scored))
	sources := make([]dto.SourceReference, len(scored))
	for i, sc := range scored {
		blocks[i] = prompt.ContextBlock{Text: sc.Chunk.Text}
		sources[i] = dto.SourceReference{
			DocumentId: sc.Chunk.DocumentId,
			Position:   sc.Chunk.Position,
			Similarity: sc.Similarity,
		}
	}

	answer, err := s.llmProvider.Generate(ctx, prompt.NewGroundedAnswerBuilder(req.Question, blocks).Build())
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		Id:        uuid.New(),
		EventId:   eventId,
		Body:      req.Question,
		Answer:    answer,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		// The answer is already generated; losing the audit row should
		// not fail the request.
		s.log.Warn("assistant", "failed to record message", map[string]interface{}{
			"event_id": eventId.String(),
			"error":    err.Error(),
		})
	}

	return &dto.AskResponse{
		Answer:  answer,
		Sources: sources,
	}, nil
}

func (s *assistantService) ClassifyMessage(ctx context.Context, eventId uuid.UUID, req *dto.ClassifyMessageRequest) (*dto.ClassifyMessageResponse, error) {
	result, err := s.classifier.Classify(ctx, req.Message)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	message := &entity.Message{
		Id:         uuid.New(),
		EventId:    eventId,
		Body:       req.Message,
		Flagged:    result.ShouldFlag,
		Confidence: result.Confidence,
		Reason:     result.Reason,
		RawVerdict: []byte(result.Raw),
		CreatedAt:  time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		s.log.Warn("assistant", "failed to record classified message", map[string]interface{}{
			"event_id": eventId.String(),
			"error":    err.Error(),
		})
	}

	if result.ShouldFlag && s.eventPublisher != nil {
		evt := events.NewMessageFlagged(eventId.String(), message.Id.String(), result.Reason, result.Confidence)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("assistant", "failed to publish flagged event", map[string]interface{}{
				"message_id": message.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	return &dto.ClassifyMessageResponse{
		ShouldFlag: result.ShouldFlag,
		Confidence: result.Confidence,
		Reason:     result.Reason,
	}, nil
}

func (s *assistantService) ListFlaggedMessages(ctx context.Context, eventId uuid.UUID) ([]dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByEventID{EventID: eventId},
		specification.FlaggedOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, dto.MessageResponse{
			Id:         m.Id,
			EventId:    m.EventId,
			Body:       m.Body,
			Answer:     m.Answer,
			Flagged:    m.Flagged,
			Confidence: m.Confidence,
			Reason:     m.Reason,
			CreatedAt:  m.CreatedAt,
		})
	}
	return res, nil
}
