package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"campusflow-be/internal/dto"
	"campusflow-be/pkg/parser"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub           *gochannel.GoChannel
	topicName        string
	ingestionService IIngestionService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	ingestionService IIngestionService,
) IConsumerService {
	return &consumerService{
		pubSub:           pubSub,
		topicName:        topicName,
		ingestionService: ingestionService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// permanentFailure reports errors that retrying cannot fix. Those messages
// get acked so they don't loop forever.
func permanentFailure(err error) bool {
	var unsupported *parser.UnsupportedFormatError
	return errors.As(err, &unsupported) || errors.Is(err, parser.ErrParseFailure)
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIngestMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingest message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing ingest job kind=%s id=%s", payload.Kind, payload.Id)

	var err error
	switch payload.Kind {
	case dto.IngestKindDocument:
		_, err = cs.ingestionService.IngestDocument(ctx, payload.Id)
	case dto.IngestKindIndoorMap:
		err = cs.ingestionService.IngestIndoorMap(ctx, payload.Id)
	default:
		log.Printf("[ERROR] Unknown ingest kind: %s", payload.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Ingest job %s failed: %v", payload.Id, err)
		if permanentFailure(err) {
			msg.Ack()
		} else {
			msg.Nack()
		}
		return
	}

	log.Printf("[SUCCESS] Ingest job done kind=%s id=%s", payload.Kind, payload.Id)
	msg.Ack()
}
