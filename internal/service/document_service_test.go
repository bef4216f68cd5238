package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"campusflow-be/internal/dto"
	"campusflow-be/internal/entity"
	"campusflow-be/pkg/parser"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(factory *fakeUowFactory) *entity.Event {
	event := &entity.Event{Id: uuid.New(), Name: "Career Fair", CreatedAt: time.Now()}
	factory.store.events[event.Id] = event
	return event
}

func TestUploadDocumentEnqueuesIngest(t *testing.T) {
	factory := newFakeUowFactory()
	publisher := &fakePublisher{}
	svc := NewDocumentService(factory, publisher, nopLogger{})

	event := seedEvent(factory)

	res, err := svc.UploadDocument(context.Background(), event.Id, "agenda.txt", "text/plain", []byte("Doors open at 8am."))
	require.NoError(t, err)

	assert.False(t, res.Processed)
	assert.Equal(t, "agenda.txt", res.Filename)

	// Stored file and document record both persisted.
	assert.Len(t, factory.store.files, 1)
	require.Len(t, factory.store.documents, 1)
	doc := factory.store.documents[res.Id]
	require.NotNil(t, doc)
	assert.Nil(t, doc.ProcessedAt)

	// One ingest job queued for this document.
	require.Len(t, publisher.payloads, 1)
	var payload dto.PublishIngestMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &payload))
	assert.Equal(t, dto.IngestKindDocument, payload.Kind)
	assert.Equal(t, res.Id, payload.Id)
}

func TestUploadDocumentRejectsUnsupportedFormat(t *testing.T) {
	factory := newFakeUowFactory()
	publisher := &fakePublisher{}
	svc := NewDocumentService(factory, publisher, nopLogger{})

	event := seedEvent(factory)

	_, err := svc.UploadDocument(context.Background(), event.Id, "photo.png", "image/png", []byte{1, 2, 3})
	require.Error(t, err)

	var unsupported *parser.UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "png", unsupported.Extension)

	// Nothing persisted, nothing queued.
	assert.Empty(t, factory.store.files)
	assert.Empty(t, factory.store.documents)
	assert.Empty(t, publisher.payloads)
}

func TestUploadDocumentUnknownEvent(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewDocumentService(factory, &fakePublisher{}, nopLogger{})

	_, err := svc.UploadDocument(context.Background(), uuid.New(), "agenda.txt", "text/plain", []byte("x"))
	require.Error(t, err)
	assert.Empty(t, factory.store.documents)
}

func TestUploadSurvivesQueueFailure(t *testing.T) {
	factory := newFakeUowFactory()
	publisher := &fakePublisher{err: errors.New("queue closed")}
	svc := NewDocumentService(factory, publisher, nopLogger{})

	event := seedEvent(factory)

	res, err := svc.UploadDocument(context.Background(), event.Id, "agenda.txt", "text/plain", []byte("x"))
	require.NoError(t, err, "upload succeeds even when enqueue fails; reprocess picks it up")
	assert.NotNil(t, factory.store.documents[res.Id])
}

func TestReprocessPendingEnqueuesOnlyUnprocessed(t *testing.T) {
	factory := newFakeUowFactory()
	publisher := &fakePublisher{}
	svc := NewDocumentService(factory, publisher, nopLogger{})

	event := seedEvent(factory)

	now := time.Now()
	processed := &entity.Document{Id: uuid.New(), EventId: event.Id, Filename: "done.txt", ProcessedAt: &now, ChunkCount: 3}
	pending := &entity.Document{Id: uuid.New(), EventId: event.Id, Filename: "stuck.txt"}
	factory.store.documents[processed.Id] = processed
	factory.store.documents[pending.Id] = pending

	enqueued, err := svc.ReprocessPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, enqueued)

	require.Len(t, publisher.payloads, 1)
	var payload dto.PublishIngestMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &payload))
	assert.Equal(t, pending.Id, payload.Id)

	count, err := svc.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
