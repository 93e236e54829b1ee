package debate

import (
	"context"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"sync"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishFunc func(ctx context.Context, events ...domain.Event)

	calls struct {
		Publish []struct {
			Ctx    context.Context
			Events []domain.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(ctx context.Context, events ...domain.Event) {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Events []domain.Event
	}{
		Ctx:    ctx,
		Events: events,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(ctx, events...)
}

func (mock *eventPublisherMock) PublishCalls() []struct {
	Ctx    context.Context
	Events []domain.Event
} {
	var calls []struct {
		Ctx    context.Context
		Events []domain.Event
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
