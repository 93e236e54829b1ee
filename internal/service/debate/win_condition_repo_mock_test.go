package debate

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"sync"
)

var _ winConditionRepo = &winConditionRepoMock{}

type winConditionRepoMock struct {
	CreateFunc      func(ctx context.Context, w domain.WinCondition) (*domain.WinCondition, error)
	GetByDebateFunc func(ctx context.Context, debateID uuid.UUID) (*domain.WinCondition, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			W   domain.WinCondition
		}
		GetByDebate []struct {
			Ctx      context.Context
			DebateID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByDebate sync.RWMutex
}

func (mock *winConditionRepoMock) Create(ctx context.Context, w domain.WinCondition) (*domain.WinCondition, error) {
	if mock.CreateFunc == nil {
		panic("winConditionRepoMock.CreateFunc: method is nil but winConditionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.WinCondition
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *winConditionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   domain.WinCondition
} {
	var calls []struct {
		Ctx context.Context
		W   domain.WinCondition
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *winConditionRepoMock) GetByDebate(ctx context.Context, debateID uuid.UUID) (*domain.WinCondition, error) {
	if mock.GetByDebateFunc == nil {
		panic("winConditionRepoMock.GetByDebateFunc: method is nil but winConditionRepo.GetByDebate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}{
		Ctx:      ctx,
		DebateID: debateID,
	}
	mock.lockGetByDebate.Lock()
	mock.calls.GetByDebate = append(mock.calls.GetByDebate, callInfo)
	mock.lockGetByDebate.Unlock()
	return mock.GetByDebateFunc(ctx, debateID)
}

func (mock *winConditionRepoMock) GetByDebateCalls() []struct {
	Ctx      context.Context
	DebateID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}
	mock.lockGetByDebate.RLock()
	calls = mock.calls.GetByDebate
	mock.lockGetByDebate.RUnlock()
	return calls
}
