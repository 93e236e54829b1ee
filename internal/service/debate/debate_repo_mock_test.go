package debate

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"sync"
)

var _ debateRepo = &debateRepoMock{}

type debateRepoMock struct {
	CreateFunc       func(ctx context.Context, d domain.Debate) (*domain.Debate, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
	UpdateStateFunc  func(ctx context.Context, d domain.Debate) (*domain.Debate, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			D   domain.Debate
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdateState []struct {
			Ctx context.Context
			D   domain.Debate
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockUpdateState  sync.RWMutex
}

func (mock *debateRepoMock) Create(ctx context.Context, d domain.Debate) (*domain.Debate, error) {
	if mock.CreateFunc == nil {
		panic("debateRepoMock.CreateFunc: method is nil but debateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Debate
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *debateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.Debate
} {
	var calls []struct {
		Ctx context.Context
		D   domain.Debate
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *debateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Debate, error) {
	if mock.GetByIDFunc == nil {
		panic("debateRepoMock.GetByIDFunc: method is nil but debateRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *debateRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *debateRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Debate, error) {
	if mock.GetForUpdateFunc == nil {
		panic("debateRepoMock.GetForUpdateFunc: method is nil but debateRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *debateRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *debateRepoMock) UpdateState(ctx context.Context, d domain.Debate) (*domain.Debate, error) {
	if mock.UpdateStateFunc == nil {
		panic("debateRepoMock.UpdateStateFunc: method is nil but debateRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Debate
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, d)
}

func (mock *debateRepoMock) UpdateStateCalls() []struct {
	Ctx context.Context
	D   domain.Debate
} {
	var calls []struct {
		Ctx context.Context
		D   domain.Debate
	}
	mock.lockUpdateState.RLock()
	calls = mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}
