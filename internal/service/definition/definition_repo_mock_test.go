package definition

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"sync"
	"time"
)

var _ definitionRepo = &definitionRepoMock{}

type definitionRepoMock struct {
	CountEndorsementsFunc func(ctx context.Context, debateID uuid.UUID) (map[uuid.UUID]int, error)
	CreateFunc            func(ctx context.Context, d domain.Definition) (*domain.Definition, error)
	EndorseFunc           func(ctx context.Context, definitionID uuid.UUID, userID uuid.UUID) (bool, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Definition, error)
	GetForUpdateFunc      func(ctx context.Context, id uuid.UUID) (*domain.Definition, error)
	GetPredecessorFunc    func(ctx context.Context, id uuid.UUID) (*domain.Definition, error)
	LinkSuccessorFunc     func(ctx context.Context, originalID uuid.UUID, successorID uuid.UUID, status domain.DefinitionStatus) (*domain.Definition, error)
	ListByDebateFunc      func(ctx context.Context, debateID uuid.UUID) ([]domain.Definition, error)
	UpdateStatusFunc      func(ctx context.Context, id uuid.UUID, status domain.DefinitionStatus, acceptedAt *time.Time) (*domain.Definition, error)

	calls struct {
		CountEndorsements []struct {
			Ctx      context.Context
			DebateID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			D   domain.Definition
		}
		Endorse []struct {
			Ctx          context.Context
			DefinitionID uuid.UUID
			UserID       uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetPredecessor []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		LinkSuccessor []struct {
			Ctx         context.Context
			OriginalID  uuid.UUID
			SuccessorID uuid.UUID
			Status      domain.DefinitionStatus
		}
		ListByDebate []struct {
			Ctx      context.Context
			DebateID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx        context.Context
			Id         uuid.UUID
			Status     domain.DefinitionStatus
			AcceptedAt *time.Time
		}
	}
	lockCountEndorsements sync.RWMutex
	lockCreate            sync.RWMutex
	lockEndorse           sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockGetPredecessor    sync.RWMutex
	lockLinkSuccessor     sync.RWMutex
	lockListByDebate      sync.RWMutex
	lockUpdateStatus      sync.RWMutex
}

func (mock *definitionRepoMock) CountEndorsements(ctx context.Context, debateID uuid.UUID) (map[uuid.UUID]int, error) {
	if mock.CountEndorsementsFunc == nil {
		panic("definitionRepoMock.CountEndorsementsFunc: method is nil but definitionRepo.CountEndorsements was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}{
		Ctx:      ctx,
		DebateID: debateID,
	}
	mock.lockCountEndorsements.Lock()
	mock.calls.CountEndorsements = append(mock.calls.CountEndorsements, callInfo)
	mock.lockCountEndorsements.Unlock()
	return mock.CountEndorsementsFunc(ctx, debateID)
}

func (mock *definitionRepoMock) CountEndorsementsCalls() []struct {
	Ctx      context.Context
	DebateID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}
	mock.lockCountEndorsements.RLock()
	calls = mock.calls.CountEndorsements
	mock.lockCountEndorsements.RUnlock()
	return calls
}

func (mock *definitionRepoMock) Create(ctx context.Context, d domain.Definition) (*domain.Definition, error) {
	if mock.CreateFunc == nil {
		panic("definitionRepoMock.CreateFunc: method is nil but definitionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Definition
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *definitionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.Definition
} {
	var calls []struct {
		Ctx context.Context
		D   domain.Definition
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *definitionRepoMock) Endorse(ctx context.Context, definitionID uuid.UUID, userID uuid.UUID) (bool, error) {
	if mock.EndorseFunc == nil {
		panic("definitionRepoMock.EndorseFunc: method is nil but definitionRepo.Endorse was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DefinitionID uuid.UUID
		UserID       uuid.UUID
	}{
		Ctx:          ctx,
		DefinitionID: definitionID,
		UserID:       userID,
	}
	mock.lockEndorse.Lock()
	mock.calls.Endorse = append(mock.calls.Endorse, callInfo)
	mock.lockEndorse.Unlock()
	return mock.EndorseFunc(ctx, definitionID, userID)
}

func (mock *definitionRepoMock) EndorseCalls() []struct {
	Ctx          context.Context
	DefinitionID uuid.UUID
	UserID       uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		DefinitionID uuid.UUID
		UserID       uuid.UUID
	}
	mock.lockEndorse.RLock()
	calls = mock.calls.Endorse
	mock.lockEndorse.RUnlock()
	return calls
}

func (mock *definitionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Definition, error) {
	if mock.GetByIDFunc == nil {
		panic("definitionRepoMock.GetByIDFunc: method is nil but definitionRepo.GetByID was just called")
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

func (mock *definitionRepoMock) GetByIDCalls() []struct {
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

func (mock *definitionRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Definition, error) {
	if mock.GetForUpdateFunc == nil {
		panic("definitionRepoMock.GetForUpdateFunc: method is nil but definitionRepo.GetForUpdate was just called")
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

func (mock *definitionRepoMock) GetForUpdateCalls() []struct {
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

func (mock *definitionRepoMock) GetPredecessor(ctx context.Context, id uuid.UUID) (*domain.Definition, error) {
	if mock.GetPredecessorFunc == nil {
		panic("definitionRepoMock.GetPredecessorFunc: method is nil but definitionRepo.GetPredecessor was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetPredecessor.Lock()
	mock.calls.GetPredecessor = append(mock.calls.GetPredecessor, callInfo)
	mock.lockGetPredecessor.Unlock()
	return mock.GetPredecessorFunc(ctx, id)
}

func (mock *definitionRepoMock) GetPredecessorCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetPredecessor.RLock()
	calls = mock.calls.GetPredecessor
	mock.lockGetPredecessor.RUnlock()
	return calls
}

func (mock *definitionRepoMock) LinkSuccessor(ctx context.Context, originalID uuid.UUID, successorID uuid.UUID, status domain.DefinitionStatus) (*domain.Definition, error) {
	if mock.LinkSuccessorFunc == nil {
		panic("definitionRepoMock.LinkSuccessorFunc: method is nil but definitionRepo.LinkSuccessor was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OriginalID  uuid.UUID
		SuccessorID uuid.UUID
		Status      domain.DefinitionStatus
	}{
		Ctx:         ctx,
		OriginalID:  originalID,
		SuccessorID: successorID,
		Status:      status,
	}
	mock.lockLinkSuccessor.Lock()
	mock.calls.LinkSuccessor = append(mock.calls.LinkSuccessor, callInfo)
	mock.lockLinkSuccessor.Unlock()
	return mock.LinkSuccessorFunc(ctx, originalID, successorID, status)
}

func (mock *definitionRepoMock) LinkSuccessorCalls() []struct {
	Ctx         context.Context
	OriginalID  uuid.UUID
	SuccessorID uuid.UUID
	Status      domain.DefinitionStatus
} {
	var calls []struct {
		Ctx         context.Context
		OriginalID  uuid.UUID
		SuccessorID uuid.UUID
		Status      domain.DefinitionStatus
	}
	mock.lockLinkSuccessor.RLock()
	calls = mock.calls.LinkSuccessor
	mock.lockLinkSuccessor.RUnlock()
	return calls
}

func (mock *definitionRepoMock) ListByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Definition, error) {
	if mock.ListByDebateFunc == nil {
		panic("definitionRepoMock.ListByDebateFunc: method is nil but definitionRepo.ListByDebate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}{
		Ctx:      ctx,
		DebateID: debateID,
	}
	mock.lockListByDebate.Lock()
	mock.calls.ListByDebate = append(mock.calls.ListByDebate, callInfo)
	mock.lockListByDebate.Unlock()
	return mock.ListByDebateFunc(ctx, debateID)
}

func (mock *definitionRepoMock) ListByDebateCalls() []struct {
	Ctx      context.Context
	DebateID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}
	mock.lockListByDebate.RLock()
	calls = mock.calls.ListByDebate
	mock.lockListByDebate.RUnlock()
	return calls
}

func (mock *definitionRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DefinitionStatus, acceptedAt *time.Time) (*domain.Definition, error) {
	if mock.UpdateStatusFunc == nil {
		panic("definitionRepoMock.UpdateStatusFunc: method is nil but definitionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Id         uuid.UUID
		Status     domain.DefinitionStatus
		AcceptedAt *time.Time
	}{
		Ctx:        ctx,
		Id:         id,
		Status:     status,
		AcceptedAt: acceptedAt,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, acceptedAt)
}

func (mock *definitionRepoMock) UpdateStatusCalls() []struct {
	Ctx        context.Context
	Id         uuid.UUID
	Status     domain.DefinitionStatus
	AcceptedAt *time.Time
} {
	var calls []struct {
		Ctx        context.Context
		Id         uuid.UUID
		Status     domain.DefinitionStatus
		AcceptedAt *time.Time
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
