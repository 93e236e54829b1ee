package debate

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"sync"
)

var _ argumentRepo = &argumentRepoMock{}

type argumentRepoMock struct {
	CreateSubmissionFunc        func(ctx context.Context, s domain.ArgumentSubmission) ([]domain.Argument, error)
	FilterInDebateFunc          func(ctx context.Context, debateID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	GetByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Argument, error)
	HasSubmittedFunc            func(ctx context.Context, participantID uuid.UUID, turn int) (bool, error)
	ListByDebateFunc            func(ctx context.Context, debateID uuid.UUID) ([]domain.Argument, error)
	SubmittedParticipantIDsFunc func(ctx context.Context, debateID uuid.UUID, turn int, participantIDs []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		CreateSubmission []struct {
			Ctx context.Context
			S   domain.ArgumentSubmission
		}
		FilterInDebate []struct {
			Ctx      context.Context
			DebateID uuid.UUID
			Ids      []uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		HasSubmitted []struct {
			Ctx           context.Context
			ParticipantID uuid.UUID
			Turn          int
		}
		ListByDebate []struct {
			Ctx      context.Context
			DebateID uuid.UUID
		}
		SubmittedParticipantIDs []struct {
			Ctx            context.Context
			DebateID       uuid.UUID
			Turn           int
			ParticipantIDs []uuid.UUID
		}
	}
	lockCreateSubmission        sync.RWMutex
	lockFilterInDebate          sync.RWMutex
	lockGetByID                 sync.RWMutex
	lockHasSubmitted            sync.RWMutex
	lockListByDebate            sync.RWMutex
	lockSubmittedParticipantIDs sync.RWMutex
}

func (mock *argumentRepoMock) CreateSubmission(ctx context.Context, s domain.ArgumentSubmission) ([]domain.Argument, error) {
	if mock.CreateSubmissionFunc == nil {
		panic("argumentRepoMock.CreateSubmissionFunc: method is nil but argumentRepo.CreateSubmission was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.ArgumentSubmission
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreateSubmission.Lock()
	mock.calls.CreateSubmission = append(mock.calls.CreateSubmission, callInfo)
	mock.lockCreateSubmission.Unlock()
	return mock.CreateSubmissionFunc(ctx, s)
}

func (mock *argumentRepoMock) CreateSubmissionCalls() []struct {
	Ctx context.Context
	S   domain.ArgumentSubmission
} {
	var calls []struct {
		Ctx context.Context
		S   domain.ArgumentSubmission
	}
	mock.lockCreateSubmission.RLock()
	calls = mock.calls.CreateSubmission
	mock.lockCreateSubmission.RUnlock()
	return calls
}

func (mock *argumentRepoMock) FilterInDebate(ctx context.Context, debateID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.FilterInDebateFunc == nil {
		panic("argumentRepoMock.FilterInDebateFunc: method is nil but argumentRepo.FilterInDebate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DebateID uuid.UUID
		Ids      []uuid.UUID
	}{
		Ctx:      ctx,
		DebateID: debateID,
		Ids:      ids,
	}
	mock.lockFilterInDebate.Lock()
	mock.calls.FilterInDebate = append(mock.calls.FilterInDebate, callInfo)
	mock.lockFilterInDebate.Unlock()
	return mock.FilterInDebateFunc(ctx, debateID, ids)
}

func (mock *argumentRepoMock) FilterInDebateCalls() []struct {
	Ctx      context.Context
	DebateID uuid.UUID
	Ids      []uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DebateID uuid.UUID
		Ids      []uuid.UUID
	}
	mock.lockFilterInDebate.RLock()
	calls = mock.calls.FilterInDebate
	mock.lockFilterInDebate.RUnlock()
	return calls
}

func (mock *argumentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Argument, error) {
	if mock.GetByIDFunc == nil {
		panic("argumentRepoMock.GetByIDFunc: method is nil but argumentRepo.GetByID was just called")
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

func (mock *argumentRepoMock) GetByIDCalls() []struct {
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

func (mock *argumentRepoMock) HasSubmitted(ctx context.Context, participantID uuid.UUID, turn int) (bool, error) {
	if mock.HasSubmittedFunc == nil {
		panic("argumentRepoMock.HasSubmittedFunc: method is nil but argumentRepo.HasSubmitted was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ParticipantID uuid.UUID
		Turn          int
	}{
		Ctx:           ctx,
		ParticipantID: participantID,
		Turn:          turn,
	}
	mock.lockHasSubmitted.Lock()
	mock.calls.HasSubmitted = append(mock.calls.HasSubmitted, callInfo)
	mock.lockHasSubmitted.Unlock()
	return mock.HasSubmittedFunc(ctx, participantID, turn)
}

func (mock *argumentRepoMock) HasSubmittedCalls() []struct {
	Ctx           context.Context
	ParticipantID uuid.UUID
	Turn          int
} {
	var calls []struct {
		Ctx           context.Context
		ParticipantID uuid.UUID
		Turn          int
	}
	mock.lockHasSubmitted.RLock()
	calls = mock.calls.HasSubmitted
	mock.lockHasSubmitted.RUnlock()
	return calls
}

func (mock *argumentRepoMock) ListByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Argument, error) {
	if mock.ListByDebateFunc == nil {
		panic("argumentRepoMock.ListByDebateFunc: method is nil but argumentRepo.ListByDebate was just called")
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

func (mock *argumentRepoMock) ListByDebateCalls() []struct {
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

func (mock *argumentRepoMock) SubmittedParticipantIDs(ctx context.Context, debateID uuid.UUID, turn int, participantIDs []uuid.UUID) ([]uuid.UUID, error) {
	if mock.SubmittedParticipantIDsFunc == nil {
		panic("argumentRepoMock.SubmittedParticipantIDsFunc: method is nil but argumentRepo.SubmittedParticipantIDs was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		DebateID       uuid.UUID
		Turn           int
		ParticipantIDs []uuid.UUID
	}{
		Ctx:            ctx,
		DebateID:       debateID,
		Turn:           turn,
		ParticipantIDs: participantIDs,
	}
	mock.lockSubmittedParticipantIDs.Lock()
	mock.calls.SubmittedParticipantIDs = append(mock.calls.SubmittedParticipantIDs, callInfo)
	mock.lockSubmittedParticipantIDs.Unlock()
	return mock.SubmittedParticipantIDsFunc(ctx, debateID, turn, participantIDs)
}

func (mock *argumentRepoMock) SubmittedParticipantIDsCalls() []struct {
	Ctx            context.Context
	DebateID       uuid.UUID
	Turn           int
	ParticipantIDs []uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		DebateID       uuid.UUID
		Turn           int
		ParticipantIDs []uuid.UUID
	}
	mock.lockSubmittedParticipantIDs.RLock()
	calls = mock.calls.SubmittedParticipantIDs
	mock.lockSubmittedParticipantIDs.RUnlock()
	return calls
}
