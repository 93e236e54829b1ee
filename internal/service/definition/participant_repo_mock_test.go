package definition

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"sync"
)

var _ participantRepo = &participantRepoMock{}

type participantRepoMock struct {
	GetActiveByUserFunc func(ctx context.Context, debateID uuid.UUID, userID uuid.UUID) (*domain.Participant, error)

	calls struct {
		GetActiveByUser []struct {
			Ctx      context.Context
			DebateID uuid.UUID
			UserID   uuid.UUID
		}
	}
	lockGetActiveByUser sync.RWMutex
}

func (mock *participantRepoMock) GetActiveByUser(ctx context.Context, debateID uuid.UUID, userID uuid.UUID) (*domain.Participant, error) {
	if mock.GetActiveByUserFunc == nil {
		panic("participantRepoMock.GetActiveByUserFunc: method is nil but participantRepo.GetActiveByUser was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DebateID uuid.UUID
		UserID   uuid.UUID
	}{
		Ctx:      ctx,
		DebateID: debateID,
		UserID:   userID,
	}
	mock.lockGetActiveByUser.Lock()
	mock.calls.GetActiveByUser = append(mock.calls.GetActiveByUser, callInfo)
	mock.lockGetActiveByUser.Unlock()
	return mock.GetActiveByUserFunc(ctx, debateID, userID)
}

func (mock *participantRepoMock) GetActiveByUserCalls() []struct {
	Ctx      context.Context
	DebateID uuid.UUID
	UserID   uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DebateID uuid.UUID
		UserID   uuid.UUID
	}
	mock.lockGetActiveByUser.RLock()
	calls = mock.calls.GetActiveByUser
	mock.lockGetActiveByUser.RUnlock()
	return calls
}
