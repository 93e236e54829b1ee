package debate

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"sync"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	ListArgumentVotesFunc         func(ctx context.Context, argumentID uuid.UUID) ([]domain.Vote, error)
	ListArgumentVotesByDebateFunc func(ctx context.Context, debateID uuid.UUID) ([]domain.Vote, error)
	UpsertArgumentVoteFunc        func(ctx context.Context, argumentID uuid.UUID, userID uuid.UUID, support bool) (domain.Vote, error)

	calls struct {
		ListArgumentVotes []struct {
			Ctx        context.Context
			ArgumentID uuid.UUID
		}
		ListArgumentVotesByDebate []struct {
			Ctx      context.Context
			DebateID uuid.UUID
		}
		UpsertArgumentVote []struct {
			Ctx        context.Context
			ArgumentID uuid.UUID
			UserID     uuid.UUID
			Support    bool
		}
	}
	lockListArgumentVotes         sync.RWMutex
	lockListArgumentVotesByDebate sync.RWMutex
	lockUpsertArgumentVote        sync.RWMutex
}

func (mock *voteRepoMock) ListArgumentVotes(ctx context.Context, argumentID uuid.UUID) ([]domain.Vote, error) {
	if mock.ListArgumentVotesFunc == nil {
		panic("voteRepoMock.ListArgumentVotesFunc: method is nil but voteRepo.ListArgumentVotes was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ArgumentID uuid.UUID
	}{
		Ctx:        ctx,
		ArgumentID: argumentID,
	}
	mock.lockListArgumentVotes.Lock()
	mock.calls.ListArgumentVotes = append(mock.calls.ListArgumentVotes, callInfo)
	mock.lockListArgumentVotes.Unlock()
	return mock.ListArgumentVotesFunc(ctx, argumentID)
}

func (mock *voteRepoMock) ListArgumentVotesCalls() []struct {
	Ctx        context.Context
	ArgumentID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		ArgumentID uuid.UUID
	}
	mock.lockListArgumentVotes.RLock()
	calls = mock.calls.ListArgumentVotes
	mock.lockListArgumentVotes.RUnlock()
	return calls
}

func (mock *voteRepoMock) ListArgumentVotesByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Vote, error) {
	if mock.ListArgumentVotesByDebateFunc == nil {
		panic("voteRepoMock.ListArgumentVotesByDebateFunc: method is nil but voteRepo.ListArgumentVotesByDebate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}{
		Ctx:      ctx,
		DebateID: debateID,
	}
	mock.lockListArgumentVotesByDebate.Lock()
	mock.calls.ListArgumentVotesByDebate = append(mock.calls.ListArgumentVotesByDebate, callInfo)
	mock.lockListArgumentVotesByDebate.Unlock()
	return mock.ListArgumentVotesByDebateFunc(ctx, debateID)
}

func (mock *voteRepoMock) ListArgumentVotesByDebateCalls() []struct {
	Ctx      context.Context
	DebateID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}
	mock.lockListArgumentVotesByDebate.RLock()
	calls = mock.calls.ListArgumentVotesByDebate
	mock.lockListArgumentVotesByDebate.RUnlock()
	return calls
}

func (mock *voteRepoMock) UpsertArgumentVote(ctx context.Context, argumentID uuid.UUID, userID uuid.UUID, support bool) (domain.Vote, error) {
	if mock.UpsertArgumentVoteFunc == nil {
		panic("voteRepoMock.UpsertArgumentVoteFunc: method is nil but voteRepo.UpsertArgumentVote was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ArgumentID uuid.UUID
		UserID     uuid.UUID
		Support    bool
	}{
		Ctx:        ctx,
		ArgumentID: argumentID,
		UserID:     userID,
		Support:    support,
	}
	mock.lockUpsertArgumentVote.Lock()
	mock.calls.UpsertArgumentVote = append(mock.calls.UpsertArgumentVote, callInfo)
	mock.lockUpsertArgumentVote.Unlock()
	return mock.UpsertArgumentVoteFunc(ctx, argumentID, userID, support)
}

func (mock *voteRepoMock) UpsertArgumentVoteCalls() []struct {
	Ctx        context.Context
	ArgumentID uuid.UUID
	UserID     uuid.UUID
	Support    bool
} {
	var calls []struct {
		Ctx        context.Context
		ArgumentID uuid.UUID
		UserID     uuid.UUID
		Support    bool
	}
	mock.lockUpsertArgumentVote.RLock()
	calls = mock.calls.UpsertArgumentVote
	mock.lockUpsertArgumentVote.RUnlock()
	return calls
}
