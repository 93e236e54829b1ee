package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/definition"
	"sync"
)

var _ definitionService = &definitionServiceMock{}

type definitionServiceMock struct {
	AcceptFunc          func(ctx context.Context, definitionID uuid.UUID) (*definition.AcceptResult, error)
	EndorseFunc         func(ctx context.Context, definitionID uuid.UUID) (*definition.EndorseResult, error)
	GetChainFunc        func(ctx context.Context, definitionID uuid.UUID) ([]domain.Definition, error)
	ListDefinitionsFunc func(ctx context.Context, debateID uuid.UUID) ([]domain.DefinitionSummary, error)
	SubmitFunc          func(ctx context.Context, input definition.SubmitInput) (*domain.Definition, error)
	SupersedeFunc       func(ctx context.Context, input definition.SupersedeInput) (*definition.SupersedeResult, error)
	VoteFunc            func(ctx context.Context, input definition.VoteInput) (*definition.VoteResult, error)

	calls struct {
		Accept []struct {
			Ctx          context.Context
			DefinitionID uuid.UUID
		}
		Endorse []struct {
			Ctx          context.Context
			DefinitionID uuid.UUID
		}
		GetChain []struct {
			Ctx          context.Context
			DefinitionID uuid.UUID
		}
		ListDefinitions []struct {
			Ctx      context.Context
			DebateID uuid.UUID
		}
		Submit []struct {
			Ctx   context.Context
			Input definition.SubmitInput
		}
		Supersede []struct {
			Ctx   context.Context
			Input definition.SupersedeInput
		}
		Vote []struct {
			Ctx   context.Context
			Input definition.VoteInput
		}
	}
	lockAccept          sync.RWMutex
	lockEndorse         sync.RWMutex
	lockGetChain        sync.RWMutex
	lockListDefinitions sync.RWMutex
	lockSubmit          sync.RWMutex
	lockSupersede       sync.RWMutex
	lockVote            sync.RWMutex
}

func (mock *definitionServiceMock) Accept(ctx context.Context, definitionID uuid.UUID) (*definition.AcceptResult, error) {
	if mock.AcceptFunc == nil {
		panic("definitionServiceMock.AcceptFunc: method is nil but definitionService.Accept was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DefinitionID uuid.UUID
	}{
		Ctx:          ctx,
		DefinitionID: definitionID,
	}
	mock.lockAccept.Lock()
	mock.calls.Accept = append(mock.calls.Accept, callInfo)
	mock.lockAccept.Unlock()
	return mock.AcceptFunc(ctx, definitionID)
}

func (mock *definitionServiceMock) AcceptCalls() []struct {
	Ctx          context.Context
	DefinitionID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		DefinitionID uuid.UUID
	}
	mock.lockAccept.RLock()
	calls = mock.calls.Accept
	mock.lockAccept.RUnlock()
	return calls
}

func (mock *definitionServiceMock) Endorse(ctx context.Context, definitionID uuid.UUID) (*definition.EndorseResult, error) {
	if mock.EndorseFunc == nil {
		panic("definitionServiceMock.EndorseFunc: method is nil but definitionService.Endorse was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DefinitionID uuid.UUID
	}{
		Ctx:          ctx,
		DefinitionID: definitionID,
	}
	mock.lockEndorse.Lock()
	mock.calls.Endorse = append(mock.calls.Endorse, callInfo)
	mock.lockEndorse.Unlock()
	return mock.EndorseFunc(ctx, definitionID)
}

func (mock *definitionServiceMock) EndorseCalls() []struct {
	Ctx          context.Context
	DefinitionID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		DefinitionID uuid.UUID
	}
	mock.lockEndorse.RLock()
	calls = mock.calls.Endorse
	mock.lockEndorse.RUnlock()
	return calls
}

func (mock *definitionServiceMock) GetChain(ctx context.Context, definitionID uuid.UUID) ([]domain.Definition, error) {
	if mock.GetChainFunc == nil {
		panic("definitionServiceMock.GetChainFunc: method is nil but definitionService.GetChain was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DefinitionID uuid.UUID
	}{
		Ctx:          ctx,
		DefinitionID: definitionID,
	}
	mock.lockGetChain.Lock()
	mock.calls.GetChain = append(mock.calls.GetChain, callInfo)
	mock.lockGetChain.Unlock()
	return mock.GetChainFunc(ctx, definitionID)
}

func (mock *definitionServiceMock) GetChainCalls() []struct {
	Ctx          context.Context
	DefinitionID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		DefinitionID uuid.UUID
	}
	mock.lockGetChain.RLock()
	calls = mock.calls.GetChain
	mock.lockGetChain.RUnlock()
	return calls
}

func (mock *definitionServiceMock) ListDefinitions(ctx context.Context, debateID uuid.UUID) ([]domain.DefinitionSummary, error) {
	if mock.ListDefinitionsFunc == nil {
		panic("definitionServiceMock.ListDefinitionsFunc: method is nil but definitionService.ListDefinitions was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}{
		Ctx:      ctx,
		DebateID: debateID,
	}
	mock.lockListDefinitions.Lock()
	mock.calls.ListDefinitions = append(mock.calls.ListDefinitions, callInfo)
	mock.lockListDefinitions.Unlock()
	return mock.ListDefinitionsFunc(ctx, debateID)
}

func (mock *definitionServiceMock) ListDefinitionsCalls() []struct {
	Ctx      context.Context
	DebateID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DebateID uuid.UUID
	}
	mock.lockListDefinitions.RLock()
	calls = mock.calls.ListDefinitions
	mock.lockListDefinitions.RUnlock()
	return calls
}

func (mock *definitionServiceMock) Submit(ctx context.Context, input definition.SubmitInput) (*domain.Definition, error) {
	if mock.SubmitFunc == nil {
		panic("definitionServiceMock.SubmitFunc: method is nil but definitionService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input definition.SubmitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *definitionServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input definition.SubmitInput
} {
	var calls []struct {
		Ctx   context.Context
		Input definition.SubmitInput
	}
	mock.lockSubmit.RLock()
	calls = mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *definitionServiceMock) Supersede(ctx context.Context, input definition.SupersedeInput) (*definition.SupersedeResult, error) {
	if mock.SupersedeFunc == nil {
		panic("definitionServiceMock.SupersedeFunc: method is nil but definitionService.Supersede was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input definition.SupersedeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSupersede.Lock()
	mock.calls.Supersede = append(mock.calls.Supersede, callInfo)
	mock.lockSupersede.Unlock()
	return mock.SupersedeFunc(ctx, input)
}

func (mock *definitionServiceMock) SupersedeCalls() []struct {
	Ctx   context.Context
	Input definition.SupersedeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input definition.SupersedeInput
	}
	mock.lockSupersede.RLock()
	calls = mock.calls.Supersede
	mock.lockSupersede.RUnlock()
	return calls
}

func (mock *definitionServiceMock) Vote(ctx context.Context, input definition.VoteInput) (*definition.VoteResult, error) {
	if mock.VoteFunc == nil {
		panic("definitionServiceMock.VoteFunc: method is nil but definitionService.Vote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input definition.VoteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockVote.Lock()
	mock.calls.Vote = append(mock.calls.Vote, callInfo)
	mock.lockVote.Unlock()
	return mock.VoteFunc(ctx, input)
}

func (mock *definitionServiceMock) VoteCalls() []struct {
	Ctx   context.Context
	Input definition.VoteInput
} {
	var calls []struct {
		Ctx   context.Context
		Input definition.VoteInput
	}
	mock.lockVote.RLock()
	calls = mock.calls.Vote
	mock.lockVote.RUnlock()
	return calls
}
