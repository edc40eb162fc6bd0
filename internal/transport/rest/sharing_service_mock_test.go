package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/sharing"
)

var _ sharingService = &sharingServiceMock{}

type sharingServiceMock struct {
	CreateGrantFunc    func(ctx context.Context, input sharing.CreateGrantInput) (*sharing.CreateGrantResult, error)
	ListForPartnerFunc func(ctx context.Context) ([]domain.GrantView, error)
	ListForSharerFunc  func(ctx context.Context) ([]domain.GrantView, error)
	ResolveByTokenFunc func(ctx context.Context, token string) (*domain.SharedPayload, error)
	RevokeFunc         func(ctx context.Context, grantID uuid.UUID) error
	UpdateOptionsFunc  func(ctx context.Context, grantID uuid.UUID, opts domain.SharedOptions) (*domain.SharingGrant, error)

	calls struct {
		CreateGrant []struct {
			Ctx   context.Context
			Input sharing.CreateGrantInput
		}
		ListForPartner []struct {
			Ctx context.Context
		}
		ListForSharer []struct {
			Ctx context.Context
		}
		ResolveByToken []struct {
			Ctx   context.Context
			Token string
		}
		Revoke []struct {
			Ctx     context.Context
			GrantID uuid.UUID
		}
		UpdateOptions []struct {
			Ctx     context.Context
			GrantID uuid.UUID
			Opts    domain.SharedOptions
		}
	}
	lockCreateGrant    sync.RWMutex
	lockListForPartner sync.RWMutex
	lockListForSharer  sync.RWMutex
	lockResolveByToken sync.RWMutex
	lockRevoke         sync.RWMutex
	lockUpdateOptions  sync.RWMutex
}

func (mock *sharingServiceMock) CreateGrant(ctx context.Context, input sharing.CreateGrantInput) (*sharing.CreateGrantResult, error) {
	if mock.CreateGrantFunc == nil {
		panic("sharingServiceMock.CreateGrantFunc: method is nil but sharingService.CreateGrant was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input sharing.CreateGrantInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateGrant.Lock()
	mock.calls.CreateGrant = append(mock.calls.CreateGrant, callInfo)
	mock.lockCreateGrant.Unlock()
	return mock.CreateGrantFunc(ctx, input)
}

func (mock *sharingServiceMock) CreateGrantCalls() []struct {
	Ctx   context.Context
	Input sharing.CreateGrantInput
} {
	mock.lockCreateGrant.RLock()
	calls := mock.calls.CreateGrant
	mock.lockCreateGrant.RUnlock()
	return calls
}

func (mock *sharingServiceMock) ListForPartner(ctx context.Context) ([]domain.GrantView, error) {
	if mock.ListForPartnerFunc == nil {
		panic("sharingServiceMock.ListForPartnerFunc: method is nil but sharingService.ListForPartner was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListForPartner.Lock()
	mock.calls.ListForPartner = append(mock.calls.ListForPartner, callInfo)
	mock.lockListForPartner.Unlock()
	return mock.ListForPartnerFunc(ctx)
}

func (mock *sharingServiceMock) ListForPartnerCalls() []struct {
	Ctx context.Context
} {
	mock.lockListForPartner.RLock()
	calls := mock.calls.ListForPartner
	mock.lockListForPartner.RUnlock()
	return calls
}

func (mock *sharingServiceMock) ListForSharer(ctx context.Context) ([]domain.GrantView, error) {
	if mock.ListForSharerFunc == nil {
		panic("sharingServiceMock.ListForSharerFunc: method is nil but sharingService.ListForSharer was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListForSharer.Lock()
	mock.calls.ListForSharer = append(mock.calls.ListForSharer, callInfo)
	mock.lockListForSharer.Unlock()
	return mock.ListForSharerFunc(ctx)
}

func (mock *sharingServiceMock) ListForSharerCalls() []struct {
	Ctx context.Context
} {
	mock.lockListForSharer.RLock()
	calls := mock.calls.ListForSharer
	mock.lockListForSharer.RUnlock()
	return calls
}

func (mock *sharingServiceMock) ResolveByToken(ctx context.Context, token string) (*domain.SharedPayload, error) {
	if mock.ResolveByTokenFunc == nil {
		panic("sharingServiceMock.ResolveByTokenFunc: method is nil but sharingService.ResolveByToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockResolveByToken.Lock()
	mock.calls.ResolveByToken = append(mock.calls.ResolveByToken, callInfo)
	mock.lockResolveByToken.Unlock()
	return mock.ResolveByTokenFunc(ctx, token)
}

func (mock *sharingServiceMock) ResolveByTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockResolveByToken.RLock()
	calls := mock.calls.ResolveByToken
	mock.lockResolveByToken.RUnlock()
	return calls
}

func (mock *sharingServiceMock) Revoke(ctx context.Context, grantID uuid.UUID) error {
	if mock.RevokeFunc == nil {
		panic("sharingServiceMock.RevokeFunc: method is nil but sharingService.Revoke was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GrantID uuid.UUID
	}{Ctx: ctx, GrantID: grantID}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, grantID)
}

func (mock *sharingServiceMock) RevokeCalls() []struct {
	Ctx     context.Context
	GrantID uuid.UUID
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}

func (mock *sharingServiceMock) UpdateOptions(ctx context.Context, grantID uuid.UUID, opts domain.SharedOptions) (*domain.SharingGrant, error) {
	if mock.UpdateOptionsFunc == nil {
		panic("sharingServiceMock.UpdateOptionsFunc: method is nil but sharingService.UpdateOptions was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GrantID uuid.UUID
		Opts    domain.SharedOptions
	}{Ctx: ctx, GrantID: grantID, Opts: opts}
	mock.lockUpdateOptions.Lock()
	mock.calls.UpdateOptions = append(mock.calls.UpdateOptions, callInfo)
	mock.lockUpdateOptions.Unlock()
	return mock.UpdateOptionsFunc(ctx, grantID, opts)
}

func (mock *sharingServiceMock) UpdateOptionsCalls() []struct {
	Ctx     context.Context
	GrantID uuid.UUID
	Opts    domain.SharedOptions
} {
	mock.lockUpdateOptions.RLock()
	calls := mock.calls.UpdateOptions
	mock.lockUpdateOptions.RUnlock()
	return calls
}
