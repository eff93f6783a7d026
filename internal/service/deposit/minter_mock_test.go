package deposit

import (
	"context"
	"sync"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ minter = &minterMock{}

type minterMock struct {
	MintFunc func(ctx context.Context, w *domain.Work) (int, string)

	calls struct {
		Mint []struct {
			Ctx context.Context
			W   *domain.Work
		}
	}
	lockMint sync.RWMutex
}

func (mock *minterMock) Mint(ctx context.Context, w *domain.Work) (int, string) {
	if mock.MintFunc == nil {
		panic("minterMock.MintFunc: method is nil but minter.Mint was just called")
	}
	mock.lockMint.Lock()
	mock.calls.Mint = append(mock.calls.Mint, struct {
		Ctx context.Context
		W   *domain.Work
	}{Ctx: ctx, W: w})
	mock.lockMint.Unlock()
	return mock.MintFunc(ctx, w)
}

func (mock *minterMock) MintCalls() []struct {
	Ctx context.Context
	W   *domain.Work
} {
	mock.lockMint.RLock()
	calls := mock.calls.Mint
	mock.lockMint.RUnlock()
	return calls
}
