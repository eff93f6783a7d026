package deposit

import (
	"context"
	"sync"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ workRepo = &workRepoMock{}

type workRepoMock struct {
	SaveFunc func(ctx context.Context, w *domain.Work) error

	calls struct {
		Save []struct {
			Ctx context.Context
			W   *domain.Work
		}
	}
	lockSave sync.RWMutex
}

func (mock *workRepoMock) Save(ctx context.Context, w *domain.Work) error {
	if mock.SaveFunc == nil {
		panic("workRepoMock.SaveFunc: method is nil but workRepo.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		Ctx context.Context
		W   *domain.Work
	}{Ctx: ctx, W: w})
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, w)
}

func (mock *workRepoMock) SaveCalls() []struct {
	Ctx context.Context
	W   *domain.Work
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
