package harvest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/termtrans-backend/internal/adapter/provider/sparql"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/task"
)

var _ sparqlClient = &sparqlClientMock{}

type sparqlClientMock struct {
	SelectFunc func(ctx context.Context, endpoint string, query string) (*sparql.Results, error)

	calls struct {
		Select []struct {
			Ctx      context.Context
			Endpoint string
			Query    string
		}
	}
	lockSelect sync.RWMutex
}

func (mock *sparqlClientMock) Select(ctx context.Context, endpoint string, query string) (*sparql.Results, error) {
	if mock.SelectFunc == nil {
		panic("sparqlClientMock.SelectFunc: method is nil but sparqlClient.Select was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Endpoint string
		Query    string
	}{Ctx: ctx, Endpoint: endpoint, Query: query}
	mock.lockSelect.Lock()
	mock.calls.Select = append(mock.calls.Select, callInfo)
	mock.lockSelect.Unlock()
	return mock.SelectFunc(ctx, endpoint, query)
}

func (mock *sparqlClientMock) SelectCalls() []struct {
	Ctx      context.Context
	Endpoint string
	Query    string
} {
	mock.lockSelect.RLock()
	calls := mock.calls.Select
	mock.lockSelect.RUnlock()
	return calls
}

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	CreateSourceFunc     func(ctx context.Context, s domain.Source) (*domain.Source, error)
	GetSourceFunc        func(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	ListSourcesFunc      func(ctx context.Context) ([]domain.Source, error)
	MarkSourceSyncedFunc func(ctx context.Context, id uuid.UUID) error
	UpsertTermFunc       func(ctx context.Context, uri string, sourceID uuid.UUID) (uuid.UUID, error)
	InsertFieldFunc      func(ctx context.Context, f domain.TermField) (bool, error)

	calls struct {
		CreateSource []struct {
			Ctx context.Context
			S   domain.Source
		}
		GetSource []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListSources []struct {
			Ctx context.Context
		}
		MarkSourceSynced []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpsertTerm []struct {
			Ctx      context.Context
			Uri      string
			SourceID uuid.UUID
		}
		InsertField []struct {
			Ctx context.Context
			F   domain.TermField
		}
	}
	lockCreateSource     sync.RWMutex
	lockGetSource        sync.RWMutex
	lockListSources      sync.RWMutex
	lockMarkSourceSynced sync.RWMutex
	lockUpsertTerm       sync.RWMutex
	lockInsertField      sync.RWMutex
}

func (mock *termRepoMock) CreateSource(ctx context.Context, s domain.Source) (*domain.Source, error) {
	if mock.CreateSourceFunc == nil {
		panic("termRepoMock.CreateSourceFunc: method is nil but termRepo.CreateSource was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Source
	}{Ctx: ctx, S: s}
	mock.lockCreateSource.Lock()
	mock.calls.CreateSource = append(mock.calls.CreateSource, callInfo)
	mock.lockCreateSource.Unlock()
	return mock.CreateSourceFunc(ctx, s)
}

func (mock *termRepoMock) CreateSourceCalls() []struct {
	Ctx context.Context
	S   domain.Source
} {
	mock.lockCreateSource.RLock()
	calls := mock.calls.CreateSource
	mock.lockCreateSource.RUnlock()
	return calls
}

func (mock *termRepoMock) GetSource(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	if mock.GetSourceFunc == nil {
		panic("termRepoMock.GetSourceFunc: method is nil but termRepo.GetSource was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetSource.Lock()
	mock.calls.GetSource = append(mock.calls.GetSource, callInfo)
	mock.lockGetSource.Unlock()
	return mock.GetSourceFunc(ctx, id)
}

func (mock *termRepoMock) GetSourceCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetSource.RLock()
	calls := mock.calls.GetSource
	mock.lockGetSource.RUnlock()
	return calls
}

func (mock *termRepoMock) ListSources(ctx context.Context) ([]domain.Source, error) {
	if mock.ListSourcesFunc == nil {
		panic("termRepoMock.ListSourcesFunc: method is nil but termRepo.ListSources was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListSources.Lock()
	mock.calls.ListSources = append(mock.calls.ListSources, callInfo)
	mock.lockListSources.Unlock()
	return mock.ListSourcesFunc(ctx)
}

func (mock *termRepoMock) ListSourcesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSources.RLock()
	calls := mock.calls.ListSources
	mock.lockListSources.RUnlock()
	return calls
}

func (mock *termRepoMock) MarkSourceSynced(ctx context.Context, id uuid.UUID) error {
	if mock.MarkSourceSyncedFunc == nil {
		panic("termRepoMock.MarkSourceSyncedFunc: method is nil but termRepo.MarkSourceSynced was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockMarkSourceSynced.Lock()
	mock.calls.MarkSourceSynced = append(mock.calls.MarkSourceSynced, callInfo)
	mock.lockMarkSourceSynced.Unlock()
	return mock.MarkSourceSyncedFunc(ctx, id)
}

func (mock *termRepoMock) MarkSourceSyncedCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockMarkSourceSynced.RLock()
	calls := mock.calls.MarkSourceSynced
	mock.lockMarkSourceSynced.RUnlock()
	return calls
}

func (mock *termRepoMock) UpsertTerm(ctx context.Context, uri string, sourceID uuid.UUID) (uuid.UUID, error) {
	if mock.UpsertTermFunc == nil {
		panic("termRepoMock.UpsertTermFunc: method is nil but termRepo.UpsertTerm was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Uri      string
		SourceID uuid.UUID
	}{Ctx: ctx, Uri: uri, SourceID: sourceID}
	mock.lockUpsertTerm.Lock()
	mock.calls.UpsertTerm = append(mock.calls.UpsertTerm, callInfo)
	mock.lockUpsertTerm.Unlock()
	return mock.UpsertTermFunc(ctx, uri, sourceID)
}

func (mock *termRepoMock) UpsertTermCalls() []struct {
	Ctx      context.Context
	Uri      string
	SourceID uuid.UUID
} {
	mock.lockUpsertTerm.RLock()
	calls := mock.calls.UpsertTerm
	mock.lockUpsertTerm.RUnlock()
	return calls
}

func (mock *termRepoMock) InsertField(ctx context.Context, f domain.TermField) (bool, error) {
	if mock.InsertFieldFunc == nil {
		panic("termRepoMock.InsertFieldFunc: method is nil but termRepo.InsertField was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TermField
	}{Ctx: ctx, F: f}
	mock.lockInsertField.Lock()
	mock.calls.InsertField = append(mock.calls.InsertField, callInfo)
	mock.lockInsertField.Unlock()
	return mock.InsertFieldFunc(ctx, f)
}

func (mock *termRepoMock) InsertFieldCalls() []struct {
	Ctx context.Context
	F   domain.TermField
} {
	mock.lockInsertField.RLock()
	calls := mock.calls.InsertField
	mock.lockInsertField.RUnlock()
	return calls
}

var _ taskLauncher = &taskLauncherMock{}

type taskLauncherMock struct {
	LaunchFunc func(ctx context.Context, typ domain.TaskType, sourceID *uuid.UUID, createdBy *uuid.UUID, fn task.Func) (*domain.Task, error)

	calls struct {
		Launch []struct {
			Ctx       context.Context
			Typ       domain.TaskType
			SourceID  *uuid.UUID
			CreatedBy *uuid.UUID
			Fn        task.Func
		}
	}
	lockLaunch sync.RWMutex
}

func (mock *taskLauncherMock) Launch(ctx context.Context, typ domain.TaskType, sourceID *uuid.UUID, createdBy *uuid.UUID, fn task.Func) (*domain.Task, error) {
	if mock.LaunchFunc == nil {
		panic("taskLauncherMock.LaunchFunc: method is nil but taskLauncher.Launch was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Typ       domain.TaskType
		SourceID  *uuid.UUID
		CreatedBy *uuid.UUID
		Fn        task.Func
	}{Ctx: ctx, Typ: typ, SourceID: sourceID, CreatedBy: createdBy, Fn: fn}
	mock.lockLaunch.Lock()
	mock.calls.Launch = append(mock.calls.Launch, callInfo)
	mock.lockLaunch.Unlock()
	return mock.LaunchFunc(ctx, typ, sourceID, createdBy, fn)
}

func (mock *taskLauncherMock) LaunchCalls() []struct {
	Ctx       context.Context
	Typ       domain.TaskType
	SourceID  *uuid.UUID
	CreatedBy *uuid.UUID
	Fn        task.Func
} {
	mock.lockLaunch.RLock()
	calls := mock.calls.Launch
	mock.lockLaunch.RUnlock()
	return calls
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	LogFunc func(ctx context.Context, a domain.Activity) error

	calls struct {
		Log []struct {
			Ctx context.Context
			A   domain.Activity
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityRepoMock) Log(ctx context.Context, a domain.Activity) error {
	if mock.LogFunc == nil {
		panic("activityRepoMock.LogFunc: method is nil but activityRepo.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Activity
	}{Ctx: ctx, A: a}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, a)
}

func (mock *activityRepoMock) LogCalls() []struct {
	Ctx context.Context
	A   domain.Activity
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
