package appeal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

var _ appealRepo = &appealRepoMock{}

type appealRepoMock struct {
	CreateFunc              func(ctx context.Context, translationID uuid.UUID, openedBy uuid.UUID, resolution string) (*domain.Appeal, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Appeal, error)
	ListFunc                func(ctx context.Context, f domain.AppealFilter) ([]domain.Appeal, error)
	UpdateFunc              func(ctx context.Context, id uuid.UUID, status domain.AppealStatus, resolution *string) (*domain.Appeal, error)
	CreateMessageFunc       func(ctx context.Context, appealID uuid.UUID, authorID uuid.UUID, message string) (*domain.AppealMessage, error)
	GetMessageFunc          func(ctx context.Context, id uuid.UUID) (*domain.AppealMessage, error)
	ListMessagesFunc        func(ctx context.Context, appealID uuid.UUID) ([]domain.AppealMessage, error)
	CountMessagesWithinFunc func(ctx context.Context, appealID uuid.UUID, authorID uuid.UUID, window time.Duration) (int, error)
	CreateReportFunc        func(ctx context.Context, messageID uuid.UUID, reporterID uuid.UUID, reason string) (*domain.MessageReport, error)
	ListReportsFunc         func(ctx context.Context, status domain.ReportStatus, limit int, offset int) ([]domain.MessageReport, error)
	ResolveReportFunc       func(ctx context.Context, id uuid.UUID, status domain.ReportStatus, reviewerID uuid.UUID, notes *string) (*domain.MessageReport, error)

	calls struct {
		Create []struct {
			Ctx           context.Context
			TranslationID uuid.UUID
			OpenedBy      uuid.UUID
			Resolution    string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.AppealFilter
		}
		Update []struct {
			Ctx        context.Context
			Id         uuid.UUID
			Status     domain.AppealStatus
			Resolution *string
		}
		CreateMessage []struct {
			Ctx      context.Context
			AppealID uuid.UUID
			AuthorID uuid.UUID
			Message  string
		}
		GetMessage []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListMessages []struct {
			Ctx      context.Context
			AppealID uuid.UUID
		}
		CountMessagesWithin []struct {
			Ctx      context.Context
			AppealID uuid.UUID
			AuthorID uuid.UUID
			Window   time.Duration
		}
		CreateReport []struct {
			Ctx        context.Context
			MessageID  uuid.UUID
			ReporterID uuid.UUID
			Reason     string
		}
		ListReports []struct {
			Ctx    context.Context
			Status domain.ReportStatus
			Limit  int
			Offset int
		}
		ResolveReport []struct {
			Ctx        context.Context
			Id         uuid.UUID
			Status     domain.ReportStatus
			ReviewerID uuid.UUID
			Notes      *string
		}
	}
	lockCreate              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockList                sync.RWMutex
	lockUpdate              sync.RWMutex
	lockCreateMessage       sync.RWMutex
	lockGetMessage          sync.RWMutex
	lockListMessages        sync.RWMutex
	lockCountMessagesWithin sync.RWMutex
	lockCreateReport        sync.RWMutex
	lockListReports         sync.RWMutex
	lockResolveReport       sync.RWMutex
}

func (mock *appealRepoMock) Create(ctx context.Context, translationID uuid.UUID, openedBy uuid.UUID, resolution string) (*domain.Appeal, error) {
	if mock.CreateFunc == nil {
		panic("appealRepoMock.CreateFunc: method is nil but appealRepo.Create was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		TranslationID uuid.UUID
		OpenedBy      uuid.UUID
		Resolution    string
	}{Ctx: ctx, TranslationID: translationID, OpenedBy: openedBy, Resolution: resolution}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, translationID, openedBy, resolution)
}

func (mock *appealRepoMock) CreateCalls() []struct {
	Ctx           context.Context
	TranslationID uuid.UUID
	OpenedBy      uuid.UUID
	Resolution    string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *appealRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appeal, error) {
	if mock.GetByIDFunc == nil {
		panic("appealRepoMock.GetByIDFunc: method is nil but appealRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *appealRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *appealRepoMock) List(ctx context.Context, f domain.AppealFilter) ([]domain.Appeal, error) {
	if mock.ListFunc == nil {
		panic("appealRepoMock.ListFunc: method is nil but appealRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AppealFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *appealRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AppealFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *appealRepoMock) Update(ctx context.Context, id uuid.UUID, status domain.AppealStatus, resolution *string) (*domain.Appeal, error) {
	if mock.UpdateFunc == nil {
		panic("appealRepoMock.UpdateFunc: method is nil but appealRepo.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Id         uuid.UUID
		Status     domain.AppealStatus
		Resolution *string
	}{Ctx: ctx, Id: id, Status: status, Resolution: resolution}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, status, resolution)
}

func (mock *appealRepoMock) UpdateCalls() []struct {
	Ctx        context.Context
	Id         uuid.UUID
	Status     domain.AppealStatus
	Resolution *string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *appealRepoMock) CreateMessage(ctx context.Context, appealID uuid.UUID, authorID uuid.UUID, message string) (*domain.AppealMessage, error) {
	if mock.CreateMessageFunc == nil {
		panic("appealRepoMock.CreateMessageFunc: method is nil but appealRepo.CreateMessage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AppealID uuid.UUID
		AuthorID uuid.UUID
		Message  string
	}{Ctx: ctx, AppealID: appealID, AuthorID: authorID, Message: message}
	mock.lockCreateMessage.Lock()
	mock.calls.CreateMessage = append(mock.calls.CreateMessage, callInfo)
	mock.lockCreateMessage.Unlock()
	return mock.CreateMessageFunc(ctx, appealID, authorID, message)
}

func (mock *appealRepoMock) CreateMessageCalls() []struct {
	Ctx      context.Context
	AppealID uuid.UUID
	AuthorID uuid.UUID
	Message  string
} {
	mock.lockCreateMessage.RLock()
	calls := mock.calls.CreateMessage
	mock.lockCreateMessage.RUnlock()
	return calls
}

func (mock *appealRepoMock) GetMessage(ctx context.Context, id uuid.UUID) (*domain.AppealMessage, error) {
	if mock.GetMessageFunc == nil {
		panic("appealRepoMock.GetMessageFunc: method is nil but appealRepo.GetMessage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetMessage.Lock()
	mock.calls.GetMessage = append(mock.calls.GetMessage, callInfo)
	mock.lockGetMessage.Unlock()
	return mock.GetMessageFunc(ctx, id)
}

func (mock *appealRepoMock) GetMessageCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetMessage.RLock()
	calls := mock.calls.GetMessage
	mock.lockGetMessage.RUnlock()
	return calls
}

func (mock *appealRepoMock) ListMessages(ctx context.Context, appealID uuid.UUID) ([]domain.AppealMessage, error) {
	if mock.ListMessagesFunc == nil {
		panic("appealRepoMock.ListMessagesFunc: method is nil but appealRepo.ListMessages was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AppealID uuid.UUID
	}{Ctx: ctx, AppealID: appealID}
	mock.lockListMessages.Lock()
	mock.calls.ListMessages = append(mock.calls.ListMessages, callInfo)
	mock.lockListMessages.Unlock()
	return mock.ListMessagesFunc(ctx, appealID)
}

func (mock *appealRepoMock) ListMessagesCalls() []struct {
	Ctx      context.Context
	AppealID uuid.UUID
} {
	mock.lockListMessages.RLock()
	calls := mock.calls.ListMessages
	mock.lockListMessages.RUnlock()
	return calls
}

func (mock *appealRepoMock) CountMessagesWithin(ctx context.Context, appealID uuid.UUID, authorID uuid.UUID, window time.Duration) (int, error) {
	if mock.CountMessagesWithinFunc == nil {
		panic("appealRepoMock.CountMessagesWithinFunc: method is nil but appealRepo.CountMessagesWithin was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AppealID uuid.UUID
		AuthorID uuid.UUID
		Window   time.Duration
	}{Ctx: ctx, AppealID: appealID, AuthorID: authorID, Window: window}
	mock.lockCountMessagesWithin.Lock()
	mock.calls.CountMessagesWithin = append(mock.calls.CountMessagesWithin, callInfo)
	mock.lockCountMessagesWithin.Unlock()
	return mock.CountMessagesWithinFunc(ctx, appealID, authorID, window)
}

func (mock *appealRepoMock) CountMessagesWithinCalls() []struct {
	Ctx      context.Context
	AppealID uuid.UUID
	AuthorID uuid.UUID
	Window   time.Duration
} {
	mock.lockCountMessagesWithin.RLock()
	calls := mock.calls.CountMessagesWithin
	mock.lockCountMessagesWithin.RUnlock()
	return calls
}

func (mock *appealRepoMock) CreateReport(ctx context.Context, messageID uuid.UUID, reporterID uuid.UUID, reason string) (*domain.MessageReport, error) {
	if mock.CreateReportFunc == nil {
		panic("appealRepoMock.CreateReportFunc: method is nil but appealRepo.CreateReport was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MessageID  uuid.UUID
		ReporterID uuid.UUID
		Reason     string
	}{Ctx: ctx, MessageID: messageID, ReporterID: reporterID, Reason: reason}
	mock.lockCreateReport.Lock()
	mock.calls.CreateReport = append(mock.calls.CreateReport, callInfo)
	mock.lockCreateReport.Unlock()
	return mock.CreateReportFunc(ctx, messageID, reporterID, reason)
}

func (mock *appealRepoMock) CreateReportCalls() []struct {
	Ctx        context.Context
	MessageID  uuid.UUID
	ReporterID uuid.UUID
	Reason     string
} {
	mock.lockCreateReport.RLock()
	calls := mock.calls.CreateReport
	mock.lockCreateReport.RUnlock()
	return calls
}

func (mock *appealRepoMock) ListReports(ctx context.Context, status domain.ReportStatus, limit int, offset int) ([]domain.MessageReport, error) {
	if mock.ListReportsFunc == nil {
		panic("appealRepoMock.ListReportsFunc: method is nil but appealRepo.ListReports was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.ReportStatus
		Limit  int
		Offset int
	}{Ctx: ctx, Status: status, Limit: limit, Offset: offset}
	mock.lockListReports.Lock()
	mock.calls.ListReports = append(mock.calls.ListReports, callInfo)
	mock.lockListReports.Unlock()
	return mock.ListReportsFunc(ctx, status, limit, offset)
}

func (mock *appealRepoMock) ListReportsCalls() []struct {
	Ctx    context.Context
	Status domain.ReportStatus
	Limit  int
	Offset int
} {
	mock.lockListReports.RLock()
	calls := mock.calls.ListReports
	mock.lockListReports.RUnlock()
	return calls
}

func (mock *appealRepoMock) ResolveReport(ctx context.Context, id uuid.UUID, status domain.ReportStatus, reviewerID uuid.UUID, notes *string) (*domain.MessageReport, error) {
	if mock.ResolveReportFunc == nil {
		panic("appealRepoMock.ResolveReportFunc: method is nil but appealRepo.ResolveReport was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Id         uuid.UUID
		Status     domain.ReportStatus
		ReviewerID uuid.UUID
		Notes      *string
	}{Ctx: ctx, Id: id, Status: status, ReviewerID: reviewerID, Notes: notes}
	mock.lockResolveReport.Lock()
	mock.calls.ResolveReport = append(mock.calls.ResolveReport, callInfo)
	mock.lockResolveReport.Unlock()
	return mock.ResolveReportFunc(ctx, id, status, reviewerID, notes)
}

func (mock *appealRepoMock) ResolveReportCalls() []struct {
	Ctx        context.Context
	Id         uuid.UUID
	Status     domain.ReportStatus
	ReviewerID uuid.UUID
	Notes      *string
} {
	mock.lockResolveReport.RLock()
	calls := mock.calls.ResolveReport
	mock.lockResolveReport.RUnlock()
	return calls
}

var _ translationRepo = &translationRepoMock{}

type translationRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Translation, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID             sync.RWMutex
}

func (mock *translationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Translation, error) {
	if mock.GetByIDFunc == nil {
		panic("translationRepoMock.GetByIDFunc: method is nil but translationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *translationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	LogFunc                 func(ctx context.Context, a domain.Activity) error

	calls struct {
		Log []struct {
			Ctx context.Context
			A   domain.Activity
		}
	}
	lockLog                 sync.RWMutex
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
