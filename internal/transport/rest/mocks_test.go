package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/appeal"
	"github.com/heartmarshall/termtrans-backend/internal/service/auth"
	"github.com/heartmarshall/termtrans-backend/internal/service/community"
	"github.com/heartmarshall/termtrans-backend/internal/service/harvest"
	"github.com/heartmarshall/termtrans-backend/internal/service/translation"
	"github.com/heartmarshall/termtrans-backend/internal/service/user"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc  func(ctx context.Context, input auth.LoginInput) (*auth.Result, error)
	LogoutFunc func(ctx context.Context, token string) error
	MeFunc     func(ctx context.Context) (*domain.User, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Logout []struct {
			Ctx   context.Context
			Token string
		}
		Me []struct {
			Ctx context.Context
		}
	}
	lockLogin  sync.RWMutex
	lockLogout sync.RWMutex
	lockMe     sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.Result, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context, token string) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx, token)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

var _ translationService = &translationServiceMock{}

type translationServiceMock struct {
	CreateFunc          func(ctx context.Context, input translation.CreateInput) (*domain.Translation, error)
	GetFunc             func(ctx context.Context, id uuid.UUID) (*domain.Translation, error)
	UpdateFunc          func(ctx context.Context, input translation.UpdateInput) (*domain.Translation, error)
	SubmitFunc          func(ctx context.Context, id uuid.UUID) (*domain.Translation, error)
	ReviewFunc          func(ctx context.Context, input translation.ReviewInput) (*domain.Translation, error)
	ListByTermFieldFunc func(ctx context.Context, termFieldID uuid.UUID, status domain.TranslationStatus, limit int, offset int) ([]domain.Translation, error)
	SetStatusFunc       func(ctx context.Context, id uuid.UUID, status domain.TranslationStatus) (*domain.Translation, error)
	SetLanguageFunc     func(ctx context.Context, id uuid.UUID, language string) (*domain.Translation, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input translation.CreateInput
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			Input translation.UpdateInput
		}
		Submit []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Review []struct {
			Ctx   context.Context
			Input translation.ReviewInput
		}
		ListByTermField []struct {
			Ctx         context.Context
			TermFieldID uuid.UUID
			Status      domain.TranslationStatus
			Limit       int
			Offset      int
		}
		SetStatus []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Status domain.TranslationStatus
		}
		SetLanguage []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Language string
		}
	}
	lockCreate          sync.RWMutex
	lockGet             sync.RWMutex
	lockUpdate          sync.RWMutex
	lockSubmit          sync.RWMutex
	lockReview          sync.RWMutex
	lockListByTermField sync.RWMutex
	lockSetStatus       sync.RWMutex
	lockSetLanguage     sync.RWMutex
}

func (mock *translationServiceMock) Create(ctx context.Context, input translation.CreateInput) (*domain.Translation, error) {
	if mock.CreateFunc == nil {
		panic("translationServiceMock.CreateFunc: method is nil but translationService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input translation.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *translationServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input translation.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *translationServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Translation, error) {
	if mock.GetFunc == nil {
		panic("translationServiceMock.GetFunc: method is nil but translationService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *translationServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *translationServiceMock) Update(ctx context.Context, input translation.UpdateInput) (*domain.Translation, error) {
	if mock.UpdateFunc == nil {
		panic("translationServiceMock.UpdateFunc: method is nil but translationService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input translation.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *translationServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input translation.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *translationServiceMock) Submit(ctx context.Context, id uuid.UUID) (*domain.Translation, error) {
	if mock.SubmitFunc == nil {
		panic("translationServiceMock.SubmitFunc: method is nil but translationService.Submit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, id)
}

func (mock *translationServiceMock) SubmitCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *translationServiceMock) Review(ctx context.Context, input translation.ReviewInput) (*domain.Translation, error) {
	if mock.ReviewFunc == nil {
		panic("translationServiceMock.ReviewFunc: method is nil but translationService.Review was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input translation.ReviewInput
	}{Ctx: ctx, Input: input}
	mock.lockReview.Lock()
	mock.calls.Review = append(mock.calls.Review, callInfo)
	mock.lockReview.Unlock()
	return mock.ReviewFunc(ctx, input)
}

func (mock *translationServiceMock) ReviewCalls() []struct {
	Ctx   context.Context
	Input translation.ReviewInput
} {
	mock.lockReview.RLock()
	calls := mock.calls.Review
	mock.lockReview.RUnlock()
	return calls
}

func (mock *translationServiceMock) ListByTermField(ctx context.Context, termFieldID uuid.UUID, status domain.TranslationStatus, limit int, offset int) ([]domain.Translation, error) {
	if mock.ListByTermFieldFunc == nil {
		panic("translationServiceMock.ListByTermFieldFunc: method is nil but translationService.ListByTermField was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TermFieldID uuid.UUID
		Status      domain.TranslationStatus
		Limit       int
		Offset      int
	}{Ctx: ctx, TermFieldID: termFieldID, Status: status, Limit: limit, Offset: offset}
	mock.lockListByTermField.Lock()
	mock.calls.ListByTermField = append(mock.calls.ListByTermField, callInfo)
	mock.lockListByTermField.Unlock()
	return mock.ListByTermFieldFunc(ctx, termFieldID, status, limit, offset)
}

func (mock *translationServiceMock) ListByTermFieldCalls() []struct {
	Ctx         context.Context
	TermFieldID uuid.UUID
	Status      domain.TranslationStatus
	Limit       int
	Offset      int
} {
	mock.lockListByTermField.RLock()
	calls := mock.calls.ListByTermField
	mock.lockListByTermField.RUnlock()
	return calls
}

func (mock *translationServiceMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.TranslationStatus) (*domain.Translation, error) {
	if mock.SetStatusFunc == nil {
		panic("translationServiceMock.SetStatusFunc: method is nil but translationService.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Status domain.TranslationStatus
	}{Ctx: ctx, Id: id, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *translationServiceMock) SetStatusCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Status domain.TranslationStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *translationServiceMock) SetLanguage(ctx context.Context, id uuid.UUID, language string) (*domain.Translation, error) {
	if mock.SetLanguageFunc == nil {
		panic("translationServiceMock.SetLanguageFunc: method is nil but translationService.SetLanguage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Language string
	}{Ctx: ctx, Id: id, Language: language}
	mock.lockSetLanguage.Lock()
	mock.calls.SetLanguage = append(mock.calls.SetLanguage, callInfo)
	mock.lockSetLanguage.Unlock()
	return mock.SetLanguageFunc(ctx, id, language)
}

func (mock *translationServiceMock) SetLanguageCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Language string
} {
	mock.lockSetLanguage.RLock()
	calls := mock.calls.SetLanguage
	mock.lockSetLanguage.RUnlock()
	return calls
}

var _ reputationService = &reputationServiceMock{}

type reputationServiceMock struct {
	GetUserReputationFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserReputation, error)

	calls struct {
		GetUserReputation []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetUserReputation sync.RWMutex
}

func (mock *reputationServiceMock) GetUserReputation(ctx context.Context, userID uuid.UUID) (*domain.UserReputation, error) {
	if mock.GetUserReputationFunc == nil {
		panic("reputationServiceMock.GetUserReputationFunc: method is nil but reputationService.GetUserReputation was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetUserReputation.Lock()
	mock.calls.GetUserReputation = append(mock.calls.GetUserReputation, callInfo)
	mock.lockGetUserReputation.Unlock()
	return mock.GetUserReputationFunc(ctx, userID)
}

func (mock *reputationServiceMock) GetUserReputationCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetUserReputation.RLock()
	calls := mock.calls.GetUserReputation
	mock.lockGetUserReputation.RUnlock()
	return calls
}

var _ appealService = &appealServiceMock{}

type appealServiceMock struct {
	CreateFunc        func(ctx context.Context, input appeal.CreateInput) (*domain.Appeal, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.Appeal, error)
	ListFunc          func(ctx context.Context, f domain.AppealFilter) ([]domain.Appeal, error)
	UpdateFunc        func(ctx context.Context, input appeal.UpdateInput) (*domain.Appeal, error)
	PostMessageFunc   func(ctx context.Context, input appeal.PostMessageInput) (*domain.AppealMessage, error)
	ListMessagesFunc  func(ctx context.Context, appealID uuid.UUID) ([]domain.AppealMessage, error)
	ReportMessageFunc func(ctx context.Context, input appeal.ReportInput) (*domain.MessageReport, error)
	ListReportsFunc   func(ctx context.Context, status domain.ReportStatus, limit int, offset int) ([]domain.MessageReport, error)
	ResolveReportFunc func(ctx context.Context, input appeal.ResolveReportInput) (*domain.MessageReport, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input appeal.CreateInput
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.AppealFilter
		}
		Update []struct {
			Ctx   context.Context
			Input appeal.UpdateInput
		}
		PostMessage []struct {
			Ctx   context.Context
			Input appeal.PostMessageInput
		}
		ListMessages []struct {
			Ctx      context.Context
			AppealID uuid.UUID
		}
		ReportMessage []struct {
			Ctx   context.Context
			Input appeal.ReportInput
		}
		ListReports []struct {
			Ctx    context.Context
			Status domain.ReportStatus
			Limit  int
			Offset int
		}
		ResolveReport []struct {
			Ctx   context.Context
			Input appeal.ResolveReportInput
		}
	}
	lockCreate        sync.RWMutex
	lockGet           sync.RWMutex
	lockList          sync.RWMutex
	lockUpdate        sync.RWMutex
	lockPostMessage   sync.RWMutex
	lockListMessages  sync.RWMutex
	lockReportMessage sync.RWMutex
	lockListReports   sync.RWMutex
	lockResolveReport sync.RWMutex
}

func (mock *appealServiceMock) Create(ctx context.Context, input appeal.CreateInput) (*domain.Appeal, error) {
	if mock.CreateFunc == nil {
		panic("appealServiceMock.CreateFunc: method is nil but appealService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input appeal.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *appealServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input appeal.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *appealServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Appeal, error) {
	if mock.GetFunc == nil {
		panic("appealServiceMock.GetFunc: method is nil but appealService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *appealServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *appealServiceMock) List(ctx context.Context, f domain.AppealFilter) ([]domain.Appeal, error) {
	if mock.ListFunc == nil {
		panic("appealServiceMock.ListFunc: method is nil but appealService.List was just called")
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

func (mock *appealServiceMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AppealFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *appealServiceMock) Update(ctx context.Context, input appeal.UpdateInput) (*domain.Appeal, error) {
	if mock.UpdateFunc == nil {
		panic("appealServiceMock.UpdateFunc: method is nil but appealService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input appeal.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *appealServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input appeal.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *appealServiceMock) PostMessage(ctx context.Context, input appeal.PostMessageInput) (*domain.AppealMessage, error) {
	if mock.PostMessageFunc == nil {
		panic("appealServiceMock.PostMessageFunc: method is nil but appealService.PostMessage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input appeal.PostMessageInput
	}{Ctx: ctx, Input: input}
	mock.lockPostMessage.Lock()
	mock.calls.PostMessage = append(mock.calls.PostMessage, callInfo)
	mock.lockPostMessage.Unlock()
	return mock.PostMessageFunc(ctx, input)
}

func (mock *appealServiceMock) PostMessageCalls() []struct {
	Ctx   context.Context
	Input appeal.PostMessageInput
} {
	mock.lockPostMessage.RLock()
	calls := mock.calls.PostMessage
	mock.lockPostMessage.RUnlock()
	return calls
}

func (mock *appealServiceMock) ListMessages(ctx context.Context, appealID uuid.UUID) ([]domain.AppealMessage, error) {
	if mock.ListMessagesFunc == nil {
		panic("appealServiceMock.ListMessagesFunc: method is nil but appealService.ListMessages was just called")
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

func (mock *appealServiceMock) ListMessagesCalls() []struct {
	Ctx      context.Context
	AppealID uuid.UUID
} {
	mock.lockListMessages.RLock()
	calls := mock.calls.ListMessages
	mock.lockListMessages.RUnlock()
	return calls
}

func (mock *appealServiceMock) ReportMessage(ctx context.Context, input appeal.ReportInput) (*domain.MessageReport, error) {
	if mock.ReportMessageFunc == nil {
		panic("appealServiceMock.ReportMessageFunc: method is nil but appealService.ReportMessage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input appeal.ReportInput
	}{Ctx: ctx, Input: input}
	mock.lockReportMessage.Lock()
	mock.calls.ReportMessage = append(mock.calls.ReportMessage, callInfo)
	mock.lockReportMessage.Unlock()
	return mock.ReportMessageFunc(ctx, input)
}

func (mock *appealServiceMock) ReportMessageCalls() []struct {
	Ctx   context.Context
	Input appeal.ReportInput
} {
	mock.lockReportMessage.RLock()
	calls := mock.calls.ReportMessage
	mock.lockReportMessage.RUnlock()
	return calls
}

func (mock *appealServiceMock) ListReports(ctx context.Context, status domain.ReportStatus, limit int, offset int) ([]domain.MessageReport, error) {
	if mock.ListReportsFunc == nil {
		panic("appealServiceMock.ListReportsFunc: method is nil but appealService.ListReports was just called")
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

func (mock *appealServiceMock) ListReportsCalls() []struct {
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

func (mock *appealServiceMock) ResolveReport(ctx context.Context, input appeal.ResolveReportInput) (*domain.MessageReport, error) {
	if mock.ResolveReportFunc == nil {
		panic("appealServiceMock.ResolveReportFunc: method is nil but appealService.ResolveReport was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input appeal.ResolveReportInput
	}{Ctx: ctx, Input: input}
	mock.lockResolveReport.Lock()
	mock.calls.ResolveReport = append(mock.calls.ResolveReport, callInfo)
	mock.lockResolveReport.Unlock()
	return mock.ResolveReportFunc(ctx, input)
}

func (mock *appealServiceMock) ResolveReportCalls() []struct {
	Ctx   context.Context
	Input appeal.ResolveReportInput
} {
	mock.lockResolveReport.RLock()
	calls := mock.calls.ResolveReport
	mock.lockResolveReport.RUnlock()
	return calls
}

var _ communityService = &communityServiceMock{}

type communityServiceMock struct {
	CreateFunc        func(ctx context.Context, input community.CreateInput) (*domain.Community, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.Community, error)
	ListFunc          func(ctx context.Context, typ domain.CommunityType, limit int, offset int) ([]domain.Community, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, input community.UpdateInput) (*domain.Community, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	JoinFunc          func(ctx context.Context, id uuid.UUID) (*domain.CommunityMember, error)
	LeaveFunc         func(ctx context.Context, id uuid.UUID) error
	ListMembersFunc   func(ctx context.Context, id uuid.UUID, limit int, offset int) ([]domain.CommunityMember, error)
	SetMemberRoleFunc func(ctx context.Context, id uuid.UUID, memberID uuid.UUID, role domain.CommunityRole) (*domain.CommunityMember, error)
	CreateGoalFunc    func(ctx context.Context, input community.GoalInput) (*domain.CommunityGoal, error)
	DeleteGoalFunc    func(ctx context.Context, communityID uuid.UUID, goalID uuid.UUID) error
	ListGoalsFunc     func(ctx context.Context, communityID uuid.UUID) ([]domain.CommunityGoal, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input community.CreateInput
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Typ    domain.CommunityType
			Limit  int
			Offset int
		}
		Update []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input community.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Join []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Leave []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListMembers []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Limit  int
			Offset int
		}
		SetMemberRole []struct {
			Ctx      context.Context
			Id       uuid.UUID
			MemberID uuid.UUID
			Role     domain.CommunityRole
		}
		CreateGoal []struct {
			Ctx   context.Context
			Input community.GoalInput
		}
		DeleteGoal []struct {
			Ctx         context.Context
			CommunityID uuid.UUID
			GoalID      uuid.UUID
		}
		ListGoals []struct {
			Ctx         context.Context
			CommunityID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGet           sync.RWMutex
	lockList          sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockJoin          sync.RWMutex
	lockLeave         sync.RWMutex
	lockListMembers   sync.RWMutex
	lockSetMemberRole sync.RWMutex
	lockCreateGoal    sync.RWMutex
	lockDeleteGoal    sync.RWMutex
	lockListGoals     sync.RWMutex
}

func (mock *communityServiceMock) Create(ctx context.Context, input community.CreateInput) (*domain.Community, error) {
	if mock.CreateFunc == nil {
		panic("communityServiceMock.CreateFunc: method is nil but communityService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input community.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *communityServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input community.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *communityServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Community, error) {
	if mock.GetFunc == nil {
		panic("communityServiceMock.GetFunc: method is nil but communityService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *communityServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *communityServiceMock) List(ctx context.Context, typ domain.CommunityType, limit int, offset int) ([]domain.Community, error) {
	if mock.ListFunc == nil {
		panic("communityServiceMock.ListFunc: method is nil but communityService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Typ    domain.CommunityType
		Limit  int
		Offset int
	}{Ctx: ctx, Typ: typ, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, typ, limit, offset)
}

func (mock *communityServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Typ    domain.CommunityType
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *communityServiceMock) Update(ctx context.Context, id uuid.UUID, input community.UpdateInput) (*domain.Community, error) {
	if mock.UpdateFunc == nil {
		panic("communityServiceMock.UpdateFunc: method is nil but communityService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input community.UpdateInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *communityServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input community.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *communityServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("communityServiceMock.DeleteFunc: method is nil but communityService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *communityServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *communityServiceMock) Join(ctx context.Context, id uuid.UUID) (*domain.CommunityMember, error) {
	if mock.JoinFunc == nil {
		panic("communityServiceMock.JoinFunc: method is nil but communityService.Join was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockJoin.Lock()
	mock.calls.Join = append(mock.calls.Join, callInfo)
	mock.lockJoin.Unlock()
	return mock.JoinFunc(ctx, id)
}

func (mock *communityServiceMock) JoinCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockJoin.RLock()
	calls := mock.calls.Join
	mock.lockJoin.RUnlock()
	return calls
}

func (mock *communityServiceMock) Leave(ctx context.Context, id uuid.UUID) error {
	if mock.LeaveFunc == nil {
		panic("communityServiceMock.LeaveFunc: method is nil but communityService.Leave was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockLeave.Lock()
	mock.calls.Leave = append(mock.calls.Leave, callInfo)
	mock.lockLeave.Unlock()
	return mock.LeaveFunc(ctx, id)
}

func (mock *communityServiceMock) LeaveCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockLeave.RLock()
	calls := mock.calls.Leave
	mock.lockLeave.RUnlock()
	return calls
}

func (mock *communityServiceMock) ListMembers(ctx context.Context, id uuid.UUID, limit int, offset int) ([]domain.CommunityMember, error) {
	if mock.ListMembersFunc == nil {
		panic("communityServiceMock.ListMembersFunc: method is nil but communityService.ListMembers was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, Id: id, Limit: limit, Offset: offset}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, id, limit, offset)
}

func (mock *communityServiceMock) ListMembersCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}

func (mock *communityServiceMock) SetMemberRole(ctx context.Context, id uuid.UUID, memberID uuid.UUID, role domain.CommunityRole) (*domain.CommunityMember, error) {
	if mock.SetMemberRoleFunc == nil {
		panic("communityServiceMock.SetMemberRoleFunc: method is nil but communityService.SetMemberRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		MemberID uuid.UUID
		Role     domain.CommunityRole
	}{Ctx: ctx, Id: id, MemberID: memberID, Role: role}
	mock.lockSetMemberRole.Lock()
	mock.calls.SetMemberRole = append(mock.calls.SetMemberRole, callInfo)
	mock.lockSetMemberRole.Unlock()
	return mock.SetMemberRoleFunc(ctx, id, memberID, role)
}

func (mock *communityServiceMock) SetMemberRoleCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	MemberID uuid.UUID
	Role     domain.CommunityRole
} {
	mock.lockSetMemberRole.RLock()
	calls := mock.calls.SetMemberRole
	mock.lockSetMemberRole.RUnlock()
	return calls
}

func (mock *communityServiceMock) CreateGoal(ctx context.Context, input community.GoalInput) (*domain.CommunityGoal, error) {
	if mock.CreateGoalFunc == nil {
		panic("communityServiceMock.CreateGoalFunc: method is nil but communityService.CreateGoal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input community.GoalInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateGoal.Lock()
	mock.calls.CreateGoal = append(mock.calls.CreateGoal, callInfo)
	mock.lockCreateGoal.Unlock()
	return mock.CreateGoalFunc(ctx, input)
}

func (mock *communityServiceMock) CreateGoalCalls() []struct {
	Ctx   context.Context
	Input community.GoalInput
} {
	mock.lockCreateGoal.RLock()
	calls := mock.calls.CreateGoal
	mock.lockCreateGoal.RUnlock()
	return calls
}

func (mock *communityServiceMock) DeleteGoal(ctx context.Context, communityID uuid.UUID, goalID uuid.UUID) error {
	if mock.DeleteGoalFunc == nil {
		panic("communityServiceMock.DeleteGoalFunc: method is nil but communityService.DeleteGoal was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		CommunityID uuid.UUID
		GoalID      uuid.UUID
	}{Ctx: ctx, CommunityID: communityID, GoalID: goalID}
	mock.lockDeleteGoal.Lock()
	mock.calls.DeleteGoal = append(mock.calls.DeleteGoal, callInfo)
	mock.lockDeleteGoal.Unlock()
	return mock.DeleteGoalFunc(ctx, communityID, goalID)
}

func (mock *communityServiceMock) DeleteGoalCalls() []struct {
	Ctx         context.Context
	CommunityID uuid.UUID
	GoalID      uuid.UUID
} {
	mock.lockDeleteGoal.RLock()
	calls := mock.calls.DeleteGoal
	mock.lockDeleteGoal.RUnlock()
	return calls
}

func (mock *communityServiceMock) ListGoals(ctx context.Context, communityID uuid.UUID) ([]domain.CommunityGoal, error) {
	if mock.ListGoalsFunc == nil {
		panic("communityServiceMock.ListGoalsFunc: method is nil but communityService.ListGoals was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		CommunityID uuid.UUID
	}{Ctx: ctx, CommunityID: communityID}
	mock.lockListGoals.Lock()
	mock.calls.ListGoals = append(mock.calls.ListGoals, callInfo)
	mock.lockListGoals.Unlock()
	return mock.ListGoalsFunc(ctx, communityID)
}

func (mock *communityServiceMock) ListGoalsCalls() []struct {
	Ctx         context.Context
	CommunityID uuid.UUID
} {
	mock.lockListGoals.RLock()
	calls := mock.calls.ListGoals
	mock.lockListGoals.RUnlock()
	return calls
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	BanFunc          func(ctx context.Context, id uuid.UUID, input user.BanInput) (*domain.User, error)
	UnbanFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	PromoteFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	DemoteFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	PenalizeFunc     func(ctx context.Context, id uuid.UUID, input user.PenaltyInput) (*domain.User, error)
	ListUsersFunc    func(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
	ListActivityFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.Activity, error)
	DashboardFunc    func(ctx context.Context) (*domain.Dashboard, error)

	calls struct {
		Ban []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input user.BanInput
		}
		Unban []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Promote []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Demote []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Penalize []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input user.PenaltyInput
		}
		ListUsers []struct {
			Ctx context.Context
			F   domain.UserFilter
		}
		ListActivity []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		Dashboard []struct {
			Ctx context.Context
		}
	}
	lockBan          sync.RWMutex
	lockUnban        sync.RWMutex
	lockPromote      sync.RWMutex
	lockDemote       sync.RWMutex
	lockPenalize     sync.RWMutex
	lockListUsers    sync.RWMutex
	lockListActivity sync.RWMutex
	lockDashboard    sync.RWMutex
}

func (mock *userServiceMock) Ban(ctx context.Context, id uuid.UUID, input user.BanInput) (*domain.User, error) {
	if mock.BanFunc == nil {
		panic("userServiceMock.BanFunc: method is nil but userService.Ban was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input user.BanInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockBan.Lock()
	mock.calls.Ban = append(mock.calls.Ban, callInfo)
	mock.lockBan.Unlock()
	return mock.BanFunc(ctx, id, input)
}

func (mock *userServiceMock) BanCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input user.BanInput
} {
	mock.lockBan.RLock()
	calls := mock.calls.Ban
	mock.lockBan.RUnlock()
	return calls
}

func (mock *userServiceMock) Unban(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.UnbanFunc == nil {
		panic("userServiceMock.UnbanFunc: method is nil but userService.Unban was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockUnban.Lock()
	mock.calls.Unban = append(mock.calls.Unban, callInfo)
	mock.lockUnban.Unlock()
	return mock.UnbanFunc(ctx, id)
}

func (mock *userServiceMock) UnbanCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockUnban.RLock()
	calls := mock.calls.Unban
	mock.lockUnban.RUnlock()
	return calls
}

func (mock *userServiceMock) Promote(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.PromoteFunc == nil {
		panic("userServiceMock.PromoteFunc: method is nil but userService.Promote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockPromote.Lock()
	mock.calls.Promote = append(mock.calls.Promote, callInfo)
	mock.lockPromote.Unlock()
	return mock.PromoteFunc(ctx, id)
}

func (mock *userServiceMock) PromoteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockPromote.RLock()
	calls := mock.calls.Promote
	mock.lockPromote.RUnlock()
	return calls
}

func (mock *userServiceMock) Demote(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.DemoteFunc == nil {
		panic("userServiceMock.DemoteFunc: method is nil but userService.Demote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDemote.Lock()
	mock.calls.Demote = append(mock.calls.Demote, callInfo)
	mock.lockDemote.Unlock()
	return mock.DemoteFunc(ctx, id)
}

func (mock *userServiceMock) DemoteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDemote.RLock()
	calls := mock.calls.Demote
	mock.lockDemote.RUnlock()
	return calls
}

func (mock *userServiceMock) Penalize(ctx context.Context, id uuid.UUID, input user.PenaltyInput) (*domain.User, error) {
	if mock.PenalizeFunc == nil {
		panic("userServiceMock.PenalizeFunc: method is nil but userService.Penalize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input user.PenaltyInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockPenalize.Lock()
	mock.calls.Penalize = append(mock.calls.Penalize, callInfo)
	mock.lockPenalize.Unlock()
	return mock.PenalizeFunc(ctx, id, input)
}

func (mock *userServiceMock) PenalizeCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input user.PenaltyInput
} {
	mock.lockPenalize.RLock()
	calls := mock.calls.Penalize
	mock.lockPenalize.RUnlock()
	return calls
}

func (mock *userServiceMock) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.UserFilter
	}{Ctx: ctx, F: f}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx, f)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
	F   domain.UserFilter
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userServiceMock) ListActivity(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.Activity, error) {
	if mock.ListActivityFunc == nil {
		panic("userServiceMock.ListActivityFunc: method is nil but userService.ListActivity was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListActivity.Lock()
	mock.calls.ListActivity = append(mock.calls.ListActivity, callInfo)
	mock.lockListActivity.Unlock()
	return mock.ListActivityFunc(ctx, userID, limit, offset)
}

func (mock *userServiceMock) ListActivityCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListActivity.RLock()
	calls := mock.calls.ListActivity
	mock.lockListActivity.RUnlock()
	return calls
}

func (mock *userServiceMock) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	if mock.DashboardFunc == nil {
		panic("userServiceMock.DashboardFunc: method is nil but userService.Dashboard was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDashboard.Lock()
	mock.calls.Dashboard = append(mock.calls.Dashboard, callInfo)
	mock.lockDashboard.Unlock()
	return mock.DashboardFunc(ctx)
}

func (mock *userServiceMock) DashboardCalls() []struct {
	Ctx context.Context
} {
	mock.lockDashboard.RLock()
	calls := mock.calls.Dashboard
	mock.lockDashboard.RUnlock()
	return calls
}

var _ rulesService = &rulesServiceMock{}

type rulesServiceMock struct {
	RulesFunc        func(ctx context.Context) (domain.ReputationRules, error)
	UpdateRulesFunc  func(ctx context.Context, changes map[string]int) (domain.ReputationRules, error)
	PreviewRulesFunc func(ctx context.Context, changes map[string]int, sampleSize int) (*domain.RulePreview, error)

	calls struct {
		Rules []struct {
			Ctx context.Context
		}
		UpdateRules []struct {
			Ctx     context.Context
			Changes map[string]int
		}
		PreviewRules []struct {
			Ctx        context.Context
			Changes    map[string]int
			SampleSize int
		}
	}
	lockRules        sync.RWMutex
	lockUpdateRules  sync.RWMutex
	lockPreviewRules sync.RWMutex
}

func (mock *rulesServiceMock) Rules(ctx context.Context) (domain.ReputationRules, error) {
	if mock.RulesFunc == nil {
		panic("rulesServiceMock.RulesFunc: method is nil but rulesService.Rules was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRules.Lock()
	mock.calls.Rules = append(mock.calls.Rules, callInfo)
	mock.lockRules.Unlock()
	return mock.RulesFunc(ctx)
}

func (mock *rulesServiceMock) RulesCalls() []struct {
	Ctx context.Context
} {
	mock.lockRules.RLock()
	calls := mock.calls.Rules
	mock.lockRules.RUnlock()
	return calls
}

func (mock *rulesServiceMock) UpdateRules(ctx context.Context, changes map[string]int) (domain.ReputationRules, error) {
	if mock.UpdateRulesFunc == nil {
		panic("rulesServiceMock.UpdateRulesFunc: method is nil but rulesService.UpdateRules was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Changes map[string]int
	}{Ctx: ctx, Changes: changes}
	mock.lockUpdateRules.Lock()
	mock.calls.UpdateRules = append(mock.calls.UpdateRules, callInfo)
	mock.lockUpdateRules.Unlock()
	return mock.UpdateRulesFunc(ctx, changes)
}

func (mock *rulesServiceMock) UpdateRulesCalls() []struct {
	Ctx     context.Context
	Changes map[string]int
} {
	mock.lockUpdateRules.RLock()
	calls := mock.calls.UpdateRules
	mock.lockUpdateRules.RUnlock()
	return calls
}

func (mock *rulesServiceMock) PreviewRules(ctx context.Context, changes map[string]int, sampleSize int) (*domain.RulePreview, error) {
	if mock.PreviewRulesFunc == nil {
		panic("rulesServiceMock.PreviewRulesFunc: method is nil but rulesService.PreviewRules was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Changes    map[string]int
		SampleSize int
	}{Ctx: ctx, Changes: changes, SampleSize: sampleSize}
	mock.lockPreviewRules.Lock()
	mock.calls.PreviewRules = append(mock.calls.PreviewRules, callInfo)
	mock.lockPreviewRules.Unlock()
	return mock.PreviewRulesFunc(ctx, changes, sampleSize)
}

func (mock *rulesServiceMock) PreviewRulesCalls() []struct {
	Ctx        context.Context
	Changes    map[string]int
	SampleSize int
} {
	mock.lockPreviewRules.RLock()
	calls := mock.calls.PreviewRules
	mock.lockPreviewRules.RUnlock()
	return calls
}

var _ sourceService = &sourceServiceMock{}

type sourceServiceMock struct {
	CreateSourceFunc func(ctx context.Context, input harvest.CreateSourceInput) (*domain.Source, error)
	ListSourcesFunc  func(ctx context.Context) ([]domain.Source, error)
	SyncSourceFunc   func(ctx context.Context, sourceID uuid.UUID) (*domain.Task, error)

	calls struct {
		CreateSource []struct {
			Ctx   context.Context
			Input harvest.CreateSourceInput
		}
		ListSources []struct {
			Ctx context.Context
		}
		SyncSource []struct {
			Ctx      context.Context
			SourceID uuid.UUID
		}
	}
	lockCreateSource sync.RWMutex
	lockListSources  sync.RWMutex
	lockSyncSource   sync.RWMutex
}

func (mock *sourceServiceMock) CreateSource(ctx context.Context, input harvest.CreateSourceInput) (*domain.Source, error) {
	if mock.CreateSourceFunc == nil {
		panic("sourceServiceMock.CreateSourceFunc: method is nil but sourceService.CreateSource was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input harvest.CreateSourceInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSource.Lock()
	mock.calls.CreateSource = append(mock.calls.CreateSource, callInfo)
	mock.lockCreateSource.Unlock()
	return mock.CreateSourceFunc(ctx, input)
}

func (mock *sourceServiceMock) CreateSourceCalls() []struct {
	Ctx   context.Context
	Input harvest.CreateSourceInput
} {
	mock.lockCreateSource.RLock()
	calls := mock.calls.CreateSource
	mock.lockCreateSource.RUnlock()
	return calls
}

func (mock *sourceServiceMock) ListSources(ctx context.Context) ([]domain.Source, error) {
	if mock.ListSourcesFunc == nil {
		panic("sourceServiceMock.ListSourcesFunc: method is nil but sourceService.ListSources was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListSources.Lock()
	mock.calls.ListSources = append(mock.calls.ListSources, callInfo)
	mock.lockListSources.Unlock()
	return mock.ListSourcesFunc(ctx)
}

func (mock *sourceServiceMock) ListSourcesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSources.RLock()
	calls := mock.calls.ListSources
	mock.lockListSources.RUnlock()
	return calls
}

func (mock *sourceServiceMock) SyncSource(ctx context.Context, sourceID uuid.UUID) (*domain.Task, error) {
	if mock.SyncSourceFunc == nil {
		panic("sourceServiceMock.SyncSourceFunc: method is nil but sourceService.SyncSource was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SourceID uuid.UUID
	}{Ctx: ctx, SourceID: sourceID}
	mock.lockSyncSource.Lock()
	mock.calls.SyncSource = append(mock.calls.SyncSource, callInfo)
	mock.lockSyncSource.Unlock()
	return mock.SyncSourceFunc(ctx, sourceID)
}

func (mock *sourceServiceMock) SyncSourceCalls() []struct {
	Ctx      context.Context
	SourceID uuid.UUID
} {
	mock.lockSyncSource.RLock()
	calls := mock.calls.SyncSource
	mock.lockSyncSource.RUnlock()
	return calls
}

var _ ldesService = &ldesServiceMock{}

type ldesServiceMock struct {
	PublishFunc func(ctx context.Context, sourceID uuid.UUID) (*domain.Task, error)

	calls struct {
		Publish []struct {
			Ctx      context.Context
			SourceID uuid.UUID
		}
	}
	lockPublish sync.RWMutex
}

func (mock *ldesServiceMock) Publish(ctx context.Context, sourceID uuid.UUID) (*domain.Task, error) {
	if mock.PublishFunc == nil {
		panic("ldesServiceMock.PublishFunc: method is nil but ldesService.Publish was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SourceID uuid.UUID
	}{Ctx: ctx, SourceID: sourceID}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, sourceID)
}

func (mock *ldesServiceMock) PublishCalls() []struct {
	Ctx      context.Context
	SourceID uuid.UUID
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	GetFunc  func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFunc func(ctx context.Context, status domain.TaskStatus, limit int, offset int) ([]domain.Task, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Status domain.TaskStatus
			Limit  int
			Offset int
		}
	}
	lockGet  sync.RWMutex
	lockList sync.RWMutex
}

func (mock *taskServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetFunc == nil {
		panic("taskServiceMock.GetFunc: method is nil but taskService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *taskServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *taskServiceMock) List(ctx context.Context, status domain.TaskStatus, limit int, offset int) ([]domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskServiceMock.ListFunc: method is nil but taskService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.TaskStatus
		Limit  int
		Offset int
	}{Ctx: ctx, Status: status, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status, limit, offset)
}

func (mock *taskServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Status domain.TaskStatus
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
