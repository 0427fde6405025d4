package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/SimaxBen/wadrari/wadrari/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockQuestRepository is a mock of QuestRepository interface.
type MockQuestRepository struct {
	ctrl     *gomock.Controller
	recorder *MockQuestRepositoryMockRecorder
	isgomock struct{}
}

// MockQuestRepositoryMockRecorder is the mock recorder for MockQuestRepository.
type MockQuestRepositoryMockRecorder struct {
	mock *MockQuestRepository
}

// NewMockQuestRepository creates a new mock instance.
func NewMockQuestRepository(ctrl *gomock.Controller) *MockQuestRepository {
	mock := &MockQuestRepository{ctrl: ctrl}
	mock.recorder = &MockQuestRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQuestRepository) EXPECT() *MockQuestRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockQuestRepository) Create(ctx context.Context, quest *models.Quest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, quest)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockQuestRepositoryMockRecorder) Create(ctx, quest any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockQuestRepository)(nil).Create), ctx, quest)
}

// Deactivate mocks base method.
func (m *MockQuestRepository) Deactivate(ctx context.Context, questID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deactivate", ctx, questID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Deactivate indicates an expected call of Deactivate.
func (mr *MockQuestRepositoryMockRecorder) Deactivate(ctx, questID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deactivate", reflect.TypeOf((*MockQuestRepository)(nil).Deactivate), ctx, questID)
}

// GetActiveQuests mocks base method.
func (m *MockQuestRepository) GetActiveQuests(ctx context.Context) ([]*models.Quest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveQuests", ctx)
	ret0, _ := ret[0].([]*models.Quest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveQuests indicates an expected call of GetActiveQuests.
func (mr *MockQuestRepositoryMockRecorder) GetActiveQuests(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveQuests", reflect.TypeOf((*MockQuestRepository)(nil).GetActiveQuests), ctx)
}

// GetByID mocks base method.
func (m *MockQuestRepository) GetByID(ctx context.Context, questID string) (*models.Quest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, questID)
	ret0, _ := ret[0].(*models.Quest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockQuestRepositoryMockRecorder) GetByID(ctx, questID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockQuestRepository)(nil).GetByID), ctx, questID)
}

// GetCompletion mocks base method.
func (m *MockQuestRepository) GetCompletion(ctx context.Context, userID, questID, day string) (*models.QuestCompletion, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCompletion", ctx, userID, questID, day)
	ret0, _ := ret[0].(*models.QuestCompletion)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCompletion indicates an expected call of GetCompletion.
func (mr *MockQuestRepositoryMockRecorder) GetCompletion(ctx, userID, questID, day any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCompletion", reflect.TypeOf((*MockQuestRepository)(nil).GetCompletion), ctx, userID, questID, day)
}

// GetLifetimeCompletionCount mocks base method.
func (m *MockQuestRepository) GetLifetimeCompletionCount(ctx context.Context, userID, questID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLifetimeCompletionCount", ctx, userID, questID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLifetimeCompletionCount indicates an expected call of GetLifetimeCompletionCount.
func (mr *MockQuestRepositoryMockRecorder) GetLifetimeCompletionCount(ctx, userID, questID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLifetimeCompletionCount", reflect.TypeOf((*MockQuestRepository)(nil).GetLifetimeCompletionCount), ctx, userID, questID)
}

// IncrementCompletion mocks base method.
func (m *MockQuestRepository) IncrementCompletion(ctx context.Context, userID, questID, day string, trophies int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementCompletion", ctx, userID, questID, day, trophies)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementCompletion indicates an expected call of IncrementCompletion.
func (mr *MockQuestRepositoryMockRecorder) IncrementCompletion(ctx, userID, questID, day, trophies any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCompletion", reflect.TypeOf((*MockQuestRepository)(nil).IncrementCompletion), ctx, userID, questID, day, trophies)
}

// ListCompletions mocks base method.
func (m *MockQuestRepository) ListCompletions(ctx context.Context, userID, day string) ([]*models.QuestCompletion, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCompletions", ctx, userID, day)
	ret0, _ := ret[0].([]*models.QuestCompletion)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCompletions indicates an expected call of ListCompletions.
func (mr *MockQuestRepositoryMockRecorder) ListCompletions(ctx, userID, day any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCompletions", reflect.TypeOf((*MockQuestRepository)(nil).ListCompletions), ctx, userID, day)
}
