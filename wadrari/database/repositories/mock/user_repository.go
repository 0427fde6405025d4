package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/SimaxBen/wadrari/wadrari/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockUserRepository is a mock of UserRepository interface.
type MockUserRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryMockRecorder
	isgomock struct{}
}

// MockUserRepositoryMockRecorder is the mock recorder for MockUserRepository.
type MockUserRepositoryMockRecorder struct {
	mock *MockUserRepository
}

// NewMockUserRepository creates a new mock instance.
func NewMockUserRepository(ctrl *gomock.Controller) *MockUserRepository {
	mock := &MockUserRepository{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepository) EXPECT() *MockUserRepositoryMockRecorder {
	return m.recorder
}

// AddTrophies mocks base method.
func (m *MockUserRepository) AddTrophies(ctx context.Context, userID string, trophies, xp int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddTrophies", ctx, userID, trophies, xp)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddTrophies indicates an expected call of AddTrophies.
func (mr *MockUserRepositoryMockRecorder) AddTrophies(ctx, userID, trophies, xp any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddTrophies", reflect.TypeOf((*MockUserRepository)(nil).AddTrophies), ctx, userID, trophies, xp)
}

// Create mocks base method.
func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserRepositoryMockRecorder) Create(ctx, user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepository)(nil).Create), ctx, user)
}

// GetByCredentials mocks base method.
func (m *MockUserRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByCredentials", ctx, username, password)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByCredentials indicates an expected call of GetByCredentials.
func (mr *MockUserRepositoryMockRecorder) GetByCredentials(ctx, username, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByCredentials", reflect.TypeOf((*MockUserRepository)(nil).GetByCredentials), ctx, username, password)
}

// GetByID mocks base method.
func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserRepository)(nil).GetByID), ctx, id)
}

// GetByUsername mocks base method.
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUsername", ctx, username)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUsername indicates an expected call of GetByUsername.
func (mr *MockUserRepositoryMockRecorder) GetByUsername(ctx, username any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUsername", reflect.TypeOf((*MockUserRepository)(nil).GetByUsername), ctx, username)
}

// GetTopUsers mocks base method.
func (m *MockUserRepository) GetTopUsers(ctx context.Context, limit int) ([]*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTopUsers", ctx, limit)
	ret0, _ := ret[0].([]*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTopUsers indicates an expected call of GetTopUsers.
func (mr *MockUserRepositoryMockRecorder) GetTopUsers(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTopUsers", reflect.TypeOf((*MockUserRepository)(nil).GetTopUsers), ctx, limit)
}

// GetUsers mocks base method.
func (m *MockUserRepository) GetUsers(ctx context.Context) ([]*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUsers", ctx)
	ret0, _ := ret[0].([]*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUsers indicates an expected call of GetUsers.
func (mr *MockUserRepositoryMockRecorder) GetUsers(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUsers", reflect.TypeOf((*MockUserRepository)(nil).GetUsers), ctx)
}

// IncrementMessageCount mocks base method.
func (m *MockUserRepository) IncrementMessageCount(ctx context.Context, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementMessageCount", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementMessageCount indicates an expected call of IncrementMessageCount.
func (mr *MockUserRepositoryMockRecorder) IncrementMessageCount(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementMessageCount", reflect.TypeOf((*MockUserRepository)(nil).IncrementMessageCount), ctx, userID)
}

// IncrementStoryCount mocks base method.
func (m *MockUserRepository) IncrementStoryCount(ctx context.Context, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementStoryCount", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementStoryCount indicates an expected call of IncrementStoryCount.
func (mr *MockUserRepositoryMockRecorder) IncrementStoryCount(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementStoryCount", reflect.TypeOf((*MockUserRepository)(nil).IncrementStoryCount), ctx, userID)
}

// SetSeasonalTrophies mocks base method.
func (m *MockUserRepository) SetSeasonalTrophies(ctx context.Context, userID string, seasonal int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetSeasonalTrophies", ctx, userID, seasonal)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetSeasonalTrophies indicates an expected call of SetSeasonalTrophies.
func (mr *MockUserRepositoryMockRecorder) SetSeasonalTrophies(ctx, userID, seasonal any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetSeasonalTrophies", reflect.TypeOf((*MockUserRepository)(nil).SetSeasonalTrophies), ctx, userID, seasonal)
}

// SetStreak mocks base method.
func (m *MockUserRepository) SetStreak(ctx context.Context, userID string, streak int, activityAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStreak", ctx, userID, streak, activityAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetStreak indicates an expected call of SetStreak.
func (mr *MockUserRepositoryMockRecorder) SetStreak(ctx, userID, streak, activityAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStreak", reflect.TypeOf((*MockUserRepository)(nil).SetStreak), ctx, userID, streak, activityAt)
}

// TouchActivity mocks base method.
func (m *MockUserRepository) TouchActivity(ctx context.Context, userID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TouchActivity", ctx, userID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// TouchActivity indicates an expected call of TouchActivity.
func (mr *MockUserRepositoryMockRecorder) TouchActivity(ctx, userID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TouchActivity", reflect.TypeOf((*MockUserRepository)(nil).TouchActivity), ctx, userID, at)
}

// Update mocks base method.
func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockUserRepositoryMockRecorder) Update(ctx, user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockUserRepository)(nil).Update), ctx, user)
}
