package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/SimaxBen/wadrari/wadrari/database/models"
	repositories "github.com/SimaxBen/wadrari/wadrari/database/repositories"
	gomock "go.uber.org/mock/gomock"
)

// MockActivityRepository is a mock of ActivityRepository interface.
type MockActivityRepository struct {
	ctrl     *gomock.Controller
	recorder *MockActivityRepositoryMockRecorder
	isgomock struct{}
}

// MockActivityRepositoryMockRecorder is the mock recorder for MockActivityRepository.
type MockActivityRepositoryMockRecorder struct {
	mock *MockActivityRepository
}

// NewMockActivityRepository creates a new mock instance.
func NewMockActivityRepository(ctrl *gomock.Controller) *MockActivityRepository {
	mock := &MockActivityRepository{ctrl: ctrl}
	mock.recorder = &MockActivityRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockActivityRepository) EXPECT() *MockActivityRepositoryMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockActivityRepository) Get(ctx context.Context, userID, day string) (*models.DailyActivity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, userID, day)
	ret0, _ := ret[0].(*models.DailyActivity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockActivityRepositoryMockRecorder) Get(ctx, userID, day any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockActivityRepository)(nil).Get), ctx, userID, day)
}

// Increment mocks base method.
func (m *MockActivityRepository) Increment(ctx context.Context, userID, day string, delta repositories.ActivityDelta) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Increment", ctx, userID, day, delta)
	ret0, _ := ret[0].(error)
	return ret0
}

// Increment indicates an expected call of Increment.
func (mr *MockActivityRepositoryMockRecorder) Increment(ctx, userID, day, delta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Increment", reflect.TypeOf((*MockActivityRepository)(nil).Increment), ctx, userID, day, delta)
}
