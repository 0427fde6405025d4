package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/SimaxBen/wadrari/wadrari/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockBadgeRepository is a mock of BadgeRepository interface.
type MockBadgeRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBadgeRepositoryMockRecorder
	isgomock struct{}
}

// MockBadgeRepositoryMockRecorder is the mock recorder for MockBadgeRepository.
type MockBadgeRepositoryMockRecorder struct {
	mock *MockBadgeRepository
}

// NewMockBadgeRepository creates a new mock instance.
func NewMockBadgeRepository(ctrl *gomock.Controller) *MockBadgeRepository {
	mock := &MockBadgeRepository{ctrl: ctrl}
	mock.recorder = &MockBadgeRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBadgeRepository) EXPECT() *MockBadgeRepositoryMockRecorder {
	return m.recorder
}

// GetByUser mocks base method.
func (m *MockBadgeRepository) GetByUser(ctx context.Context, userID string) ([]*models.Badge, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUser", ctx, userID)
	ret0, _ := ret[0].([]*models.Badge)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUser indicates an expected call of GetByUser.
func (mr *MockBadgeRepositoryMockRecorder) GetByUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUser", reflect.TypeOf((*MockBadgeRepository)(nil).GetByUser), ctx, userID)
}

// Grant mocks base method.
func (m *MockBadgeRepository) Grant(ctx context.Context, userID, name string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Grant", ctx, userID, name)
	ret0, _ := ret[0].(error)
	return ret0
}

// Grant indicates an expected call of Grant.
func (mr *MockBadgeRepositoryMockRecorder) Grant(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Grant", reflect.TypeOf((*MockBadgeRepository)(nil).Grant), ctx, userID, name)
}

// HasBadge mocks base method.
func (m *MockBadgeRepository) HasBadge(ctx context.Context, userID, name string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasBadge", ctx, userID, name)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasBadge indicates an expected call of HasBadge.
func (mr *MockBadgeRepositoryMockRecorder) HasBadge(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasBadge", reflect.TypeOf((*MockBadgeRepository)(nil).HasBadge), ctx, userID, name)
}
