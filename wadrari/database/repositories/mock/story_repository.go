package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/SimaxBen/wadrari/wadrari/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockStoryRepository is a mock of StoryRepository interface.
type MockStoryRepository struct {
	ctrl     *gomock.Controller
	recorder *MockStoryRepositoryMockRecorder
	isgomock struct{}
}

// MockStoryRepositoryMockRecorder is the mock recorder for MockStoryRepository.
type MockStoryRepositoryMockRecorder struct {
	mock *MockStoryRepository
}

// NewMockStoryRepository creates a new mock instance.
func NewMockStoryRepository(ctrl *gomock.Controller) *MockStoryRepository {
	mock := &MockStoryRepository{ctrl: ctrl}
	mock.recorder = &MockStoryRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStoryRepository) EXPECT() *MockStoryRepositoryMockRecorder {
	return m.recorder
}

// AddComment mocks base method.
func (m *MockStoryRepository) AddComment(ctx context.Context, comment *models.StoryComment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddComment", ctx, comment)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddComment indicates an expected call of AddComment.
func (mr *MockStoryRepositoryMockRecorder) AddComment(ctx, comment any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddComment", reflect.TypeOf((*MockStoryRepository)(nil).AddComment), ctx, comment)
}

// AddReaction mocks base method.
func (m *MockStoryRepository) AddReaction(ctx context.Context, reaction *models.StoryReaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddReaction", ctx, reaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddReaction indicates an expected call of AddReaction.
func (mr *MockStoryRepositoryMockRecorder) AddReaction(ctx, reaction any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddReaction", reflect.TypeOf((*MockStoryRepository)(nil).AddReaction), ctx, reaction)
}

// CountReactions mocks base method.
func (m *MockStoryRepository) CountReactions(ctx context.Context, storyID, kind string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountReactions", ctx, storyID, kind)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountReactions indicates an expected call of CountReactions.
func (mr *MockStoryRepositoryMockRecorder) CountReactions(ctx, storyID, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountReactions", reflect.TypeOf((*MockStoryRepository)(nil).CountReactions), ctx, storyID, kind)
}

// Create mocks base method.
func (m *MockStoryRepository) Create(ctx context.Context, story *models.Story) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, story)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockStoryRepositoryMockRecorder) Create(ctx, story any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockStoryRepository)(nil).Create), ctx, story)
}

// DeleteReaction mocks base method.
func (m *MockStoryRepository) DeleteReaction(ctx context.Context, storyID, userID, kind string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteReaction", ctx, storyID, userID, kind)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteReaction indicates an expected call of DeleteReaction.
func (mr *MockStoryRepositoryMockRecorder) DeleteReaction(ctx, storyID, userID, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteReaction", reflect.TypeOf((*MockStoryRepository)(nil).DeleteReaction), ctx, storyID, userID, kind)
}

// GetByID mocks base method.
func (m *MockStoryRepository) GetByID(ctx context.Context, id string) (*models.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockStoryRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockStoryRepository)(nil).GetByID), ctx, id)
}

// GetComments mocks base method.
func (m *MockStoryRepository) GetComments(ctx context.Context, storyID string) ([]*models.StoryComment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetComments", ctx, storyID)
	ret0, _ := ret[0].([]*models.StoryComment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetComments indicates an expected call of GetComments.
func (mr *MockStoryRepositoryMockRecorder) GetComments(ctx, storyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetComments", reflect.TypeOf((*MockStoryRepository)(nil).GetComments), ctx, storyID)
}

// GetReactions mocks base method.
func (m *MockStoryRepository) GetReactions(ctx context.Context, storyID string) ([]*models.StoryReaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetReactions", ctx, storyID)
	ret0, _ := ret[0].([]*models.StoryReaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetReactions indicates an expected call of GetReactions.
func (mr *MockStoryRepositoryMockRecorder) GetReactions(ctx, storyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetReactions", reflect.TypeOf((*MockStoryRepository)(nil).GetReactions), ctx, storyID)
}

// HasReaction mocks base method.
func (m *MockStoryRepository) HasReaction(ctx context.Context, storyID, userID, kind string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasReaction", ctx, storyID, userID, kind)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasReaction indicates an expected call of HasReaction.
func (mr *MockStoryRepositoryMockRecorder) HasReaction(ctx, storyID, userID, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasReaction", reflect.TypeOf((*MockStoryRepository)(nil).HasReaction), ctx, storyID, userID, kind)
}

// ListRecent mocks base method.
func (m *MockStoryRepository) ListRecent(ctx context.Context, limit int) ([]*models.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecent", ctx, limit)
	ret0, _ := ret[0].([]*models.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecent indicates an expected call of ListRecent.
func (mr *MockStoryRepositoryMockRecorder) ListRecent(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecent", reflect.TypeOf((*MockStoryRepository)(nil).ListRecent), ctx, limit)
}
