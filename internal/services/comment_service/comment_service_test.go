package services

import (
	"context"
	"log/slog"
	"testing"

	"digibayt/internal/domain/models"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment models.Comment) (uuid.UUID, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCommentRepository) SetApproved(ctx context.Context, commentID uuid.UUID, approved bool) error {
	args := m.Called(ctx, commentID, approved)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) GetCommentByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetComments(ctx context.Context, postID uuid.UUID, postType models.PostType, approvedOnly bool) ([]models.Comment, error) {
	args := m.Called(ctx, postID, postType, approvedOnly)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func TestSubmitComment_EntersQueueUnapproved(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCommentRepository)
	service := NewCommentService(slog.Default(), repo)

	postID := uuid.New()
	commentID := uuid.New()

	repo.On("SaveComment", ctx, mock.MatchedBy(func(c models.Comment) bool {
		return !c.IsApproved && c.PostID == postID && c.PostType == models.PostTypeBlog
	})).Return(commentID, nil)
	repo.On("GetCommentByID", ctx, commentID).Return(&models.Comment{ID: commentID, PostID: postID}, nil)

	comment, err := service.SubmitComment(ctx, dto.CreateCommentRequest{
		PostID:      postID,
		PostType:    "blog",
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Content:     "Nice write-up!",
	})

	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
	repo.AssertExpectations(t)
}

func TestSubmitComment_ReplyToUnapprovedParentRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCommentRepository)
	service := NewCommentService(slog.Default(), repo)

	postID := uuid.New()
	parentID := uuid.New()

	repo.On("GetCommentByID", ctx, parentID).Return(&models.Comment{
		ID:         parentID,
		PostID:     postID,
		IsApproved: false,
	}, nil)

	_, err := service.SubmitComment(ctx, dto.CreateCommentRequest{
		PostID:      postID,
		PostType:    "blog",
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Content:     "reply",
		ParentID:    &parentID,
	})

	assert.ErrorIs(t, err, storage.ErrCommentNotApproved)
	repo.AssertNotCalled(t, "SaveComment")
}

func TestSubmitComment_ParentOnOtherPostRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCommentRepository)
	service := NewCommentService(slog.Default(), repo)

	parentID := uuid.New()
	repo.On("GetCommentByID", ctx, parentID).Return(&models.Comment{
		ID:         parentID,
		PostID:     uuid.New(),
		IsApproved: true,
	}, nil)

	_, err := service.SubmitComment(ctx, dto.CreateCommentRequest{
		PostID:      uuid.New(),
		PostType:    "blog",
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Content:     "reply",
		ParentID:    &parentID,
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "SaveComment")
}

func TestApproveComment(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCommentRepository)
	service := NewCommentService(slog.Default(), repo)

	commentID := uuid.New()
	repo.On("SetApproved", ctx, commentID, true).Return(nil)
	repo.On("GetCommentByID", ctx, commentID).Return(&models.Comment{ID: commentID, IsApproved: true}, nil)

	comment, err := service.ApproveComment(ctx, commentID)

	require.NoError(t, err)
	assert.True(t, comment.IsApproved)
	repo.AssertExpectations(t)
}

func TestListComments_PublicOnlyApproved(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCommentRepository)
	service := NewCommentService(slog.Default(), repo)

	postID := uuid.New()
	repo.On("GetComments", ctx, postID, models.PostTypeBlog, true).Return([]models.Comment{}, nil)

	// pending flag without an admin session is ignored
	_, err := service.ListComments(ctx, dto.ListCommentsQuery{PostID: postID, PostType: "blog", Pending: true}, false)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListComments_AdminSeesQueue(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCommentRepository)
	service := NewCommentService(slog.Default(), repo)

	postID := uuid.New()
	repo.On("GetComments", ctx, postID, models.PostTypeBlog, false).Return([]models.Comment{}, nil)

	_, err := service.ListComments(ctx, dto.ListCommentsQuery{PostID: postID, PostType: "blog", Pending: true}, true)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
