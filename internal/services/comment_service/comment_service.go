package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"digibayt/internal/domain/models"
	"digibayt/internal/lib/logger/sl"
	"digibayt/internal/repository"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
)

type CommentService struct {
	log  *slog.Logger
	repo repository.CommentRepository
}

func NewCommentService(log *slog.Logger, repo repository.CommentRepository) *CommentService {
	return &CommentService{
		log:  log,
		repo: repo,
	}
}

// SubmitComment accepts a visitor comment. It enters the moderation queue
// unapproved and stays invisible until an admin approves it. A reply to an
// unapproved or missing parent is rejected.
func (s *CommentService) SubmitComment(ctx context.Context, req dto.CreateCommentRequest) (*models.Comment, error) {
	const op = "comment_service.SubmitComment"
	log := s.log.With(
		slog.String("op", op),
		slog.String("post_id", req.PostID.String()),
	)

	log.Info("new comment submission")

	postType := models.PostType(req.PostType)
	if !postType.Valid() {
		return nil, fmt.Errorf("%s: invalid post type %q", op, req.PostType)
	}

	if req.ParentID != nil {
		parent, err := s.repo.GetCommentByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: parent comment: %w", op, err)
			}
			log.Error("failed to load parent comment", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !parent.IsApproved {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrCommentNotApproved)
		}
		if parent.PostID != req.PostID {
			return nil, fmt.Errorf("%s: parent belongs to another post", op)
		}
	}

	comment := models.Comment{
		PostID:      req.PostID,
		PostType:    postType,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
		IsApproved:  false,
		ParentID:    req.ParentID,
	}

	id, err := s.repo.SaveComment(ctx, comment)
	if err != nil {
		log.Error("failed to save comment", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("comment queued for moderation", slog.String("comment_id", id.String()))
	return s.repo.GetCommentByID(ctx, id)
}

func (s *CommentService) ApproveComment(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	const op = "comment_service.ApproveComment"
	log := s.log.With(slog.String("op", op), slog.String("comment_id", commentID.String()))

	if err := s.repo.SetApproved(ctx, commentID, true); err != nil {
		log.Error("failed to approve comment", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("comment approved")
	return s.repo.GetCommentByID(ctx, commentID)
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	const op = "comment_service.DeleteComment"
	log := s.log.With(slog.String("op", op), slog.String("comment_id", commentID.String()))

	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		log.Error("failed to delete comment", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("comment deleted")
	return nil
}

// ListComments returns approved comments for a post. With pending set and
// an admin caller it returns the full moderation queue instead.
func (s *CommentService) ListComments(ctx context.Context, query dto.ListCommentsQuery, isAdmin bool) ([]models.Comment, error) {
	const op = "comment_service.ListComments"
	log := s.log.With(slog.String("op", op), slog.String("post_id", query.PostID.String()))

	approvedOnly := !(isAdmin && query.Pending)

	comments, err := s.repo.GetComments(ctx, query.PostID, models.PostType(query.PostType), approvedOnly)
	if err != nil {
		log.Error("failed to list comments", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}
