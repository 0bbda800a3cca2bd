package services

import (
	"context"
	"fmt"
	"log/slog"

	"digibayt/internal/domain/models"
	"digibayt/internal/lib/logger/sl"
	"digibayt/internal/lib/slug"
	"digibayt/internal/repository"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
)

type AuthorService struct {
	log  *slog.Logger
	repo repository.AuthorRepository
}

func NewAuthorService(log *slog.Logger, repo repository.AuthorRepository) *AuthorService {
	return &AuthorService{
		log:  log,
		repo: repo,
	}
}

func (s *AuthorService) CreateAuthor(ctx context.Context, req dto.AuthorRequest) (*models.Author, error) {
	const op = "author_service.CreateAuthor"
	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	log.Info("creating author")

	author := models.Author{
		Name:   req.Name,
		Slug:   req.Slug,
		Bio:    req.Bio,
		Avatar: req.Avatar,
		Email:  req.Email,
		Social: req.Social,
		Role:   req.Role,
	}
	if author.Slug == "" {
		author.Slug = slug.Make(author.Name)
	}

	id, err := s.repo.SaveAuthor(ctx, author)
	if err != nil {
		log.Error("failed to create author", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("author created successfully", slog.String("author_id", id.String()))
	return s.repo.GetAuthorByID(ctx, id)
}

func (s *AuthorService) UpdateAuthor(ctx context.Context, authorID uuid.UUID, req dto.AuthorRequest) (*models.Author, error) {
	const op = "author_service.UpdateAuthor"
	log := s.log.With(slog.String("op", op), slog.String("author_id", authorID.String()))

	existing, err := s.repo.GetAuthorByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	existing.Name = req.Name
	existing.Slug = req.Slug
	if existing.Slug == "" {
		existing.Slug = slug.Make(req.Name)
	}
	existing.Bio = req.Bio
	existing.Avatar = req.Avatar
	existing.Email = req.Email
	existing.Social = req.Social
	existing.Role = req.Role

	if err := s.repo.UpdateAuthor(ctx, *existing); err != nil {
		log.Error("failed to update author", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.GetAuthorByID(ctx, authorID)
}

func (s *AuthorService) DeleteAuthor(ctx context.Context, authorID uuid.UUID) error {
	const op = "author_service.DeleteAuthor"

	if err := s.repo.DeleteAuthor(ctx, authorID); err != nil {
		s.log.Error("failed to delete author", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *AuthorService) GetAuthor(ctx context.Context, identifier string) (*models.Author, error) {
	const op = "author_service.GetAuthor"

	author, err := s.repo.GetAuthorByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return author, nil
}

func (s *AuthorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	const op = "author_service.ListAuthors"

	authors, err := s.repo.GetAuthors(ctx)
	if err != nil {
		s.log.Error("failed to list authors", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return authors, nil
}
