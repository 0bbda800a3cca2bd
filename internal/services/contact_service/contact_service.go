package services

import (
	"context"
	"fmt"
	"log/slog"

	"digibayt/internal/domain/models"
	"digibayt/internal/lib/logger/sl"
	"digibayt/internal/repository"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
)

type ContactService struct {
	log  *slog.Logger
	repo repository.ContactRepository
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository) *ContactService {
	return &ContactService{
		log:  log,
		repo: repo,
	}
}

// SubmitContact is the public intake path. Every submission starts its
// life as "new" regardless of what the client sent.
func (s *ContactService) SubmitContact(ctx context.Context, req dto.CreateContactRequest) (*models.ContactSubmission, error) {
	const op = "contact_service.SubmitContact"
	log := s.log.With(slog.String("op", op), slog.String("email", req.Email))

	log.Info("new contact submission")

	sub := models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Service: req.Service,
		Source:  req.Source,
		Status:  models.ContactStatusNew,
	}

	id, err := s.repo.SaveSubmission(ctx, sub)
	if err != nil {
		log.Error("failed to save submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("submission saved", slog.String("submission_id", id.String()))
	return s.repo.GetSubmissionByID(ctx, id)
}

func (s *ContactService) UpdateSubmission(ctx context.Context, subID uuid.UUID, req dto.UpdateContactRequest) (*models.ContactSubmission, error) {
	const op = "contact_service.UpdateSubmission"
	log := s.log.With(slog.String("op", op), slog.String("submission_id", subID.String()))

	status := models.ContactStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidStatus)
	}

	if err := s.repo.UpdateSubmission(ctx, subID, status, req.Notes); err != nil {
		log.Error("failed to update submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("submission updated", slog.String("status", string(status)))
	return s.repo.GetSubmissionByID(ctx, subID)
}

func (s *ContactService) DeleteSubmission(ctx context.Context, subID uuid.UUID) error {
	const op = "contact_service.DeleteSubmission"

	if err := s.repo.DeleteSubmission(ctx, subID); err != nil {
		s.log.Error("failed to delete submission", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ContactService) GetSubmission(ctx context.Context, subID uuid.UUID) (*models.ContactSubmission, error) {
	const op = "contact_service.GetSubmission"

	sub, err := s.repo.GetSubmissionByID(ctx, subID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (s *ContactService) ListSubmissions(ctx context.Context, query dto.ListContactsQuery) ([]models.ContactSubmission, int, error) {
	const op = "contact_service.ListSubmissions"
	log := s.log.With(slog.String("op", op))

	subs, total, err := s.repo.GetSubmissions(ctx, models.ContactStatus(query.Status), query.Page, query.PerPage)
	if err != nil {
		log.Error("failed to list submissions", sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return subs, total, nil
}
