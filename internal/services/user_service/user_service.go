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
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSetupAlreadyDone   = errors.New("setup already completed")
)

// TokenIssuer is the slice of the token service the user service needs.
type TokenIssuer interface {
	GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error)
	RevokeAll(ctx context.Context, userID string) error
}

type UserService struct {
	log    *slog.Logger
	repo   repository.UserRepository
	tokens TokenIssuer
}

func NewUserService(log *slog.Logger, repo repository.UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{
		log:    log,
		repo:   repo,
		tokens: tokens,
	}
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	const op = "user_service.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login user")

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.tokens.GenerateTokens(ctx, *user)
	if err != nil {
		log.Error("failed to generate tokens", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		// login still succeeds, the timestamp is advisory
		log.Warn("failed to touch last login", sl.Err(err))
	}

	log.Info("user logged in successfully")
	return pair, nil
}

// Setup bootstraps the first superadmin. It self-gates on the user count
// so the endpoint goes dead once any account exists.
func (s *UserService) Setup(ctx context.Context, req dto.SetupRequest) (*models.TokenPair, error) {
	const op = "user_service.Setup"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		log.Error("failed to count users", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		log.Warn("setup attempted on an initialized instance")
		return nil, fmt.Errorf("%s: %w", op, ErrSetupAlreadyDone)
	}

	log.Info("bootstrapping first superadmin")

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: passHash,
		Role:     models.RoleSuperadmin,
	})
	if err != nil {
		log.Error("failed to save user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("superadmin created", slog.String("user_id", id.String()))
	return s.tokens.GenerateTokens(ctx, *user)
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	const op = "user_service.CreateUser"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	log.Info("creating user")

	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%s: invalid role %q", op, req.Role)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: passHash,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exists")
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Error("failed to save user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user created", slog.String("user_id", id.String()))
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, userID uuid.UUID, req dto.UpdateUserRequest) (*models.User, error) {
	const op = "user_service.UpdateUser"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	existing, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Role != nil {
		newRole := models.Role(*req.Role)
		if !newRole.Valid() {
			return nil, fmt.Errorf("%s: invalid role %q", op, *req.Role)
		}

		// demoting the only superadmin would lock everyone out of user
		// management
		if existing.Role == models.RoleSuperadmin && newRole != models.RoleSuperadmin {
			if err := s.guardLastSuperadmin(ctx, op); err != nil {
				log.Warn("rejected demotion of last superadmin")
				return nil, err
			}
		}

		existing.Role = newRole
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Password != nil {
		passHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		existing.Password = passHash
	} else {
		existing.Password = nil
	}

	if err := s.repo.UpdateUser(ctx, *existing); err != nil {
		log.Error("failed to update user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user updated")
	return s.repo.GetUserByID(ctx, userID)
}

func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	const op = "user_service.DeleteUser"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	existing, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if existing.Role == models.RoleSuperadmin {
		if err := s.guardLastSuperadmin(ctx, op); err != nil {
			log.Warn("rejected deletion of last superadmin")
			return err
		}
	}

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		log.Error("failed to delete user", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.tokens.RevokeAll(ctx, userID.String()); err != nil {
		log.Warn("failed to revoke sessions of deleted user", sl.Err(err))
	}

	log.Info("user deleted")
	return nil
}

func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const op = "user_service.GetUser"

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "user_service.ListUsers"

	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		s.log.Error("failed to list users", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (s *UserService) guardLastSuperadmin(ctx context.Context, op string) error {
	count, err := s.repo.CountByRole(ctx, models.RoleSuperadmin)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count <= 1 {
		return fmt.Errorf("%s: %w", op, storage.ErrLastSuperadmin)
	}

	return nil
}
