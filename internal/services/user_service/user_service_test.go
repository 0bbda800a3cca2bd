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
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role models.Role) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockTokenIssuer) RevokeAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func hashPassword(t *testing.T, password string) []byte {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewUserService(slog.Default(), repo, tokens)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Password: hashPassword(t, "correct-horse"),
		Role:     models.RoleAdmin,
	}
	pair := &models.TokenPair{UserID: user.ID.String(), AccessToken: "a", RefreshToken: "r"}

	repo.On("GetUserByEmail", ctx, user.Email).Return(user, nil)
	tokens.On("GenerateTokens", ctx, *user).Return(pair, nil)
	repo.On("TouchLastLogin", ctx, user.ID).Return(nil)

	got, err := service.Login(ctx, user.Email, "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, pair, got)
	repo.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewUserService(slog.Default(), repo, tokens)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Password: hashPassword(t, "correct-horse"),
	}
	repo.On("GetUserByEmail", ctx, user.Email).Return(user, nil)

	_, err := service.Login(ctx, user.Email, "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateTokens")
}

func TestLogin_UnknownUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewUserService(slog.Default(), repo, tokens)

	repo.On("GetUserByEmail", ctx, "nobody@example.com").Return(nil, storage.ErrUserNotFound)

	_, err := service.Login(ctx, "nobody@example.com", "whatever")

	// unknown user and wrong password are indistinguishable to the caller
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetup_FirstUserBecomesSuperadmin(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewUserService(slog.Default(), repo, tokens)

	newID := uuid.New()
	created := &models.User{ID: newID, Email: "boss@example.com", Role: models.RoleSuperadmin}
	pair := &models.TokenPair{UserID: newID.String(), AccessToken: "a", RefreshToken: "r"}

	repo.On("CountUsers", ctx).Return(0, nil)
	repo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
		return u.Role == models.RoleSuperadmin && len(u.Password) > 0
	})).Return(newID, nil)
	repo.On("GetUserByID", ctx, newID).Return(created, nil)
	tokens.On("GenerateTokens", ctx, *created).Return(pair, nil)

	got, err := service.Setup(ctx, dto.SetupRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "super-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, pair, got)
	repo.AssertExpectations(t)
}

func TestSetup_RejectedWhenUsersExist(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewUserService(slog.Default(), repo, new(MockTokenIssuer))

	repo.On("CountUsers", ctx).Return(3, nil)

	_, err := service.Setup(ctx, dto.SetupRequest{Name: "X", Email: "x@example.com", Password: "p"})

	assert.ErrorIs(t, err, ErrSetupAlreadyDone)
	repo.AssertNotCalled(t, "SaveUser")
}

func TestUpdateUser_LastSuperadminDemotionRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewUserService(slog.Default(), repo, new(MockTokenIssuer))

	userID := uuid.New()
	repo.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, Role: models.RoleSuperadmin}, nil)
	repo.On("CountByRole", ctx, models.RoleSuperadmin).Return(1, nil)

	role := "editor"
	_, err := service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Role: &role})

	assert.ErrorIs(t, err, storage.ErrLastSuperadmin)
	repo.AssertNotCalled(t, "UpdateUser")
}

func TestUpdateUser_DemotionAllowedWithAnotherSuperadmin(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewUserService(slog.Default(), repo, new(MockTokenIssuer))

	userID := uuid.New()
	repo.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, Role: models.RoleSuperadmin}, nil).Once()
	repo.On("CountByRole", ctx, models.RoleSuperadmin).Return(2, nil)
	repo.On("UpdateUser", ctx, mock.MatchedBy(func(u models.User) bool {
		return u.Role == models.RoleEditor
	})).Return(nil)
	repo.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, Role: models.RoleEditor}, nil)

	role := "editor"
	user, err := service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Role: &role})

	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, user.Role)
	repo.AssertExpectations(t)
}

func TestDeleteUser_LastSuperadminRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewUserService(slog.Default(), repo, new(MockTokenIssuer))

	userID := uuid.New()
	repo.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, Role: models.RoleSuperadmin}, nil)
	repo.On("CountByRole", ctx, models.RoleSuperadmin).Return(1, nil)

	err := service.DeleteUser(ctx, userID)

	assert.ErrorIs(t, err, storage.ErrLastSuperadmin)
	repo.AssertNotCalled(t, "DeleteUser")
}

func TestDeleteUser_RevokesSessions(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewUserService(slog.Default(), repo, tokens)

	userID := uuid.New()
	repo.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, Role: models.RoleEditor}, nil)
	repo.On("DeleteUser", ctx, userID).Return(nil)
	tokens.On("RevokeAll", ctx, userID.String()).Return(nil)

	require.NoError(t, service.DeleteUser(ctx, userID))
	tokens.AssertExpectations(t)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := NewUserService(slog.Default(), repo, new(MockTokenIssuer))

	repo.On("SaveUser", ctx, mock.AnythingOfType("models.User")).Return(uuid.Nil, storage.ErrUserExists)

	_, err := service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Dup",
		Email:    "dup@example.com",
		Password: "password1",
		Role:     "editor",
	})

	assert.ErrorIs(t, err, storage.ErrUserExists)
}
