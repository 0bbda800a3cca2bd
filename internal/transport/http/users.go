package http

import (
	"errors"
	"log/slog"
	"net/http"

	appmw "digibayt/internal/middleware"
	userservice "digibayt/internal/services/user_service"
	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", slog.String("email", req.Email))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	pair, err := r.Users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}
		return r.respondError(c, log, err)
	}

	storeSessionToken(c, pair.AccessToken)

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{
		"user_id":       pair.UserID,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}))
}

func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.RefreshRequest
	// the body is optional, logout without it only clears the cookie
	_ = c.Bind(&req)

	if meta := appmw.Identity(c); meta != nil && req.RefreshToken != "" {
		if err := r.Tokens.RevokeToken(c.Request().Context(), meta.UserID, req.RefreshToken); err != nil {
			log.Warn("failed to revoke refresh token", slog.String("error", err.Error()))
		}
	}

	clearSessionToken(c)

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.RefreshRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	pair, err := r.Tokens.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		log.Warn("refresh failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	storeSessionToken(c, pair.AccessToken)

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{
		"user_id":       pair.UserID,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}))
}

// Setup bootstraps the first superadmin on a fresh install. The user
// service rejects it once any account exists.
func (r *Routers) Setup(c echo.Context) error {
	const op = "http.routers.Setup"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SetupRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	pair, err := r.Users.Setup(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, userservice.ErrSetupAlreadyDone) {
			return c.JSON(http.StatusConflict, response.ErrorResponseWithDetails("setup_done", "Instance already initialized"))
		}
		return r.respondError(c, log, err)
	}

	storeSessionToken(c, pair.AccessToken)

	return c.JSON(http.StatusCreated, response.SuccessResponse(map[string]string{
		"user_id":       pair.UserID,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}))
}

// Me returns the identity the guard verified for this request.
func (r *Routers) Me(c echo.Context) error {
	meta := appmw.Identity(c)
	if meta == nil {
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(meta))
}

func (r *Routers) CreateUser(c echo.Context) error {
	const op = "http.routers.CreateUser"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateUserRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	user, err := r.Users.CreateUser(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(user))
}

func (r *Routers) UpdateUser(c echo.Context) error {
	const op = "http.routers.UpdateUser"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid user ID format"))
	}

	var req dto.UpdateUserRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	user, err := r.Users.UpdateUser(c.Request().Context(), userID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(user))
}

func (r *Routers) DeleteUser(c echo.Context) error {
	const op = "http.routers.DeleteUser"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid user ID format"))
	}

	if err := r.Users.DeleteUser(c.Request().Context(), userID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) GetUser(c echo.Context) error {
	const op = "http.routers.GetUser"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid user ID format"))
	}

	user, err := r.Users.GetUser(c.Request().Context(), userID)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(user))
}

func (r *Routers) ListUsers(c echo.Context) error {
	const op = "http.routers.ListUsers"

	log := r.log.With(
		slog.String("op", op),
	)

	users, err := r.Users.ListUsers(c.Request().Context())
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(users))
}
