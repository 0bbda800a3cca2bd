package http

import (
	"log/slog"
	"net/http"

	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) CreateServiceCategory(c echo.Context) error {
	const op = "http.routers.CreateServiceCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ServiceCategoryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	sc, err := r.Catalog.CreateServiceCategory(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(sc))
}

func (r *Routers) UpdateServiceCategory(c echo.Context) error {
	const op = "http.routers.UpdateServiceCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	scID, err := parseUUIDParam(c, "category_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	var req dto.ServiceCategoryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	sc, err := r.Catalog.UpdateServiceCategory(c.Request().Context(), scID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sc))
}

func (r *Routers) DeleteServiceCategory(c echo.Context) error {
	const op = "http.routers.DeleteServiceCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	scID, err := parseUUIDParam(c, "category_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	if err := r.Catalog.DeleteServiceCategory(c.Request().Context(), scID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) GetServiceCategory(c echo.Context) error {
	const op = "http.routers.GetServiceCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	sc, err := r.Catalog.GetServiceCategory(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sc))
}

// ListServiceCategories lists active categories publicly; an admin
// session sees inactive ones too.
func (r *Routers) ListServiceCategories(c echo.Context) error {
	const op = "http.routers.ListServiceCategories"

	log := r.log.With(
		slog.String("op", op),
	)

	categories, err := r.Catalog.ListServiceCategories(c.Request().Context(), adminSession(c))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(categories))
}
