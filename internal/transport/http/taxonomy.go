package http

import (
	"log/slog"
	"net/http"

	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) CreateCategory(c echo.Context) error {
	const op = "http.routers.CreateCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CategoryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	category, err := r.Taxonomy.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(category))
}

func (r *Routers) UpdateCategory(c echo.Context) error {
	const op = "http.routers.UpdateCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID, err := parseUUIDParam(c, "category_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	var req dto.CategoryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	category, err := r.Taxonomy.UpdateCategory(c.Request().Context(), categoryID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(category))
}

func (r *Routers) DeleteCategory(c echo.Context) error {
	const op = "http.routers.DeleteCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID, err := parseUUIDParam(c, "category_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	if err := r.Taxonomy.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) GetCategory(c echo.Context) error {
	const op = "http.routers.GetCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	category, err := r.Taxonomy.GetCategory(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(category))
}

func (r *Routers) ListCategories(c echo.Context) error {
	const op = "http.routers.ListCategories"

	log := r.log.With(
		slog.String("op", op),
	)

	categories, err := r.Taxonomy.ListCategories(c.Request().Context())
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(categories))
}

func (r *Routers) CreateTag(c echo.Context) error {
	const op = "http.routers.CreateTag"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.TagRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	tag, err := r.Taxonomy.CreateTag(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(tag))
}

func (r *Routers) UpdateTag(c echo.Context) error {
	const op = "http.routers.UpdateTag"

	log := r.log.With(
		slog.String("op", op),
	)

	tagID, err := parseUUIDParam(c, "tag_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid tag ID format"))
	}

	var req dto.TagRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	tag, err := r.Taxonomy.UpdateTag(c.Request().Context(), tagID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(tag))
}

func (r *Routers) DeleteTag(c echo.Context) error {
	const op = "http.routers.DeleteTag"

	log := r.log.With(
		slog.String("op", op),
	)

	tagID, err := parseUUIDParam(c, "tag_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid tag ID format"))
	}

	if err := r.Taxonomy.DeleteTag(c.Request().Context(), tagID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) GetTag(c echo.Context) error {
	const op = "http.routers.GetTag"

	log := r.log.With(
		slog.String("op", op),
	)

	tag, err := r.Taxonomy.GetTag(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(tag))
}

func (r *Routers) ListTags(c echo.Context) error {
	const op = "http.routers.ListTags"

	log := r.log.With(
		slog.String("op", op),
	)

	tags, err := r.Taxonomy.ListTags(c.Request().Context())
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(tags))
}
