package http

import (
	"log/slog"
	"net/http"

	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) CreatePortfolioItem(c echo.Context) error {
	const op = "http.routers.CreatePortfolioItem"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreatePortfolioItemRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", slog.String("title", req.Title))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	item, err := r.Portfolio.CreateItem(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

func (r *Routers) UpdatePortfolioItem(c echo.Context) error {
	const op = "http.routers.UpdatePortfolioItem"

	log := r.log.With(
		slog.String("op", op),
	)

	itemID, err := parseUUIDParam(c, "item_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid item ID format"))
	}

	var req dto.UpdatePortfolioItemRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	item, err := r.Portfolio.UpdateItem(c.Request().Context(), itemID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) GetPortfolioItem(c echo.Context) error {
	const op = "http.routers.GetPortfolioItem"

	log := r.log.With(
		slog.String("op", op),
	)

	identifier := c.Param("identifier")
	if identifier == "" {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	item, err := r.Portfolio.GetItem(c.Request().Context(), identifier, adminSession(c))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) ListPortfolioItems(c echo.Context) error {
	const op = "http.routers.ListPortfolioItems"

	log := r.log.With(
		slog.String("op", op),
	)

	var query dto.ListPortfolioQuery

	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	items, err := r.Portfolio.ListItems(c.Request().Context(), query, adminSession(c))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(items))
}

func (r *Routers) DeletePortfolioItem(c echo.Context) error {
	const op = "http.routers.DeletePortfolioItem"

	log := r.log.With(
		slog.String("op", op),
	)

	itemID, err := parseUUIDParam(c, "item_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid item ID format"))
	}

	if err := r.Portfolio.DeleteItem(c.Request().Context(), itemID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) CreatePortfolioCategory(c echo.Context) error {
	const op = "http.routers.CreatePortfolioCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.PortfolioCategoryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	category, err := r.Portfolio.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(category))
}

func (r *Routers) UpdatePortfolioCategory(c echo.Context) error {
	const op = "http.routers.UpdatePortfolioCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID, err := parseUUIDParam(c, "category_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	var req dto.PortfolioCategoryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	category, err := r.Portfolio.UpdateCategory(c.Request().Context(), categoryID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(category))
}

func (r *Routers) DeletePortfolioCategory(c echo.Context) error {
	const op = "http.routers.DeletePortfolioCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	categoryID, err := parseUUIDParam(c, "category_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid category ID format"))
	}

	if err := r.Portfolio.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) ListPortfolioCategories(c echo.Context) error {
	const op = "http.routers.ListPortfolioCategories"

	log := r.log.With(
		slog.String("op", op),
	)

	categories, err := r.Portfolio.ListCategories(c.Request().Context())
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(categories))
}
