package http

import (
	"log/slog"
	"net/http"
	"time"

	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) ListMedia(c echo.Context) error {
	const op = "http.routers.ListMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	var query dto.ListMediaQuery

	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	objects, err := r.Media.ListMedia(c.Request().Context(), query.Bucket, query.Prefix, query.Search)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]interface{}{
		"objects": objects,
		"buckets": r.Media.Buckets(),
	}))
}

func (r *Routers) UploadMedia(c echo.Context) error {
	const op = "http.routers.UploadMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	startTime := time.Now()
	defer func() {
		log.Info("Request completed",
			"duration", time.Since(startTime))
	}()

	var req dto.UploadMediaRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "file is required"))
	}

	obj, err := r.Media.Upload(c.Request().Context(), file, req.Bucket, req.Prefix)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(obj))
}

func (r *Routers) DeleteMedia(c echo.Context) error {
	const op = "http.routers.DeleteMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.DeleteMediaRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	if err := r.Media.Delete(c.Request().Context(), req.Bucket, req.Key); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) CreateMediaFolder(c echo.Context) error {
	const op = "http.routers.CreateMediaFolder"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateFolderRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	if err := r.Media.CreateFolder(c.Request().Context(), req.Bucket, req.Folder); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(nil))
}
