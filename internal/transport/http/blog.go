package http

import (
	"log/slog"
	"net/http"

	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) CreatePost(c echo.Context) error {
	const op = "http.routers.CreatePost"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateBlogPostRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", slog.String("title", req.Title))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	post, err := r.Blog.CreatePost(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(post))
}

func (r *Routers) UpdatePost(c echo.Context) error {
	const op = "http.routers.UpdatePost"

	log := r.log.With(
		slog.String("op", op),
	)

	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid post ID format"))
	}

	var req dto.UpdateBlogPostRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	post, err := r.Blog.UpdatePost(c.Request().Context(), postID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(post))
}

// GetPost serves both the public post page and the admin editor. The
// identifier is a slug or a raw id; drafts require an admin session.
func (r *Routers) GetPost(c echo.Context) error {
	const op = "http.routers.GetPost"

	log := r.log.With(
		slog.String("op", op),
	)

	identifier := c.Param("identifier")
	if identifier == "" {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	post, err := r.Blog.GetPost(c.Request().Context(), identifier, adminSession(c))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(post))
}

func (r *Routers) ListPosts(c echo.Context) error {
	const op = "http.routers.ListPosts"

	log := r.log.With(
		slog.String("op", op),
	)

	var query dto.ListPostsQuery

	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	posts, err := r.Blog.ListPosts(c.Request().Context(), query, adminSession(c))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(posts))
}

func (r *Routers) DeletePost(c echo.Context) error {
	const op = "http.routers.DeletePost"

	log := r.log.With(
		slog.String("op", op),
	)

	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid post ID format"))
	}

	if err := r.Blog.DeletePost(c.Request().Context(), postID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) CreateAuthor(c echo.Context) error {
	const op = "http.routers.CreateAuthor"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.AuthorRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	author, err := r.Authors.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(author))
}

func (r *Routers) UpdateAuthor(c echo.Context) error {
	const op = "http.routers.UpdateAuthor"

	log := r.log.With(
		slog.String("op", op),
	)

	authorID, err := parseUUIDParam(c, "author_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid author ID format"))
	}

	var req dto.AuthorRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	author, err := r.Authors.UpdateAuthor(c.Request().Context(), authorID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(author))
}

func (r *Routers) DeleteAuthor(c echo.Context) error {
	const op = "http.routers.DeleteAuthor"

	log := r.log.With(
		slog.String("op", op),
	)

	authorID, err := parseUUIDParam(c, "author_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid author ID format"))
	}

	if err := r.Authors.DeleteAuthor(c.Request().Context(), authorID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) GetAuthor(c echo.Context) error {
	const op = "http.routers.GetAuthor"

	log := r.log.With(
		slog.String("op", op),
	)

	author, err := r.Authors.GetAuthor(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(author))
}

func (r *Routers) ListAuthors(c echo.Context) error {
	const op = "http.routers.ListAuthors"

	log := r.log.With(
		slog.String("op", op),
	)

	authors, err := r.Authors.ListAuthors(c.Request().Context())
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(authors))
}
