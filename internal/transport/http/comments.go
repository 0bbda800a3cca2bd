package http

import (
	"log/slog"
	"net/http"

	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) SubmitComment(c echo.Context) error {
	const op = "http.routers.SubmitComment"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateCommentRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", slog.String("post_id", req.PostID.String()))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	comment, err := r.Comments.SubmitComment(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(comment))
}

func (r *Routers) ApproveComment(c echo.Context) error {
	const op = "http.routers.ApproveComment"

	log := r.log.With(
		slog.String("op", op),
	)

	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid comment ID format"))
	}

	comment, err := r.Comments.ApproveComment(c.Request().Context(), commentID)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(comment))
}

func (r *Routers) DeleteComment(c echo.Context) error {
	const op = "http.routers.DeleteComment"

	log := r.log.With(
		slog.String("op", op),
	)

	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid comment ID format"))
	}

	if err := r.Comments.DeleteComment(c.Request().Context(), commentID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

// ListComments returns approved comments for a post. Admin sessions can
// pass pending=true to see the moderation queue.
func (r *Routers) ListComments(c echo.Context) error {
	const op = "http.routers.ListComments"

	log := r.log.With(
		slog.String("op", op),
	)

	var query dto.ListCommentsQuery

	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	comments, err := r.Comments.ListComments(c.Request().Context(), query, adminSession(c))
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(comments))
}
