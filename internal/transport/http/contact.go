package http

import (
	"log/slog"
	"net/http"

	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// SubmitContact is the only unauthenticated write endpoint besides comment
// submission, so validation is the whole gate here.
func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateContactRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", slog.String("email", req.Email))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	sub, err := r.Contacts.SubmitContact(c.Request().Context(), req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(sub))
}

func (r *Routers) UpdateContact(c echo.Context) error {
	const op = "http.routers.UpdateContact"

	log := r.log.With(
		slog.String("op", op),
	)

	subID, err := parseUUIDParam(c, "submission_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid submission ID format"))
	}

	var req dto.UpdateContactRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	sub, err := r.Contacts.UpdateSubmission(c.Request().Context(), subID, req)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sub))
}

func (r *Routers) DeleteContact(c echo.Context) error {
	const op = "http.routers.DeleteContact"

	log := r.log.With(
		slog.String("op", op),
	)

	subID, err := parseUUIDParam(c, "submission_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid submission ID format"))
	}

	if err := r.Contacts.DeleteSubmission(c.Request().Context(), subID); err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(nil))
}

func (r *Routers) GetContact(c echo.Context) error {
	const op = "http.routers.GetContact"

	log := r.log.With(
		slog.String("op", op),
	)

	subID, err := parseUUIDParam(c, "submission_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid submission ID format"))
	}

	sub, err := r.Contacts.GetSubmission(c.Request().Context(), subID)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sub))
}

func (r *Routers) ListContacts(c echo.Context) error {
	const op = "http.routers.ListContacts"

	log := r.log.With(
		slog.String("op", op),
	)

	var query dto.ListContactsQuery

	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	subs, total, err := r.Contacts.ListSubmissions(c.Request().Context(), query)
	if err != nil {
		return r.respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]interface{}{
		"submissions": subs,
		"total_count": total,
	}))
}
